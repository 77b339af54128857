package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Announcement content may embed a legacy "Announcement runs from X to Y" /
// "Date: X" / "Time: X" metadata block composed by the old portal. Rows
// written by this backend carry the range in the structured columns below;
// the content block is kept in sync so old clients keep rendering it.
type Announcement struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string     `gorm:"size:200;not null" json:"title"`
	Content     string     `gorm:"type:text;not null" json:"content"`
	StartDate   *time.Time `gorm:"type:date" json:"start_date,omitempty"`
	EndDate     *time.Time `gorm:"type:date" json:"end_date,omitempty"`
	StartTime   *string    `gorm:"size:10" json:"start_time,omitempty"`
	EndTime     *string    `gorm:"size:10" json:"end_time,omitempty"`
	Pinned      bool       `gorm:"default:false" json:"pinned"`
	CreatedByID uuid.UUID  `gorm:"type:uuid;not null" json:"created_by_id"`
	CreatedBy   User       `gorm:"foreignKey:CreatedByID" json:"created_by"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (a *Announcement) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
