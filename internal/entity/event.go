package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CalendarEvent always has a start date; multi-day events carry EndDate and
// the description gets an "Event runs from X to Y" notice for old clients.
type CalendarEvent struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string     `gorm:"size:200;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Date        time.Time  `gorm:"type:date;not null;index" json:"date"`
	EndDate     *time.Time `gorm:"type:date" json:"end_date,omitempty"`
	StartTime   *string    `gorm:"size:10" json:"start_time,omitempty"`
	EndTime     *string    `gorm:"size:10" json:"end_time,omitempty"`
	Location    *string    `gorm:"size:200" json:"location,omitempty"`
	CreatedByID uuid.UUID  `gorm:"type:uuid;not null" json:"created_by_id"`
	CreatedBy   User       `gorm:"foreignKey:CreatedByID" json:"created_by"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (e *CalendarEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
