package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Opportunity struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Title        string     `gorm:"size:200;not null" json:"title"`
	Description  string     `gorm:"type:text" json:"description"`
	Type         string     `gorm:"size:50" json:"type"` // 'internship', 'job', 'scholarship', 'competition'
	Organization string     `gorm:"size:200" json:"organization"`
	Link         *string    `gorm:"type:text" json:"link,omitempty"`
	Deadline     *time.Time `gorm:"type:date" json:"deadline,omitempty"`
	CreatedByID  uuid.UUID  `gorm:"type:uuid;not null" json:"created_by_id"`
	CreatedBy    User       `gorm:"foreignKey:CreatedByID" json:"created_by"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (o *Opportunity) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

type SavedOpportunity struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	UserID        uuid.UUID   `gorm:"type:uuid;uniqueIndex:idx_saved_user_opp,priority:1;not null" json:"user_id"`
	OpportunityID uuid.UUID   `gorm:"type:uuid;uniqueIndex:idx_saved_user_opp,priority:2;not null" json:"opportunity_id"`
	Opportunity   Opportunity `gorm:"foreignKey:OpportunityID;constraint:OnDelete:CASCADE" json:"opportunity"`
	CreatedAt     time.Time   `gorm:"autoCreateTime" json:"created_at"`
}
