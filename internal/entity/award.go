package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Award struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	User        User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user"`
	Title       string    `gorm:"size:100;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Points      int       `gorm:"default:0" json:"points"`
	GrantedByID uuid.UUID `gorm:"type:uuid;not null" json:"granted_by_id"`
	GrantedBy   User      `gorm:"foreignKey:GrantedByID" json:"granted_by"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (a *Award) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
