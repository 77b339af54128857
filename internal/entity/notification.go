package entity

import (
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`  // who receives it
	ActorID    uuid.UUID `gorm:"type:uuid;not null" json:"actor_id"`       // who triggered it
	EntityID   uuid.UUID `gorm:"type:uuid;not null" json:"entity_id"`      // announcement/project/award id
	EntityType string    `gorm:"type:varchar(50);not null" json:"entity_type"` // 'announcement', 'project', 'award', 'event'
	Type       string    `gorm:"type:varchar(50);not null" json:"type"`        // 'announcement_posted', 'award_granted', 'project_member_added', 'project_update'
	Message    string    `gorm:"type:text" json:"message"`
	IsRead     bool      `gorm:"default:false" json:"is_read"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`

	Actor *User `gorm:"foreignKey:ActorID" json:"actor,omitempty"`
}
