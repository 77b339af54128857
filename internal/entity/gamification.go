package entity

import (
	"time"

	"github.com/google/uuid"
)

type MemberStats struct {
	UserID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	User          User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user"`
	XP            int       `gorm:"default:0" json:"xp"`
	Badges        int       `gorm:"default:0" json:"badges"`
	LastUpdatedAt time.Time `gorm:"autoUpdateTime" json:"last_updated_at"`
}

// RankSnapshot holds the last published leaderboard position per member.
// The admin leaderboard compares fresh ranks against it to show movement.
type RankSnapshot struct {
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Rank       int       `gorm:"not null" json:"rank"`
	XP         int       `gorm:"default:0" json:"xp"`
	CapturedAt time.Time `gorm:"autoUpdateTime" json:"captured_at"`
}
