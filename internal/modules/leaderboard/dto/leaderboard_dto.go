package dto

import "github.com/google/uuid"

// Entry is a single ranked row. Rank is the dense 1-based position after
// sorting by XP descending; ties keep the store's order.
type Entry struct {
	Rank          int       `json:"rank"`
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Initials      string    `json:"initials"`
	XP            int       `json:"xp"`
	Badges        int       `json:"badges"`
	Track         *string   `json:"track,omitempty"`
	Cohort        *string   `json:"cohort,omitempty"`
	AvatarURL     *string   `json:"avatar_url,omitempty"`
	IsCurrentUser bool      `json:"is_current_user"`
}

// AdminEntry adds rank movement against the last published snapshot.
type AdminEntry struct {
	Entry
	PreviousRank int    `json:"previous_rank"`
	Movement     string `json:"movement"` // 'up', 'down', 'same', 'new'
	Delta        int    `json:"delta"`
}
