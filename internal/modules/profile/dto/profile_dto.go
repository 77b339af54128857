package dto

import (
	"github.com/google/uuid"
)

type UpdateProfileRequest struct {
	FullName string `json:"full_name" binding:"required,max=100"`
	Track    string `json:"track" binding:"omitempty,max=50"`
	Cohort   string `json:"cohort" binding:"omitempty,max=50"`
	Bio      string `json:"bio" binding:"omitempty,max=2000"`
}

type AwardSummary struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Points      int       `json:"points"`
	CreatedAt   string    `json:"created_at"`
}

type ProfileResponse struct {
	ID        uuid.UUID      `json:"id"`
	Username  string         `json:"username"`
	FullName  string         `json:"full_name"`
	Track     string         `json:"track,omitempty"`
	Cohort    string         `json:"cohort,omitempty"`
	Bio       string         `json:"bio,omitempty"`
	AvatarURL *string        `json:"avatar_url"`
	Role      string         `json:"role"`
	XP        int            `json:"xp"`
	Badges    int            `json:"badges"`
	Awards    []AwardSummary `json:"awards"`
	JoinedAt  string         `json:"joined_at"`
}
