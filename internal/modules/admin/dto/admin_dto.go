package dto

import (
	"github.com/google/uuid"
)

type CreateMemberInput struct {
	Username string `json:"username" form:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" form:"password" binding:"required,min=8"`
	Role     string `json:"role" form:"role" binding:"omitempty,oneof=admin member"`
	FullName string `json:"full_name" form:"full_name" binding:"required,max=100"`
	Track    string `json:"track" form:"track" binding:"omitempty,max=50"`
	Cohort   string `json:"cohort" form:"cohort" binding:"omitempty,max=50"`
	Bio      string `json:"bio" form:"bio" binding:"omitempty,max=2000"`
}

type UpdateMemberInput struct {
	Password string `json:"password" form:"password" binding:"omitempty,min=8"`
	Role     string `json:"role" form:"role" binding:"omitempty,oneof=admin member"`
	FullName string `json:"full_name" form:"full_name" binding:"omitempty,max=100"`
	Track    string `json:"track" form:"track" binding:"omitempty,max=50"`
	Cohort   string `json:"cohort" form:"cohort" binding:"omitempty,max=50"`
	Bio      string `json:"bio" form:"bio" binding:"omitempty,max=2000"`
}

type MemberResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	FullName  string    `json:"full_name,omitempty"`
	Track     string    `json:"track,omitempty"`
	Cohort    string    `json:"cohort,omitempty"`
	AvatarURL *string   `json:"avatar_url"`
	CreatedAt string    `json:"created_at"`
}
