package dto

import (
	commonDto "brik.community/portal/pkg/dto"
	"github.com/google/uuid"
)

type CreateProjectRequest struct {
	Name        string      `json:"name" binding:"required,max=200"`
	Description string      `json:"description"`
	Status      string      `json:"status" binding:"omitempty,oneof=active completed archived"`
	CoverURL    string      `json:"cover_url" binding:"omitempty,url"`
	MemberIDs   []uuid.UUID `json:"member_ids"`
}

type UpdateProjectRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Description string `json:"description"`
	Status      string `json:"status" binding:"omitempty,oneof=active completed archived"`
	CoverURL    string `json:"cover_url" binding:"omitempty,url"`
}

type AddMemberRequest struct {
	ProjectID uuid.UUID `json:"project_id" binding:"required"`
	UserID    uuid.UUID `json:"user_id" binding:"required"`
	Role      string    `json:"role" binding:"omitempty,oneof=lead member"`
}

type RemoveMemberRequest struct {
	ProjectID uuid.UUID `json:"project_id" binding:"required"`
	UserID    uuid.UUID `json:"user_id" binding:"required"`
}

type CreateProjectUpdateRequest struct {
	Content string `json:"content" binding:"required"`
}

type ProjectFilter struct {
	commonDto.ListFilter
	Status string `form:"status" binding:"omitempty,oneof=active completed archived"`
}

type ProjectMemberResponse struct {
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name,omitempty"`
	AvatarURL *string   `json:"avatar_url"`
	Role      string    `json:"role"`
	JoinedAt  string    `json:"joined_at"`
}

type ProjectUpdateResponse struct {
	ID        uuid.UUID                `json:"id"`
	Content   string                   `json:"content"`
	Author    commonDto.AuthorResponse `json:"author"`
	CreatedAt string                   `json:"created_at"`
}

type ProjectResponse struct {
	ID          uuid.UUID                `json:"id"`
	Name        string                   `json:"name"`
	Description string                   `json:"description"`
	Status      string                   `json:"status"`
	CoverURL    string                   `json:"cover_url,omitempty"`
	Members     []ProjectMemberResponse  `json:"members"`
	Updates     []ProjectUpdateResponse  `json:"updates,omitempty"`
	Author      commonDto.AuthorResponse `json:"author"`
	CreatedAt   string                   `json:"created_at"`
	UpdatedAt   string                   `json:"updated_at"`
}

// CreateProjectResponse carries a warning when the project row was written
// but some of the requested members could not be added. There is no rollback
// for that case.
type CreateProjectResponse struct {
	Project ProjectResponse `json:"project"`
	Warning string          `json:"warning,omitempty"`
}

type PaginatedProjectResponse struct {
	Data []ProjectResponse        `json:"data"`
	Meta commonDto.PaginationMeta `json:"meta"`
}
