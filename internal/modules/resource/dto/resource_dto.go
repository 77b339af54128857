package dto

import (
	commonDto "brik.community/portal/pkg/dto"
	"github.com/google/uuid"
)

type CreateResourceRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description"`
	Category    string `json:"category" binding:"required,max=50"`
	URL         string `json:"url" binding:"required,url"`
}

type UpdateResourceRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description"`
	Category    string `json:"category" binding:"required,max=50"`
	URL         string `json:"url" binding:"required,url"`
}

type ResourceFilter struct {
	commonDto.ListFilter
	Category string `form:"category"`
}

type ResourceResponse struct {
	ID          uuid.UUID                `json:"id"`
	Title       string                   `json:"title"`
	Description string                   `json:"description"`
	Category    string                   `json:"category"`
	URL         string                   `json:"url"`
	Author      commonDto.AuthorResponse `json:"author"`
	CreatedAt   string                   `json:"created_at"`
	UpdatedAt   string                   `json:"updated_at"`
}

type PaginatedResourceResponse struct {
	Data []ResourceResponse       `json:"data"`
	Meta commonDto.PaginationMeta `json:"meta"`
}
