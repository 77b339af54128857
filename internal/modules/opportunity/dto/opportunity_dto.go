package dto

import (
	commonDto "brik.community/portal/pkg/dto"
	"github.com/google/uuid"
)

type CreateOpportunityRequest struct {
	Title        string `json:"title" binding:"required,max=200"`
	Description  string `json:"description"`
	Type         string `json:"type" binding:"required,oneof=internship job scholarship competition"`
	Organization string `json:"organization" binding:"required,max=200"`
	Link         string `json:"link" binding:"omitempty,url"`
	Deadline     string `json:"deadline" binding:"omitempty,datetime=2006-01-02"`
}

type UpdateOpportunityRequest struct {
	Title        string `json:"title" binding:"required,max=200"`
	Description  string `json:"description"`
	Type         string `json:"type" binding:"required,oneof=internship job scholarship competition"`
	Organization string `json:"organization" binding:"required,max=200"`
	Link         string `json:"link" binding:"omitempty,url"`
	Deadline     string `json:"deadline" binding:"omitempty,datetime=2006-01-02"`
}

type OpportunityFilter struct {
	commonDto.ListFilter
	Type string `form:"type" binding:"omitempty,oneof=internship job scholarship competition"`
}

type OpportunityResponse struct {
	ID           uuid.UUID                `json:"id"`
	Title        string                   `json:"title"`
	Description  string                   `json:"description"`
	Type         string                   `json:"type"`
	Organization string                   `json:"organization"`
	Link         string                   `json:"link,omitempty"`
	Deadline     string                   `json:"deadline,omitempty"`
	Saved        bool                     `json:"saved"`
	Author       commonDto.AuthorResponse `json:"author"`
	CreatedAt    string                   `json:"created_at"`
	UpdatedAt    string                   `json:"updated_at"`
}

type PaginatedOpportunityResponse struct {
	Data []OpportunityResponse    `json:"data"`
	Meta commonDto.PaginationMeta `json:"meta"`
}
