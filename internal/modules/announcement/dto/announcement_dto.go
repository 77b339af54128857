package dto

import (
	commonDto "brik.community/portal/pkg/dto"
	"github.com/google/uuid"
)

// Date fields are YYYY-MM-DD, time fields free-form clock strings ("09:00").
// All four are optional; a ToTime without a FromTime is accepted and simply
// not rendered into the content block.
type CreateAnnouncementRequest struct {
	Title    string `json:"title" binding:"required,max=200"`
	Body     string `json:"body" binding:"required"`
	FromDate string `json:"from_date" binding:"omitempty,datetime=2006-01-02"`
	ToDate   string `json:"to_date" binding:"omitempty,datetime=2006-01-02"`
	FromTime string `json:"from_time" binding:"omitempty,max=10"`
	ToTime   string `json:"to_time" binding:"omitempty,max=10"`
	Pinned   bool   `json:"pinned"`
}

type UpdateAnnouncementRequest struct {
	Title    string `json:"title" binding:"required,max=200"`
	Body     string `json:"body" binding:"required"`
	FromDate string `json:"from_date" binding:"omitempty,datetime=2006-01-02"`
	ToDate   string `json:"to_date" binding:"omitempty,datetime=2006-01-02"`
	FromTime string `json:"from_time" binding:"omitempty,max=10"`
	ToTime   string `json:"to_time" binding:"omitempty,max=10"`
	Pinned   bool   `json:"pinned"`
}

type AnnouncementResponse struct {
	ID        uuid.UUID                `json:"id"`
	Title     string                   `json:"title"`
	Content   string                   `json:"content"` // stored form, metadata block included
	Body      string                   `json:"body"`    // content with the metadata block stripped
	FromDate  string                   `json:"from_date,omitempty"`
	ToDate    string                   `json:"to_date,omitempty"`
	FromTime  string                   `json:"from_time,omitempty"`
	ToTime    string                   `json:"to_time,omitempty"`
	Pinned    bool                     `json:"pinned"`
	Legacy    bool                     `json:"legacy,omitempty"` // date metadata came from free text, not columns
	Malformed bool                     `json:"malformed,omitempty"`
	Author    commonDto.AuthorResponse `json:"author"`
	CreatedAt string                   `json:"created_at"`
	UpdatedAt string                   `json:"updated_at"`
}

type PaginatedAnnouncementResponse struct {
	Data []AnnouncementResponse   `json:"data"`
	Meta commonDto.PaginationMeta `json:"meta"`
}
