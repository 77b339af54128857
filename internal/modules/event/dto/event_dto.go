package dto

import (
	commonDto "brik.community/portal/pkg/dto"
	"github.com/google/uuid"
)

type CreateEventRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description"`
	Date        string `json:"date" binding:"required,datetime=2006-01-02"`
	EndDate     string `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	StartTime   string `json:"start_time" binding:"omitempty,max=10"`
	EndTime     string `json:"end_time" binding:"omitempty,max=10"`
	Location    string `json:"location" binding:"omitempty,max=200"`
}

type UpdateEventRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description"`
	Date        string `json:"date" binding:"required,datetime=2006-01-02"`
	EndDate     string `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	StartTime   string `json:"start_time" binding:"omitempty,max=10"`
	EndTime     string `json:"end_time" binding:"omitempty,max=10"`
	Location    string `json:"location" binding:"omitempty,max=200"`
}

type EventResponse struct {
	ID          uuid.UUID                `json:"id"`
	Title       string                   `json:"title"`
	Description string                   `json:"description"` // stored form, range notice included
	Body        string                   `json:"body"`         // description with the range notice stripped
	Date        string                   `json:"date"`
	EndDate     string                   `json:"end_date,omitempty"`
	StartTime   string                   `json:"start_time,omitempty"`
	EndTime     string                   `json:"end_time,omitempty"`
	Location    string                   `json:"location,omitempty"`
	Malformed   bool                     `json:"malformed,omitempty"`
	Author      commonDto.AuthorResponse `json:"author"`
	CreatedAt   string                   `json:"created_at"`
	UpdatedAt   string                   `json:"updated_at"`
}

type PaginatedEventResponse struct {
	Data []EventResponse          `json:"data"`
	Meta commonDto.PaginationMeta `json:"meta"`
}

// DayCell is one square of the dashboard month grid. Days from the
// neighboring months pad the first and last week.
type DayCell struct {
	Date    string          `json:"date"`
	Day     int             `json:"day"`
	InMonth bool            `json:"in_month"`
	Today   bool            `json:"today"`
	Events  []EventResponse `json:"events"`
}

type MonthGridResponse struct {
	Year  int         `json:"year"`
	Month int         `json:"month"`
	Weeks [][]DayCell `json:"weeks"`
}
