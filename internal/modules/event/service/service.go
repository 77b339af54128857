package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"brik.community/portal/internal/entity"
	eventDto "brik.community/portal/internal/modules/event/dto"
	eventRepo "brik.community/portal/internal/modules/event/repository"
	"brik.community/portal/pkg/apperror"
	commonDto "brik.community/portal/pkg/dto"
	"brik.community/portal/pkg/textmeta"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventService interface {
	Create(ctx context.Context, userID uuid.UUID, req eventDto.CreateEventRequest) (*eventDto.EventResponse, error)
	GetAll(ctx context.Context, filter commonDto.ListFilter) (*eventDto.PaginatedEventResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*eventDto.EventResponse, error)
	GetMonthGrid(ctx context.Context, year int, month time.Month) (*eventDto.MonthGridResponse, error)
	GetUpcoming(ctx context.Context, limit int) ([]eventDto.EventResponse, error)
	Update(ctx context.Context, id uuid.UUID, req eventDto.UpdateEventRequest) (*eventDto.EventResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type eventService struct {
	repo eventRepo.EventRepository
}

func NewEventService(repo eventRepo.EventRepository) EventService {
	return &eventService{repo: repo}
}

func (s *eventService) Create(ctx context.Context, userID uuid.UUID, req eventDto.CreateEventRequest) (*eventDto.EventResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid event date", apperror.ErrBadRequest)
	}

	event := &entity.CalendarEvent{
		Title:       req.Title,
		Description: composeDescription(req.Date, req.EndDate, req.StartTime, req.EndTime, req.Description),
		Date:        date,
		CreatedByID: userID,
	}
	applyOptionalColumns(event, req.EndDate, req.StartTime, req.EndTime, req.Location)

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, event.ID)
}

func (s *eventService) GetAll(ctx context.Context, filter commonDto.ListFilter) (*eventDto.PaginatedEventResponse, error) {
	filter.Normalize()

	events, total, err := s.repo.FindAll(ctx, filter.Offset(), filter.Limit)
	if err != nil {
		return nil, err
	}

	responses := make([]eventDto.EventResponse, 0, len(events))
	for _, e := range events {
		responses = append(responses, buildResponse(e))
	}

	return &eventDto.PaginatedEventResponse{
		Data: responses,
		Meta: commonDto.BuildPaginationMeta(filter.Page, filter.Limit, total),
	}, nil
}

func (s *eventService) GetByID(ctx context.Context, id uuid.UUID) (*eventDto.EventResponse, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: event not found", apperror.ErrNotFound)
		}
		return nil, err
	}

	resp := buildResponse(event)
	return &resp, nil
}

func (s *eventService) GetMonthGrid(ctx context.Context, year int, month time.Month) (*eventDto.MonthGridResponse, error) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	// The grid pads out to full weeks, so fetch the neighboring days too.
	gridStart := startOfWeek(first)
	gridEnd := startOfWeek(last).AddDate(0, 0, 6)

	events, err := s.repo.FindBetween(ctx, gridStart, gridEnd)
	if err != nil {
		return nil, err
	}

	return &eventDto.MonthGridResponse{
		Year:  year,
		Month: int(month),
		Weeks: buildMonthGrid(year, month, time.Now().UTC(), events),
	}, nil
}

func (s *eventService) GetUpcoming(ctx context.Context, limit int) ([]eventDto.EventResponse, error) {
	if limit < 1 || limit > 50 {
		limit = 5
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	events, err := s.repo.FindUpcoming(ctx, today, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]eventDto.EventResponse, 0, len(events))
	for _, e := range events {
		responses = append(responses, buildResponse(e))
	}
	return responses, nil
}

func (s *eventService) Update(ctx context.Context, id uuid.UUID, req eventDto.UpdateEventRequest) (*eventDto.EventResponse, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: event not found", apperror.ErrNotFound)
		}
		return nil, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid event date", apperror.ErrBadRequest)
	}

	event.Title = req.Title
	event.Description = composeDescription(req.Date, req.EndDate, req.StartTime, req.EndTime, req.Description)
	event.Date = date
	event.EndDate, event.StartTime, event.EndTime, event.Location = nil, nil, nil, nil
	applyOptionalColumns(event, req.EndDate, req.StartTime, req.EndTime, req.Location)

	if err := s.repo.Update(ctx, event); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, id)
}

func (s *eventService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: event not found", apperror.ErrNotFound)
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

// composeDescription embeds the human-readable range notice old clients
// render. Single-day events never get a date line; the date column alone
// carries it.
func composeDescription(date, endDate, startTime, endTime, body string) string {
	if endDate != "" && endDate != date {
		return textmeta.EventCodec.Compose(date, endDate, startTime, endTime, body)
	}
	return textmeta.EventCodec.Compose("", "", startTime, endTime, body)
}

func applyOptionalColumns(e *entity.CalendarEvent, endDate, startTime, endTime, location string) {
	if t, err := time.Parse("2006-01-02", endDate); err == nil {
		e.EndDate = &t
	}
	if startTime != "" {
		e.StartTime = &startTime
	}
	if endTime != "" {
		e.EndTime = &endTime
	}
	if location != "" {
		e.Location = &location
	}
}

func buildResponse(e *entity.CalendarEvent) eventDto.EventResponse {
	meta := textmeta.EventCodec.Parse(e.Description)

	resp := eventDto.EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Body:        meta.Body,
		Date:        e.Date.Format("2006-01-02"),
		Malformed:   meta.Malformed,
		CreatedAt:   e.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:   e.UpdatedAt.Format("2006-01-02 15:04:05"),
	}

	if e.EndDate != nil {
		resp.EndDate = e.EndDate.Format("2006-01-02")
	} else if meta.ToDate != "" {
		// Legacy row: the range only exists inside the description text.
		resp.EndDate = meta.ToDate
	}
	if e.StartTime != nil {
		resp.StartTime = *e.StartTime
	} else {
		resp.StartTime = meta.FromTime
	}
	if e.EndTime != nil {
		resp.EndTime = *e.EndTime
	} else {
		resp.EndTime = meta.ToTime
	}
	if e.Location != nil {
		resp.Location = *e.Location
	}

	resp.Author = commonDto.AuthorResponse{
		ID:        e.CreatedBy.ID,
		Username:  e.CreatedBy.Username,
		AvatarURL: e.CreatedBy.AvatarURL,
	}
	if e.CreatedBy.Profile != nil {
		resp.Author.FullName = e.CreatedBy.Profile.FullName
	}

	return resp
}
