package repository

import (
	"context"
	"time"

	"brik.community/portal/internal/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventRepository interface {
	Create(ctx context.Context, event *entity.CalendarEvent) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CalendarEvent, error)
	FindAll(ctx context.Context, offset, limit int) ([]*entity.CalendarEvent, int64, error)
	FindBetween(ctx context.Context, from, to time.Time) ([]*entity.CalendarEvent, error)
	FindUpcoming(ctx context.Context, after time.Time, limit int) ([]*entity.CalendarEvent, error)
	Update(ctx context.Context, event *entity.CalendarEvent) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *entity.CalendarEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CalendarEvent, error) {
	var event entity.CalendarEvent
	if err := r.db.WithContext(ctx).
		Preload("CreatedBy").
		Preload("CreatedBy.Profile").
		Where("id = ?", id).
		First(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) FindAll(ctx context.Context, offset, limit int) ([]*entity.CalendarEvent, int64, error) {
	var events []*entity.CalendarEvent
	var total int64

	query := r.db.WithContext(ctx).
		Preload("CreatedBy").
		Preload("CreatedBy.Profile")

	if err := query.Model(&entity.CalendarEvent{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Order("date ASC").
		Offset(offset).Limit(limit).
		Find(&events).Error; err != nil {
		return nil, 0, err
	}

	return events, total, nil
}

// FindBetween returns events overlapping [from, to]. Multi-day events match
// when any part of their range falls inside the window.
func (r *eventRepository) FindBetween(ctx context.Context, from, to time.Time) ([]*entity.CalendarEvent, error) {
	var events []*entity.CalendarEvent
	err := r.db.WithContext(ctx).
		Preload("CreatedBy").
		Preload("CreatedBy.Profile").
		Where("date <= ? AND COALESCE(end_date, date) >= ?", to, from).
		Order("date ASC").
		Find(&events).Error
	return events, err
}

func (r *eventRepository) FindUpcoming(ctx context.Context, after time.Time, limit int) ([]*entity.CalendarEvent, error) {
	var events []*entity.CalendarEvent
	err := r.db.WithContext(ctx).
		Preload("CreatedBy").
		Preload("CreatedBy.Profile").
		Where("COALESCE(end_date, date) >= ?", after).
		Order("date ASC").
		Limit(limit).
		Find(&events).Error
	return events, err
}

func (r *eventRepository) Update(ctx context.Context, event *entity.CalendarEvent) error {
	return r.db.WithContext(ctx).Save(event).Error
}

func (r *eventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.CalendarEvent{}, "id = ?", id).Error
}
