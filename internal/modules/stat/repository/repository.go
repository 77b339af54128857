package repository

import (
	"context"
	"time"

	"brik.community/portal/internal/entity"
	"gorm.io/gorm"
)

type StatRepository interface {
	CountMembers(ctx context.Context) (int64, error)
	CountProjects(ctx context.Context, status string) (int64, error)
	CountAnnouncements(ctx context.Context) (int64, error)
	CountUpcomingEvents(ctx context.Context, after time.Time) (int64, error)
	CountOpportunities(ctx context.Context) (int64, error)
	CountResources(ctx context.Context) (int64, error)
}

type statRepository struct {
	db *gorm.DB
}

func NewStatRepository(db *gorm.DB) StatRepository {
	return &statRepository{db: db}
}

func (r *statRepository) CountMembers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.User{}).Count(&count).Error
	return count, err
}

func (r *statRepository) CountProjects(ctx context.Context, status string) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&entity.Project{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Count(&count).Error
	return count, err
}

func (r *statRepository) CountAnnouncements(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Announcement{}).Count(&count).Error
	return count, err
}

func (r *statRepository) CountUpcomingEvents(ctx context.Context, after time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.CalendarEvent{}).
		Where("COALESCE(end_date, date) >= ?", after).
		Count(&count).Error
	return count, err
}

func (r *statRepository) CountOpportunities(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Opportunity{}).Count(&count).Error
	return count, err
}

func (r *statRepository) CountResources(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Resource{}).Count(&count).Error
	return count, err
}
