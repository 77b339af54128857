package repository

import (
	"context"

	"brik.community/portal/internal/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AnnouncementRepository interface {
	Create(ctx context.Context, announcement *entity.Announcement) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Announcement, error)
	FindAll(ctx context.Context, search string, offset, limit int) ([]*entity.Announcement, int64, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Announcement, error)
	Update(ctx context.Context, announcement *entity.Announcement) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type announcementRepository struct {
	db *gorm.DB
}

func NewAnnouncementRepository(db *gorm.DB) AnnouncementRepository {
	return &announcementRepository{db: db}
}

func (r *announcementRepository) Create(ctx context.Context, announcement *entity.Announcement) error {
	return r.db.WithContext(ctx).Create(announcement).Error
}

func (r *announcementRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Announcement, error) {
	var announcement entity.Announcement
	if err := r.db.WithContext(ctx).
		Preload("CreatedBy").
		Preload("CreatedBy.Profile").
		Where("id = ?", id).
		First(&announcement).Error; err != nil {
		return nil, err
	}
	return &announcement, nil
}

func (r *announcementRepository) FindAll(ctx context.Context, search string, offset, limit int) ([]*entity.Announcement, int64, error) {
	var announcements []*entity.Announcement
	var total int64

	query := r.db.WithContext(ctx).
		Preload("CreatedBy").
		Preload("CreatedBy.Profile")

	if search != "" {
		query = query.Where("title ILIKE ? OR content ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	if err := query.Model(&entity.Announcement{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Order("pinned DESC").
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&announcements).Error; err != nil {
		return nil, 0, err
	}

	return announcements, total, nil
}

func (r *announcementRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Announcement, error) {
	var announcements []*entity.Announcement
	if len(ids) == 0 {
		return announcements, nil
	}
	err := r.db.WithContext(ctx).
		Preload("CreatedBy").
		Preload("CreatedBy.Profile").
		Where("id IN ?", ids).
		Find(&announcements).Error
	return announcements, err
}

func (r *announcementRepository) Update(ctx context.Context, announcement *entity.Announcement) error {
	return r.db.WithContext(ctx).Save(announcement).Error
}

func (r *announcementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Announcement{}, "id = ?", id).Error
}
