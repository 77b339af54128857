package repository

import (
	"context"

	"brik.community/portal/internal/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AwardRepository interface {
	Create(ctx context.Context, award *entity.Award) error
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Award, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Award, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type awardRepository struct {
	db *gorm.DB
}

func NewAwardRepository(db *gorm.DB) AwardRepository {
	return &awardRepository{db: db}
}

func (r *awardRepository) Create(ctx context.Context, award *entity.Award) error {
	return r.db.WithContext(ctx).Create(award).Error
}

func (r *awardRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Award, error) {
	var awards []entity.Award
	err := r.db.WithContext(ctx).
		Preload("GrantedBy", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "username", "avatar_url")
		}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&awards).Error
	return awards, err
}

func (r *awardRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Award, error) {
	var award entity.Award
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&award).Error; err != nil {
		return nil, err
	}
	return &award, nil
}

func (r *awardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Award{}, "id = ?", id).Error
}
