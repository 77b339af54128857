package repository

import (
	"context"

	"brik.community/portal/internal/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OpportunityRepository interface {
	Create(ctx context.Context, opportunity *entity.Opportunity) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Opportunity, error)
	FindAll(ctx context.Context, search, oppType string, offset, limit int) ([]*entity.Opportunity, int64, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Opportunity, error)
	Update(ctx context.Context, opportunity *entity.Opportunity) error
	Delete(ctx context.Context, id uuid.UUID) error

	Save(ctx context.Context, userID, opportunityID uuid.UUID) error
	Unsave(ctx context.Context, userID, opportunityID uuid.UUID) error
	FindSavedByUser(ctx context.Context, userID uuid.UUID) ([]*entity.SavedOpportunity, error)
	SavedIDsByUser(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]bool, error)
}

type opportunityRepository struct {
	db *gorm.DB
}

func NewOpportunityRepository(db *gorm.DB) OpportunityRepository {
	return &opportunityRepository{db: db}
}

func (r *opportunityRepository) Create(ctx context.Context, opportunity *entity.Opportunity) error {
	return r.db.WithContext(ctx).Create(opportunity).Error
}

func (r *opportunityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Opportunity, error) {
	var opportunity entity.Opportunity
	if err := r.db.WithContext(ctx).
		Preload("CreatedBy").
		Preload("CreatedBy.Profile").
		Where("id = ?", id).
		First(&opportunity).Error; err != nil {
		return nil, err
	}
	return &opportunity, nil
}

func (r *opportunityRepository) FindAll(ctx context.Context, search, oppType string, offset, limit int) ([]*entity.Opportunity, int64, error) {
	var opportunities []*entity.Opportunity
	var total int64

	query := r.db.WithContext(ctx).
		Preload("CreatedBy").
		Preload("CreatedBy.Profile")

	if search != "" {
		query = query.Where("title ILIKE ? OR description ILIKE ? OR organization ILIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}
	if oppType != "" {
		query = query.Where("type = ?", oppType)
	}

	if err := query.Model(&entity.Opportunity{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&opportunities).Error; err != nil {
		return nil, 0, err
	}

	return opportunities, total, nil
}

func (r *opportunityRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Opportunity, error) {
	var opportunities []*entity.Opportunity
	if len(ids) == 0 {
		return opportunities, nil
	}
	err := r.db.WithContext(ctx).
		Preload("CreatedBy").
		Preload("CreatedBy.Profile").
		Where("id IN ?", ids).
		Find(&opportunities).Error
	return opportunities, err
}

func (r *opportunityRepository) Update(ctx context.Context, opportunity *entity.Opportunity) error {
	return r.db.WithContext(ctx).Save(opportunity).Error
}

func (r *opportunityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Opportunity{}, "id = ?", id).Error
}

// Save is idempotent; re-saving an already saved opportunity is a no-op.
func (r *opportunityRepository) Save(ctx context.Context, userID, opportunityID uuid.UUID) error {
	saved := entity.SavedOpportunity{
		UserID:        userID,
		OpportunityID: opportunityID,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&saved).Error
}

func (r *opportunityRepository) Unsave(ctx context.Context, userID, opportunityID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND opportunity_id = ?", userID, opportunityID).
		Delete(&entity.SavedOpportunity{}).Error
}

func (r *opportunityRepository) FindSavedByUser(ctx context.Context, userID uuid.UUID) ([]*entity.SavedOpportunity, error) {
	var saved []*entity.SavedOpportunity
	err := r.db.WithContext(ctx).
		Preload("Opportunity").
		Preload("Opportunity.CreatedBy").
		Preload("Opportunity.CreatedBy.Profile").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&saved).Error
	return saved, err
}

func (r *opportunityRepository) SavedIDsByUser(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]bool, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&entity.SavedOpportunity{}).
		Where("user_id = ?", userID).
		Pluck("opportunity_id", &ids).Error
	if err != nil {
		return nil, err
	}

	saved := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		saved[id] = true
	}
	return saved, nil
}
