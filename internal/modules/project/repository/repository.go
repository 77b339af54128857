package repository

import (
	"context"

	"brik.community/portal/internal/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectRepository interface {
	Create(ctx context.Context, project *entity.Project) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error)
	FindAll(ctx context.Context, search, status string, offset, limit int) ([]*entity.Project, int64, error)
	Update(ctx context.Context, project *entity.Project) error
	Delete(ctx context.Context, id uuid.UUID) error

	AddMember(ctx context.Context, member *entity.ProjectMember) error
	RemoveMember(ctx context.Context, projectID, userID uuid.UUID) error
	FindMember(ctx context.Context, projectID, userID uuid.UUID) (*entity.ProjectMember, error)
	MemberIDs(ctx context.Context, projectID uuid.UUID) ([]uuid.UUID, error)

	CreateUpdate(ctx context.Context, update *entity.ProjectUpdate) error
	FindUpdates(ctx context.Context, projectID uuid.UUID, limit int) ([]*entity.ProjectUpdate, error)
}

type projectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(ctx context.Context, project *entity.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

func (r *projectRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	var project entity.Project
	if err := r.db.WithContext(ctx).
		Preload("CreatedBy").
		Preload("CreatedBy.Profile").
		Preload("Members.User").
		Preload("Members.User.Profile").
		Preload("Updates", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("Updates.Author").
		Preload("Updates.Author.Profile").
		Where("id = ?", id).
		First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) FindAll(ctx context.Context, search, status string, offset, limit int) ([]*entity.Project, int64, error) {
	var projects []*entity.Project
	var total int64

	query := r.db.WithContext(ctx).
		Preload("CreatedBy").
		Preload("CreatedBy.Profile").
		Preload("Members.User").
		Preload("Members.User.Profile")

	if search != "" {
		query = query.Where("name ILIKE ? OR description ILIKE ?", "%"+search+"%", "%"+search+"%")
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Model(&entity.Project{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&projects).Error; err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}

func (r *projectRepository) Update(ctx context.Context, project *entity.Project) error {
	return r.db.WithContext(ctx).Save(project).Error
}

func (r *projectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Project{}, "id = ?", id).Error
}

func (r *projectRepository) AddMember(ctx context.Context, member *entity.ProjectMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *projectRepository) RemoveMember(ctx context.Context, projectID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Delete(&entity.ProjectMember{}).Error
}

func (r *projectRepository) FindMember(ctx context.Context, projectID, userID uuid.UUID) (*entity.ProjectMember, error) {
	var member entity.ProjectMember
	if err := r.db.WithContext(ctx).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *projectRepository) MemberIDs(ctx context.Context, projectID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&entity.ProjectMember{}).
		Where("project_id = ?", projectID).
		Pluck("user_id", &ids).Error
	return ids, err
}

func (r *projectRepository) CreateUpdate(ctx context.Context, update *entity.ProjectUpdate) error {
	return r.db.WithContext(ctx).Create(update).Error
}

func (r *projectRepository) FindUpdates(ctx context.Context, projectID uuid.UUID, limit int) ([]*entity.ProjectUpdate, error) {
	var updates []*entity.ProjectUpdate
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Author.Profile").
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Limit(limit).
		Find(&updates).Error
	return updates, err
}
