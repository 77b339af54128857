package service

import (
	"context"
	"errors"
	"fmt"

	"brik.community/portal/internal/entity"
	resourceDto "brik.community/portal/internal/modules/resource/dto"
	resourceRepo "brik.community/portal/internal/modules/resource/repository"
	"brik.community/portal/pkg/apperror"
	commonDto "brik.community/portal/pkg/dto"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ResourceService interface {
	Create(ctx context.Context, userID uuid.UUID, req resourceDto.CreateResourceRequest) (*resourceDto.ResourceResponse, error)
	GetAll(ctx context.Context, filter resourceDto.ResourceFilter) (*resourceDto.PaginatedResourceResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*resourceDto.ResourceResponse, error)
	Update(ctx context.Context, id uuid.UUID, req resourceDto.UpdateResourceRequest) (*resourceDto.ResourceResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type resourceService struct {
	repo resourceRepo.ResourceRepository
}

func NewResourceService(repo resourceRepo.ResourceRepository) ResourceService {
	return &resourceService{repo: repo}
}

func (s *resourceService) Create(ctx context.Context, userID uuid.UUID, req resourceDto.CreateResourceRequest) (*resourceDto.ResourceResponse, error) {
	resource := &entity.Resource{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		URL:         req.URL,
		CreatedByID: userID,
	}

	if err := s.repo.Create(ctx, resource); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, resource.ID)
}

func (s *resourceService) GetAll(ctx context.Context, filter resourceDto.ResourceFilter) (*resourceDto.PaginatedResourceResponse, error) {
	filter.Normalize()

	resources, total, err := s.repo.FindAll(ctx, filter.Search, filter.Category, filter.Offset(), filter.Limit)
	if err != nil {
		return nil, err
	}

	responses := make([]resourceDto.ResourceResponse, 0, len(resources))
	for _, r := range resources {
		responses = append(responses, buildResponse(r))
	}

	return &resourceDto.PaginatedResourceResponse{
		Data: responses,
		Meta: commonDto.BuildPaginationMeta(filter.Page, filter.Limit, total),
	}, nil
}

func (s *resourceService) GetByID(ctx context.Context, id uuid.UUID) (*resourceDto.ResourceResponse, error) {
	resource, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: resource not found", apperror.ErrNotFound)
		}
		return nil, err
	}

	resp := buildResponse(resource)
	return &resp, nil
}

func (s *resourceService) Update(ctx context.Context, id uuid.UUID, req resourceDto.UpdateResourceRequest) (*resourceDto.ResourceResponse, error) {
	resource, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: resource not found", apperror.ErrNotFound)
		}
		return nil, err
	}

	resource.Title = req.Title
	resource.Description = req.Description
	resource.Category = req.Category
	resource.URL = req.URL

	if err := s.repo.Update(ctx, resource); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, id)
}

func (s *resourceService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: resource not found", apperror.ErrNotFound)
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

func buildResponse(r *entity.Resource) resourceDto.ResourceResponse {
	resp := resourceDto.ResourceResponse{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		URL:         r.URL,
		CreatedAt:   r.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:   r.UpdatedAt.Format("2006-01-02 15:04:05"),
	}

	resp.Author = commonDto.AuthorResponse{
		ID:        r.CreatedBy.ID,
		Username:  r.CreatedBy.Username,
		AvatarURL: r.CreatedBy.AvatarURL,
	}
	if r.CreatedBy.Profile != nil {
		resp.Author.FullName = r.CreatedBy.Profile.FullName
	}

	return resp
}
