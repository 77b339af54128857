package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"brik.community/portal/internal/entity"
	opportunityDto "brik.community/portal/internal/modules/opportunity/dto"
	opportunityRepo "brik.community/portal/internal/modules/opportunity/repository"
	search "brik.community/portal/internal/modules/search/service"
	"brik.community/portal/pkg/apperror"
	commonDto "brik.community/portal/pkg/dto"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OpportunityService interface {
	Create(ctx context.Context, userID uuid.UUID, req opportunityDto.CreateOpportunityRequest) (*opportunityDto.OpportunityResponse, error)
	GetAll(ctx context.Context, viewerID uuid.UUID, filter opportunityDto.OpportunityFilter) (*opportunityDto.PaginatedOpportunityResponse, error)
	GetByID(ctx context.Context, viewerID, id uuid.UUID) (*opportunityDto.OpportunityResponse, error)
	Update(ctx context.Context, id uuid.UUID, req opportunityDto.UpdateOpportunityRequest) (*opportunityDto.OpportunityResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error

	Save(ctx context.Context, userID, opportunityID uuid.UUID) error
	Unsave(ctx context.Context, userID, opportunityID uuid.UUID) error
	GetSaved(ctx context.Context, userID uuid.UUID) ([]opportunityDto.OpportunityResponse, error)
}

type opportunityService struct {
	repo      opportunityRepo.OpportunityRepository
	searchSvc search.SearchService
}

func NewOpportunityService(repo opportunityRepo.OpportunityRepository, searchSvc search.SearchService) OpportunityService {
	return &opportunityService{
		repo:      repo,
		searchSvc: searchSvc,
	}
}

func (s *opportunityService) Create(ctx context.Context, userID uuid.UUID, req opportunityDto.CreateOpportunityRequest) (*opportunityDto.OpportunityResponse, error) {
	opportunity := &entity.Opportunity{
		Title:        req.Title,
		Description:  req.Description,
		Type:         req.Type,
		Organization: req.Organization,
		CreatedByID:  userID,
	}
	if req.Link != "" {
		opportunity.Link = &req.Link
	}
	if t, err := time.Parse("2006-01-02", req.Deadline); err == nil {
		opportunity.Deadline = &t
	}

	if err := s.repo.Create(ctx, opportunity); err != nil {
		return nil, err
	}

	s.indexAsync(opportunity.ID)

	return s.GetByID(ctx, userID, opportunity.ID)
}

func (s *opportunityService) GetAll(ctx context.Context, viewerID uuid.UUID, filter opportunityDto.OpportunityFilter) (*opportunityDto.PaginatedOpportunityResponse, error) {
	filter.Normalize()

	saved, err := s.repo.SavedIDsByUser(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	if filter.Search != "" && s.searchSvc != nil {
		if ids, searchErr := s.searchSvc.SearchOpportunityIDs(filter.Search, filter.Limit); searchErr == nil {
			return s.buildFromIDs(ctx, ids, filter, saved)
		}
	}

	opportunities, total, err := s.repo.FindAll(ctx, filter.Search, filter.Type, filter.Offset(), filter.Limit)
	if err != nil {
		return nil, err
	}

	responses := make([]opportunityDto.OpportunityResponse, 0, len(opportunities))
	for _, o := range opportunities {
		responses = append(responses, buildResponse(o, saved[o.ID]))
	}

	return &opportunityDto.PaginatedOpportunityResponse{
		Data: responses,
		Meta: commonDto.BuildPaginationMeta(filter.Page, filter.Limit, total),
	}, nil
}

func (s *opportunityService) GetByID(ctx context.Context, viewerID, id uuid.UUID) (*opportunityDto.OpportunityResponse, error) {
	opportunity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: opportunity not found", apperror.ErrNotFound)
		}
		return nil, err
	}

	saved, err := s.repo.SavedIDsByUser(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	resp := buildResponse(opportunity, saved[opportunity.ID])
	return &resp, nil
}

func (s *opportunityService) Update(ctx context.Context, id uuid.UUID, req opportunityDto.UpdateOpportunityRequest) (*opportunityDto.OpportunityResponse, error) {
	opportunity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: opportunity not found", apperror.ErrNotFound)
		}
		return nil, err
	}

	opportunity.Title = req.Title
	opportunity.Description = req.Description
	opportunity.Type = req.Type
	opportunity.Organization = req.Organization
	opportunity.Link, opportunity.Deadline = nil, nil
	if req.Link != "" {
		opportunity.Link = &req.Link
	}
	if t, parseErr := time.Parse("2006-01-02", req.Deadline); parseErr == nil {
		opportunity.Deadline = &t
	}

	if err := s.repo.Update(ctx, opportunity); err != nil {
		return nil, err
	}

	s.indexAsync(id)

	resp := buildResponse(opportunity, false)
	return &resp, nil
}

func (s *opportunityService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: opportunity not found", apperror.ErrNotFound)
		}
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if s.searchSvc != nil {
		go func() {
			if err := s.searchSvc.DeleteOpportunity(id.String()); err != nil {
				log.Printf("Failed to remove opportunity %s from search index: %v", id, err)
			}
		}()
	}

	return nil
}

func (s *opportunityService) Save(ctx context.Context, userID, opportunityID uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, opportunityID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: opportunity not found", apperror.ErrNotFound)
		}
		return err
	}
	return s.repo.Save(ctx, userID, opportunityID)
}

func (s *opportunityService) Unsave(ctx context.Context, userID, opportunityID uuid.UUID) error {
	return s.repo.Unsave(ctx, userID, opportunityID)
}

func (s *opportunityService) GetSaved(ctx context.Context, userID uuid.UUID) ([]opportunityDto.OpportunityResponse, error) {
	saved, err := s.repo.FindSavedByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]opportunityDto.OpportunityResponse, 0, len(saved))
	for _, item := range saved {
		responses = append(responses, buildResponse(&item.Opportunity, true))
	}
	return responses, nil
}

func (s *opportunityService) indexAsync(id uuid.UUID) {
	if s.searchSvc == nil {
		return
	}
	go func() {
		opportunity, err := s.repo.FindByID(context.Background(), id)
		if err != nil {
			return
		}
		if err := s.searchSvc.IndexOpportunity(opportunity); err != nil {
			log.Printf("Failed to index opportunity %s: %v", id, err)
		}
	}()
}

func (s *opportunityService) buildFromIDs(ctx context.Context, ids []string, filter opportunityDto.OpportunityFilter, saved map[uuid.UUID]bool) (*opportunityDto.PaginatedOpportunityResponse, error) {
	uuids := make([]uuid.UUID, 0, len(ids))
	for _, raw := range ids {
		if id, err := uuid.Parse(raw); err == nil {
			uuids = append(uuids, id)
		}
	}

	opportunities, err := s.repo.FindByIDs(ctx, uuids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]*entity.Opportunity, len(opportunities))
	for _, o := range opportunities {
		byID[o.ID] = o
	}

	responses := make([]opportunityDto.OpportunityResponse, 0, len(uuids))
	for _, id := range uuids {
		o, ok := byID[id]
		if !ok {
			continue
		}
		if filter.Type != "" && o.Type != filter.Type {
			continue
		}
		responses = append(responses, buildResponse(o, saved[o.ID]))
	}

	return &opportunityDto.PaginatedOpportunityResponse{
		Data: responses,
		Meta: commonDto.BuildPaginationMeta(filter.Page, filter.Limit, int64(len(responses))),
	}, nil
}

func buildResponse(o *entity.Opportunity, saved bool) opportunityDto.OpportunityResponse {
	resp := opportunityDto.OpportunityResponse{
		ID:           o.ID,
		Title:        o.Title,
		Description:  o.Description,
		Type:         o.Type,
		Organization: o.Organization,
		Saved:        saved,
		CreatedAt:    o.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:    o.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
	if o.Link != nil {
		resp.Link = *o.Link
	}
	if o.Deadline != nil {
		resp.Deadline = o.Deadline.Format("2006-01-02")
	}

	resp.Author = commonDto.AuthorResponse{
		ID:        o.CreatedBy.ID,
		Username:  o.CreatedBy.Username,
		AvatarURL: o.CreatedBy.AvatarURL,
	}
	if o.CreatedBy.Profile != nil {
		resp.Author.FullName = o.CreatedBy.Profile.FullName
	}

	return resp
}
