package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"brik.community/portal/internal/entity"
	announcementDto "brik.community/portal/internal/modules/announcement/dto"
	announcementRepo "brik.community/portal/internal/modules/announcement/repository"
	search "brik.community/portal/internal/modules/search/service"
	"brik.community/portal/pkg/apperror"
	commonDto "brik.community/portal/pkg/dto"
	"brik.community/portal/pkg/ratelimiter"
	"brik.community/portal/pkg/textmeta"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type AnnouncementService interface {
	Create(ctx context.Context, userID uuid.UUID, req announcementDto.CreateAnnouncementRequest) (*announcementDto.AnnouncementResponse, error)
	GetAll(ctx context.Context, filter commonDto.ListFilter) (*announcementDto.PaginatedAnnouncementResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*announcementDto.AnnouncementResponse, error)
	Update(ctx context.Context, id uuid.UUID, req announcementDto.UpdateAnnouncementRequest) (*announcementDto.AnnouncementResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type announcementService struct {
	repo        announcementRepo.AnnouncementRepository
	searchSvc   search.SearchService
	redisClient *redis.Client
}

func NewAnnouncementService(repo announcementRepo.AnnouncementRepository, searchSvc search.SearchService, redisClient *redis.Client) AnnouncementService {
	return &announcementService{
		repo:        repo,
		searchSvc:   searchSvc,
		redisClient: redisClient,
	}
}

func (s *announcementService) Create(ctx context.Context, userID uuid.UUID, req announcementDto.CreateAnnouncementRequest) (*announcementDto.AnnouncementResponse, error) {
	if err := s.checkRateLimit(ctx, userID); err != nil {
		return nil, err
	}

	announcement := &entity.Announcement{
		Title:       req.Title,
		Content:     textmeta.AnnouncementCodec.Compose(req.FromDate, req.ToDate, req.FromTime, req.ToTime, req.Body),
		Pinned:      req.Pinned,
		CreatedByID: userID,
	}
	applyDateColumns(announcement, req.FromDate, req.ToDate, req.FromTime, req.ToTime)

	if err := s.repo.Create(ctx, announcement); err != nil {
		return nil, err
	}

	s.indexAsync(announcement.ID)

	return s.GetByID(ctx, announcement.ID)
}

func (s *announcementService) GetAll(ctx context.Context, filter commonDto.ListFilter) (*announcementDto.PaginatedAnnouncementResponse, error) {
	filter.Normalize()

	// Full-text search goes through Meilisearch when it is up; the ILIKE
	// query in the repository covers the fallback path.
	if filter.Search != "" && s.searchSvc != nil {
		if ids, err := s.searchSvc.SearchAnnouncementIDs(filter.Search, filter.Limit); err == nil {
			return s.buildFromIDs(ctx, ids, filter)
		}
	}

	announcements, total, err := s.repo.FindAll(ctx, filter.Search, filter.Offset(), filter.Limit)
	if err != nil {
		return nil, err
	}

	responses := make([]announcementDto.AnnouncementResponse, 0, len(announcements))
	for _, a := range announcements {
		responses = append(responses, buildResponse(a))
	}

	return &announcementDto.PaginatedAnnouncementResponse{
		Data: responses,
		Meta: commonDto.BuildPaginationMeta(filter.Page, filter.Limit, total),
	}, nil
}

func (s *announcementService) GetByID(ctx context.Context, id uuid.UUID) (*announcementDto.AnnouncementResponse, error) {
	announcement, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: announcement not found", apperror.ErrNotFound)
		}
		return nil, err
	}

	resp := buildResponse(announcement)
	return &resp, nil
}

func (s *announcementService) Update(ctx context.Context, id uuid.UUID, req announcementDto.UpdateAnnouncementRequest) (*announcementDto.AnnouncementResponse, error) {
	announcement, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: announcement not found", apperror.ErrNotFound)
		}
		return nil, err
	}

	announcement.Title = req.Title
	announcement.Content = textmeta.AnnouncementCodec.Compose(req.FromDate, req.ToDate, req.FromTime, req.ToTime, req.Body)
	announcement.Pinned = req.Pinned
	announcement.StartDate, announcement.EndDate = nil, nil
	announcement.StartTime, announcement.EndTime = nil, nil
	applyDateColumns(announcement, req.FromDate, req.ToDate, req.FromTime, req.ToTime)

	if err := s.repo.Update(ctx, announcement); err != nil {
		return nil, err
	}

	s.indexAsync(announcement.ID)

	return s.GetByID(ctx, id)
}

func (s *announcementService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: announcement not found", apperror.ErrNotFound)
		}
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if s.searchSvc != nil {
		go func() {
			if err := s.searchSvc.DeleteAnnouncement(id.String()); err != nil {
				log.Printf("Failed to remove announcement %s from search index: %v", id, err)
			}
		}()
	}

	return nil
}

func (s *announcementService) checkRateLimit(ctx context.Context, userID uuid.UUID) error {
	limit := ratelimiter.GetDurationFromEnv("RATE_LIMIT_ANNOUNCEMENT", time.Minute)
	allowed, err := ratelimiter.CheckAndSetRateLimit(ctx, s.redisClient, userID, ratelimiter.ScopeAnnouncement, limit)
	if err != nil {
		return fmt.Errorf("failed to check rate limit: %w", err)
	}
	if !allowed {
		ttl, _ := ratelimiter.GetRateLimitTTL(ctx, s.redisClient, userID, ratelimiter.ScopeAnnouncement)
		return &ratelimiter.RateLimitError{
			Message:    fmt.Sprintf("you are posting too fast. Please wait %.0f seconds", ttl.Seconds()),
			RetryAfter: ttl,
		}
	}
	return nil
}

func (s *announcementService) indexAsync(id uuid.UUID) {
	if s.searchSvc == nil {
		return
	}
	go func() {
		announcement, err := s.repo.FindByID(context.Background(), id)
		if err != nil {
			return
		}
		if err := s.searchSvc.IndexAnnouncement(announcement); err != nil {
			log.Printf("Failed to index announcement %s: %v", id, err)
		}
	}()
}

func (s *announcementService) buildFromIDs(ctx context.Context, ids []string, filter commonDto.ListFilter) (*announcementDto.PaginatedAnnouncementResponse, error) {
	uuids := make([]uuid.UUID, 0, len(ids))
	for _, raw := range ids {
		if id, err := uuid.Parse(raw); err == nil {
			uuids = append(uuids, id)
		}
	}

	announcements, err := s.repo.FindByIDs(ctx, uuids)
	if err != nil {
		return nil, err
	}

	// Preserve search relevance order.
	byID := make(map[uuid.UUID]*entity.Announcement, len(announcements))
	for _, a := range announcements {
		byID[a.ID] = a
	}

	responses := make([]announcementDto.AnnouncementResponse, 0, len(uuids))
	for _, id := range uuids {
		if a, ok := byID[id]; ok {
			responses = append(responses, buildResponse(a))
		}
	}

	return &announcementDto.PaginatedAnnouncementResponse{
		Data: responses,
		Meta: commonDto.BuildPaginationMeta(filter.Page, filter.Limit, int64(len(responses))),
	}, nil
}
