package service

import (
	"context"
	"time"

	"brik.community/portal/internal/entity"
	statRepo "brik.community/portal/internal/modules/stat/repository"
)

type DashboardStats struct {
	Members        int64 `json:"members"`
	ActiveProjects int64 `json:"active_projects"`
	Announcements  int64 `json:"announcements"`
	UpcomingEvents int64 `json:"upcoming_events"`
	Opportunities  int64 `json:"opportunities"`
	Resources      int64 `json:"resources"`
}

type StatService interface {
	GetDashboardStats(ctx context.Context) (*DashboardStats, error)
}

type statService struct {
	repo statRepo.StatRepository
}

func NewStatService(repo statRepo.StatRepository) StatService {
	return &statService{repo: repo}
}

func (s *statService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	var err error
	if stats.Members, err = s.repo.CountMembers(ctx); err != nil {
		return nil, err
	}
	if stats.ActiveProjects, err = s.repo.CountProjects(ctx, entity.ProjectStatusActive); err != nil {
		return nil, err
	}
	if stats.Announcements, err = s.repo.CountAnnouncements(ctx); err != nil {
		return nil, err
	}
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if stats.UpcomingEvents, err = s.repo.CountUpcomingEvents(ctx, today); err != nil {
		return nil, err
	}
	if stats.Opportunities, err = s.repo.CountOpportunities(ctx); err != nil {
		return nil, err
	}
	if stats.Resources, err = s.repo.CountResources(ctx); err != nil {
		return nil, err
	}

	return stats, nil
}
