package service

import (
	"context"
	"fmt"
	"log"

	"brik.community/portal/internal/entity"
	leaderboardDto "brik.community/portal/internal/modules/leaderboard/dto"
	leaderboardRepo "brik.community/portal/internal/modules/leaderboard/repository"
	notifService "brik.community/portal/internal/modules/notification/service"
	"github.com/google/uuid"
)

type LeaderboardService interface {
	GetLeaderboard(ctx context.Context, filter Filter, viewerID uuid.UUID) ([]leaderboardDto.Entry, error)
	// GetAdminLeaderboard adds rank movement against the stored snapshot and
	// republishes the snapshot afterwards.
	GetAdminLeaderboard(ctx context.Context, filter Filter, viewerID uuid.UUID) ([]leaderboardDto.AdminEntry, error)
	// GrantPointsAsync bumps a member's XP in the background and notifies
	// them. actorID is the admin (or system actor) who caused the grant.
	GrantPointsAsync(targetUserID uuid.UUID, points int, reason string, referenceID uuid.UUID, actorID uuid.UUID)
	IncrementBadges(ctx context.Context, userID uuid.UUID) error
}

type leaderboardService struct {
	repo                leaderboardRepo.LeaderboardRepository
	notificationService notifService.NotificationService
}

func NewLeaderboardService(repo leaderboardRepo.LeaderboardRepository, notificationService notifService.NotificationService) LeaderboardService {
	return &leaderboardService{
		repo:                repo,
		notificationService: notificationService,
	}
}

func (s *leaderboardService) GetLeaderboard(ctx context.Context, filter Filter, viewerID uuid.UUID) ([]leaderboardDto.Entry, error) {
	members, err := s.loadMembers(ctx)
	if err != nil {
		return nil, err
	}
	return Project(members, filter, viewerID), nil
}

func (s *leaderboardService) GetAdminLeaderboard(ctx context.Context, filter Filter, viewerID uuid.UUID) ([]leaderboardDto.AdminEntry, error) {
	members, err := s.loadMembers(ctx)
	if err != nil {
		return nil, err
	}

	// Movement is always measured against the unfiltered ranking, so the
	// snapshot is computed before the filter narrows the view.
	full := Project(members, Filter{}, viewerID)
	previous, err := s.repo.GetSnapshots(ctx)
	if err != nil {
		return nil, err
	}

	movementByID := make(map[uuid.UUID]leaderboardDto.AdminEntry, len(full))
	snapshots := make([]entity.RankSnapshot, 0, len(full))
	for _, e := range full {
		admin := leaderboardDto.AdminEntry{Entry: e}
		if prev, ok := previous[e.ID]; ok {
			admin.PreviousRank = prev
			switch {
			case prev > e.Rank:
				admin.Movement = "up"
				admin.Delta = prev - e.Rank
			case prev < e.Rank:
				admin.Movement = "down"
				admin.Delta = e.Rank - prev
			default:
				admin.Movement = "same"
			}
		} else {
			admin.PreviousRank = e.Rank
			admin.Movement = "new"
		}
		movementByID[e.ID] = admin
		snapshots = append(snapshots, entity.RankSnapshot{
			UserID: e.ID,
			Rank:   e.Rank,
			XP:     e.XP,
		})
	}

	// Republish in the background; a failed snapshot write only delays the
	// next movement indicator, it never fails the request.
	go func() {
		if err := s.repo.SaveSnapshots(context.Background(), snapshots); err != nil {
			log.Printf("Failed to save rank snapshots: %v", err)
		}
	}()

	visible := Project(members, filter, viewerID)
	entries := make([]leaderboardDto.AdminEntry, 0, len(visible))
	for _, e := range visible {
		admin := movementByID[e.ID]
		admin.Entry = e
		entries = append(entries, admin)
	}
	return entries, nil
}

func (s *leaderboardService) GrantPointsAsync(targetUserID uuid.UUID, points int, reason string, referenceID uuid.UUID, actorID uuid.UUID) {
	go func() {
		ctx := context.Background()

		if points <= 0 {
			return
		}

		if err := s.repo.AddPoints(ctx, targetUserID, points); err != nil {
			log.Printf("Failed to add %d XP to user %s: %v", points, targetUserID, err)
			return
		}

		if s.notificationService == nil {
			return
		}

		notification := &entity.Notification{
			UserID:     targetUserID,
			ActorID:    actorID,
			EntityID:   referenceID,
			EntityType: "award",
			Type:       "xp_granted",
			Message:    fmt.Sprintf("You earned %d XP: %s", points, reason),
		}
		if err := s.notificationService.CreateNotification(ctx, notification); err != nil {
			log.Printf("Failed to send XP notification to user %s: %v", targetUserID, err)
		}
	}()
}

func (s *leaderboardService) IncrementBadges(ctx context.Context, userID uuid.UUID) error {
	return s.repo.IncrementBadges(ctx, userID)
}

func (s *leaderboardService) loadMembers(ctx context.Context) ([]Member, error) {
	rows, err := s.repo.ListMembers(ctx)
	if err != nil {
		return nil, err
	}

	members := make([]Member, 0, len(rows))
	for _, row := range rows {
		members = append(members, Member{
			ID:        row.UserID,
			Username:  row.Username,
			FullName:  row.FullName,
			Track:     row.Track,
			Cohort:    row.Cohort,
			AvatarURL: row.AvatarURL,
			XP:        row.XP,
			Badges:    row.Badges,
		})
	}
	return members, nil
}
