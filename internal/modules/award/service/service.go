package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"brik.community/portal/internal/entity"
	awardDto "brik.community/portal/internal/modules/award/dto"
	awardRepo "brik.community/portal/internal/modules/award/repository"
	leaderboard "brik.community/portal/internal/modules/leaderboard/service"
	userRepo "brik.community/portal/internal/modules/user/repository"
	"brik.community/portal/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AwardService interface {
	GrantAward(ctx context.Context, adminID uuid.UUID, input awardDto.GrantAwardRequest) (*entity.Award, error)
	GetAwardsByUser(ctx context.Context, userID uuid.UUID) ([]entity.Award, error)
	RevokeAward(ctx context.Context, id uuid.UUID) error
}

type awardService struct {
	repo               awardRepo.AwardRepository
	userRepo           userRepo.UserRepository
	leaderboardService leaderboard.LeaderboardService
}

func NewAwardService(repo awardRepo.AwardRepository, userRepo userRepo.UserRepository, leaderboardService leaderboard.LeaderboardService) AwardService {
	return &awardService{
		repo:               repo,
		userRepo:           userRepo,
		leaderboardService: leaderboardService,
	}
}

func (s *awardService) GrantAward(ctx context.Context, adminID uuid.UUID, input awardDto.GrantAwardRequest) (*entity.Award, error) {
	targetID, err := uuid.Parse(input.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user id", apperror.ErrBadRequest)
	}

	if _, err := s.userRepo.FindByID(ctx, targetID.String()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: member not found", apperror.ErrNotFound)
		}
		return nil, err
	}

	award := &entity.Award{
		UserID:      targetID,
		Title:       input.Title,
		Description: input.Description,
		Points:      input.Points,
		GrantedByID: adminID,
	}

	if err := s.repo.Create(ctx, award); err != nil {
		return nil, err
	}

	// Badge count and XP are side effects; a failure there never unwinds
	// the award itself.
	if err := s.leaderboardService.IncrementBadges(ctx, targetID); err != nil {
		log.Printf("Failed to increment badge count for user %s: %v", targetID, err)
	}
	s.leaderboardService.GrantPointsAsync(targetID, input.Points, input.Title, award.ID, adminID)

	return award, nil
}

func (s *awardService) GetAwardsByUser(ctx context.Context, userID uuid.UUID) ([]entity.Award, error) {
	return s.repo.FindByUserID(ctx, userID)
}

func (s *awardService) RevokeAward(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: award not found", apperror.ErrNotFound)
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}
