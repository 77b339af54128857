package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"brik.community/portal/internal/entity"
	awardRepo "brik.community/portal/internal/modules/award/repository"
	leaderboardRepo "brik.community/portal/internal/modules/leaderboard/repository"
	profileDto "brik.community/portal/internal/modules/profile/dto"
	userRepo "brik.community/portal/internal/modules/user/repository"
	"brik.community/portal/pkg/apperror"
	commonDto "brik.community/portal/pkg/dto"
	"brik.community/portal/pkg/storage"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfileService interface {
	GetOwn(ctx context.Context, userID uuid.UUID) (*profileDto.ProfileResponse, error)
	GetByUsername(ctx context.Context, username string) (*profileDto.ProfileResponse, error)
	Update(ctx context.Context, userID uuid.UUID, req profileDto.UpdateProfileRequest) (*profileDto.ProfileResponse, error)
	UploadAvatar(ctx context.Context, userID uuid.UUID, file commonDto.AvatarFile) (string, error)
}

type profileService struct {
	userRepo        userRepo.UserRepository
	awardRepo       awardRepo.AwardRepository
	leaderboardRepo leaderboardRepo.LeaderboardRepository
	imageStorage    storage.ImageStorage
}

func NewProfileService(userRepo userRepo.UserRepository, awardRepo awardRepo.AwardRepository, leaderboardRepo leaderboardRepo.LeaderboardRepository, imageStorage storage.ImageStorage) ProfileService {
	return &profileService{
		userRepo:        userRepo,
		awardRepo:       awardRepo,
		leaderboardRepo: leaderboardRepo,
		imageStorage:    imageStorage,
	}
}

func (s *profileService) GetOwn(ctx context.Context, userID uuid.UUID) (*profileDto.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user not found", apperror.ErrNotFound)
		}
		return nil, err
	}
	return s.buildProfile(ctx, user)
}

func (s *profileService) GetByUsername(ctx context.Context, username string) (*profileDto.ProfileResponse, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user not found", apperror.ErrNotFound)
		}
		return nil, err
	}
	return s.buildProfile(ctx, user)
}

func (s *profileService) Update(ctx context.Context, userID uuid.UUID, req profileDto.UpdateProfileRequest) (*profileDto.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user not found", apperror.ErrNotFound)
		}
		return nil, err
	}

	profile := user.Profile
	if profile == nil {
		profile = &entity.Profile{UserID: user.ID}
	}
	profile.FullName = req.FullName
	profile.Track, profile.Cohort, profile.Bio = nil, nil, nil
	if req.Track != "" {
		profile.Track = &req.Track
	}
	if req.Cohort != "" {
		profile.Cohort = &req.Cohort
	}
	if req.Bio != "" {
		profile.Bio = &req.Bio
	}

	if err := s.userRepo.Update(ctx, user, profile); err != nil {
		return nil, err
	}

	return s.GetOwn(ctx, userID)
}

func (s *profileService) UploadAvatar(ctx context.Context, userID uuid.UUID, file commonDto.AvatarFile) (string, error) {
	user, err := s.userRepo.FindByID(ctx, userID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("%w: user not found", apperror.ErrNotFound)
		}
		return "", err
	}

	url, err := s.imageStorage.UploadImage(ctx, file.Reader, "avatars", file.FileName)
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}

	old := user.AvatarURL
	user.AvatarURL = &url
	if err := s.userRepo.Update(ctx, user, user.Profile); err != nil {
		return "", err
	}

	if old != nil {
		go func(fileURL string) {
			if err := s.imageStorage.DeleteImage(context.Background(), fileURL); err != nil {
				log.Printf("Failed to delete old avatar %s: %v", fileURL, err)
			}
		}(*old)
	}

	return url, nil
}

func (s *profileService) buildProfile(ctx context.Context, user *entity.User) (*profileDto.ProfileResponse, error) {
	resp := &profileDto.ProfileResponse{
		ID:        user.ID,
		Username:  user.Username,
		AvatarURL: user.AvatarURL,
		Role:      user.Role.Name,
		Awards:    []profileDto.AwardSummary{},
		JoinedAt:  user.CreatedAt.Format("2006-01-02"),
	}
	if user.Profile != nil {
		resp.FullName = user.Profile.FullName
		if user.Profile.Track != nil {
			resp.Track = *user.Profile.Track
		}
		if user.Profile.Cohort != nil {
			resp.Cohort = *user.Profile.Cohort
		}
		if user.Profile.Bio != nil {
			resp.Bio = *user.Profile.Bio
		}
	}

	stats, err := s.leaderboardRepo.GetStats(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	resp.XP = stats.XP
	resp.Badges = stats.Badges

	awards, err := s.awardRepo.FindByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	for _, a := range awards {
		resp.Awards = append(resp.Awards, profileDto.AwardSummary{
			ID:          a.ID,
			Title:       a.Title,
			Description: a.Description,
			Points:      a.Points,
			CreatedAt:   a.CreatedAt.Format("2006-01-02"),
		})
	}

	return resp, nil
}
