package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"brik.community/portal/internal/entity"
	adminDto "brik.community/portal/internal/modules/admin/dto"
	projectDto "brik.community/portal/internal/modules/project/dto"
	projectService "brik.community/portal/internal/modules/project/service"
	userRepo "brik.community/portal/internal/modules/user/repository"
	userService "brik.community/portal/internal/modules/user/service"
	"brik.community/portal/pkg/apperror"
	commonDto "brik.community/portal/pkg/dto"
	"brik.community/portal/pkg/storage"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AdminService interface {
	CreateMember(ctx context.Context, input adminDto.CreateMemberInput, avatar *commonDto.AvatarFile) (*adminDto.MemberResponse, error)
	GetAllMembers(ctx context.Context, filter commonDto.ListFilter) ([]adminDto.MemberResponse, int64, error)
	UpdateMember(ctx context.Context, id uuid.UUID, input adminDto.UpdateMemberInput) (*adminDto.MemberResponse, error)
	DeleteMember(ctx context.Context, id uuid.UUID) error

	AddProjectMember(ctx context.Context, adminID uuid.UUID, req projectDto.AddMemberRequest) error
	RemoveProjectMember(ctx context.Context, req projectDto.RemoveMemberRequest) error
}

type adminService struct {
	userRepo     userRepo.UserRepository
	projectSvc   projectService.ProjectService
	imageStorage storage.ImageStorage
}

func NewAdminService(userRepo userRepo.UserRepository, projectSvc projectService.ProjectService, imageStorage storage.ImageStorage) AdminService {
	return &adminService{
		userRepo:     userRepo,
		projectSvc:   projectSvc,
		imageStorage: imageStorage,
	}
}

func (s *adminService) CreateMember(ctx context.Context, input adminDto.CreateMemberInput, avatar *commonDto.AvatarFile) (*adminDto.MemberResponse, error) {
	email := userService.SyntheticEmail(input.Username)
	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("%w: username is already taken", apperror.ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	roleName := input.Role
	if roleName == "" {
		roleName = entity.RoleMember
	}
	role, err := s.userRepo.FindRoleByName(ctx, roleName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve role %q: %w", roleName, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Username:     input.Username,
		Email:        email,
		PasswordHash: string(hash),
		RoleID:       &role.ID,
	}

	if avatar != nil && s.imageStorage != nil {
		url, uploadErr := s.imageStorage.UploadImage(ctx, avatar.Reader, "avatars", avatar.FileName)
		if uploadErr != nil {
			return nil, fmt.Errorf("failed to upload avatar: %w", uploadErr)
		}
		user.AvatarURL = &url
	}

	profile := &entity.Profile{FullName: input.FullName}
	if input.Track != "" {
		profile.Track = &input.Track
	}
	if input.Cohort != "" {
		profile.Cohort = &input.Cohort
	}
	if input.Bio != "" {
		profile.Bio = &input.Bio
	}

	if err := s.userRepo.Create(ctx, user, profile); err != nil {
		return nil, err
	}

	created, err := s.userRepo.FindByID(ctx, user.ID.String())
	if err != nil {
		return nil, err
	}

	resp := buildMemberResponse(created)
	return &resp, nil
}

func (s *adminService) GetAllMembers(ctx context.Context, filter commonDto.ListFilter) ([]adminDto.MemberResponse, int64, error) {
	filter.Normalize()

	users, total, err := s.userRepo.FindAll(ctx, filter.Search, filter.Offset(), filter.Limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]adminDto.MemberResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, buildMemberResponse(u))
	}
	return responses, total, nil
}

func (s *adminService) UpdateMember(ctx context.Context, id uuid.UUID, input adminDto.UpdateMemberInput) (*adminDto.MemberResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user not found", apperror.ErrNotFound)
		}
		return nil, err
	}

	if input.Password != "" {
		hash, hashErr := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if hashErr != nil {
			return nil, hashErr
		}
		user.PasswordHash = string(hash)
	}
	if input.Role != "" {
		role, roleErr := s.userRepo.FindRoleByName(ctx, input.Role)
		if roleErr != nil {
			return nil, fmt.Errorf("failed to resolve role %q: %w", input.Role, roleErr)
		}
		user.RoleID = &role.ID
	}

	profile := user.Profile
	if profile == nil {
		profile = &entity.Profile{UserID: user.ID}
	}
	if input.FullName != "" {
		profile.FullName = input.FullName
	}
	if input.Track != "" {
		profile.Track = &input.Track
	}
	if input.Cohort != "" {
		profile.Cohort = &input.Cohort
	}
	if input.Bio != "" {
		profile.Bio = &input.Bio
	}

	if err := s.userRepo.Update(ctx, user, profile); err != nil {
		return nil, err
	}

	updated, err := s.userRepo.FindByID(ctx, id.String())
	if err != nil {
		return nil, err
	}

	resp := buildMemberResponse(updated)
	return &resp, nil
}

func (s *adminService) DeleteMember(ctx context.Context, id uuid.UUID) error {
	user, err := s.userRepo.FindByID(ctx, id.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: user not found", apperror.ErrNotFound)
		}
		return err
	}

	if err := s.userRepo.Delete(ctx, id.String()); err != nil {
		return err
	}

	if user.AvatarURL != nil && s.imageStorage != nil {
		go func(fileURL string) {
			if err := s.imageStorage.DeleteImage(context.Background(), fileURL); err != nil {
				log.Printf("Failed to delete avatar of removed user %s: %v", id, err)
			}
		}(*user.AvatarURL)
	}

	return nil
}

func (s *adminService) AddProjectMember(ctx context.Context, adminID uuid.UUID, req projectDto.AddMemberRequest) error {
	return s.projectSvc.AddMember(ctx, adminID, req)
}

func (s *adminService) RemoveProjectMember(ctx context.Context, req projectDto.RemoveMemberRequest) error {
	return s.projectSvc.RemoveMember(ctx, req.ProjectID, req.UserID)
}

func buildMemberResponse(u *entity.User) adminDto.MemberResponse {
	resp := adminDto.MemberResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role.Name,
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if u.Profile != nil {
		resp.FullName = u.Profile.FullName
		if u.Profile.Track != nil {
			resp.Track = *u.Profile.Track
		}
		if u.Profile.Cohort != nil {
			resp.Cohort = *u.Profile.Cohort
		}
	}
	return resp
}
