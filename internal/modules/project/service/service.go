package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"brik.community/portal/internal/entity"
	notifService "brik.community/portal/internal/modules/notification/service"
	projectDto "brik.community/portal/internal/modules/project/dto"
	projectRepo "brik.community/portal/internal/modules/project/repository"
	userRepo "brik.community/portal/internal/modules/user/repository"
	"brik.community/portal/pkg/apperror"
	commonDto "brik.community/portal/pkg/dto"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectService interface {
	Create(ctx context.Context, userID uuid.UUID, req projectDto.CreateProjectRequest) (*projectDto.CreateProjectResponse, error)
	GetAll(ctx context.Context, filter projectDto.ProjectFilter) (*projectDto.PaginatedProjectResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*projectDto.ProjectResponse, error)
	Update(ctx context.Context, id uuid.UUID, req projectDto.UpdateProjectRequest) (*projectDto.ProjectResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error

	AddMember(ctx context.Context, actorID uuid.UUID, req projectDto.AddMemberRequest) error
	RemoveMember(ctx context.Context, projectID, userID uuid.UUID) error

	PostUpdate(ctx context.Context, authorID, projectID uuid.UUID, req projectDto.CreateProjectUpdateRequest) (*projectDto.ProjectUpdateResponse, error)
}

type projectService struct {
	repo                projectRepo.ProjectRepository
	userRepo            userRepo.UserRepository
	notificationService notifService.NotificationService
}

func NewProjectService(repo projectRepo.ProjectRepository, userRepo userRepo.UserRepository, notificationService notifService.NotificationService) ProjectService {
	return &projectService{
		repo:                repo,
		userRepo:            userRepo,
		notificationService: notificationService,
	}
}

// Create writes the project row first and then adds members one at a time.
// Member adds that fail do not roll the project back; the response carries a
// composite warning naming the members that were skipped.
func (s *projectService) Create(ctx context.Context, userID uuid.UUID, req projectDto.CreateProjectRequest) (*projectDto.CreateProjectResponse, error) {
	project := &entity.Project{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		CreatedByID: userID,
	}
	if project.Status == "" {
		project.Status = entity.ProjectStatusActive
	}
	if req.CoverURL != "" {
		project.CoverURL = &req.CoverURL
	}

	if err := s.repo.Create(ctx, project); err != nil {
		return nil, err
	}

	var failed []string
	for _, memberID := range req.MemberIDs {
		if err := s.addMember(ctx, userID, project.ID, memberID, "member"); err != nil {
			log.Printf("Failed to add member %s to project %s: %v", memberID, project.ID, err)
			failed = append(failed, memberID.String())
		}
	}

	full, err := s.GetByID(ctx, project.ID)
	if err != nil {
		return nil, err
	}

	resp := &projectDto.CreateProjectResponse{Project: *full}
	if len(failed) > 0 {
		resp.Warning = fmt.Sprintf("project created, but some members could not be added: %s", strings.Join(failed, ", "))
	}
	return resp, nil
}

func (s *projectService) GetAll(ctx context.Context, filter projectDto.ProjectFilter) (*projectDto.PaginatedProjectResponse, error) {
	filter.Normalize()

	projects, total, err := s.repo.FindAll(ctx, filter.Search, filter.Status, filter.Offset(), filter.Limit)
	if err != nil {
		return nil, err
	}

	responses := make([]projectDto.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		responses = append(responses, buildResponse(p, false))
	}

	return &projectDto.PaginatedProjectResponse{
		Data: responses,
		Meta: commonDto.BuildPaginationMeta(filter.Page, filter.Limit, total),
	}, nil
}

func (s *projectService) GetByID(ctx context.Context, id uuid.UUID) (*projectDto.ProjectResponse, error) {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: project not found", apperror.ErrNotFound)
		}
		return nil, err
	}

	resp := buildResponse(project, true)
	return &resp, nil
}

func (s *projectService) Update(ctx context.Context, id uuid.UUID, req projectDto.UpdateProjectRequest) (*projectDto.ProjectResponse, error) {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: project not found", apperror.ErrNotFound)
		}
		return nil, err
	}

	project.Name = req.Name
	project.Description = req.Description
	if req.Status != "" {
		project.Status = req.Status
	}
	project.CoverURL = nil
	if req.CoverURL != "" {
		project.CoverURL = &req.CoverURL
	}

	if err := s.repo.Update(ctx, project); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, id)
}

func (s *projectService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: project not found", apperror.ErrNotFound)
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *projectService) AddMember(ctx context.Context, actorID uuid.UUID, req projectDto.AddMemberRequest) error {
	if _, err := s.repo.FindByID(ctx, req.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: project not found", apperror.ErrNotFound)
		}
		return err
	}

	role := req.Role
	if role == "" {
		role = "member"
	}
	return s.addMember(ctx, actorID, req.ProjectID, req.UserID, role)
}

func (s *projectService) RemoveMember(ctx context.Context, projectID, userID uuid.UUID) error {
	if _, err := s.repo.FindMember(ctx, projectID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: project member not found", apperror.ErrNotFound)
		}
		return err
	}
	return s.repo.RemoveMember(ctx, projectID, userID)
}

func (s *projectService) PostUpdate(ctx context.Context, authorID, projectID uuid.UUID, req projectDto.CreateProjectUpdateRequest) (*projectDto.ProjectUpdateResponse, error) {
	project, err := s.repo.FindByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: project not found", apperror.ErrNotFound)
		}
		return nil, err
	}

	if _, err := s.repo.FindMember(ctx, projectID, authorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: only project members can post updates", apperror.ErrForbidden)
		}
		return nil, err
	}

	update := &entity.ProjectUpdate{
		ProjectID: projectID,
		AuthorID:  authorID,
		Content:   req.Content,
	}
	if err := s.repo.CreateUpdate(ctx, update); err != nil {
		return nil, err
	}

	s.notifyMembersAsync(projectID, authorID, "project_update",
		fmt.Sprintf("New update on project %q", project.Name))

	author, err := s.userRepo.FindByID(ctx, authorID.String())
	if err != nil {
		return nil, err
	}
	update.Author = *author

	resp := buildUpdateResponse(update)
	return &resp, nil
}

func (s *projectService) addMember(ctx context.Context, actorID, projectID, memberID uuid.UUID, role string) error {
	if _, err := s.userRepo.FindByID(ctx, memberID.String()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: user not found", apperror.ErrNotFound)
		}
		return err
	}

	if _, err := s.repo.FindMember(ctx, projectID, memberID); err == nil {
		return fmt.Errorf("%w: user is already a project member", apperror.ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	member := &entity.ProjectMember{
		ProjectID: projectID,
		UserID:    memberID,
		Role:      role,
	}
	if err := s.repo.AddMember(ctx, member); err != nil {
		return err
	}

	if s.notificationService != nil {
		go func() {
			notification := &entity.Notification{
				UserID:     memberID,
				ActorID:    actorID,
				EntityID:   projectID,
				EntityType: "project",
				Type:       "project_member_added",
				Message:    "You were added to a project",
			}
			if err := s.notificationService.CreateNotification(context.Background(), notification); err != nil {
				log.Printf("Failed to notify user %s about project membership: %v", memberID, err)
			}
		}()
	}

	return nil
}

// notifyMembersAsync fans a notification out to every project member except
// the actor.
func (s *projectService) notifyMembersAsync(projectID, actorID uuid.UUID, notifType, message string) {
	if s.notificationService == nil {
		return
	}
	go func() {
		ctx := context.Background()
		memberIDs, err := s.repo.MemberIDs(ctx, projectID)
		if err != nil {
			log.Printf("Failed to list members of project %s: %v", projectID, err)
			return
		}
		for _, memberID := range memberIDs {
			if memberID == actorID {
				continue
			}
			notification := &entity.Notification{
				UserID:     memberID,
				ActorID:    actorID,
				EntityID:   projectID,
				EntityType: "project",
				Type:       notifType,
				Message:    message,
			}
			if err := s.notificationService.CreateNotification(ctx, notification); err != nil {
				log.Printf("Failed to notify user %s about project %s: %v", memberID, projectID, err)
			}
		}
	}()
}

func buildResponse(p *entity.Project, includeUpdates bool) projectDto.ProjectResponse {
	resp := projectDto.ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Status:      p.Status,
		Members:     make([]projectDto.ProjectMemberResponse, 0, len(p.Members)),
		CreatedAt:   p.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:   p.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
	if p.CoverURL != nil {
		resp.CoverURL = *p.CoverURL
	}

	for _, m := range p.Members {
		member := projectDto.ProjectMemberResponse{
			UserID:    m.UserID,
			Username:  m.User.Username,
			AvatarURL: m.User.AvatarURL,
			Role:      m.Role,
			JoinedAt:  m.JoinedAt.Format("2006-01-02 15:04:05"),
		}
		if m.User.Profile != nil {
			member.FullName = m.User.Profile.FullName
		}
		resp.Members = append(resp.Members, member)
	}

	if includeUpdates {
		resp.Updates = make([]projectDto.ProjectUpdateResponse, 0, len(p.Updates))
		for i := range p.Updates {
			resp.Updates = append(resp.Updates, buildUpdateResponse(&p.Updates[i]))
		}
	}

	resp.Author = commonDto.AuthorResponse{
		ID:        p.CreatedBy.ID,
		Username:  p.CreatedBy.Username,
		AvatarURL: p.CreatedBy.AvatarURL,
	}
	if p.CreatedBy.Profile != nil {
		resp.Author.FullName = p.CreatedBy.Profile.FullName
	}

	return resp
}

func buildUpdateResponse(u *entity.ProjectUpdate) projectDto.ProjectUpdateResponse {
	resp := projectDto.ProjectUpdateResponse{
		ID:        u.ID,
		Content:   u.Content,
		CreatedAt: u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	resp.Author = commonDto.AuthorResponse{
		ID:        u.Author.ID,
		Username:  u.Author.Username,
		AvatarURL: u.Author.AvatarURL,
	}
	if u.Author.Profile != nil {
		resp.Author.FullName = u.Author.Profile.FullName
	}
	return resp
}
