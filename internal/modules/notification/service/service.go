package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"brik.community/portal/internal/entity"
	notifRepo "brik.community/portal/internal/modules/notification/repository"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// MaxNotifications caps every list fetch; older items age out via the
// background pruner instead of paginating.
const MaxNotifications = 50

type NotificationService interface {
	CreateNotification(ctx context.Context, notification *entity.Notification) error
	GetNotifications(ctx context.Context, userID uuid.UUID) ([]entity.Notification, error)
	MarkAsRead(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) error
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
	StartPruneWorker(ctx context.Context)
}

type notificationService struct {
	repo        notifRepo.NotificationRepository
	redisClient *redis.Client
}

func NewNotificationService(repo notifRepo.NotificationRepository, redisClient *redis.Client) NotificationService {
	return &notificationService{
		repo:        repo,
		redisClient: redisClient,
	}
}

func (s *notificationService) CreateNotification(ctx context.Context, notification *entity.Notification) error {
	if err := s.repo.Create(ctx, notification); err != nil {
		return err
	}

	// Fan out over Redis so connected WebSocket clients see it live.
	if s.redisClient != nil {
		channel := Channel(notification.UserID)
		if payload, err := json.Marshal(notification); err == nil {
			s.redisClient.Publish(ctx, channel, payload)
		}
	}

	return nil
}

func (s *notificationService) GetNotifications(ctx context.Context, userID uuid.UUID) ([]entity.Notification, error) {
	return s.repo.GetByUserID(ctx, userID, MaxNotifications)
}

func (s *notificationService) MarkAsRead(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	return s.repo.MarkAsRead(ctx, id, userID)
}

func (s *notificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	return s.repo.MarkAllAsRead(ctx, userID)
}

func (s *notificationService) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.repo.CountUnread(ctx, userID)
}

// StartPruneWorker deletes read notifications older than 30 days, once a day.
func (s *notificationService) StartPruneWorker(ctx context.Context) {
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			cutoff := time.Now().AddDate(0, 0, -30)
			deleted, err := s.repo.DeleteOlderThan(ctx, cutoff)
			if err != nil {
				log.Printf("Notification prune failed: %v", err)
				continue
			}
			if deleted > 0 {
				log.Printf("Pruned %d old notifications", deleted)
			}
		case <-ctx.Done():
			return
		}
	}
}

// Channel is the Redis pub/sub channel carrying one user's notifications.
func Channel(userID uuid.UUID) string {
	return fmt.Sprintf("user_notifications:%s", userID.String())
}
