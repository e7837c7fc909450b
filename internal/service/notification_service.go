package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/IT22102546/ArmiGo-Research-sub009/internal/dto"
	"github.com/IT22102546/ArmiGo-Research-sub009/internal/model"
	"github.com/IT22102546/ArmiGo-Research-sub009/internal/repository"
	"github.com/IT22102546/ArmiGo-Research-sub009/pkg/redis"
)

// Notification types.
const (
	NotifyRequestVerified  = "REQUEST_VERIFIED"
	NotifyRequestRejected  = "REQUEST_REJECTED"
	NotifyRequestCreated   = "REQUEST_CREATED"
	NotifyInterestReceived = "INTEREST_RECEIVED"
	NotifyInterestAccepted = "INTEREST_ACCEPTED"
	NotifyInterestRejected = "INTEREST_REJECTED"
	NotifyDirectMatch      = "DIRECT_MATCH"
	NotifyMessageReceived  = "MESSAGE_RECEIVED"
	NotifyStatusChanged    = "STATUS_CHANGED"
)

// NotificationService persists and delivers user notifications.
// Notify and NotifyAdmins never fail the calling operation: delivery
// errors are logged and swallowed.
type NotificationService interface {
	Notify(ctx context.Context, userID, typ, title, message string, metadata model.JSONMap)
	NotifyAdmins(ctx context.Context, typ, title, message string, metadata model.JSONMap)
	List(ctx context.Context, userID string, offset, limit int) ([]dto.NotificationResponse, int64, error)
	MarkRead(ctx context.Context, id, userID string) error
	MarkAllRead(ctx context.Context, userID string) error
	CountUnread(ctx context.Context, userID string) (int64, error)
}

type notificationService struct {
	repo   *repository.Repository
	cache  *redis.Client
	logger *zap.Logger
}

// NewNotificationService creates a NotificationService instance.
func NewNotificationService(repo *repository.Repository, cache *redis.Client, logger *zap.Logger) NotificationService {
	return &notificationService{repo: repo, cache: cache, logger: logger}
}

func (s *notificationService) Notify(ctx context.Context, userID, typ, title, message string, metadata model.JSONMap) {
	n := &model.Notification{
		UserID:   userID,
		Type:     typ,
		Title:    title,
		Message:  message,
		Metadata: metadata,
	}
	if err := s.repo.Notification.Create(ctx, n); err != nil {
		s.logger.Warn("persist notification failed",
			zap.String("user_id", userID), zap.String("type", typ), zap.Error(err))
		return
	}
	// realtime hint only, row above is the source of truth
	if s.cache != nil {
		if err := s.cache.PublishNotification(ctx, userID, n); err != nil {
			s.logger.Debug("publish notification hint failed", zap.Error(err))
		}
	}
}

func (s *notificationService) NotifyAdmins(ctx context.Context, typ, title, message string, metadata model.JSONMap) {
	admins, err := s.repo.User.ListAdmins(ctx)
	if err != nil {
		s.logger.Warn("list admins for notification failed", zap.Error(err))
		return
	}
	for _, admin := range admins {
		s.Notify(ctx, admin.UserID, typ, title, message, metadata)
	}
}

func (s *notificationService) List(ctx context.Context, userID string, offset, limit int) ([]dto.NotificationResponse, int64, error) {
	ns, total, err := s.repo.Notification.ListByUser(ctx, userID, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.NotificationResponse, len(ns))
	for i, n := range ns {
		out[i] = dto.NotificationResponse{
			ID:        n.NotificationID,
			Type:      n.Type,
			Title:     n.Title,
			Body:      n.Message,
			Metadata:  n.Metadata,
			Read:      n.IsRead,
			CreatedAt: n.CreatedAt,
		}
	}
	return out, total, nil
}

func (s *notificationService) MarkRead(ctx context.Context, id, userID string) error {
	return s.repo.Notification.MarkRead(ctx, id, userID)
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID string) error {
	return s.repo.Notification.MarkAllRead(ctx, userID)
}

func (s *notificationService) CountUnread(ctx context.Context, userID string) (int64, error) {
	return s.repo.Notification.CountUnread(ctx, userID)
}
