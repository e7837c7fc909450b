package service

import (
	"go.uber.org/zap"

	"github.com/IT22102546/ArmiGo-Research-sub009/config"
	"github.com/IT22102546/ArmiGo-Research-sub009/internal/repository"
	"github.com/IT22102546/ArmiGo-Research-sub009/pkg/jwt"
	"github.com/IT22102546/ArmiGo-Research-sub009/pkg/redis"
)

// Service aggregates all business services.
type Service struct {
	Auth         AuthService
	Reference    ReferenceService
	Transfer     TransferService
	Match        MatchService
	Interest     InterestService
	Message      MessageService
	Notification NotificationService
	Export       ExportService
}

// NewService creates the Service aggregate.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	cache *redis.Client,
	logger *zap.Logger,
) *Service {
	notification := NewNotificationService(repo, cache, logger)
	match := NewMatchService(repo, logger)

	return &Service{
		Auth:         NewAuthService(cfg, repo, jwtMgr, cache, logger),
		Reference:    NewReferenceService(repo, logger),
		Transfer:     NewTransferService(repo, match, notification, logger),
		Match:        match,
		Interest:     NewInterestService(repo, notification, logger),
		Message:      NewMessageService(repo, notification, logger),
		Notification: notification,
		Export:       NewExportService(repo, logger),
	}
}
