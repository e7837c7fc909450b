package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/IT22102546/ArmiGo-Research-sub009/internal/model"
)

// MessageRepository is the chat message data access interface.
type MessageRepository interface {
	Create(ctx context.Context, msg *model.TransferMessage) error
	ListByRequest(ctx context.Context, requestID string, offset, limit int) ([]model.TransferMessage, int64, error)
	MarkRead(ctx context.Context, requestID, readerID string) error
	CountUnread(ctx context.Context, userID string, requestIDs []string) (int64, error)
}

// messageRepo is the GORM implementation of MessageRepository.
type messageRepo struct {
	db *gorm.DB
}

// NewMessageRepo creates a MessageRepository instance.
func NewMessageRepo(db *gorm.DB) MessageRepository {
	return &messageRepo{db: db}
}

func (r *messageRepo) Create(ctx context.Context, msg *model.TransferMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *messageRepo) ListByRequest(ctx context.Context, requestID string, offset, limit int) ([]model.TransferMessage, int64, error) {
	db := r.db.WithContext(ctx).
		Model(&model.TransferMessage{}).
		Where("transfer_request_id = ?", requestID)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var msgs []model.TransferMessage
	err := db.
		Preload("Sender").
		Offset(offset).Limit(limit).
		Order("created_at ASC").
		Find(&msgs).Error
	if err != nil {
		return nil, 0, err
	}
	return msgs, total, nil
}

// MarkRead flags all messages in the thread not written by readerID.
func (r *messageRepo) MarkRead(ctx context.Context, requestID, readerID string) error {
	return r.db.WithContext(ctx).
		Model(&model.TransferMessage{}).
		Where("transfer_request_id = ? AND sender_id <> ? AND read = ?", requestID, readerID, false).
		Update("read", true).Error
}

// CountUnread tallies unread messages addressed to userID across the
// given request threads.
func (r *messageRepo) CountUnread(ctx context.Context, userID string, requestIDs []string) (int64, error) {
	if len(requestIDs) == 0 {
		return 0, nil
	}
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.TransferMessage{}).
		Where("transfer_request_id IN ? AND sender_id <> ? AND read = ?", requestIDs, userID, false).
		Count(&count).Error
	return count, err
}
