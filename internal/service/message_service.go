package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/IT22102546/ArmiGo-Research-sub009/internal/dto"
	"github.com/IT22102546/ArmiGo-Research-sub009/internal/model"
	"github.com/IT22102546/ArmiGo-Research-sub009/internal/privacy"
	"github.com/IT22102546/ArmiGo-Research-sub009/internal/repository"
	pkgerrors "github.com/IT22102546/ArmiGo-Research-sub009/pkg/errors"
)

// MessageService is the per-request chat, gated by the privacy
// filter's chat unlock rule.
type MessageService interface {
	SendMessage(ctx context.Context, requestID, senderID, content string) (*dto.MessageResponse, error)
	GetMessages(ctx context.Context, requestID, callerID string, page *dto.PaginationRequest) ([]dto.MessageResponse, int64, error)
	MarkRead(ctx context.Context, requestID, callerID string) error
	CountUnread(ctx context.Context, userID string) (*dto.UnreadCountResponse, error)
}

type messageService struct {
	repo     *repository.Repository
	notifier NotificationService
	logger   *zap.Logger
}

// NewMessageService creates a MessageService instance.
func NewMessageService(repo *repository.Repository, notifier NotificationService, logger *zap.Logger) MessageService {
	return &messageService{repo: repo, notifier: notifier, logger: logger}
}

func (s *messageService) SendMessage(ctx context.Context, requestID, senderID, content string) (*dto.MessageResponse, error) {
	tr, err := s.loadUnlocked(ctx, requestID, senderID)
	if err != nil {
		return nil, err
	}

	msg := &model.TransferMessage{
		TransferRequestID: tr.TransferRequestID,
		SenderID:          senderID,
		Content:           content,
	}
	if err := s.repo.Message.Create(ctx, msg); err != nil {
		return nil, err
	}

	// notify the other side
	recipient := tr.RequesterID
	if senderID == tr.RequesterID {
		for _, acc := range tr.Acceptances {
			if acc.Status == model.AcceptanceApproved {
				recipient = acc.AcceptorID
				break
			}
		}
	}
	if recipient != senderID {
		s.notifier.Notify(ctx, recipient, NotifyMessageReceived,
			"New message",
			fmt.Sprintf("New message on request %s", tr.UniqueID),
			model.JSONMap{"transfer_request_id": tr.TransferRequestID, "message_id": msg.MessageID})
	}

	resp := messageFromModel(msg)
	return &resp, nil
}

func (s *messageService) GetMessages(ctx context.Context, requestID, callerID string, page *dto.PaginationRequest) ([]dto.MessageResponse, int64, error) {
	if _, err := s.loadUnlocked(ctx, requestID, callerID); err != nil {
		return nil, 0, err
	}

	msgs, total, err := s.repo.Message.ListByRequest(ctx, requestID, page.GetOffset(), page.GetPageSize())
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.MessageResponse, len(msgs))
	for i := range msgs {
		out[i] = messageFromModel(&msgs[i])
	}
	return out, total, nil
}

// MarkRead flags every message in the thread addressed to the caller.
func (s *messageService) MarkRead(ctx context.Context, requestID, callerID string) error {
	if _, err := s.loadUnlocked(ctx, requestID, callerID); err != nil {
		return err
	}
	return s.repo.Message.MarkRead(ctx, requestID, callerID)
}

// CountUnread tallies unread messages across every thread the user
// participates in, as owner or as approved acceptor.
func (s *messageService) CountUnread(ctx context.Context, userID string) (*dto.UnreadCountResponse, error) {
	var requestIDs []string

	own, err := s.repo.Transfer.ListByRequester(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range own {
		requestIDs = append(requestIDs, own[i].TransferRequestID)
	}

	sent, err := s.repo.Acceptance.ListByAcceptor(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range sent {
		if sent[i].Status == model.AcceptanceApproved {
			requestIDs = append(requestIDs, sent[i].TransferRequestID)
		}
	}

	count, err := s.repo.Message.CountUnread(ctx, userID, requestIDs)
	if err != nil {
		return nil, err
	}
	return &dto.UnreadCountResponse{Count: count}, nil
}

func (s *messageService) loadUnlocked(ctx context.Context, requestID, viewerID string) (*model.TransferRequest, error) {
	tr, err := s.repo.Transfer.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.NotFound("transfer request not found")
		}
		return nil, err
	}
	if !privacy.IsChatUnlocked(viewerID, tr) {
		return nil, pkgerrors.Forbidden("chat is not unlocked for this request")
	}
	return tr, nil
}

func messageFromModel(msg *model.TransferMessage) dto.MessageResponse {
	resp := dto.MessageResponse{
		ID:                msg.MessageID,
		TransferRequestID: msg.TransferRequestID,
		SenderID:          msg.SenderID,
		Content:           msg.Content,
		Read:              msg.Read,
		CreatedAt:         msg.CreatedAt,
	}
	if msg.Sender != nil {
		resp.Sender = &dto.PartyBrief{
			ID:        msg.Sender.UserID,
			FirstName: msg.Sender.FirstName,
			LastName:  msg.Sender.LastName,
		}
	}
	return resp
}
