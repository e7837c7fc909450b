package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/IT22102546/ArmiGo-Research-sub009/internal/dto"
	"github.com/IT22102546/ArmiGo-Research-sub009/internal/model"
	"github.com/IT22102546/ArmiGo-Research-sub009/internal/privacy"
	"github.com/IT22102546/ArmiGo-Research-sub009/internal/repository"
	pkgerrors "github.com/IT22102546/ArmiGo-Research-sub009/pkg/errors"
)

// InterestService is the asymmetric interest workflow: any eligible
// party may attach a pending acceptance to a verified request without
// holding a request of their own.
type InterestService interface {
	SendInterest(ctx context.Context, requestID, senderID, notes string) (*dto.InterestResponse, error)
	AcceptInterest(ctx context.Context, acceptanceID, callerID string) (*dto.MatchOutcomeResponse, error)
	RejectInterest(ctx context.Context, acceptanceID, callerID, reason string) (*dto.InterestResponse, error)
	GetReceivedInterests(ctx context.Context, requestID, callerID string) ([]dto.InterestResponse, error)
	GetSentInterests(ctx context.Context, callerID string) ([]dto.InterestResponse, error)
}

type interestService struct {
	repo     *repository.Repository
	notifier NotificationService
	logger   *zap.Logger
}

// NewInterestService creates an InterestService instance.
func NewInterestService(repo *repository.Repository, notifier NotificationService, logger *zap.Logger) InterestService {
	return &interestService{repo: repo, notifier: notifier, logger: logger}
}

func (s *interestService) SendInterest(ctx context.Context, requestID, senderID, notes string) (*dto.InterestResponse, error) {
	// 1. Load the target with its acceptance list
	tr, err := s.repo.Transfer.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.NotFound("transfer request not found")
		}
		return nil, err
	}

	// 2. Eligibility gate
	if ok, reason := privacy.CanSendInterest(senderID, tr); !ok {
		switch {
		case senderID == tr.RequesterID:
			return nil, pkgerrors.Forbidden(reason)
		case reason == "interest already sent":
			return nil, pkgerrors.Conflict(reason)
		default:
			return nil, pkgerrors.InvalidState(reason)
		}
	}

	// 3. Conditional insert; a concurrent duplicate surfaces as Conflict
	acc := &model.TransferAcceptance{
		TransferRequestID: tr.TransferRequestID,
		AcceptorID:        senderID,
		Status:            model.AcceptancePending,
		Notes:             notes,
	}
	if err := s.repo.Acceptance.CreateUnique(ctx, acc); err != nil {
		return nil, err
	}

	// 4. First interest moves a VERIFIED request to MATCHED
	if tr.Status == model.StatusVerified {
		tr.Status = model.StatusMatched
		if err := s.repo.Transfer.Update(ctx, tr); err != nil {
			if !pkgerrors.IsConflict(err) {
				return nil, err
			}
			// lost the race to a concurrent transition, the interest
			// record itself still stands
		}
	}

	s.notifier.Notify(ctx, tr.RequesterID, NotifyInterestReceived,
		"Interest received",
		fmt.Sprintf("Someone is interested in your request %s", tr.UniqueID),
		model.JSONMap{"transfer_request_id": tr.TransferRequestID, "acceptance_id": acc.AcceptanceID})

	return s.interestResponse(ctx, acc.AcceptanceID)
}

// AcceptInterest approves one pending interest and moves the request
// to ACCEPTED. Unlike a direct accept, no reciprocal acceptance is
// created on the sender's own request.
func (s *interestService) AcceptInterest(ctx context.Context, acceptanceID, callerID string) (*dto.MatchOutcomeResponse, error) {
	acc, err := s.getAcceptance(ctx, acceptanceID)
	if err != nil {
		return nil, err
	}
	if acc.Request == nil || acc.Request.RequesterID != callerID {
		return nil, pkgerrors.Forbidden("only the request owner may accept an interest")
	}
	if acc.Status != model.AcceptancePending {
		return nil, pkgerrors.InvalidState("interest is not pending")
	}
	tr, err := s.repo.Transfer.GetByID(ctx, acc.TransferRequestID)
	if err != nil {
		return nil, err
	}
	if model.IsTerminalStatus(tr.Status) {
		return nil, pkgerrors.InvalidState("request is closed")
	}

	now := time.Now()
	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := tx.Acceptance.UpdateStatus(ctx, acc.AcceptanceID,
			model.AcceptancePending, model.AcceptanceApproved, &now); err != nil {
			return err
		}
		tr.Status = model.StatusAccepted
		return tx.Transfer.Update(ctx, tr)
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, acc.AcceptorID, NotifyInterestAccepted,
		"Interest accepted",
		fmt.Sprintf("Your interest in request %s was accepted", tr.UniqueID),
		model.JSONMap{"transfer_request_id": tr.TransferRequestID, "acceptance_id": acc.AcceptanceID})

	updated, err := s.repo.Transfer.GetByID(ctx, tr.TransferRequestID)
	if err != nil {
		return nil, err
	}
	resp := transferResponse(updated)
	return &dto.MatchOutcomeResponse{
		Protocol:    ProtocolInterest,
		Request:     &resp,
		ChatEnabled: true,
	}, nil
}

// RejectInterest marks one interest REJECTED. The request status is
// left untouched.
func (s *interestService) RejectInterest(ctx context.Context, acceptanceID, callerID, reason string) (*dto.InterestResponse, error) {
	acc, err := s.getAcceptance(ctx, acceptanceID)
	if err != nil {
		return nil, err
	}
	if acc.Request == nil || acc.Request.RequesterID != callerID {
		return nil, pkgerrors.Forbidden("only the request owner may reject an interest")
	}
	if acc.Status != model.AcceptancePending {
		return nil, pkgerrors.InvalidState("interest is not pending")
	}

	if err := s.repo.Acceptance.UpdateStatus(ctx, acc.AcceptanceID,
		model.AcceptancePending, model.AcceptanceRejected, nil); err != nil {
		return nil, err
	}

	title := "Interest declined"
	message := fmt.Sprintf("Your interest in request %s was declined", acc.Request.UniqueID)
	if reason != "" {
		message = message + ": " + reason
	}
	s.notifier.Notify(ctx, acc.AcceptorID, NotifyInterestRejected, title, message,
		model.JSONMap{"transfer_request_id": acc.TransferRequestID, "acceptance_id": acc.AcceptanceID})

	return s.interestResponse(ctx, acc.AcceptanceID)
}

func (s *interestService) GetReceivedInterests(ctx context.Context, requestID, callerID string) ([]dto.InterestResponse, error) {
	tr, err := s.repo.Transfer.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.NotFound("transfer request not found")
		}
		return nil, err
	}
	if tr.RequesterID != callerID {
		return nil, pkgerrors.Forbidden("only the request owner may list received interests")
	}

	accs, err := s.repo.Acceptance.ListByRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InterestResponse, len(accs))
	for i := range accs {
		out[i] = interestFromModel(&accs[i])
		out[i].RequestUniqueID = tr.UniqueID
	}
	return out, nil
}

func (s *interestService) GetSentInterests(ctx context.Context, callerID string) ([]dto.InterestResponse, error) {
	accs, err := s.repo.Acceptance.ListByAcceptor(ctx, callerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InterestResponse, len(accs))
	for i := range accs {
		out[i] = interestFromModel(&accs[i])
	}
	return out, nil
}

// ── helpers ──

func (s *interestService) getAcceptance(ctx context.Context, id string) (*model.TransferAcceptance, error) {
	acc, err := s.repo.Acceptance.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.NotFound("interest not found")
		}
		return nil, err
	}
	return acc, nil
}

func (s *interestService) interestResponse(ctx context.Context, id string) (*dto.InterestResponse, error) {
	acc, err := s.getAcceptance(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := interestFromModel(acc)
	return &resp, nil
}

func interestFromModel(acc *model.TransferAcceptance) dto.InterestResponse {
	resp := dto.InterestResponse{
		ID:                acc.AcceptanceID,
		TransferRequestID: acc.TransferRequestID,
		AcceptorID:        acc.AcceptorID,
		Status:            acc.Status,
		Notes:             acc.Notes,
		CreatedAt:         acc.CreatedAt,
		UpdatedAt:         acc.UpdatedAt,
	}
	if acc.Acceptor != nil {
		resp.Acceptor = &dto.PartyBrief{
			ID:        acc.Acceptor.UserID,
			FirstName: acc.Acceptor.FirstName,
			LastName:  acc.Acceptor.LastName,
			Email:     acc.Acceptor.Email,
			Phone:     acc.Acceptor.Phone,
		}
	}
	if acc.Request != nil {
		resp.RequestUniqueID = acc.Request.UniqueID
		match := matchResponse(acc.Request, 0)
		resp.Request = &match
	}
	return resp
}
