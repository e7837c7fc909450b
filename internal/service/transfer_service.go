package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/IT22102546/ArmiGo-Research-sub009/internal/dto"
	"github.com/IT22102546/ArmiGo-Research-sub009/internal/model"
	"github.com/IT22102546/ArmiGo-Research-sub009/internal/privacy"
	"github.com/IT22102546/ArmiGo-Research-sub009/internal/repository"
	pkgerrors "github.com/IT22102546/ArmiGo-Research-sub009/pkg/errors"
)

// MatchOutcome protocols. Direct accept produces a symmetric pair of
// approved acceptances; the interest workflow produces a single one.
const (
	ProtocolDirect   = "direct"
	ProtocolInterest = "interest"
)

// TransferService is the request lifecycle manager.
type TransferService interface {
	Create(ctx context.Context, ownerID string, req *dto.CreateTransferRequest) (*dto.TransferRequestResponse, error)
	Get(ctx context.Context, viewerID, viewerRole, id string) (*privacy.View, error)
	Browse(ctx context.Context, viewerID string, filters *dto.BrowseTransferFilters) ([]*privacy.View, int64, error)
	GetMyRequests(ctx context.Context, ownerID string) ([]dto.TransferRequestResponse, error)
	Verify(ctx context.Context, id, adminID string, req *dto.VerifyTransferRequest) (*dto.TransferRequestResponse, error)
	VerifyStrict(ctx context.Context, id, adminID string, req *dto.VerifyTransferRequest) (*dto.TransferRequestResponse, error)
	Cancel(ctx context.Context, id, callerID string) error
	Complete(ctx context.Context, id, adminID string) (*dto.TransferRequestResponse, error)
	Pause(ctx context.Context, id, callerID, reason string) (*dto.TransferRequestResponse, error)
	Resume(ctx context.Context, id, callerID string) (*dto.TransferRequestResponse, error)
	Edit(ctx context.Context, id, callerID string, patch *dto.UpdateTransferRequest) (*dto.TransferRequestResponse, error)
	AcceptTransfer(ctx context.Context, id, callerID, notes string) (*dto.MatchOutcomeResponse, error)
	Stats(ctx context.Context) (*dto.TransferStatsResponse, error)
	AdminList(ctx context.Context, filters *dto.AdminTransferFilters) ([]dto.TransferRequestResponse, int64, error)
	AdminUpdateStatus(ctx context.Context, id, adminID string, req *dto.AdminStatusUpdateRequest) (*dto.TransferRequestResponse, error)
}

type transferService struct {
	repo     *repository.Repository
	match    MatchService
	notifier NotificationService
	logger   *zap.Logger
}

// NewTransferService creates a TransferService instance.
func NewTransferService(
	repo *repository.Repository,
	match MatchService,
	notifier NotificationService,
	logger *zap.Logger,
) TransferService {
	return &transferService{
		repo:     repo,
		match:    match,
		notifier: notifier,
		logger:   logger,
	}
}

// ── creation ──

func (s *transferService) Create(ctx context.Context, ownerID string, req *dto.CreateTransferRequest) (*dto.TransferRequestResponse, error) {
	// 1. One active request per owner
	if _, err := s.repo.Transfer.GetActiveByRequester(ctx, ownerID); err == nil {
		return nil, pkgerrors.Conflict("you already have an active transfer request")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// 2. Resolve reference terms
	fromZone, err := s.repo.Reference.ResolveZone(ctx, req.FromZone)
	if err != nil {
		return nil, referenceError("from zone", req.FromZone, err)
	}
	zoneIDs := make([]string, 0, len(req.ToZones))
	seen := make(map[string]bool)
	for _, term := range req.ToZones {
		zone, err := s.repo.Reference.ResolveZone(ctx, term)
		if err != nil {
			return nil, referenceError("desired zone", term, err)
		}
		if seen[zone.ZoneID] {
			continue
		}
		seen[zone.ZoneID] = true
		zoneIDs = append(zoneIDs, zone.ZoneID)
	}
	subject, err := s.repo.Reference.ResolveSubject(ctx, req.Subject)
	if err != nil {
		return nil, referenceError("subject", req.Subject, err)
	}
	medium, err := s.repo.Reference.ResolveMedium(ctx, req.Medium)
	if err != nil {
		return nil, referenceError("medium", req.Medium, err)
	}
	var districtID *string
	if req.CurrentDistrict != "" {
		district, err := s.repo.Reference.ResolveDistrict(ctx, req.CurrentDistrict)
		if err != nil {
			return nil, referenceError("district", req.CurrentDistrict, err)
		}
		districtID = &district.DistrictID
	}

	// 3. Assign the next yearly unique id
	year := time.Now().Year()
	seq, err := s.repo.Transfer.NextSequence(ctx, year)
	if err != nil {
		s.logger.Error("allocate transfer sequence failed", zap.Error(err))
		return nil, err
	}

	isInternal := true
	if req.IsInternalTeacher != nil {
		isInternal = *req.IsInternalTeacher
	}

	tr := &model.TransferRequest{
		UniqueID:               fmt.Sprintf("%s%d-%05d", model.UniqueIDPrefix, year, seq),
		RequesterID:            ownerID,
		FromZoneID:             fromZone.ZoneID,
		CurrentDistrictID:      districtID,
		SubjectID:              subject.SubjectID,
		MediumID:               medium.MediumID,
		Level:                  req.Level,
		CurrentSchool:          req.CurrentSchool,
		CurrentSchoolType:      req.CurrentSchoolType,
		YearsOfService:         req.YearsOfService,
		Qualifications:         req.Qualifications,
		IsInternalTeacher:      isInternal,
		PreferredSchoolTypes:   req.PreferredSchoolTypes,
		AdditionalRequirements: req.AdditionalRequirements,
		Notes:                  req.Notes,
		Attachments:            req.Attachments,
		Status:                 model.StatusPending,
	}
	if err := s.repo.Transfer.Create(ctx, tr, zoneIDs); err != nil {
		s.logger.Error("create transfer request failed", zap.Error(err))
		return nil, err
	}

	s.notifier.NotifyAdmins(ctx, NotifyRequestCreated,
		"New transfer request",
		fmt.Sprintf("Request %s awaits verification", tr.UniqueID),
		model.JSONMap{"transfer_request_id": tr.TransferRequestID})

	return s.fullResponse(ctx, tr.TransferRequestID)
}

// ── reads ──

func (s *transferService) Get(ctx context.Context, viewerID, viewerRole, id string) (*privacy.View, error) {
	tr, err := s.getRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	stage := privacy.DetermineStage(viewerID, viewerRole, tr.RequesterID, tr.Acceptances)
	return privacy.Project(tr, stage), nil
}

func (s *transferService) Browse(ctx context.Context, viewerID string, filters *dto.BrowseTransferFilters) ([]*privacy.View, int64, error) {
	q := repository.BrowseQuery{
		ExcludeRequesterID: viewerID,
		Level:              filters.Level,
		CurrentSchoolType:  filters.CurrentSchoolType,
		IsInternalTeacher:  filters.IsInternalTeacher,
		MinYearsOfService:  filters.MinYearsOfService,
	}

	// resolve filter terms; an unknown term matches nothing
	var resolveErr error
	resolve := func(field, term string, fn func() (string, error)) string {
		if term == "" || resolveErr != nil {
			return ""
		}
		id, err := fn()
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				resolveErr = pkgerrors.NotFound(fmt.Sprintf("unknown %s %q", field, term))
				return ""
			}
			resolveErr = err
		}
		return id
	}
	q.FromZoneID = resolve("zone", filters.FromZone, func() (string, error) {
		z, err := s.repo.Reference.ResolveZone(ctx, filters.FromZone)
		if err != nil {
			return "", err
		}
		return z.ZoneID, nil
	})
	q.ToZoneID = resolve("zone", filters.ToZone, func() (string, error) {
		z, err := s.repo.Reference.ResolveZone(ctx, filters.ToZone)
		if err != nil {
			return "", err
		}
		return z.ZoneID, nil
	})
	q.SubjectID = resolve("subject", filters.Subject, func() (string, error) {
		sub, err := s.repo.Reference.ResolveSubject(ctx, filters.Subject)
		if err != nil {
			return "", err
		}
		return sub.SubjectID, nil
	})
	q.MediumID = resolve("medium", filters.Medium, func() (string, error) {
		m, err := s.repo.Reference.ResolveMedium(ctx, filters.Medium)
		if err != nil {
			return "", err
		}
		return m.MediumID, nil
	})
	q.CurrentDistrictID = resolve("district", filters.CurrentDistrict, func() (string, error) {
		d, err := s.repo.Reference.ResolveDistrict(ctx, filters.CurrentDistrict)
		if err != nil {
			return "", err
		}
		return d.DistrictID, nil
	})
	if resolveErr != nil {
		return nil, 0, resolveErr
	}

	reqs, total, err := s.repo.Transfer.Browse(ctx, q, filters.GetOffset(), filters.GetPageSize())
	if err != nil {
		return nil, 0, err
	}

	views := make([]*privacy.View, len(reqs))
	for i := range reqs {
		stage := privacy.DetermineStage(viewerID, model.RoleTeacher, reqs[i].RequesterID, reqs[i].Acceptances)
		views[i] = privacy.Project(&reqs[i], stage)
	}
	return views, total, nil
}

func (s *transferService) GetMyRequests(ctx context.Context, ownerID string) ([]dto.TransferRequestResponse, error) {
	reqs, err := s.repo.Transfer.ListByRequester(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransferRequestResponse, len(reqs))
	for i := range reqs {
		out[i] = transferResponse(&reqs[i])
	}
	return out, nil
}

// ── verification ──

// Verify applies an admin verification decision. Re-verifying an
// already verified request is a no-op success.
func (s *transferService) Verify(ctx context.Context, id, adminID string, req *dto.VerifyTransferRequest) (*dto.TransferRequestResponse, error) {
	return s.verify(ctx, id, adminID, req, false)
}

// VerifyStrict rejects re-verification of an already verified request
// with a Conflict error.
func (s *transferService) VerifyStrict(ctx context.Context, id, adminID string, req *dto.VerifyTransferRequest) (*dto.TransferRequestResponse, error) {
	return s.verify(ctx, id, adminID, req, true)
}

func (s *transferService) verify(ctx context.Context, id, adminID string, req *dto.VerifyTransferRequest, strict bool) (*dto.TransferRequestResponse, error) {
	tr, err := s.getRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if model.IsTerminalStatus(tr.Status) {
		return nil, pkgerrors.InvalidState("request is closed")
	}
	if strict && tr.Verified {
		return nil, pkgerrors.Conflict("request already verified")
	}

	decision := *req.Verified
	now := time.Now()
	tr.Verified = decision
	tr.VerifiedBy = &adminID
	tr.VerifiedAt = &now
	tr.VerificationNotes = req.VerificationNotes
	if decision {
		tr.Status = model.StatusVerified
	} else {
		tr.Status = model.StatusPending
	}
	if err := s.repo.Transfer.Update(ctx, tr); err != nil {
		return nil, err
	}

	typ, title := NotifyRequestVerified, "Transfer request verified"
	if !decision {
		typ, title = NotifyRequestRejected, "Transfer request needs changes"
	}
	s.notifier.Notify(ctx, tr.RequesterID, typ, title,
		fmt.Sprintf("Your request %s was reviewed", tr.UniqueID),
		model.JSONMap{"transfer_request_id": tr.TransferRequestID})

	return s.fullResponse(ctx, tr.TransferRequestID)
}

// ── lifecycle transitions ──

func (s *transferService) Cancel(ctx context.Context, id, callerID string) error {
	tr, err := s.getRequest(ctx, id)
	if err != nil {
		return err
	}
	if tr.RequesterID != callerID {
		return pkgerrors.Forbidden("only the owner may cancel this request")
	}
	if model.IsTerminalStatus(tr.Status) {
		return pkgerrors.InvalidState("request is already closed")
	}

	// In-flight acceptances are forfeited without cleanup.
	tr.Status = model.StatusCancelled
	tr.PausedFromStatus = nil
	return s.repo.Transfer.Update(ctx, tr)
}

func (s *transferService) Complete(ctx context.Context, id, adminID string) (*dto.TransferRequestResponse, error) {
	tr, err := s.getRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if tr.Status != model.StatusMatched {
		return nil, pkgerrors.InvalidState("only matched requests can be completed")
	}

	now := time.Now()
	tr.Status = model.StatusCompleted
	tr.CompletedAt = &now
	if err := s.repo.Transfer.Update(ctx, tr); err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, tr.RequesterID, NotifyStatusChanged,
		"Transfer completed",
		fmt.Sprintf("Your request %s was marked completed", tr.UniqueID),
		model.JSONMap{"transfer_request_id": tr.TransferRequestID})

	return s.fullResponse(ctx, tr.TransferRequestID)
}

// Pause moves a VERIFIED or MATCHED request into PAUSED, remembering
// its prior status so Resume can restore it.
func (s *transferService) Pause(ctx context.Context, id, callerID, reason string) (*dto.TransferRequestResponse, error) {
	tr, err := s.getRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if tr.RequesterID != callerID {
		return nil, pkgerrors.Forbidden("only the owner may pause this request")
	}
	if tr.Status != model.StatusVerified && tr.Status != model.StatusMatched {
		return nil, pkgerrors.InvalidState("only verified or matched requests can be paused")
	}

	prior := tr.Status
	tr.Status = model.StatusPaused
	tr.PausedFromStatus = &prior
	if reason != "" {
		tr.Notes = reason
	}
	if err := s.repo.Transfer.Update(ctx, tr); err != nil {
		return nil, err
	}
	return s.fullResponse(ctx, tr.TransferRequestID)
}

// Resume restores a paused request to the status it held at pause
// time.
func (s *transferService) Resume(ctx context.Context, id, callerID string) (*dto.TransferRequestResponse, error) {
	tr, err := s.getRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if tr.RequesterID != callerID {
		return nil, pkgerrors.Forbidden("only the owner may resume this request")
	}
	if tr.Status != model.StatusPaused || tr.PausedFromStatus == nil {
		return nil, pkgerrors.InvalidState("request is not paused")
	}

	tr.Status = *tr.PausedFromStatus
	tr.PausedFromStatus = nil
	if err := s.repo.Transfer.Update(ctx, tr); err != nil {
		return nil, err
	}
	return s.fullResponse(ctx, tr.TransferRequestID)
}

func (s *transferService) Edit(ctx context.Context, id, callerID string, patch *dto.UpdateTransferRequest) (*dto.TransferRequestResponse, error) {
	tr, err := s.getRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if tr.RequesterID != callerID {
		return nil, pkgerrors.Forbidden("only the owner may edit this request")
	}
	if len(tr.Acceptances) > 0 {
		return nil, pkgerrors.InvalidState("request cannot be edited after interest has been received")
	}
	if tr.Status != model.StatusPending && tr.Status != model.StatusVerified {
		return nil, pkgerrors.InvalidState("request cannot be edited in its current status")
	}

	// Resolve every replacement zone term before touching the row, so
	// an unknown term cannot leave a half-applied edit behind.
	var zoneIDs []string
	if len(patch.ToZones) > 0 {
		zoneIDs = make([]string, 0, len(patch.ToZones))
		seen := make(map[string]bool)
		for _, term := range patch.ToZones {
			zone, err := s.repo.Reference.ResolveZone(ctx, term)
			if err != nil {
				return nil, referenceError("desired zone", term, err)
			}
			if seen[zone.ZoneID] {
				continue
			}
			seen[zone.ZoneID] = true
			zoneIDs = append(zoneIDs, zone.ZoneID)
		}
	}

	if patch.Notes != nil {
		tr.Notes = *patch.Notes
	}
	if patch.AdditionalRequirements != nil {
		tr.AdditionalRequirements = *patch.AdditionalRequirements
	}
	if patch.PreferredSchoolTypes != nil {
		tr.PreferredSchoolTypes = patch.PreferredSchoolTypes
	}

	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := tx.Transfer.Update(ctx, tr); err != nil {
			return err
		}
		if zoneIDs != nil {
			return tx.Transfer.ReplaceDesiredZones(ctx, tr.TransferRequestID, zoneIDs)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.fullResponse(ctx, tr.TransferRequestID)
}

// ── direct accept ──

// AcceptTransfer runs the symmetric direct-accept protocol: both
// requests move to MATCHED and each side gains an APPROVED acceptance
// pointing at the other, all inside one transaction.
func (s *transferService) AcceptTransfer(ctx context.Context, id, callerID, notes string) (*dto.MatchOutcomeResponse, error) {
	target, err := s.getRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if target.RequesterID == callerID {
		return nil, pkgerrors.Forbidden("cannot accept your own request")
	}
	if !target.Verified || target.Status != model.StatusVerified {
		return nil, pkgerrors.InvalidState("request is not available for acceptance")
	}

	own, err := s.repo.Transfer.GetActiveByRequester(ctx, callerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.InvalidState("you must hold a verified transfer request to accept a match")
		}
		return nil, err
	}
	if !own.Verified || own.Status != model.StatusVerified {
		return nil, pkgerrors.InvalidState("you must hold a verified transfer request to accept a match")
	}
	if !Compatible(own, target) {
		return nil, pkgerrors.InvalidState("transfer requests are not compatible")
	}

	now := time.Now()
	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		target.Status = model.StatusMatched
		target.AcceptanceNotes = notes
		if err := tx.Transfer.Update(ctx, target); err != nil {
			return err
		}
		own.Status = model.StatusMatched
		if err := tx.Transfer.Update(ctx, own); err != nil {
			return err
		}
		callerAcc := &model.TransferAcceptance{
			TransferRequestID: target.TransferRequestID,
			AcceptorID:        callerID,
			Status:            model.AcceptanceApproved,
			Notes:             notes,
			AcceptedAt:        &now,
		}
		if err := tx.Acceptance.CreateUnique(ctx, callerAcc); err != nil {
			return err
		}
		reciprocal := &model.TransferAcceptance{
			TransferRequestID: own.TransferRequestID,
			AcceptorID:        target.RequesterID,
			Status:            model.AcceptanceApproved,
			AcceptedAt:        &now,
		}
		return tx.Acceptance.CreateUnique(ctx, reciprocal)
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, target.RequesterID, NotifyDirectMatch,
		"Transfer match",
		fmt.Sprintf("Your request %s was matched", target.UniqueID),
		model.JSONMap{"transfer_request_id": target.TransferRequestID})

	targetResp, err := s.fullResponse(ctx, target.TransferRequestID)
	if err != nil {
		return nil, err
	}
	ownResp, err := s.fullResponse(ctx, own.TransferRequestID)
	if err != nil {
		return nil, err
	}
	return &dto.MatchOutcomeResponse{
		Protocol:       ProtocolDirect,
		Request:        targetResp,
		CounterRequest: ownResp,
		ChatEnabled:    true,
	}, nil
}

// ── admin ──

func (s *transferService) Stats(ctx context.Context) (*dto.TransferStatsResponse, error) {
	byStatus, err := s.repo.Transfer.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	yearStart := time.Date(time.Now().Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	thisYear, err := s.repo.Transfer.CountCreatedSince(ctx, yearStart)
	if err != nil {
		return nil, err
	}

	stats := &dto.TransferStatsResponse{
		ByStatus: byStatus,
		ThisYear: thisYear,
	}
	for status, n := range byStatus {
		stats.Total += n
		switch status {
		case model.StatusVerified:
			stats.Verified = n
		case model.StatusMatched:
			stats.Matched = n
		case model.StatusCompleted:
			stats.Completed = n
		}
	}
	return stats, nil
}

func (s *transferService) AdminList(ctx context.Context, filters *dto.AdminTransferFilters) ([]dto.TransferRequestResponse, int64, error) {
	q := repository.AdminQuery{
		Status:   filters.Status,
		Verified: filters.Verified,
		Search:   filters.Search,
	}
	reqs, total, err := s.repo.Transfer.AdminList(ctx, q, filters.GetOffset(), filters.GetPageSize())
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.TransferRequestResponse, len(reqs))
	for i := range reqs {
		out[i] = transferResponse(&reqs[i])
	}
	return out, total, nil
}

// AdminUpdateStatus force-sets a request status bypassing the normal
// transition rules, except that terminal requests stay immutable.
func (s *transferService) AdminUpdateStatus(ctx context.Context, id, adminID string, req *dto.AdminStatusUpdateRequest) (*dto.TransferRequestResponse, error) {
	tr, err := s.getRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if model.IsTerminalStatus(tr.Status) {
		return nil, pkgerrors.InvalidState("request is closed")
	}

	tr.Status = req.Status
	if req.Status != model.StatusPaused {
		tr.PausedFromStatus = nil
	}
	if req.Status == model.StatusCompleted {
		now := time.Now()
		tr.CompletedAt = &now
	}
	if req.Notes != "" {
		tr.VerificationNotes = req.Notes
	}
	if err := s.repo.Transfer.Update(ctx, tr); err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, tr.RequesterID, NotifyStatusChanged,
		"Transfer request updated",
		fmt.Sprintf("Your request %s is now %s", tr.UniqueID, tr.Status),
		model.JSONMap{"transfer_request_id": tr.TransferRequestID, "status": tr.Status})

	return s.fullResponse(ctx, tr.TransferRequestID)
}

// ── helpers ──

// getRequest loads a request by primary id, or by its public TR
// reference when the caller passes one.
func (s *transferService) getRequest(ctx context.Context, id string) (*model.TransferRequest, error) {
	var (
		tr  *model.TransferRequest
		err error
	)
	if strings.HasPrefix(id, model.UniqueIDPrefix) {
		tr, err = s.repo.Transfer.GetByUniqueID(ctx, id)
	} else {
		tr, err = s.repo.Transfer.GetByID(ctx, id)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.NotFound("transfer request not found")
		}
		return nil, err
	}
	return tr, nil
}

func (s *transferService) fullResponse(ctx context.Context, id string) (*dto.TransferRequestResponse, error) {
	tr, err := s.getRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := transferResponse(tr)
	return &resp, nil
}

func referenceError(field, term string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.NotFound(fmt.Sprintf("unknown %s %q", field, term))
	}
	return err
}

func transferResponse(tr *model.TransferRequest) dto.TransferRequestResponse {
	resp := dto.TransferRequestResponse{
		ID:                     tr.TransferRequestID,
		UniqueID:               tr.UniqueID,
		RequesterID:            tr.RequesterID,
		Level:                  tr.Level,
		CurrentSchool:          tr.CurrentSchool,
		CurrentSchoolType:      tr.CurrentSchoolType,
		YearsOfService:         tr.YearsOfService,
		Qualifications:         tr.Qualifications,
		IsInternalTeacher:      tr.IsInternalTeacher,
		PreferredSchoolTypes:   tr.PreferredSchoolTypes,
		AdditionalRequirements: tr.AdditionalRequirements,
		Notes:                  tr.Notes,
		Attachments:            tr.Attachments,
		Status:                 tr.Status,
		Verified:               tr.Verified,
		VerifiedAt:             tr.VerifiedAt,
		VerificationNotes:      tr.VerificationNotes,
		CompletedAt:            tr.CompletedAt,
		CreatedAt:              tr.CreatedAt,
		UpdatedAt:              tr.UpdatedAt,
	}
	if tr.PausedFromStatus != nil {
		resp.PausedFromStatus = *tr.PausedFromStatus
	}
	if tr.FromZone != nil {
		resp.FromZone = tr.FromZone.Name
	}
	if tr.CurrentDistrict != nil {
		resp.CurrentDistrict = tr.CurrentDistrict.Name
	}
	if tr.Subject != nil {
		resp.Subject = tr.Subject.Name
	}
	if tr.Medium != nil {
		resp.Medium = tr.Medium.Name
	}
	if tr.Requester != nil {
		resp.Requester = &dto.PartyBrief{
			ID:        tr.Requester.UserID,
			FirstName: tr.Requester.FirstName,
			LastName:  tr.Requester.LastName,
			Email:     tr.Requester.Email,
			Phone:     tr.Requester.Phone,
		}
	}
	for _, dz := range tr.DesiredZones {
		pref := dto.ZonePreference{Priority: dz.Priority}
		if dz.Zone != nil {
			pref.Zone = dz.Zone.Name
		}
		resp.ToZones = append(resp.ToZones, pref)
	}
	return resp
}
