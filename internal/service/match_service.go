package service

import (
	"context"
	"errors"
	"sort"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/IT22102546/ArmiGo-Research-sub009/internal/dto"
	"github.com/IT22102546/ArmiGo-Research-sub009/internal/model"
	"github.com/IT22102546/ArmiGo-Research-sub009/internal/repository"
)

// Score weights. Zone 50, subject 20, medium 15, level 15; a full
// four-term match scores 100.
const (
	scorePerfectSwap  = 50
	scoreZoneOneWay   = 25
	scoreSubjectMatch = 20
	scoreMediumMatch  = 15
	scoreLevelMatch   = 15
)

// MatchService is the compatibility matcher. Matching is read-only
// and performs no state transition.
type MatchService interface {
	FindMatches(ctx context.Context, requesterID string) ([]dto.TransferMatchResponse, error)
}

type matchService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewMatchService creates a MatchService instance.
func NewMatchService(repo *repository.Repository, logger *zap.Logger) MatchService {
	return &matchService{repo: repo, logger: logger}
}

// FindMatches scans all other verified requests that are mutually
// zone-compatible with the requester's own active request and returns
// them ranked by score. A requester without a PENDING or VERIFIED
// request of their own gets an empty result.
func (s *matchService) FindMatches(ctx context.Context, requesterID string) ([]dto.TransferMatchResponse, error) {
	// 1. Locate the requester's own request
	own, err := s.repo.Transfer.GetActiveByRequester(ctx, requesterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []dto.TransferMatchResponse{}, nil
		}
		return nil, err
	}
	if own.Status != model.StatusPending && own.Status != model.StatusVerified {
		return []dto.TransferMatchResponse{}, nil
	}

	// 2. Scan candidates
	candidates, err := s.repo.Transfer.ListCandidates(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	matches := make([]dto.TransferMatchResponse, 0, len(candidates))
	for i := range candidates {
		cand := &candidates[i]
		if !ZonesMutual(own, cand) {
			continue
		}
		matches = append(matches, matchResponse(cand, Score(own, cand)))
	}

	// 3. Rank descending by score, stable within ties
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})
	return matches, nil
}

// Score computes the four-term compatibility score of a candidate
// against the requester's own request, out of 100.
func Score(own, cand *model.TransferRequest) int {
	score := 0

	// zone term: full 50 for a reciprocal top-choice swap, otherwise
	// 25 per direction of desired-list containment
	if cand.FromZoneID == own.TopDesiredZoneID() && own.FromZoneID == cand.TopDesiredZoneID() {
		score += scorePerfectSwap
	} else {
		if own.WantsZone(cand.FromZoneID) {
			score += scoreZoneOneWay
		}
		if cand.WantsZone(own.FromZoneID) {
			score += scoreZoneOneWay
		}
	}

	if own.SubjectID == cand.SubjectID {
		score += scoreSubjectMatch
	}
	if own.MediumID == cand.MediumID {
		score += scoreMediumMatch
	}
	if own.Level == cand.Level {
		score += scoreLevelMatch
	}
	return score
}

// ZonesMutual reports whether two requests' zones swap: each party's
// current zone appears in the other's desired list.
func ZonesMutual(a, b *model.TransferRequest) bool {
	return a.WantsZone(b.FromZoneID) && b.WantsZone(a.FromZoneID)
}

// Compatible is the boolean gate used by direct accept: mutual zone
// containment plus exact subject, medium and level agreement.
func Compatible(a, b *model.TransferRequest) bool {
	return ZonesMutual(a, b) &&
		a.SubjectID == b.SubjectID &&
		a.MediumID == b.MediumID &&
		a.Level == b.Level
}

func matchResponse(req *model.TransferRequest, score int) dto.TransferMatchResponse {
	resp := dto.TransferMatchResponse{
		ID:                req.TransferRequestID,
		UniqueID:          req.UniqueID,
		Level:             req.Level,
		CurrentSchoolType: req.CurrentSchoolType,
		YearsOfService:    req.YearsOfService,
		Qualifications:    req.Qualifications,
		IsInternalTeacher: req.IsInternalTeacher,
		MatchScore:        score,
		Verified:          req.Verified,
		CreatedAt:         req.CreatedAt,
	}
	if req.FromZone != nil {
		resp.FromZone = req.FromZone.Name
	}
	if req.Subject != nil {
		resp.Subject = req.Subject.Name
	}
	if req.Medium != nil {
		resp.Medium = req.Medium.Name
	}
	for _, dz := range req.DesiredZones {
		if dz.Zone != nil {
			resp.ToZones = append(resp.ToZones, dz.Zone.Name)
		}
	}
	if req.Requester != nil {
		resp.Requester = &dto.PartyBrief{
			ID:        req.Requester.UserID,
			FirstName: req.Requester.FirstName,
			LastName:  req.Requester.LastName,
		}
	}
	return resp
}
