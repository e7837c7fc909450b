// Package privacy implements the staged information disclosure rules
// for transfer requests. Everything here is pure: stage determination
// and projection work on already-loaded records and perform no I/O.
package privacy

import (
	"time"

	"github.com/IT22102546/ArmiGo-Research-sub009/internal/model"
)

// Stage is the visibility level a viewer has on a request.
type Stage int

const (
	// StagePublic — no viewer, or no relationship to the request.
	StagePublic Stage = iota
	// StageInterestSent — the viewer holds a non-approved acceptance.
	StageInterestSent
	// StageInterestAccepted — the viewer's acceptance is APPROVED.
	StageInterestAccepted
	// StageAdmin — administrative role or the request owner.
	StageAdmin
)

// String returns the wire name of the stage.
func (s Stage) String() string {
	switch s {
	case StageInterestSent:
		return "interest_sent"
	case StageInterestAccepted:
		return "interest_accepted"
	case StageAdmin:
		return "admin"
	default:
		return "public"
	}
}

// DetermineStage maps the viewer's relationship to a request onto a
// disclosure stage. viewerID may be empty for anonymous browsing.
func DetermineStage(viewerID, viewerRole, requesterID string, acceptances []model.TransferAcceptance) Stage {
	if viewerRole == model.RoleAdmin {
		return StageAdmin
	}
	if viewerID == "" {
		return StagePublic
	}
	// The owner has full access to their own request.
	if viewerID == requesterID {
		return StageAdmin
	}

	for _, acc := range acceptances {
		if acc.AcceptorID != viewerID {
			continue
		}
		if acc.Status == model.AcceptanceApproved {
			return StageInterestAccepted
		}
		return StageInterestSent
	}

	return StagePublic
}

// Party is the requester identity disclosed from StageInterestSent on.
type Party struct {
	ID             string `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone,omitempty"`
	RegistrationID string `json:"registration_id,omitempty"`
}

// AcceptanceView is the acceptance projection disclosed from
// StageInterestAccepted on.
type AcceptanceView struct {
	ID         string     `json:"id"`
	AcceptorID string     `json:"acceptor_id"`
	Status     string     `json:"status"`
	Notes      string     `json:"notes,omitempty"`
	AcceptedAt *time.Time `json:"accepted_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// View is a transfer request redacted for a disclosure stage. Fields
// beyond the base set stay zero/nil below the stage that unlocks them.
type View struct {
	Stage Stage `json:"-"`

	// base fields, every stage
	ID             string    `json:"id"`
	UniqueID       string    `json:"unique_id"`
	FromZone       string    `json:"from_zone"`
	ToZones        []string  `json:"to_zones"`
	Subject        string    `json:"subject"`
	Medium         string    `json:"medium"`
	Level          string    `json:"level"`
	YearsOfService int       `json:"years_of_service"`
	Verified       bool      `json:"verified"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`

	// interest_sent and above
	Requester       *Party   `json:"requester,omitempty"`
	CurrentSchool   string   `json:"current_school,omitempty"`
	CurrentDistrict string   `json:"current_district,omitempty"`
	Notes           string   `json:"notes,omitempty"`
	Qualifications  []string `json:"qualifications,omitempty"`

	// interest_accepted and above
	ChatEnabled bool             `json:"chat_enabled,omitempty"`
	Acceptances []AcceptanceView `json:"acceptances,omitempty"`

	// admin only
	CurrentSchoolType      string     `json:"current_school_type,omitempty"`
	AdditionalRequirements string     `json:"additional_requirements,omitempty"`
	PreferredSchoolTypes   []string   `json:"preferred_school_types,omitempty"`
	IsInternalTeacher      *bool      `json:"is_internal_teacher,omitempty"`
	Attachments            []string   `json:"attachments,omitempty"`
	AcceptanceNotes        string     `json:"acceptance_notes,omitempty"`
	PausedFromStatus       string     `json:"paused_from_status,omitempty"`
	VerifiedBy             string     `json:"verified_by,omitempty"`
	VerifiedAt             *time.Time `json:"verified_at,omitempty"`
	VerificationNotes      string     `json:"verification_notes,omitempty"`
	CompletedAt            *time.Time `json:"completed_at,omitempty"`
}

// Project redacts a request for the given stage. The request must have
// FromZone, Subject, Medium and DesiredZones (with Zone) preloaded;
// Requester and Acceptances are required from StageInterestSent on.
func Project(req *model.TransferRequest, stage Stage) *View {
	v := &View{
		Stage:          stage,
		ID:             req.TransferRequestID,
		UniqueID:       req.UniqueID,
		ToZones:        zoneNames(req.DesiredZones),
		Level:          req.Level,
		YearsOfService: req.YearsOfService,
		Verified:       req.Verified,
		Status:         req.Status,
		CreatedAt:      req.CreatedAt,
	}
	if req.FromZone != nil {
		v.FromZone = req.FromZone.Name
	}
	if req.Subject != nil {
		v.Subject = req.Subject.Name
	}
	if req.Medium != nil {
		v.Medium = req.Medium.Name
	}

	if stage == StagePublic {
		return v
	}

	// interest_sent: the sender is evaluating whether to proceed, so
	// the owner's identity and background unlock here.
	if req.Requester != nil {
		v.Requester = &Party{
			ID:        req.Requester.UserID,
			FirstName: req.Requester.FirstName,
			LastName:  req.Requester.LastName,
			Email:     req.Requester.Email,
			Phone:     req.Requester.Phone,
		}
	}
	v.CurrentSchool = req.CurrentSchool
	if req.CurrentDistrict != nil {
		v.CurrentDistrict = req.CurrentDistrict.Name
	}
	v.Notes = req.Notes
	v.Qualifications = req.Qualifications

	if stage == StageInterestSent {
		return v
	}

	// interest_accepted: chat unlocks and the acceptance list opens up.
	v.ChatEnabled = true
	v.Acceptances = acceptanceViews(req.Acceptances)
	if v.Requester != nil && req.Requester != nil {
		v.Requester.RegistrationID = req.Requester.RegistrationID
	}

	if stage == StageInterestAccepted {
		return v
	}

	// admin: unredacted, including the verification audit trail.
	v.CurrentSchoolType = req.CurrentSchoolType
	v.AdditionalRequirements = req.AdditionalRequirements
	v.PreferredSchoolTypes = req.PreferredSchoolTypes
	internal := req.IsInternalTeacher
	v.IsInternalTeacher = &internal
	v.Attachments = req.Attachments
	v.AcceptanceNotes = req.AcceptanceNotes
	if req.PausedFromStatus != nil {
		v.PausedFromStatus = *req.PausedFromStatus
	}
	if req.VerifiedBy != nil {
		v.VerifiedBy = *req.VerifiedBy
	}
	v.VerifiedAt = req.VerifiedAt
	v.VerificationNotes = req.VerificationNotes
	v.CompletedAt = req.CompletedAt

	return v
}

// IsChatUnlocked reports whether the viewer may exchange messages on
// the request: the owner once any acceptance is APPROVED, an acceptor
// once their own acceptance is APPROVED, or anyone involved once the
// request reached ACCEPTED.
func IsChatUnlocked(viewerID string, req *model.TransferRequest) bool {
	if viewerID == req.RequesterID {
		for _, acc := range req.Acceptances {
			if acc.Status == model.AcceptanceApproved {
				return true
			}
		}
		return false
	}

	for _, acc := range req.Acceptances {
		if acc.AcceptorID == viewerID {
			if acc.Status == model.AcceptanceApproved {
				return true
			}
			return req.Status == model.StatusAccepted
		}
	}
	return false
}

// CanSendInterest gates the interest workflow. Returns a human-readable
// reason when sending is not allowed.
func CanSendInterest(viewerID string, req *model.TransferRequest) (bool, string) {
	if viewerID == "" {
		return false, "must be logged in"
	}
	if viewerID == req.RequesterID {
		return false, "cannot send interest to your own request"
	}
	if !req.Verified {
		return false, "request not yet verified by admin"
	}
	if IsTerminalOrClosed(req.Status) {
		return false, "request is closed"
	}
	if req.Status == model.StatusPaused {
		return false, "request is paused"
	}
	for _, acc := range req.Acceptances {
		if acc.AcceptorID == viewerID && acc.Status != model.AcceptanceRejected {
			return false, "interest already sent"
		}
	}
	return true, ""
}

// IsTerminalOrClosed reports whether a request no longer accepts
// interest (cancelled, rejected or completed).
func IsTerminalOrClosed(status string) bool {
	return status == model.StatusCancelled ||
		status == model.StatusRejected ||
		status == model.StatusCompleted
}

func zoneNames(zones []model.TransferRequestDesiredZone) []string {
	names := make([]string, 0, len(zones))
	for _, dz := range zones {
		if dz.Zone != nil {
			names = append(names, dz.Zone.Name)
		}
	}
	return names
}

func acceptanceViews(accs []model.TransferAcceptance) []AcceptanceView {
	views := make([]AcceptanceView, len(accs))
	for i, acc := range accs {
		views[i] = AcceptanceView{
			ID:         acc.AcceptanceID,
			AcceptorID: acc.AcceptorID,
			Status:     acc.Status,
			Notes:      acc.Notes,
			AcceptedAt: acc.AcceptedAt,
			CreatedAt:  acc.CreatedAt,
		}
	}
	return views
}
