package privacy

import (
	"testing"
	"time"

	"github.com/IT22102546/ArmiGo-Research-sub009/internal/model"
)

func sampleRequest() *model.TransferRequest {
	district := &model.District{DistrictID: "d1", Name: "Colombo"}
	return &model.TransferRequest{
		TransferRequestID: "req-1",
		UniqueID:          "TR-2025-00001",
		RequesterID:       "owner-1",
		FromZoneID:        "z-colombo",
		SubjectID:         "s-math",
		MediumID:          "m-sinhala",
		Level:             "O/L",
		CurrentSchool:     "Royal College",
		CurrentSchoolType: "1AB",
		YearsOfService:    8,
		Qualifications:    model.StringArray{"B.Ed"},
		Notes:             "prefer southern province",
		Attachments:       model.StringArray{"doc-1"},
		Status:            model.StatusVerified,
		Verified:          true,
		Requester: &model.User{
			UserID:         "owner-1",
			FirstName:      "Nimal",
			LastName:       "Perera",
			Email:          "nimal@example.com",
			Phone:          "0771234567",
			RegistrationID: "REG-100",
		},
		FromZone:        &model.Zone{ZoneID: "z-colombo", Name: "Colombo"},
		CurrentDistrict: district,
		Subject:         &model.Subject{SubjectID: "s-math", Name: "Mathematics"},
		Medium:          &model.Medium{MediumID: "m-sinhala", Name: "Sinhala"},
		DesiredZones: []model.TransferRequestDesiredZone{
			{ZoneID: "z-galle", Priority: 1, Zone: &model.Zone{ZoneID: "z-galle", Name: "Galle"}},
		},
	}
}

// ── DetermineStage ──

func TestDetermineStage_Admin(t *testing.T) {
	if got := DetermineStage("any", model.RoleAdmin, "owner-1", nil); got != StageAdmin {
		t.Errorf("admin viewer: got %v, want StageAdmin", got)
	}
}

func TestDetermineStage_Owner(t *testing.T) {
	if got := DetermineStage("owner-1", model.RoleTeacher, "owner-1", nil); got != StageAdmin {
		t.Errorf("owner viewer: got %v, want StageAdmin", got)
	}
}

func TestDetermineStage_Anonymous(t *testing.T) {
	if got := DetermineStage("", "", "owner-1", nil); got != StagePublic {
		t.Errorf("anonymous viewer: got %v, want StagePublic", got)
	}
}

func TestDetermineStage_NoRelationship(t *testing.T) {
	accs := []model.TransferAcceptance{{AcceptorID: "other", Status: model.AcceptancePending}}
	if got := DetermineStage("stranger", model.RoleTeacher, "owner-1", accs); got != StagePublic {
		t.Errorf("unrelated viewer: got %v, want StagePublic", got)
	}
}

func TestDetermineStage_InterestSentAndAccepted(t *testing.T) {
	pending := []model.TransferAcceptance{{AcceptorID: "viewer", Status: model.AcceptancePending}}
	if got := DetermineStage("viewer", model.RoleTeacher, "owner-1", pending); got != StageInterestSent {
		t.Errorf("pending acceptance: got %v, want StageInterestSent", got)
	}

	approved := []model.TransferAcceptance{{AcceptorID: "viewer", Status: model.AcceptanceApproved}}
	if got := DetermineStage("viewer", model.RoleTeacher, "owner-1", approved); got != StageInterestAccepted {
		t.Errorf("approved acceptance: got %v, want StageInterestAccepted", got)
	}
}

// ── Project ──

func TestProject_PublicHidesIdentity(t *testing.T) {
	v := Project(sampleRequest(), StagePublic)

	if v.FromZone != "Colombo" || v.Subject != "Mathematics" || v.Medium != "Sinhala" {
		t.Errorf("base fields missing: %+v", v)
	}
	if len(v.ToZones) != 1 || v.ToZones[0] != "Galle" {
		t.Errorf("ToZones = %v, want [Galle]", v.ToZones)
	}
	if v.Requester != nil {
		t.Error("public stage must not expose requester identity")
	}
	if v.CurrentSchool != "" || v.CurrentDistrict != "" || v.Notes != "" {
		t.Error("public stage must not expose school/district/notes")
	}
	if len(v.Qualifications) != 0 {
		t.Error("public stage must not expose qualifications")
	}
	if v.ChatEnabled || len(v.Acceptances) != 0 {
		t.Error("public stage must not expose chat or acceptances")
	}
}

func TestProject_InterestSentAddsIdentity(t *testing.T) {
	v := Project(sampleRequest(), StageInterestSent)

	if v.Requester == nil || v.Requester.Email != "nimal@example.com" {
		t.Fatalf("interest_sent must expose requester contact: %+v", v.Requester)
	}
	if v.Requester.RegistrationID != "" {
		t.Error("registration id unlocks only at interest_accepted")
	}
	if v.CurrentSchool != "Royal College" || v.CurrentDistrict != "Colombo" {
		t.Error("interest_sent must expose school and district")
	}
	if v.ChatEnabled {
		t.Error("chat must stay locked at interest_sent")
	}
	if len(v.Acceptances) != 0 {
		t.Error("other parties' acceptances stay hidden at interest_sent")
	}
}

func TestProject_InterestAcceptedUnlocksChat(t *testing.T) {
	req := sampleRequest()
	req.Acceptances = []model.TransferAcceptance{
		{AcceptanceID: "acc-1", AcceptorID: "viewer", Status: model.AcceptanceApproved},
	}

	v := Project(req, StageInterestAccepted)
	if !v.ChatEnabled {
		t.Error("interest_accepted must enable chat")
	}
	if len(v.Acceptances) != 1 {
		t.Errorf("interest_accepted must expose the acceptance list, got %d", len(v.Acceptances))
	}
	if v.Requester == nil || v.Requester.RegistrationID != "REG-100" {
		t.Error("interest_accepted must expose the registration id")
	}
	if v.Attachments != nil {
		t.Error("attachments are admin-only")
	}
}

func TestProject_AdminUnredacted(t *testing.T) {
	now := time.Now()
	req := sampleRequest()
	req.VerifiedAt = &now
	req.VerificationNotes = "checked"

	v := Project(req, StageAdmin)
	if v.CurrentSchoolType != "1AB" {
		t.Error("admin stage must expose school type")
	}
	if v.VerificationNotes != "checked" || v.VerifiedAt == nil {
		t.Error("admin stage must expose the verification audit trail")
	}
	if len(v.Attachments) != 1 {
		t.Error("admin stage must expose attachments")
	}
}

// Privacy monotonicity: each stage exposes a superset of the one below.
func TestProject_Monotonicity(t *testing.T) {
	req := sampleRequest()
	req.Acceptances = []model.TransferAcceptance{
		{AcceptanceID: "acc-1", AcceptorID: "viewer", Status: model.AcceptanceApproved},
	}

	public := Project(req, StagePublic)
	sent := Project(req, StageInterestSent)
	accepted := Project(req, StageInterestAccepted)

	if public.FromZone != sent.FromZone || sent.FromZone != accepted.FromZone {
		t.Error("base fields must be stable across stages")
	}
	if sent.Requester == nil || accepted.Requester == nil {
		t.Error("identity present at interest_sent must remain at interest_accepted")
	}
	if sent.Notes != accepted.Notes {
		t.Error("notes present at interest_sent must remain at interest_accepted")
	}
}

// ── IsChatUnlocked ──

func TestIsChatUnlocked(t *testing.T) {
	req := sampleRequest()
	req.Acceptances = []model.TransferAcceptance{
		{AcceptorID: "buyer", Status: model.AcceptancePending},
	}

	if IsChatUnlocked("owner-1", req) {
		t.Error("owner chat locked while no acceptance approved")
	}
	if IsChatUnlocked("buyer", req) {
		t.Error("acceptor chat locked while own acceptance pending")
	}

	req.Acceptances[0].Status = model.AcceptanceApproved
	if !IsChatUnlocked("owner-1", req) {
		t.Error("owner chat unlocks once an acceptance is approved")
	}
	if !IsChatUnlocked("buyer", req) {
		t.Error("acceptor chat unlocks once own acceptance is approved")
	}

	// ACCEPTED status unlocks chat for an involved pending acceptor.
	req.Acceptances[0].Status = model.AcceptancePending
	req.Status = model.StatusAccepted
	if !IsChatUnlocked("buyer", req) {
		t.Error("ACCEPTED status unlocks chat for an involved acceptor")
	}
	if IsChatUnlocked("stranger", req) {
		t.Error("uninvolved viewer never gets chat")
	}
}

// ── CanSendInterest ──

func TestCanSendInterest(t *testing.T) {
	req := sampleRequest()

	if ok, _ := CanSendInterest("viewer", req); !ok {
		t.Error("verified open request should accept interest")
	}
	if ok, _ := CanSendInterest("", req); ok {
		t.Error("anonymous viewer cannot send interest")
	}
	if ok, _ := CanSendInterest("owner-1", req); ok {
		t.Error("owner cannot send interest to own request")
	}

	req.Verified = false
	if ok, _ := CanSendInterest("viewer", req); ok {
		t.Error("unverified request cannot receive interest")
	}
	req.Verified = true

	for _, status := range []string{model.StatusCancelled, model.StatusCompleted, model.StatusRejected, model.StatusPaused} {
		req.Status = status
		if ok, _ := CanSendInterest("viewer", req); ok {
			t.Errorf("status %s must refuse interest", status)
		}
	}
	req.Status = model.StatusVerified

	req.Acceptances = []model.TransferAcceptance{{AcceptorID: "viewer", Status: model.AcceptancePending}}
	if ok, reason := CanSendInterest("viewer", req); ok || reason != "interest already sent" {
		t.Errorf("duplicate interest must be refused, got ok=%v reason=%q", ok, reason)
	}

	// A rejected prior interest does not block a new one.
	req.Acceptances[0].Status = model.AcceptanceRejected
	if ok, _ := CanSendInterest("viewer", req); !ok {
		t.Error("rejected prior interest must not block a new interest")
	}
}
