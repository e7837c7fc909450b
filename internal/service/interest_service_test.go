package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/IT22102546/ArmiGo-Research-sub009/internal/model"
	pkgerrors "github.com/IT22102546/ArmiGo-Research-sub009/pkg/errors"
)

func setupInterestService(env *mockEnv) (InterestService, TransferService) {
	logger := zap.NewNop()
	notifier := NewNotificationService(env.repo, nil, logger)
	match := NewMatchService(env.repo, logger)
	transfer := NewTransferService(env.repo, match, notifier, logger)
	interest := NewInterestService(env.repo, notifier, logger)
	return interest, transfer
}

func TestInterestService_SendInterest_MovesVerifiedToMatched(t *testing.T) {
	env := newMockEnv()
	seedReferences(env)
	interest, transfer := setupInterestService(env)
	env.seedTeacher("t1", "Amara", "Silva")
	env.seedTeacher("t2", "Bandu", "Perera")

	r := createRequest(t, transfer, "t1", "Colombo", []string{"Galle"})
	verifyRequest(t, transfer, r.ID)

	got, err := interest.SendInterest(context.Background(), r.ID, "t2", "keen to swap")
	if err != nil {
		t.Fatalf("SendInterest should succeed: %v", err)
	}
	if got.Status != model.AcceptancePending {
		t.Errorf("new interest should be PENDING, got %s", got.Status)
	}

	tr, _ := env.transfers.GetByID(context.Background(), r.ID)
	if tr.Status != model.StatusMatched {
		t.Errorf("first interest should move request to MATCHED, got %s", tr.Status)
	}
}

func TestInterestService_SendInterest_OwnRequestForbidden(t *testing.T) {
	env := newMockEnv()
	seedReferences(env)
	interest, transfer := setupInterestService(env)
	env.seedTeacher("t1", "Amara", "Silva")

	r := createRequest(t, transfer, "t1", "Colombo", []string{"Galle"})
	verifyRequest(t, transfer, r.ID)

	if _, err := interest.SendInterest(context.Background(), r.ID, "t1", ""); !pkgerrors.IsForbidden(err) {
		t.Errorf("expected Forbidden sending interest to own request, got %v", err)
	}
}

func TestInterestService_SendInterest_UnverifiedInvalidState(t *testing.T) {
	env := newMockEnv()
	seedReferences(env)
	interest, transfer := setupInterestService(env)
	env.seedTeacher("t1", "Amara", "Silva")
	env.seedTeacher("t2", "Bandu", "Perera")

	r := createRequest(t, transfer, "t1", "Colombo", []string{"Galle"})

	if _, err := interest.SendInterest(context.Background(), r.ID, "t2", ""); !pkgerrors.IsInvalidState(err) {
		t.Errorf("expected InvalidState for unverified target, got %v", err)
	}
}

func TestInterestService_SendInterest_DuplicateConflicts(t *testing.T) {
	env := newMockEnv()
	seedReferences(env)
	interest, transfer := setupInterestService(env)
	env.seedTeacher("t1", "Amara", "Silva")
	env.seedTeacher("t2", "Bandu", "Perera")

	r := createRequest(t, transfer, "t1", "Colombo", []string{"Galle"})
	verifyRequest(t, transfer, r.ID)

	if _, err := interest.SendInterest(context.Background(), r.ID, "t2", ""); err != nil {
		t.Fatalf("first SendInterest should succeed: %v", err)
	}
	if _, err := interest.SendInterest(context.Background(), r.ID, "t2", ""); !pkgerrors.IsConflict(err) {
		t.Errorf("expected Conflict for duplicate interest, got %v", err)
	}
}

func TestInterestService_SendInterest_AllowedAfterRejection(t *testing.T) {
	env := newMockEnv()
	seedReferences(env)
	interest, transfer := setupInterestService(env)
	env.seedTeacher("t1", "Amara", "Silva")
	env.seedTeacher("t2", "Bandu", "Perera")

	r := createRequest(t, transfer, "t1", "Colombo", []string{"Galle"})
	verifyRequest(t, transfer, r.ID)

	first, err := interest.SendInterest(context.Background(), r.ID, "t2", "")
	if err != nil {
		t.Fatalf("SendInterest should succeed: %v", err)
	}
	if _, err := interest.RejectInterest(context.Background(), first.ID, "t1", "not a fit"); err != nil {
		t.Fatalf("RejectInterest should succeed: %v", err)
	}

	// a rejected prior interest does not block a fresh one
	if _, err := interest.SendInterest(context.Background(), r.ID, "t2", "second try"); err != nil {
		t.Errorf("resend after rejection should succeed, got %v", err)
	}
}

func TestInterestService_AcceptInterest_Asymmetric(t *testing.T) {
	env := newMockEnv()
	seedReferences(env)
	interest, transfer := setupInterestService(env)
	env.seedTeacher("t1", "Amara", "Silva")
	env.seedTeacher("t2", "Bandu", "Perera")

	r := createRequest(t, transfer, "t1", "Colombo", []string{"Galle"})
	verifyRequest(t, transfer, r.ID)
	sent, err := interest.SendInterest(context.Background(), r.ID, "t2", "")
	if err != nil {
		t.Fatalf("SendInterest should succeed: %v", err)
	}

	outcome, err := interest.AcceptInterest(context.Background(), sent.ID, "t1")
	if err != nil {
		t.Fatalf("AcceptInterest should succeed: %v", err)
	}
	if outcome.Protocol != ProtocolInterest {
		t.Errorf("expected interest protocol, got %s", outcome.Protocol)
	}
	if outcome.Request.Status != model.StatusAccepted {
		t.Errorf("request should be ACCEPTED, got %s", outcome.Request.Status)
	}
	if outcome.CounterRequest != nil {
		t.Error("interest accept is asymmetric, no counter request expected")
	}

	// no reciprocal acceptance appears on the sender's side
	accs, _ := env.acceptances.ListByAcceptor(context.Background(), "t1")
	if len(accs) != 0 {
		t.Errorf("no reciprocal acceptance should exist for the owner, got %d", len(accs))
	}
	got, _ := env.acceptances.GetByID(context.Background(), sent.ID)
	if got.Status != model.AcceptanceApproved || got.AcceptedAt == nil {
		t.Errorf("acceptance should be APPROVED with a timestamp, got %s", got.Status)
	}
}

func TestInterestService_AcceptInterest_NonOwnerForbidden(t *testing.T) {
	env := newMockEnv()
	seedReferences(env)
	interest, transfer := setupInterestService(env)
	env.seedTeacher("t1", "Amara", "Silva")
	env.seedTeacher("t2", "Bandu", "Perera")
	env.seedTeacher("t3", "Chatura", "Fernando")

	r := createRequest(t, transfer, "t1", "Colombo", []string{"Galle"})
	verifyRequest(t, transfer, r.ID)
	sent, _ := interest.SendInterest(context.Background(), r.ID, "t2", "")

	if _, err := interest.AcceptInterest(context.Background(), sent.ID, "t3"); !pkgerrors.IsForbidden(err) {
		t.Errorf("expected Forbidden for non-owner accept, got %v", err)
	}
}

func TestInterestService_RejectInterest_LeavesRequestStatus(t *testing.T) {
	env := newMockEnv()
	seedReferences(env)
	interest, transfer := setupInterestService(env)
	env.seedTeacher("t1", "Amara", "Silva")
	env.seedTeacher("t2", "Bandu", "Perera")

	r := createRequest(t, transfer, "t1", "Colombo", []string{"Galle"})
	verifyRequest(t, transfer, r.ID)
	sent, _ := interest.SendInterest(context.Background(), r.ID, "t2", "")

	before, _ := env.transfers.GetByID(context.Background(), r.ID)

	got, err := interest.RejectInterest(context.Background(), sent.ID, "t1", "sorry")
	if err != nil {
		t.Fatalf("RejectInterest should succeed: %v", err)
	}
	if got.Status != model.AcceptanceRejected {
		t.Errorf("expected REJECTED, got %s", got.Status)
	}

	after, _ := env.transfers.GetByID(context.Background(), r.ID)
	if after.Status != before.Status {
		t.Errorf("reject must not change request status: %s -> %s", before.Status, after.Status)
	}
}

func TestInterestService_ReceivedAndSentLists(t *testing.T) {
	env := newMockEnv()
	seedReferences(env)
	interest, transfer := setupInterestService(env)
	env.seedTeacher("t1", "Amara", "Silva")
	env.seedTeacher("t2", "Bandu", "Perera")
	env.seedTeacher("t3", "Chatura", "Fernando")

	r := createRequest(t, transfer, "t1", "Colombo", []string{"Galle"})
	verifyRequest(t, transfer, r.ID)
	if _, err := interest.SendInterest(context.Background(), r.ID, "t2", ""); err != nil {
		t.Fatalf("SendInterest should succeed: %v", err)
	}
	if _, err := interest.SendInterest(context.Background(), r.ID, "t3", ""); err != nil {
		t.Fatalf("SendInterest should succeed: %v", err)
	}

	received, err := interest.GetReceivedInterests(context.Background(), r.ID, "t1")
	if err != nil {
		t.Fatalf("GetReceivedInterests should succeed: %v", err)
	}
	if len(received) != 2 {
		t.Errorf("expected 2 received interests, got %d", len(received))
	}

	// only the owner may list received interests
	if _, err := interest.GetReceivedInterests(context.Background(), r.ID, "t2"); !pkgerrors.IsForbidden(err) {
		t.Errorf("expected Forbidden for non-owner listing, got %v", err)
	}

	sent, err := interest.GetSentInterests(context.Background(), "t2")
	if err != nil {
		t.Fatalf("GetSentInterests should succeed: %v", err)
	}
	if len(sent) != 1 || sent[0].TransferRequestID != r.ID {
		t.Errorf("expected t2's single sent interest on %s, got %+v", r.ID, sent)
	}
}
