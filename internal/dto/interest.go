package dto

import "time"

// SendInterestRequest is the asymmetric-interest payload.
type SendInterestRequest struct {
	Notes string `json:"notes" binding:"omitempty,max=2000"`
}

// RejectInterestRequest carries the optional rejection reason.
type RejectInterestRequest struct {
	Reason string `json:"reason" binding:"omitempty,max=500"`
}

// InterestResponse is one interest record from either side.
type InterestResponse struct {
	ID                string                 `json:"id"`
	TransferRequestID string                 `json:"transfer_request_id"`
	RequestUniqueID   string                 `json:"request_unique_id,omitempty"`
	AcceptorID        string                 `json:"acceptor_id"`
	Acceptor          *PartyBrief            `json:"acceptor,omitempty"`
	Status            string                 `json:"status"`
	Notes             string                 `json:"notes,omitempty"`
	Request           *TransferMatchResponse `json:"request,omitempty"`
	CreatedAt         time.Time              `json:"created_at"`
	UpdatedAt         time.Time              `json:"updated_at"`
}

// MatchOutcomeResponse reports the result of an accept operation.
// Protocol is "direct" when both sides held active requests and the
// swap completed symmetrically, "interest" otherwise.
type MatchOutcomeResponse struct {
	Protocol       string                   `json:"protocol"`
	Request        *TransferRequestResponse `json:"request"`
	CounterRequest *TransferRequestResponse `json:"counter_request,omitempty"`
	ChatEnabled    bool                     `json:"chat_enabled"`
}
