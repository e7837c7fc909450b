package dto

import "time"

// SendMessageRequest is the chat message payload.
type SendMessageRequest struct {
	Content string `json:"content" binding:"required,min=1,max=4000"`
}

// MessageResponse is one chat message in a transfer thread.
type MessageResponse struct {
	ID                string      `json:"id"`
	TransferRequestID string      `json:"transfer_request_id"`
	SenderID          string      `json:"sender_id"`
	Sender            *PartyBrief `json:"sender,omitempty"`
	Content           string      `json:"content"`
	Read              bool        `json:"read"`
	CreatedAt         time.Time   `json:"created_at"`
}

// UnreadCountResponse is the per-user unread message tally.
type UnreadCountResponse struct {
	Count int64 `json:"count"`
}
