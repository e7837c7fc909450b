package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/IT22102546/ArmiGo-Research-sub009/internal/dto"
	"github.com/IT22102546/ArmiGo-Research-sub009/internal/service"
	"github.com/IT22102546/ArmiGo-Research-sub009/pkg/response"
)

// messageErrBase is the error-code block for the messaging module.
const messageErrBase = 14100

// MessageHandler serves the post-match chat endpoints.
type MessageHandler struct {
	messageSvc service.MessageService
}

// NewMessageHandler creates a MessageHandler.
func NewMessageHandler(messageSvc service.MessageService) *MessageHandler {
	return &MessageHandler{messageSvc: messageSvc}
}

// Send posts a message into an unlocked request thread.
// POST /api/v1/transfers/:id/messages
func (h *MessageHandler) Send(c *gin.Context) {
	requestID := c.Param("id")
	if requestID == "" {
		response.BadRequest(c, 10001, "request id is required")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "request validation failed")
		return
	}

	result, err := h.messageSvc.SendMessage(c.Request.Context(), requestID, userID, req.Content)
	if err != nil {
		respondServiceError(c, err, messageErrBase)
		return
	}

	response.Created(c, result)
}

// List returns the thread for a request, oldest first.
// GET /api/v1/transfers/:id/messages
func (h *MessageHandler) List(c *gin.Context) {
	requestID := c.Param("id")
	if requestID == "" {
		response.BadRequest(c, 10001, "request id is required")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var page dto.PaginationRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		response.BadRequest(c, 10001, "request validation failed")
		return
	}

	list, total, err := h.messageSvc.GetMessages(c.Request.Context(), requestID, userID, &page)
	if err != nil {
		respondServiceError(c, err, messageErrBase)
		return
	}

	response.OKPage(c, list, total, page.GetPage(), page.GetPageSize())
}

// MarkRead marks every message in the request thread as read for the
// caller. :id is the transfer request the thread belongs to.
// PUT /api/v1/messages/:id/read
func (h *MessageHandler) MarkRead(c *gin.Context) {
	requestID := c.Param("id")
	if requestID == "" {
		response.BadRequest(c, 10001, "request id is required")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.messageSvc.MarkRead(c.Request.Context(), requestID, userID); err != nil {
		respondServiceError(c, err, messageErrBase)
		return
	}

	response.OK(c, nil)
}

// UnreadCount returns the caller's unread badge count across all of
// their unlocked threads.
// GET /api/v1/messages/unread-count
func (h *MessageHandler) UnreadCount(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.messageSvc.CountUnread(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, messageErrBase)
		return
	}

	response.OK(c, result)
}
