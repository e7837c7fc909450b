package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/IT22102546/ArmiGo-Research-sub009/internal/dto"
	"github.com/IT22102546/ArmiGo-Research-sub009/internal/service"
	"github.com/IT22102546/ArmiGo-Research-sub009/pkg/response"
)

// notificationErrBase is the error-code block for notifications.
const notificationErrBase = 15100

// NotificationHandler serves the in-app notification endpoints.
type NotificationHandler struct {
	notificationSvc service.NotificationService
}

// NewNotificationHandler creates a NotificationHandler.
func NewNotificationHandler(notificationSvc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationSvc: notificationSvc}
}

// List returns the caller's notifications, newest first.
// GET /api/v1/notifications
func (h *NotificationHandler) List(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var page dto.PaginationRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		response.BadRequest(c, 10001, "request validation failed")
		return
	}

	list, total, err := h.notificationSvc.List(c.Request.Context(), userID, page.GetOffset(), page.GetPageSize())
	if err != nil {
		respondServiceError(c, err, notificationErrBase)
		return
	}

	response.OKPage(c, list, total, page.GetPage(), page.GetPageSize())
}

// MarkRead marks one notification as read.
// PUT /api/v1/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "notification id is required")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.notificationSvc.MarkRead(c.Request.Context(), id, userID); err != nil {
		respondServiceError(c, err, notificationErrBase)
		return
	}

	response.OK(c, nil)
}

// MarkAllRead marks every notification of the caller as read.
// POST /api/v1/notifications/read-all
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.notificationSvc.MarkAllRead(c.Request.Context(), userID); err != nil {
		respondServiceError(c, err, notificationErrBase)
		return
	}

	response.OK(c, nil)
}

// UnreadCount returns the caller's unread notification count.
// GET /api/v1/notifications/unread-count
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	count, err := h.notificationSvc.CountUnread(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, notificationErrBase)
		return
	}

	response.OK(c, gin.H{"count": count})
}
