package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/IT22102546/ArmiGo-Research-sub009/internal/dto"
	"github.com/IT22102546/ArmiGo-Research-sub009/internal/service"
	"github.com/IT22102546/ArmiGo-Research-sub009/pkg/response"
)

// transferErrBase is the error-code block for the transfer module.
const transferErrBase = 12100

// TransferHandler serves the transfer request lifecycle endpoints.
type TransferHandler struct {
	transferSvc service.TransferService
	matchSvc    service.MatchService
}

// NewTransferHandler creates a TransferHandler.
func NewTransferHandler(transferSvc service.TransferService, matchSvc service.MatchService) *TransferHandler {
	return &TransferHandler{transferSvc: transferSvc, matchSvc: matchSvc}
}

// Create registers a new transfer request for the caller.
// POST /api/v1/transfers
func (h *TransferHandler) Create(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "request validation failed")
		return
	}

	result, err := h.transferSvc.Create(c.Request.Context(), userID, &req)
	if err != nil {
		respondServiceError(c, err, transferErrBase)
		return
	}

	response.Created(c, result)
}

// Browse lists verified requests with the viewer's disclosure stage
// applied per row. Anonymous viewers get the public projection.
// GET /api/v1/transfers
func (h *TransferHandler) Browse(c *gin.Context) {
	var filters dto.BrowseTransferFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.BadRequest(c, 10001, "request validation failed")
		return
	}

	viewerID, _ := Viewer(c)

	list, total, err := h.transferSvc.Browse(c.Request.Context(), viewerID, &filters)
	if err != nil {
		respondServiceError(c, err, transferErrBase)
		return
	}

	response.OKPage(c, list, total, filters.GetPage(), filters.GetPageSize())
}

// My lists the caller's own requests.
// GET /api/v1/transfers/my
func (h *TransferHandler) My(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	list, err := h.transferSvc.GetMyRequests(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, transferErrBase)
		return
	}

	response.OK(c, gin.H{"list": list})
}

// Matches returns compatible counterpart requests ranked by score.
// GET /api/v1/transfers/matches
func (h *TransferHandler) Matches(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	list, err := h.matchSvc.FindMatches(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, transferErrBase)
		return
	}

	response.OK(c, gin.H{"list": list})
}

// Get returns one request under the viewer's disclosure stage.
// GET /api/v1/transfers/:id
func (h *TransferHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "request id is required")
		return
	}

	viewerID, viewerRole := Viewer(c)

	result, err := h.transferSvc.Get(c.Request.Context(), viewerID, viewerRole, id)
	if err != nil {
		respondServiceError(c, err, transferErrBase)
		return
	}

	response.OK(c, result)
}

// Accept performs a direct mutual accept against a counterpart
// request, moving both sides to MATCHED atomically.
// POST /api/v1/transfers/:id/accept
func (h *TransferHandler) Accept(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "request id is required")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.AcceptTransferRequest
	_ = c.ShouldBindJSON(&req)

	result, err := h.transferSvc.AcceptTransfer(c.Request.Context(), id, userID, req.Notes)
	if err != nil {
		respondServiceError(c, err, transferErrBase)
		return
	}

	response.OK(c, result)
}

// Edit updates mutable fields of the caller's own request.
// PUT /api/v1/transfers/:id
func (h *TransferHandler) Edit(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "request id is required")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "request validation failed")
		return
	}

	result, err := h.transferSvc.Edit(c.Request.Context(), id, userID, &req)
	if err != nil {
		respondServiceError(c, err, transferErrBase)
		return
	}

	response.OK(c, result)
}

// Cancel withdraws the caller's own request.
// DELETE /api/v1/transfers/:id
func (h *TransferHandler) Cancel(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "request id is required")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.transferSvc.Cancel(c.Request.Context(), id, userID); err != nil {
		respondServiceError(c, err, transferErrBase)
		return
	}

	response.OK(c, nil)
}

// Pause suspends an active request, remembering where it left off.
// POST /api/v1/transfers/:id/pause
func (h *TransferHandler) Pause(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "request id is required")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.PauseTransferRequest
	_ = c.ShouldBindJSON(&req)

	result, err := h.transferSvc.Pause(c.Request.Context(), id, userID, req.Reason)
	if err != nil {
		respondServiceError(c, err, transferErrBase)
		return
	}

	response.OK(c, result)
}

// Resume restores a paused request to its prior status.
// POST /api/v1/transfers/:id/resume
func (h *TransferHandler) Resume(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "request id is required")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.transferSvc.Resume(c.Request.Context(), id, userID)
	if err != nil {
		respondServiceError(c, err, transferErrBase)
		return
	}

	response.OK(c, result)
}

// Verify approves or declines a pending request. Idempotent when the
// request is already verified.
// POST /api/v1/transfers/:id/verify
func (h *TransferHandler) Verify(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "request id is required")
		return
	}

	adminID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.VerifyTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "request validation failed")
		return
	}

	result, err := h.transferSvc.Verify(c.Request.Context(), id, adminID, &req)
	if err != nil {
		respondServiceError(c, err, transferErrBase)
		return
	}

	response.OK(c, result)
}

// VerifyStrict is the admin-console variant that refuses to verify an
// already verified request.
// POST /api/v1/admin/transfers/:id/verify
func (h *TransferHandler) VerifyStrict(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "request id is required")
		return
	}

	adminID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.VerifyTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "request validation failed")
		return
	}

	result, err := h.transferSvc.VerifyStrict(c.Request.Context(), id, adminID, &req)
	if err != nil {
		respondServiceError(c, err, transferErrBase)
		return
	}

	response.OK(c, result)
}

// Complete closes out a matched request.
// POST /api/v1/transfers/:id/complete
func (h *TransferHandler) Complete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "request id is required")
		return
	}

	adminID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.transferSvc.Complete(c.Request.Context(), id, adminID)
	if err != nil {
		respondServiceError(c, err, transferErrBase)
		return
	}

	response.OK(c, result)
}

// AdminList lists all requests with admin filters.
// GET /api/v1/admin/transfers
func (h *TransferHandler) AdminList(c *gin.Context) {
	var filters dto.AdminTransferFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.BadRequest(c, 10001, "request validation failed")
		return
	}

	list, total, err := h.transferSvc.AdminList(c.Request.Context(), &filters)
	if err != nil {
		respondServiceError(c, err, transferErrBase)
		return
	}

	response.OKPage(c, list, total, filters.GetPage(), filters.GetPageSize())
}

// AdminUpdateStatus force-sets a request status.
// PUT /api/v1/admin/transfers/:id/status
func (h *TransferHandler) AdminUpdateStatus(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "request id is required")
		return
	}

	adminID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.AdminStatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "request validation failed")
		return
	}

	result, err := h.transferSvc.AdminUpdateStatus(c.Request.Context(), id, adminID, &req)
	if err != nil {
		respondServiceError(c, err, transferErrBase)
		return
	}

	response.OK(c, result)
}

// Stats returns transfer register statistics.
// GET /api/v1/admin/transfers/stats
func (h *TransferHandler) Stats(c *gin.Context) {
	result, err := h.transferSvc.Stats(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, transferErrBase)
		return
	}

	response.OK(c, result)
}
