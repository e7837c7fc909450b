package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/IT22102546/ArmiGo-Research-sub009/internal/dto"
	"github.com/IT22102546/ArmiGo-Research-sub009/internal/service"
	"github.com/IT22102546/ArmiGo-Research-sub009/pkg/response"
)

// interestErrBase is the error-code block for the interest module.
const interestErrBase = 13100

// InterestHandler serves the asymmetric interest workflow endpoints.
type InterestHandler struct {
	interestSvc service.InterestService
}

// NewInterestHandler creates an InterestHandler.
func NewInterestHandler(interestSvc service.InterestService) *InterestHandler {
	return &InterestHandler{interestSvc: interestSvc}
}

// Send expresses interest in another teacher's request.
// POST /api/v1/transfers/:id/interests
func (h *InterestHandler) Send(c *gin.Context) {
	requestID := c.Param("id")
	if requestID == "" {
		response.BadRequest(c, 10001, "request id is required")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.SendInterestRequest
	_ = c.ShouldBindJSON(&req)

	result, err := h.interestSvc.SendInterest(c.Request.Context(), requestID, userID, req.Notes)
	if err != nil {
		respondServiceError(c, err, interestErrBase)
		return
	}

	response.Created(c, result)
}

// Received lists the interests sent against the caller's request.
// GET /api/v1/transfers/:id/interests
func (h *InterestHandler) Received(c *gin.Context) {
	requestID := c.Param("id")
	if requestID == "" {
		response.BadRequest(c, 10001, "request id is required")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	list, err := h.interestSvc.GetReceivedInterests(c.Request.Context(), requestID, userID)
	if err != nil {
		respondServiceError(c, err, interestErrBase)
		return
	}

	response.OK(c, gin.H{"list": list})
}

// Sent lists the interests the caller has sent.
// GET /api/v1/interests/sent
func (h *InterestHandler) Sent(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	list, err := h.interestSvc.GetSentInterests(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, interestErrBase)
		return
	}

	response.OK(c, gin.H{"list": list})
}

// Accept approves a received interest, moving the caller's request to
// ACCEPTED and unlocking chat.
// POST /api/v1/interests/:id/accept
func (h *InterestHandler) Accept(c *gin.Context) {
	acceptanceID := c.Param("id")
	if acceptanceID == "" {
		response.BadRequest(c, 10001, "interest id is required")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.interestSvc.AcceptInterest(c.Request.Context(), acceptanceID, userID)
	if err != nil {
		respondServiceError(c, err, interestErrBase)
		return
	}

	response.OK(c, result)
}

// Reject declines a received interest. The request status is left
// untouched so other interests stay live.
// POST /api/v1/interests/:id/reject
func (h *InterestHandler) Reject(c *gin.Context) {
	acceptanceID := c.Param("id")
	if acceptanceID == "" {
		response.BadRequest(c, 10001, "interest id is required")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.RejectInterestRequest
	_ = c.ShouldBindJSON(&req)

	result, err := h.interestSvc.RejectInterest(c.Request.Context(), acceptanceID, userID, req.Reason)
	if err != nil {
		respondServiceError(c, err, interestErrBase)
		return
	}

	response.OK(c, result)
}
