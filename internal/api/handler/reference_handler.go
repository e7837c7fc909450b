package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/IT22102546/ArmiGo-Research-sub009/internal/service"
	"github.com/IT22102546/ArmiGo-Research-sub009/pkg/response"
)

// ReferenceHandler serves the read-only reference data endpoints.
type ReferenceHandler struct {
	referenceSvc service.ReferenceService
}

// NewReferenceHandler creates a ReferenceHandler.
func NewReferenceHandler(referenceSvc service.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{referenceSvc: referenceSvc}
}

// ListZones returns all zones with their districts.
// GET /api/v1/reference/zones
func (h *ReferenceHandler) ListZones(c *gin.Context) {
	list, err := h.referenceSvc.ListZones(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"list": list})
}

// ListDistricts returns all districts.
// GET /api/v1/reference/districts
func (h *ReferenceHandler) ListDistricts(c *gin.Context) {
	list, err := h.referenceSvc.ListDistricts(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"list": list})
}

// ListSubjects returns all subjects.
// GET /api/v1/reference/subjects
func (h *ReferenceHandler) ListSubjects(c *gin.Context) {
	list, err := h.referenceSvc.ListSubjects(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"list": list})
}

// ListMediums returns all instruction mediums.
// GET /api/v1/reference/mediums
func (h *ReferenceHandler) ListMediums(c *gin.Context) {
	list, err := h.referenceSvc.ListMediums(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"list": list})
}
