package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/IT22102546/ArmiGo-Research-sub009/internal/service"
	"github.com/IT22102546/ArmiGo-Research-sub009/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler serves the admin export endpoints.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportRegister streams the transfer register as an xlsx workbook,
// optionally filtered by status.
// GET /api/v1/admin/transfers/export?status=xxx
func (h *ExportHandler) ExportRegister(c *gin.Context) {
	status := c.Query("status")

	buf, filename, err := h.exportSvc.ExportRegister(c.Request.Context(), status)
	if err != nil {
		if errors.Is(err, service.ErrExportNoRequests) {
			response.NotFound(c, 16101, "no transfer requests to export")
			return
		}
		response.InternalError(c)
		return
	}

	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Header("Content-Type", xlsxContentType)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
