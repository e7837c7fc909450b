package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/IT22102546/ArmiGo-Research-sub009/internal/model"
	"github.com/IT22102546/ArmiGo-Research-sub009/internal/repository"
)

var ErrExportNoRequests = errors.New("no transfer requests to export")

// ExportService produces the admin transfer register as an Excel
// workbook. The buffer is returned for the handler to stream with the
// appropriate response headers.
type ExportService interface {
	ExportRegister(ctx context.Context, status string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService creates an ExportService instance.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ExportRegister writes one row per transfer request, optionally
// filtered by status, ordered newest first.
func (s *exportService) ExportRegister(ctx context.Context, status string) (*bytes.Buffer, string, error) {
	// 1. Fetch everything matching the filter
	const batch = 500
	var all []model.TransferRequest
	for offset := 0; ; offset += batch {
		reqs, _, err := s.repo.Transfer.AdminList(ctx, repository.AdminQuery{Status: status}, offset, batch)
		if err != nil {
			s.logger.Error("list transfer requests for export failed", zap.Error(err))
			return nil, "", err
		}
		all = append(all, reqs...)
		if len(reqs) < batch {
			break
		}
	}
	if len(all) == 0 {
		return nil, "", ErrExportNoRequests
	}

	// 2. Build the workbook
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Transfer Register"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{
		"Reference", "Requester", "Email", "From Zone", "Desired Zones",
		"Subject", "Medium", "Level", "Years of Service", "Status",
		"Verified", "Interests", "Created",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, tr := range all {
		values := []interface{}{
			tr.UniqueID,
			requesterName(&tr),
			requesterEmail(&tr),
			zoneName(tr.FromZone),
			strings.Join(desiredZoneNames(&tr), ", "),
			subjectName(tr.Subject),
			mediumName(tr.Medium),
			tr.Level,
			tr.YearsOfService,
			tr.Status,
			tr.Verified,
			len(tr.Acceptances),
			tr.CreatedAt.Format("2006-01-02"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("write excel buffer failed", zap.Error(err))
		return nil, "", err
	}

	filename := fmt.Sprintf("transfer-register-%s.xlsx", time.Now().Format("2006-01-02"))
	return buf, filename, nil
}

func requesterName(tr *model.TransferRequest) string {
	if tr.Requester == nil {
		return ""
	}
	return tr.Requester.FullName()
}

func requesterEmail(tr *model.TransferRequest) string {
	if tr.Requester == nil {
		return ""
	}
	return tr.Requester.Email
}

func zoneName(z *model.Zone) string {
	if z == nil {
		return ""
	}
	return z.Name
}

func subjectName(sub *model.Subject) string {
	if sub == nil {
		return ""
	}
	return sub.Name
}

func mediumName(m *model.Medium) string {
	if m == nil {
		return ""
	}
	return m.Name
}

func desiredZoneNames(tr *model.TransferRequest) []string {
	names := make([]string, 0, len(tr.DesiredZones))
	for _, dz := range tr.DesiredZones {
		if dz.Zone != nil {
			names = append(names, dz.Zone.Name)
		}
	}
	return names
}
