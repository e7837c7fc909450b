package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/IT22102546/ArmiGo-Research-sub009/internal/model"
	pkgerrors "github.com/IT22102546/ArmiGo-Research-sub009/pkg/errors"
)

// BrowseQuery holds resolved filter values for public request listing.
// Empty/nil fields are ignored.
type BrowseQuery struct {
	ExcludeRequesterID string
	FromZoneID         string
	ToZoneID           string
	SubjectID          string
	MediumID           string
	Level              string
	CurrentDistrictID  string
	CurrentSchoolType  string
	IsInternalTeacher  *bool
	MinYearsOfService  *int
}

// AdminQuery holds admin listing filters.
type AdminQuery struct {
	Status   string
	Verified *bool
	Search   string
}

// TransferRequestRepository is the transfer request data access
// interface.
type TransferRequestRepository interface {
	Create(ctx context.Context, req *model.TransferRequest, zoneIDs []string) error
	GetByID(ctx context.Context, id string) (*model.TransferRequest, error)
	GetByUniqueID(ctx context.Context, uniqueID string) (*model.TransferRequest, error)
	GetActiveByRequester(ctx context.Context, requesterID string) (*model.TransferRequest, error)
	ListByRequester(ctx context.Context, requesterID string) ([]model.TransferRequest, error)
	Browse(ctx context.Context, q BrowseQuery, offset, limit int) ([]model.TransferRequest, int64, error)
	ListCandidates(ctx context.Context, excludeRequesterID string) ([]model.TransferRequest, error)
	Update(ctx context.Context, req *model.TransferRequest) error
	ReplaceDesiredZones(ctx context.Context, requestID string, zoneIDs []string) error
	NextSequence(ctx context.Context, year int) (int, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
	AdminList(ctx context.Context, q AdminQuery, offset, limit int) ([]model.TransferRequest, int64, error)
}

// transferRequestRepo is the GORM implementation of
// TransferRequestRepository.
type transferRequestRepo struct {
	db *gorm.DB
}

// NewTransferRequestRepo creates a TransferRequestRepository instance.
func NewTransferRequestRepo(db *gorm.DB) TransferRequestRepository {
	return &transferRequestRepo{db: db}
}

func (r *transferRequestRepo) Create(ctx context.Context, req *model.TransferRequest, zoneIDs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(req).Error; err != nil {
			return err
		}
		for i, zoneID := range zoneIDs {
			dz := model.TransferRequestDesiredZone{
				TransferRequestID: req.TransferRequestID,
				ZoneID:            zoneID,
				Priority:          i + 1,
			}
			if err := tx.Create(&dz).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *transferRequestRepo) GetByID(ctx context.Context, id string) (*model.TransferRequest, error) {
	var req model.TransferRequest
	err := r.preloaded(ctx).
		Where("transfer_request_id = ?", id).
		First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *transferRequestRepo) GetByUniqueID(ctx context.Context, uniqueID string) (*model.TransferRequest, error) {
	var req model.TransferRequest
	err := r.preloaded(ctx).
		Where("unique_id = ?", uniqueID).
		First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// GetActiveByRequester returns the requester's request in an active
// status, or gorm.ErrRecordNotFound when there is none. At most one
// can exist per requester.
func (r *transferRequestRepo) GetActiveByRequester(ctx context.Context, requesterID string) (*model.TransferRequest, error) {
	var req model.TransferRequest
	err := r.preloaded(ctx).
		Where("requester_id = ? AND status IN ?", requesterID,
			[]string{model.StatusPending, model.StatusVerified, model.StatusMatched}).
		First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *transferRequestRepo) ListByRequester(ctx context.Context, requesterID string) ([]model.TransferRequest, error) {
	var reqs []model.TransferRequest
	err := r.preloaded(ctx).
		Where("requester_id = ?", requesterID).
		Order("created_at DESC").
		Find(&reqs).Error
	return reqs, err
}

func (r *transferRequestRepo) Browse(ctx context.Context, q BrowseQuery, offset, limit int) ([]model.TransferRequest, int64, error) {
	db := r.db.WithContext(ctx).Model(&model.TransferRequest{}).
		Where("status = ? AND verified = ?", model.StatusVerified, true)

	if q.ExcludeRequesterID != "" {
		db = db.Where("requester_id <> ?", q.ExcludeRequesterID)
	}
	if q.FromZoneID != "" {
		db = db.Where("from_zone_id = ?", q.FromZoneID)
	}
	if q.ToZoneID != "" {
		db = db.Where("transfer_request_id IN (?)",
			r.db.Model(&model.TransferRequestDesiredZone{}).
				Select("transfer_request_id").
				Where("zone_id = ?", q.ToZoneID))
	}
	if q.SubjectID != "" {
		db = db.Where("subject_id = ?", q.SubjectID)
	}
	if q.MediumID != "" {
		db = db.Where("medium_id = ?", q.MediumID)
	}
	if q.Level != "" {
		db = db.Where("level = ?", q.Level)
	}
	if q.CurrentDistrictID != "" {
		db = db.Where("current_district_id = ?", q.CurrentDistrictID)
	}
	if q.CurrentSchoolType != "" {
		db = db.Where("current_school_type = ?", q.CurrentSchoolType)
	}
	if q.IsInternalTeacher != nil {
		db = db.Where("is_internal_teacher = ?", *q.IsInternalTeacher)
	}
	if q.MinYearsOfService != nil {
		db = db.Where("years_of_service >= ?", *q.MinYearsOfService)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reqs []model.TransferRequest
	err := db.
		Preload("Requester").
		Preload("FromZone").
		Preload("Subject").
		Preload("Medium").
		Preload("DesiredZones", orderByPriority).
		Preload("DesiredZones.Zone").
		Preload("CurrentDistrict").
		Preload("Acceptances").
		Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&reqs).Error
	if err != nil {
		return nil, 0, err
	}
	return reqs, total, nil
}

// ListCandidates returns all verified, matchable requests excluding the
// given requester's own. Compatibility scoring happens in the service.
func (r *transferRequestRepo) ListCandidates(ctx context.Context, excludeRequesterID string) ([]model.TransferRequest, error) {
	var reqs []model.TransferRequest
	err := r.preloaded(ctx).
		Where("status = ? AND verified = ? AND requester_id <> ?",
			model.StatusVerified, true, excludeRequesterID).
		Find(&reqs).Error
	return reqs, err
}

// Update persists req guarded by its version column. Returns
// pkgerrors.ErrOptimisticLock when a concurrent writer got there first.
func (r *transferRequestRepo) Update(ctx context.Context, req *model.TransferRequest) error {
	current := req.Version
	req.Version = current + 1

	res := r.db.WithContext(ctx).
		Model(&model.TransferRequest{}).
		Where("transfer_request_id = ? AND version = ?", req.TransferRequestID, current).
		Select("*").
		Omit("transfer_request_id", "created_at").
		Updates(req)
	if res.Error != nil {
		req.Version = current
		return res.Error
	}
	if res.RowsAffected == 0 {
		req.Version = current
		return pkgerrors.ErrOptimisticLock
	}
	return nil
}

func (r *transferRequestRepo) ReplaceDesiredZones(ctx context.Context, requestID string, zoneIDs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("transfer_request_id = ?", requestID).
			Delete(&model.TransferRequestDesiredZone{}).Error; err != nil {
			return err
		}
		for i, zoneID := range zoneIDs {
			dz := model.TransferRequestDesiredZone{
				TransferRequestID: requestID,
				ZoneID:            zoneID,
				Priority:          i + 1,
			}
			if err := tx.Create(&dz).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// NextSequence atomically increments and returns the per-year counter
// backing unique id generation.
func (r *transferRequestRepo) NextSequence(ctx context.Context, year int) (int, error) {
	var value int
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO transfer_sequences (year, value) VALUES (?, 1)
		ON CONFLICT (year) DO UPDATE SET value = transfer_sequences.value + 1
		RETURNING value`, year).Scan(&value).Error
	if err != nil {
		return 0, err
	}
	return value, nil
}

func (r *transferRequestRepo) CountByStatus(ctx context.Context) (map[string]int64, error) {
	type row struct {
		Status string
		Count  int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&model.TransferRequest{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, rw := range rows {
		out[rw.Status] = rw.Count
	}
	return out, nil
}

func (r *transferRequestRepo) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.TransferRequest{}).
		Where("created_at >= ?", since).
		Count(&count).Error
	return count, err
}

func (r *transferRequestRepo) AdminList(ctx context.Context, q AdminQuery, offset, limit int) ([]model.TransferRequest, int64, error) {
	db := r.db.WithContext(ctx).Model(&model.TransferRequest{})

	if q.Status != "" {
		db = db.Where("status = ?", q.Status)
	}
	if q.Verified != nil {
		db = db.Where("verified = ?", *q.Verified)
	}
	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		db = db.Where(
			"unique_id ILIKE ? OR requester_id IN (?)",
			pattern,
			r.db.Model(&model.User{}).
				Select("user_id").
				Where("first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ?",
					pattern, pattern, pattern))
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reqs []model.TransferRequest
	err := db.
		Preload("Requester").
		Preload("FromZone").
		Preload("Subject").
		Preload("Medium").
		Preload("DesiredZones", orderByPriority).
		Preload("DesiredZones.Zone").
		Preload("Acceptances").
		Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&reqs).Error
	if err != nil {
		return nil, 0, err
	}
	return reqs, total, nil
}

// preloaded builds the standard fully-preloaded request query.
func (r *transferRequestRepo) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Requester").
		Preload("FromZone").
		Preload("FromZone.District").
		Preload("CurrentDistrict").
		Preload("Subject").
		Preload("Medium").
		Preload("DesiredZones", orderByPriority).
		Preload("DesiredZones.Zone").
		Preload("Acceptances").
		Preload("Acceptances.Acceptor")
}

func orderByPriority(db *gorm.DB) *gorm.DB {
	return db.Order("priority ASC")
}
