package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/IT22102546/ArmiGo-Research-sub009/internal/model"
	pkgerrors "github.com/IT22102546/ArmiGo-Research-sub009/pkg/errors"
)

// AcceptanceRepository is the interest/acceptance data access
// interface.
type AcceptanceRepository interface {
	CreateUnique(ctx context.Context, acc *model.TransferAcceptance) error
	GetByID(ctx context.Context, id string) (*model.TransferAcceptance, error)
	UpdateStatus(ctx context.Context, id, fromStatus, toStatus string, acceptedAt *time.Time) error
	ListByRequest(ctx context.Context, requestID string) ([]model.TransferAcceptance, error)
	ListByAcceptor(ctx context.Context, acceptorID string) ([]model.TransferAcceptance, error)
}

// acceptanceRepo is the GORM implementation of AcceptanceRepository.
type acceptanceRepo struct {
	db *gorm.DB
}

// NewAcceptanceRepo creates an AcceptanceRepository instance.
func NewAcceptanceRepo(db *gorm.DB) AcceptanceRepository {
	return &acceptanceRepo{db: db}
}

// CreateUnique inserts acc only when the acceptor holds no non-rejected
// acceptance on the same request. Returns a Conflict error otherwise.
// The insert races against the partial unique index; only a violation
// of that index maps to the same Conflict, other insert failures
// propagate as-is.
func (r *acceptanceRepo) CreateUnique(ctx context.Context, acc *model.TransferAcceptance) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing int64
		err := tx.Model(&model.TransferAcceptance{}).
			Where("transfer_request_id = ? AND acceptor_id = ? AND status <> ?",
				acc.TransferRequestID, acc.AcceptorID, model.AcceptanceRejected).
			Count(&existing).Error
		if err != nil {
			return err
		}
		if existing > 0 {
			return pkgerrors.Conflict("an active interest already exists for this request")
		}
		if err := tx.Create(acc).Error; err != nil {
			if isUniqueViolation(err) {
				return pkgerrors.Conflict("an active interest already exists for this request")
			}
			return err
		}
		return nil
	})
}

// isUniqueViolation reports whether err is a PostgreSQL unique-index
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *acceptanceRepo) GetByID(ctx context.Context, id string) (*model.TransferAcceptance, error) {
	var acc model.TransferAcceptance
	err := r.db.WithContext(ctx).
		Preload("Acceptor").
		Preload("Request").
		Preload("Request.Requester").
		Where("acceptance_id = ?", id).
		First(&acc).Error
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

// UpdateStatus moves an acceptance from one status to another.
// Returns ErrOptimisticLock when the row was not in fromStatus.
func (r *acceptanceRepo) UpdateStatus(ctx context.Context, id, fromStatus, toStatus string, acceptedAt *time.Time) error {
	updates := map[string]interface{}{"status": toStatus}
	if acceptedAt != nil {
		updates["accepted_at"] = *acceptedAt
	}
	res := r.db.WithContext(ctx).
		Model(&model.TransferAcceptance{}).
		Where("acceptance_id = ? AND status = ?", id, fromStatus).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return pkgerrors.ErrOptimisticLock
	}
	return nil
}

func (r *acceptanceRepo) ListByRequest(ctx context.Context, requestID string) ([]model.TransferAcceptance, error) {
	var accs []model.TransferAcceptance
	err := r.db.WithContext(ctx).
		Preload("Acceptor").
		Where("transfer_request_id = ?", requestID).
		Order("created_at DESC").
		Find(&accs).Error
	return accs, err
}

func (r *acceptanceRepo) ListByAcceptor(ctx context.Context, acceptorID string) ([]model.TransferAcceptance, error) {
	var accs []model.TransferAcceptance
	err := r.db.WithContext(ctx).
		Preload("Request").
		Preload("Request.Requester").
		Preload("Request.FromZone").
		Preload("Request.Subject").
		Preload("Request.Medium").
		Preload("Request.DesiredZones", orderByPriority).
		Preload("Request.DesiredZones.Zone").
		Where("acceptor_id = ?", acceptorID).
		Order("created_at DESC").
		Find(&accs).Error
	return accs, err
}
