package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository aggregates all data access interfaces.
type Repository struct {
	db *gorm.DB

	User         UserRepository
	Reference    ReferenceRepository
	Transfer     TransferRequestRepository
	Acceptance   AcceptanceRepository
	Message      MessageRepository
	Notification NotificationRepository
}

// NewRepository creates the Repository aggregate.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:           db,
		User:         NewUserRepo(db),
		Reference:    NewReferenceRepo(db),
		Transfer:     NewTransferRequestRepo(db),
		Acceptance:   NewAcceptanceRepo(db),
		Message:      NewMessageRepo(db),
		Notification: NewNotificationRepo(db),
	}
}

// Transaction runs fn inside a database transaction. The *Repository
// passed to fn is bound to the transaction; any error returned rolls
// the whole transaction back. A Repository assembled without a
// database runs the callback in place.
func (r *Repository) Transaction(ctx context.Context, fn func(tx *Repository) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}
