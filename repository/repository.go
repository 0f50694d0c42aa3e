// Package repository defines the storage contracts for services and
// checkout orders, plus two implementations: a gorm/postgres one for
// production and an in-memory one used by the handler tests.
package repository

import (
	"context"
	"errors"

	"cardoctor-backend/models"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = errors.New("not found")

type ServiceRepository interface {
	// List returns every service projected down to its summary fields.
	List(ctx context.Context) ([]models.ServiceSummary, error)
	// GetByID returns the checkout-page projection of one service,
	// or ErrNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*models.ServiceDetail, error)
	// FindByFingerprint looks up a service by the (service_id, title,
	// price) triple used for duplicate pre-checks, or ErrNotFound.
	FindByFingerprint(ctx context.Context, serviceID, title string, price float64) (*models.Service, error)
	Create(ctx context.Context, s *models.Service) error
}

type OrderRepository interface {
	ListByEmail(ctx context.Context, email string) ([]models.ServiceOrder, error)
	Create(ctx context.Context, o *models.ServiceOrder) error
	// SetStatus updates only the status field of one order. A missing id
	// yields a zero-matched result, not an error.
	SetStatus(ctx context.Context, id uuid.UUID, status string) (models.UpdateResult, error)
	// Delete removes one order. A missing id yields a zero-deleted
	// result, not an error.
	Delete(ctx context.Context, id uuid.UUID) (models.DeleteResult, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}
