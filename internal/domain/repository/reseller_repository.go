package repository

import (
	"context"

	"mdm/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for reseller persistence.
var (
	// ErrResellerNotFound is returned when a reseller is not found.
	ErrResellerNotFound = errors.New("reseller not found")
	// ErrDuplicateReseller is returned when the email is already registered.
	ErrDuplicateReseller = errors.New("reseller already exists")
)

// ResellerRepository defines the interface for reseller-related database operations.
type ResellerRepository interface {
	// Create persists a new reseller tenant.
	Create(ctx context.Context, reseller *entity.Reseller) error

	// FindByID retrieves a reseller by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Reseller, error)

	// FindByEmail retrieves a reseller by its login email.
	FindByEmail(ctx context.Context, email string) (*entity.Reseller, error)

	// List retrieves all resellers ordered by business name.
	List(ctx context.Context) ([]*entity.Reseller, error)

	// Count returns the total number of resellers.
	Count(ctx context.Context) (int64, error)
}
