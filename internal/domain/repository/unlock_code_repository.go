package repository

import (
	"context"

	"mdm/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for unlock code persistence.
var (
	// ErrUnlockCodeNotFound is returned when no ISSUED code exists for a device.
	ErrUnlockCodeNotFound = errors.New("unlock code not found")
	// ErrUnlockCodeStateConflict is returned when consuming a code that is no
	// longer ISSUED.
	ErrUnlockCodeStateConflict = errors.New("unlock code state conflict")
)

// UnlockCodeRepository defines the interface for unlock-code database operations.
// The invariant of at most one ISSUED code per device is kept by superseding
// inside the same transaction that creates the replacement.
type UnlockCodeRepository interface {
	// Create persists a newly issued code.
	Create(ctx context.Context, code *entity.UnlockCode) error

	// FindIssuedByDevice retrieves the single ISSUED code for a device.
	FindIssuedByDevice(ctx context.Context, deviceID uuid.UUID) (*entity.UnlockCode, error)

	// SupersedeIssued marks any ISSUED code of the device as EXPIRED.
	SupersedeIssued(ctx context.Context, deviceID uuid.UUID) error

	// Consume transitions one code from ISSUED to CONSUMED.
	Consume(ctx context.Context, id uuid.UUID) error

	// MarkExpired transitions one code from ISSUED to EXPIRED.
	MarkExpired(ctx context.Context, id uuid.UUID) error
}
