package repository

import (
	"context"

	"mdm/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for license persistence.
var (
	// ErrLicenseNotFound is returned when a license is not found.
	ErrLicenseNotFound = errors.New("license not found")
	// ErrNoAvailableLicense is returned when a reseller has no AVAILABLE license to claim.
	ErrNoAvailableLicense = errors.New("no available license")
	// ErrLicenseStateConflict is returned when a guarded transition matches no row,
	// meaning the license is not in the expected prior state.
	ErrLicenseStateConflict = errors.New("license state conflict")
)

// LicenseRepository defines the interface for license-related database operations.
// All state transitions are conditional updates guarded by the expected prior
// state so that concurrent callers cannot both win.
type LicenseRepository interface {
	// CreateBatch persists newly granted licenses.
	CreateBatch(ctx context.Context, licenses []*entity.License) error

	// FindByID retrieves a license by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.License, error)

	// FindByKey retrieves a license by its activation key.
	FindByKey(ctx context.Context, key string) (*entity.License, error)

	// ListByReseller retrieves all licenses of a reseller, newest first.
	ListByReseller(ctx context.Context, resellerID uuid.UUID) ([]*entity.License, error)

	// FindBoundByIMEI retrieves the reseller's BOUND license for a hardware
	// identifier, if one exists. Used to reactivate on re-enrollment.
	FindBoundByIMEI(ctx context.Context, resellerID uuid.UUID, imei string) (*entity.License, error)

	// ClaimAvailable atomically claims one AVAILABLE license of the reseller,
	// moving it to IN_USE with no bound hardware yet. Concurrent claims never
	// return the same license.
	ClaimAvailable(ctx context.Context, resellerID uuid.UUID) (*entity.License, error)

	// AssignIMEI records the enrolling hardware on a reserved license
	// (IN_USE with no bound hardware).
	AssignIMEI(ctx context.Context, id uuid.UUID, imei string) error

	// ReleaseReservation returns a reserved license (IN_USE, no bound hardware)
	// to AVAILABLE when its enrollment token expires unconsumed.
	ReleaseReservation(ctx context.Context, id uuid.UUID) error

	// BindToDevice transitions IN_USE to BOUND, permanently recording the
	// hardware identifier of the released device.
	BindToDevice(ctx context.Context, id uuid.UUID, imei string) error

	// Reactivate transitions BOUND back to IN_USE, but only when the stored
	// hardware identifier matches the re-enrolling one.
	Reactivate(ctx context.Context, id uuid.UUID, imei string) error

	// Summary returns the reseller's license counts by state.
	Summary(ctx context.Context, resellerID uuid.UUID) (*entity.LicenseSummary, error)

	// Count returns the total number of licenses across all resellers.
	Count(ctx context.Context) (int64, error)
}
