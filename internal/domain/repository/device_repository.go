package repository

import (
	"context"
	"time"

	"mdm/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when the hardware identifier already has
	// an ACTIVE or LOCKED record.
	ErrDuplicateDevice = errors.New("device already enrolled")
	// ErrDeviceStateConflict is returned when a guarded transition matches no
	// row, meaning the device is not in the expected prior state.
	ErrDeviceStateConflict = errors.New("device state conflict")
)

// DeviceSummary holds per-reseller device counts by state.
type DeviceSummary struct {
	Active   int64 `json:"active"`
	Locked   int64 `json:"locked"`
	Released int64 `json:"released"`
}

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// Create persists a new device record in ACTIVE state.
	Create(ctx context.Context, device *entity.Device) error

	// FindByID retrieves a device record by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Device, error)

	// FindManagedByIMEI retrieves the ACTIVE or LOCKED record for a hardware
	// identifier, if one exists. Released records are not considered.
	FindManagedByIMEI(ctx context.Context, imei string) (*entity.Device, error)

	// ListByReseller retrieves all device records of a reseller, newest first.
	ListByReseller(ctx context.Context, resellerID uuid.UUID) ([]*entity.Device, error)

	// ListAll retrieves device records across all resellers, newest first.
	ListAll(ctx context.Context) ([]*entity.Device, error)

	// Lock transitions ACTIVE to LOCKED and records the lock screen message.
	Lock(ctx context.Context, id uuid.UUID, message string) error

	// Unlock transitions LOCKED to ACTIVE and clears the lock screen message.
	Unlock(ctx context.Context, id uuid.UUID) error

	// Release transitions ACTIVE or LOCKED to the terminal RELEASED state.
	Release(ctx context.Context, id uuid.UUID) error

	// UpdateClientInfo mutates the customer metadata regardless of state.
	UpdateClientInfo(ctx context.Context, id uuid.UUID, info *entity.ClientInfo) error

	// AssignPolicy records the device's policy pointer.
	AssignPolicy(ctx context.Context, id uuid.UUID, policyID uuid.UUID) error

	// ReassignPolicy moves every device pointing at one policy to another.
	ReassignPolicy(ctx context.Context, fromPolicyID, toPolicyID uuid.UUID) error

	// UpdateTelemetry overwrites the last-known snapshot if reportedAt is not
	// older than the stored one. Returns false when the report was stale.
	UpdateTelemetry(ctx context.Context, id uuid.UUID, battery int, lat, lon, accuracy float64, reportedAt time.Time) (bool, error)

	// UpdateManagementStatus overwrites the management channel status if
	// reportedAt is not older than the stored one. Returns false when stale.
	UpdateManagementStatus(ctx context.Context, id uuid.UUID, state string, reportedAt time.Time) (bool, error)

	// AppendLocation adds one entry to the device's location history.
	AppendLocation(ctx context.Context, point *entity.LocationPoint) error

	// PruneLocations deletes history entries recorded before the cutoff.
	PruneLocations(ctx context.Context, deviceID uuid.UUID, before time.Time) error

	// ListLocations retrieves history entries recorded since the cutoff, newest first.
	ListLocations(ctx context.Context, deviceID uuid.UUID, since time.Time) ([]*entity.LocationPoint, error)

	// Summary returns the reseller's device counts by state.
	Summary(ctx context.Context, resellerID uuid.UUID) (*DeviceSummary, error)

	// Count returns the total number of device records across all resellers.
	Count(ctx context.Context) (int64, error)
}
