package usecase

import (
	"context"
	"time"

	"mdm/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// LockDeviceInput defines the data required to lock a device.
type LockDeviceInput struct {
	DeviceID uuid.UUID
	Message  string
}

// DeviceUnlockInput defines the data a locked device submits to unlock itself.
type DeviceUnlockInput struct {
	IMEI string
	Code string
}

// --- Output DTOs ---

// UnlockCodeOutput returns an unlock code for staff to read to the client.
type UnlockCodeOutput struct {
	Code      string
	ExpiresAt time.Time
}

// DeviceDetailOutput aggregates everything the console shows for one device.
type DeviceDetailOutput struct {
	Device  *entity.Device
	License *entity.License
	Policy  *entity.Policy // nil when no policy is assigned.
}

// DeviceLifecycleUsecase defines the interface for device lifecycle operations.
// All operations are tenant-scoped: a reseller actor may only touch devices it
// manages, while admin actors may touch any device.
type DeviceLifecycleUsecase interface {
	// LockDevice transitions ACTIVE to LOCKED, issues a fresh unlock code and
	// publishes a lock intent to the management channel.
	LockDevice(ctx context.Context, actor Actor, input LockDeviceInput) (*UnlockCodeOutput, error)

	// StaffUnlockCode returns the outstanding unlock code for a LOCKED
	// device, issuing a fresh one when the outstanding code expired.
	StaffUnlockCode(ctx context.Context, actor Actor, deviceID uuid.UUID) (*UnlockCodeOutput, error)

	// DeviceUnlock verifies a code submitted by the device itself, consumes
	// it and transitions LOCKED back to ACTIVE.
	DeviceUnlock(ctx context.Context, input DeviceUnlockInput) (*entity.Device, error)

	// StaffUnlock transitions LOCKED back to ACTIVE from the console without
	// a code and publishes an unlock intent.
	StaffUnlock(ctx context.Context, actor Actor, deviceID uuid.UUID) error

	// ReleaseDevice transitions the record to RELEASED and binds the license
	// permanently to the hardware identifier, in one transaction.
	ReleaseDevice(ctx context.Context, actor Actor, deviceID uuid.UUID) error

	// ListDevices retrieves the reseller's devices, newest first.
	ListDevices(ctx context.Context, actor Actor, resellerID uuid.UUID) ([]*entity.Device, error)

	// ListAllDevices retrieves devices across all tenants. Admin only.
	ListAllDevices(ctx context.Context, actor Actor) ([]*entity.Device, error)

	// GetDeviceDetail aggregates the device, its license and its policy.
	GetDeviceDetail(ctx context.Context, actor Actor, deviceID uuid.UUID) (*DeviceDetailOutput, error)

	// UpdateClientInfo mutates the customer metadata attached to a device.
	UpdateClientInfo(ctx context.Context, actor Actor, deviceID uuid.UUID, info *entity.ClientInfo) error

	// RequestLocation publishes a location report request to the management channel.
	RequestLocation(ctx context.Context, actor Actor, deviceID uuid.UUID) error

	// RebootDevice publishes a reboot intent to the management channel.
	RebootDevice(ctx context.Context, actor Actor, deviceID uuid.UUID) error
}
