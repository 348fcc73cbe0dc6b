package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeviceState represents the lifecycle state of a managed device record.
type DeviceState string

const (
	// DeviceStateActive means the device is enrolled and usable.
	DeviceStateActive DeviceState = "ACTIVE"
	// DeviceStateLocked means the device screen is locked pending an unlock code.
	DeviceStateLocked DeviceState = "LOCKED"
	// DeviceStateReleased is terminal for this record. The license is bound to
	// the hardware identifier and a new record is created if it re-enrolls.
	DeviceStateReleased DeviceState = "RELEASED"
)

// Device represents one enrollment of a physical handset against a license.
type Device struct {
	ID          uuid.UUID   `json:"id"`           // The Global Unique Identifier (GUID) for the device record.
	ResellerID  uuid.UUID   `json:"reseller_id"`  // The reseller managing this device.
	LicenseID   uuid.UUID   `json:"license_id"`   // The license this record consumes.
	IMEI        string      `json:"imei"`         // Hardware identifier, immutable once set.
	State       DeviceState `json:"state"`        // Current lifecycle state.
	ClientName  string      `json:"client_name"`  // Display name of the end customer.
	ClientPhone string      `json:"client_phone"` // Contact phone of the end customer.
	LockMessage string      `json:"lock_message"` // Message shown on the lock screen while LOCKED.
	PolicyID    *uuid.UUID  `json:"policy_id"`    // Assigned configuration policy, nil if none.

	// Last-known telemetry snapshot, overwritten by newer reports only.
	Battery    *int       `json:"battery"`      // Battery percentage at last report.
	Latitude   *float64   `json:"latitude"`     // Last reported latitude.
	Longitude  *float64   `json:"longitude"`    // Last reported longitude.
	Accuracy   *float64   `json:"accuracy"`     // Reported accuracy radius in meters.
	LastSeenAt *time.Time `json:"last_seen_at"` // Device-side timestamp of the last accepted report.

	// Last-known management channel status callback.
	ManagementState string     `json:"management_state"` // State reported by the Android management channel.
	LastReportAt    *time.Time `json:"last_report_at"`   // Timestamp of the last accepted status callback.

	CreatedAt time.Time `json:"created_at"` // Timestamp of enrollment.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}

// IsManaged reports whether the record still accepts lifecycle operations.
func (d *Device) IsManaged() bool {
	return d.State == DeviceStateActive || d.State == DeviceStateLocked
}

// ClientInfo holds the mutable customer metadata attached to a device.
type ClientInfo struct {
	Name  string `json:"client_name"`
	Phone string `json:"client_phone"`
}

// LocationPoint is one retained entry of a device's bounded location history.
type LocationPoint struct {
	ID         uuid.UUID `json:"id"`
	DeviceID   uuid.UUID `json:"device_id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Accuracy   float64   `json:"accuracy"`
	RecordedAt time.Time `json:"recorded_at"` // Device-side timestamp of the report.
}

// FrequentPlace aggregates nearby history points into a most-visited spot.
type FrequentPlace struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Visits    int64     `json:"visits"`
	LastVisit time.Time `json:"last_visit"`
}
