// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// LicenseState represents the allocation state of an activation license.
type LicenseState string

const (
	// LicenseStateAvailable means the license is granted to a reseller but not yet claimed.
	LicenseStateAvailable LicenseState = "AVAILABLE"
	// LicenseStateInUse means the license is reserved by an enrollment token or consumed by an active device.
	LicenseStateInUse LicenseState = "IN_USE"
	// LicenseStateBound means the license was released and is permanently linked to a hardware identifier.
	// It can only return to IN_USE when the same hardware re-enrolls.
	LicenseStateBound LicenseState = "BOUND"
)

// License represents a single activation license owned by a reseller.
// Licenses are never deleted; they only transition between states so the
// allocation history stays auditable.
type License struct {
	ID         uuid.UUID    `json:"id"`          // The Global Unique Identifier (GUID) for the license.
	Key        string       `json:"key"`         // Opaque activation key, unique across the system.
	ResellerID uuid.UUID    `json:"reseller_id"` // The reseller who owns this license. Never shared.
	State      LicenseState `json:"state"`       // Current allocation state.
	BoundIMEI  string       `json:"bound_imei"`  // Hardware identifier, present while IN_USE with a device or BOUND.
	CreatedAt  time.Time    `json:"created_at"`  // Timestamp of the administrator grant.
	UpdatedAt  time.Time    `json:"updated_at"`  // Timestamp of the last state transition.
}

// IsReserved reports whether the license is claimed by an enrollment token
// but not yet consumed by a device.
func (l *License) IsReserved() bool {
	return l.State == LicenseStateInUse && l.BoundIMEI == ""
}

// LicenseSummary holds per-reseller license counts by state.
type LicenseSummary struct {
	Total     int64 `json:"total"`
	Available int64 `json:"available"`
	InUse     int64 `json:"in_use"`
	Bound     int64 `json:"bound"`
}
