package entity

import (
	"time"

	"github.com/google/uuid"
)

// UnlockCodeState represents the state of a one-time unlock code.
type UnlockCodeState string

const (
	// UnlockCodeStateIssued means the code is outstanding and may be consumed.
	UnlockCodeStateIssued UnlockCodeState = "ISSUED"
	// UnlockCodeStateConsumed means the code was used for a successful unlock.
	UnlockCodeStateConsumed UnlockCodeState = "CONSUMED"
	// UnlockCodeStateExpired means the code aged past its TTL or was superseded.
	UnlockCodeStateExpired UnlockCodeState = "EXPIRED"
)

// UnlockCode is a one-time code that releases a locked device.
// At most one ISSUED code exists per device; issuing a new one supersedes
// any outstanding code.
type UnlockCode struct {
	ID        uuid.UUID       `json:"id"`
	DeviceID  uuid.UUID       `json:"device_id"` // The device this code unlocks.
	Code      string          `json:"code"`      // Random uppercase alphanumeric code.
	State     UnlockCodeState `json:"state"`
	ExpiresAt time.Time       `json:"expires_at"` // Codes fail verification after this instant, even on exact match.
	CreatedAt time.Time       `json:"created_at"`
}

// Expired reports whether the code is past its TTL at the given instant.
func (c *UnlockCode) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}
