package entity

import (
	"time"

	"github.com/google/uuid"
)

// EnrollmentTokenState represents the state of a QR enrollment token.
type EnrollmentTokenState string

const (
	// EnrollmentTokenStatePending means the token is issued and its license reserved.
	EnrollmentTokenStatePending EnrollmentTokenState = "PENDING"
	// EnrollmentTokenStateConsumed means a device enrolled with this token.
	EnrollmentTokenStateConsumed EnrollmentTokenState = "CONSUMED"
	// EnrollmentTokenStateExpired means the TTL elapsed before enrollment;
	// the reserved license was returned to the pool.
	EnrollmentTokenStateExpired EnrollmentTokenState = "EXPIRED"
)

// EnrollmentToken reserves a license for a future device enrollment.
// The token value is embedded in the provisioning QR payload scanned during
// the Android Enterprise setup flow.
type EnrollmentToken struct {
	ID         uuid.UUID            `json:"id"`
	Token      string               `json:"token"`       // Random opaque token value.
	ResellerID uuid.UUID            `json:"reseller_id"` // The tenant the token was issued for.
	LicenseID  uuid.UUID            `json:"license_id"`  // The license reserved by this token.
	State      EnrollmentTokenState `json:"state"`
	ExpiresAt  time.Time            `json:"expires_at"` // Issue time plus the configured TTL (default 24h).
	CreatedAt  time.Time            `json:"created_at"`
}

// Expired reports whether the token is past its TTL at the given instant.
func (t *EnrollmentToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
