package entity

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// PolicyConfig is the configuration profile pushed to managed devices.
// The lifecycle core treats it as opaque beyond identity and the default
// marking; the fields mirror the console's policy form.
type PolicyConfig struct {
	PasswordRequired  bool     `json:"passwordRequired"`
	PasswordQuality   string   `json:"passwordQuality,omitempty"` // NUMERIC, NUMERIC_COMPLEX, ALPHABETIC, ALPHANUMERIC, COMPLEX.
	PasswordMinLength int      `json:"passwordMinLength,omitempty"`
	CameraDisabled    bool     `json:"cameraDisabled"`
	BluetoothDisabled bool     `json:"bluetoothDisabled"`
	FactoryResetBlock bool     `json:"factoryResetBlock"`
	KioskMode         bool     `json:"kioskMode"`
	KioskApps         []string `json:"kioskApps,omitempty"`
	AllowedApps       []string `json:"allowedApps,omitempty"`
	BlockedApps       []string `json:"blockedApps,omitempty"`
}

// Policy is a named configuration profile scoped to one tenant.
// Exactly one policy per tenant carries the default marking; the default
// policy cannot be deleted and inherits devices from deleted policies.
type Policy struct {
	ID          uuid.UUID    `json:"id"`
	ResellerID  uuid.UUID    `json:"reseller_id"` // Owning tenant. Names are unique within the tenant.
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Version     int          `json:"version"` // Incremented on every config update.
	IsDefault   bool         `json:"is_default"`
	Config      PolicyConfig `json:"config"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// Ref returns the opaque policy pointer recorded on devices and sent to the
// management channel: name plus version.
func (p *Policy) Ref() string {
	return p.Name + "@" + strconv.Itoa(p.Version)
}
