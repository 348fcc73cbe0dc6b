package service

import (
	"context"
)

// IntentType identifies an outbound command for the Android management channel.
type IntentType string

const (
	IntentApplyPolicy     IntentType = "apply_policy"
	IntentLock            IntentType = "lock"
	IntentUnlock          IntentType = "unlock"
	IntentReboot          IntentType = "reboot"
	IntentRequestLocation IntentType = "request_location"
	IntentRelease         IntentType = "release"
)

// ManagementIntent is a fire-and-forget command recorded for the external
// Android Enterprise management channel. Delivery and device-side outcome are
// reported back asynchronously through status callbacks, never awaited inline.
type ManagementIntent struct {
	RequestID string     `json:"request_id,omitempty"` // For distributed tracing.
	Intent    IntentType `json:"intent"`
	DeviceID  string     `json:"device_id"` // The device record ID.
	IMEI      string     `json:"imei"`
	PolicyRef string     `json:"policy_ref,omitempty"`   // For apply_policy: name@version.
	Message   string     `json:"message,omitempty"`      // For lock: the lock screen message.
	IssuedAt  string     `json:"issued_at"`              // RFC3339 timestamp of intent recording.
}

// ManagementChannel defines the interface for publishing intents to the
// external management channel. Implementations must not block callers beyond
// a bounded publish timeout; failures are logged and surfaced via callbacks.
type ManagementChannel interface {
	// PublishIntent records an intent for asynchronous delivery.
	PublishIntent(ctx context.Context, intent *ManagementIntent) error

	// Close releases any resources held by the channel.
	Close() error
}
