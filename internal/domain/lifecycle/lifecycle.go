// Package lifecycle holds shared constants for fx start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds server shutdown and infrastructure start checks.
const DefaultTimeout = 10 * time.Second
