// Package delivery defines the contract shared by all serving surfaces
// (console HTTP, device API, background worker).
package delivery

import "context"

// Delivery represents a long-running server that can be started by the
// application entrypoint.
type Delivery interface {
	// Serve starts the server and blocks until it stops or fails.
	Serve(ctx context.Context) error
}
