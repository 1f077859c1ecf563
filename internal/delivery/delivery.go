// Package delivery defines the contract shared by all inbound adapters
// (HTTP servers, background workers) managed by the application lifecycle.
package delivery

import "context"

// Delivery represents a long-running inbound adapter such as an HTTP server
// or a background worker loop. Implementations are collected into an fx value
// group and started together.
type Delivery interface {
	// Serve runs the adapter until it fails or is shut down via its fx hook.
	Serve(ctx context.Context) error
}
