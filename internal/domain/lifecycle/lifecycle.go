// Package lifecycle holds shared lifecycle constants for server startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown operations.
const DefaultTimeout = 30 * time.Second
