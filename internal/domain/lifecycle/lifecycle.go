// Package lifecycle holds shared process lifecycle constants.
package lifecycle

import "time"

// DefaultTimeout bounds startup checks and graceful shutdown of infrastructure
// components (HTTP servers, database connections).
const DefaultTimeout = 10 * time.Second
