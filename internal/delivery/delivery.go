// Package delivery defines the contract every transport surface satisfies.
package delivery

import "context"

// Delivery is a long-running transport surface (an HTTP server). Serve blocks
// until the server stops; shutdown is handled through the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
