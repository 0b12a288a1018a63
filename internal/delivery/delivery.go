// Package delivery defines the contract every transport entrypoint satisfies.
package delivery

import "context"

// Delivery is a long-running transport (HTTP server, worker) started by main.
type Delivery interface {
	// Serve blocks while the delivery handles traffic.
	Serve(ctx context.Context) error
}
