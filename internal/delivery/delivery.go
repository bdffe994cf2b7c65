// Package delivery defines the contract every transport (HTTP today) serves
// the application through.
package delivery

import "context"

// Delivery is a long-running transport that serves the application until its
// context is cancelled or the process stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
