// Package delivery defines the contract every transport entrypoint fulfills.
package delivery

import "context"

// Delivery is a serving surface (HTTP today) whose lifecycle is owned by Fx.
type Delivery interface {
	Serve(ctx context.Context) error
}
