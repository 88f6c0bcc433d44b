// Package delivery defines the contract every transport front end of the
// storefront satisfies.
package delivery

import "context"

// Delivery is a serving surface (HTTP today). Serve blocks until the
// surface shuts down.
type Delivery interface {
	Serve(ctx context.Context) error
}
