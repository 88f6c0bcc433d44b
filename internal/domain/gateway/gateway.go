// Package gateway declares the contracts for the remote backend API the
// storefront consumes. The backend owns all durable state; these interfaces
// are the storefront's only way to read or mutate it.
package gateway

import "errors"

// Sentinel errors the infra layer translates backend responses into.
// Usecases map these onto domain errors.
var (
	// ErrNotFound reports a 404 from the backend.
	ErrNotFound = errors.New("gateway: resource not found")

	// ErrUnauthorized reports a 401. The backend client invalidates the
	// session store before returning this; callers only need to surface it.
	ErrUnauthorized = errors.New("gateway: unauthorized")

	// ErrRejected reports any other non-2xx response. The backend's own
	// message, when present, is attached via Wrap.
	ErrRejected = errors.New("gateway: request rejected")
)

// Page is a pagination cursor for list endpoints.
type Page struct {
	Number int
	Limit  int
}
