// Package service declares the infrastructure contracts the domain depends
// on, keeping the concrete implementations in internal/infra.
package service

// Session is the ambient identity of the storefront: an opaque bearer token
// issued by the backend and the backend's user identifier. Both are plain
// strings with a single encoding; there is no quoted variant anywhere.
type Session struct {
	Token  string
	UserID string
}

// Valid reports whether both identity primitives are present.
func (s Session) Valid() bool {
	return s.Token != "" && s.UserID != ""
}

// SessionStore is the single source of truth for the session primitives.
// All reads and the one 401-triggered invalidation path go through here.
type SessionStore interface {
	// Current returns the stored session; ok is false when no session exists.
	Current() (session Session, ok bool)

	// Save replaces the stored session.
	Save(session Session) error

	// Invalidate clears the stored session. Safe to call when none exists.
	Invalidate() error
}
