package service

import "context"

// GoogleIdentity is the verified subset of a Google ID token the storefront
// forwards to the backend during google-login.
type GoogleIdentity struct {
	Subject string
	Email   string
	Name    string
	Picture string
}

// IdentityVerifier validates a third-party ID token and extracts the
// identity claims. The only implementation verifies Google ID tokens.
type IdentityVerifier interface {
	Verify(ctx context.Context, idToken string) (*GoogleIdentity, error)
}
