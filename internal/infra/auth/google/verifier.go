// Package google verifies Google ID tokens for the google-login flow.
package google

import (
	"context"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"
)

// Verifier validates Google ID tokens against the configured client id.
type Verifier struct {
	clientID string
}

// NewVerifier is the constructor for Verifier.
func NewVerifier(cfg *config.Config) service.IdentityVerifier {
	return &Verifier{clientID: cfg.GoogleOAuth.ClientID}
}

// Verify validates the ID token's signature, audience and expiry, and
// extracts the identity claims the backend login endpoint needs.
func (v *Verifier) Verify(ctx context.Context, token string) (*service.GoogleIdentity, error) {
	payload, err := idtoken.Validate(ctx, token, v.clientID)
	if err != nil {
		return nil, errors.Wrap(err, "google id token validation failed")
	}

	identity := &service.GoogleIdentity{
		Subject: payload.Subject,
		Email:   claimString(payload.Claims, "email"),
		Name:    claimString(payload.Claims, "name"),
		Picture: claimString(payload.Claims, "picture"),
	}
	if identity.Subject == "" {
		return nil, errors.New("google id token has no subject")
	}

	return identity, nil
}

func claimString(claims map[string]any, key string) string {
	if value, ok := claims[key].(string); ok {
		return value
	}

	return ""
}
