package gateway

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

// Credentials is what the backend returns on a successful authentication.
type Credentials struct {
	Token  string
	UserID string
	User   *entity.User
}

// RegisterInput is the payload for creating a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// ProfileUpdate carries the mutable profile fields; nil means unchanged.
type ProfileUpdate struct {
	Name   *string
	Phone  *string
	Avatar *string
}

// AccountGateway covers authentication, profile and address endpoints.
type AccountGateway interface {
	Login(ctx context.Context, email, password string) (*Credentials, error)
	Register(ctx context.Context, input RegisterInput) (*Credentials, error)
	GoogleLogin(ctx context.Context, identity service.GoogleIdentity) (*Credentials, error)

	Profile(ctx context.Context, userID string) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*entity.User, error)

	Addresses(ctx context.Context, userID string) ([]entity.Address, error)
	CreateAddress(ctx context.Context, userID string, address entity.Address) (*entity.Address, error)
}
