package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput is an email/password sign-in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterInput creates a new account.
type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// GoogleLoginInput signs in with a Google ID token.
type GoogleLoginInput struct {
	IDToken string `json:"idToken" validate:"required"`
}

// UpdateProfileInput carries the mutable profile fields; nil is unchanged.
type UpdateProfileInput struct {
	Name   *string `json:"name"`
	Phone  *string `json:"phone"`
	Avatar *string `json:"avatar"`
}

// CreateAddressInput adds a shipping address.
type CreateAddressInput struct {
	FullName   string `json:"fullName" validate:"required"`
	Phone      string `json:"phone" validate:"required"`
	Street     string `json:"street" validate:"required"`
	Apartment  string `json:"apartment"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode" validate:"required"`
	Country    string `json:"country" validate:"required"`
	Type       string `json:"type"`
	IsDefault  bool   `json:"isDefault"`
}

// --- Output DTOs ---

// SignInOutput is returned by every authentication operation.
type SignInOutput struct {
	UserID string       `json:"userId"`
	User   *entity.User `json:"user,omitempty"`
}

// AddressBookView lists addresses with the preselected index.
type AddressBookView struct {
	Addresses     []entity.Address `json:"addresses"`
	SelectedIndex int              `json:"selectedIndex"`
}

// AccountUsecase covers authentication, profile and address management.
type AccountUsecase interface {
	Login(ctx context.Context, input LoginInput) (*SignInOutput, error)
	Register(ctx context.Context, input RegisterInput) (*SignInOutput, error)
	GoogleLogin(ctx context.Context, input GoogleLoginInput) (*SignInOutput, error)
	Logout(ctx context.Context) error

	Profile(ctx context.Context, userID string) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*entity.User, error)

	AddressBook(ctx context.Context, userID string) (*AddressBookView, error)
	CreateAddress(ctx context.Context, userID string, input CreateAddressInput) (*entity.Address, error)
}
