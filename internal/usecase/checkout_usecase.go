package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CheckoutStep names the wizard states. The order is strictly linear.
type CheckoutStep string

const (
	StepAddress CheckoutStep = "address"
	StepPayment CheckoutStep = "payment"
	StepReview  CheckoutStep = "review"
)

// CheckoutView is the wizard's current presentation.
type CheckoutView struct {
	Step            CheckoutStep      `json:"step"`
	Addresses       []entity.Address  `json:"addresses"`
	SelectedAddress *int              `json:"selectedAddress,omitempty"`
	PaymentMethod   string            `json:"paymentMethod"`
	Items           []entity.CartItem `json:"items"`
	Subtotal        float64           `json:"subtotal"`
}

// OrderConfirmation is the terminal payload of a successful submit.
type OrderConfirmation struct {
	OrderID string `json:"orderId"`
}

// CheckoutUsecase drives the address → payment → review wizard. Progress is
// held in memory only; a restart begins again at the address step.
type CheckoutUsecase interface {
	// Start (re)initializes the wizard at the address step, preselecting
	// the user's default address when one exists.
	Start(ctx context.Context, userID string) (*CheckoutView, error)

	View(ctx context.Context, userID string) (*CheckoutView, error)
	SelectAddress(ctx context.Context, userID string, index int) (*CheckoutView, error)

	// Next advances one step; address → payment is gated on a selected
	// address, payment → review is unconditional.
	Next(ctx context.Context, userID string) (*CheckoutView, error)

	// Back steps backward; always allowed, a no-op at the address step.
	Back(ctx context.Context, userID string) (*CheckoutView, error)

	// Submit places the order from the review step. On failure the wizard
	// stays at review and the server's message is surfaced.
	Submit(ctx context.Context, userID string) (*OrderConfirmation, error)
}
