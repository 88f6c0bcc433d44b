package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// DealItem is a flash-deal product with its cosmetic countdown.
type DealItem struct {
	Product          entity.Product `json:"product"`
	RemainingSeconds int            `json:"remainingSeconds"`
}

// DealsView is the flash-deals page.
type DealsView struct {
	Deals    []DealItem `json:"deals"`
	Fallback bool       `json:"fallback,omitempty"`
}

// DealsUsecase serves the promotionally tagged feed with client-invented
// countdowns. The countdowns carry no real expiry meaning.
type DealsUsecase interface {
	View(ctx context.Context) (*DealsView, error)
}
