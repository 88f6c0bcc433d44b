package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CartView is the assembled cart page.
type CartView struct {
	Items     []entity.CartItem `json:"items"`
	ItemCount int               `json:"itemCount"`
	Subtotal  float64           `json:"subtotal"`
	Savings   float64           `json:"savings"`
}

// AddToCartInput adds a line to the cart.
type AddToCartInput struct {
	ProductID string `json:"productId" validate:"required"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity" validate:"min=1"`
}

// CartUsecase owns the session-scoped cart state. All mutations are
// optimistic: local state changes first, the backend call follows, and a
// failure rolls the local state back.
type CartUsecase interface {
	View(ctx context.Context, userID string) (*CartView, error)
	Add(ctx context.Context, userID string, input AddToCartInput) (*CartView, error)

	// ChangeQuantity applies a delta to a line's quantity. The result never
	// drops below 1; use Remove to delete a line.
	ChangeQuantity(ctx context.Context, userID, productID, size string, delta int) (*CartView, error)
	Remove(ctx context.Context, userID, productID, size string) (*CartView, error)
}

// WishlistUsecase mirrors the cart contract for the wishlist.
type WishlistUsecase interface {
	View(ctx context.Context, userID string) ([]entity.WishlistItem, error)

	// Toggle adds the product when absent and removes it when present,
	// optimistically; it returns whether the product ended up saved.
	Toggle(ctx context.Context, userID, productID string) (saved bool, err error)
}
