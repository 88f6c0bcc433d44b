package gateway

import (
	"context"

	"storefront/internal/domain/entity"
)

// AddCartItemInput is the payload for adding a line to the cart.
type AddCartItemInput struct {
	ProductID string
	Size      string
	Quantity  int
}

// CartGateway mutates the backend cart. All calls are authenticated; the
// user id is threaded explicitly because the backend does not derive it
// from the bearer token alone.
type CartGateway interface {
	Cart(ctx context.Context, userID string) (*entity.Cart, error)
	AddItem(ctx context.Context, userID string, input AddCartItemInput) error
	UpdateQuantity(ctx context.Context, userID, productID, size string, quantity int) error
	RemoveItem(ctx context.Context, userID, productID, size string) error
}

// WishlistGateway mutates the backend wishlist.
type WishlistGateway interface {
	Wishlist(ctx context.Context, userID string) ([]entity.WishlistItem, error)
	Add(ctx context.Context, userID, productID string) error
	Remove(ctx context.Context, userID, productID string) error
}
