package backend

import (
	"context"
	"net/http"
	"net/url"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/gateway"
)

// cartGateway implements gateway.CartGateway. The backend threads the user
// id as a query parameter on top of the bearer token.
type cartGateway struct {
	client *Client
}

// NewCartGateway wires the cart endpoints.
func NewCartGateway(client *Client) gateway.CartGateway {
	return &cartGateway{client: client}
}

func userQuery(userID string) url.Values {
	query := url.Values{}
	query.Set("userId", userID)

	return query
}

func (g *cartGateway) Cart(ctx context.Context, userID string) (*entity.Cart, error) {
	raw, err := g.client.get(ctx, "/api/cart", userQuery(userID), true)
	if err != nil {
		return nil, err
	}

	wires, err := decodeList[wireCartItem](raw, "items", "cart")
	if err != nil {
		return nil, err
	}

	items := make([]entity.CartItem, len(wires))
	for i, w := range wires {
		items[i] = w.toEntity()
	}

	return &entity.Cart{Items: items}, nil
}

func (g *cartGateway) AddItem(ctx context.Context, userID string, input gateway.AddCartItemInput) error {
	body := map[string]any{
		"userId":    userID,
		"productId": input.ProductID,
		"size":      input.Size,
		"quantity":  input.Quantity,
	}
	_, err := g.client.send(ctx, requestSpec{
		method: http.MethodPost,
		path:   "/api/cart",
		body:   body,
		authed: true,
	})

	return err
}

func (g *cartGateway) UpdateQuantity(ctx context.Context, userID, productID, size string, quantity int) error {
	body := map[string]any{
		"userId":    userID,
		"productId": productID,
		"size":      size,
		"quantity":  quantity,
	}
	_, err := g.client.send(ctx, requestSpec{
		method: http.MethodPut,
		path:   "/api/cart",
		body:   body,
		authed: true,
	})

	return err
}

func (g *cartGateway) RemoveItem(ctx context.Context, userID, productID, size string) error {
	query := userQuery(userID)
	query.Set("productId", productID)
	if size != "" {
		query.Set("size", size)
	}
	_, err := g.client.send(ctx, requestSpec{
		method: http.MethodDelete,
		path:   "/api/cart",
		query:  query,
		authed: true,
	})

	return err
}

// wishlistGateway implements gateway.WishlistGateway.
type wishlistGateway struct {
	client *Client
}

// NewWishlistGateway wires the wishlist endpoints.
func NewWishlistGateway(client *Client) gateway.WishlistGateway {
	return &wishlistGateway{client: client}
}

func (g *wishlistGateway) Wishlist(ctx context.Context, userID string) ([]entity.WishlistItem, error) {
	raw, err := g.client.get(ctx, "/api/wishlist", userQuery(userID), true)
	if err != nil {
		return nil, err
	}

	wires, err := decodeList[wireWishlistItem](raw, "items", "wishlist")
	if err != nil {
		return nil, err
	}

	items := make([]entity.WishlistItem, len(wires))
	for i, w := range wires {
		items[i] = w.toEntity()
	}

	return items, nil
}

func (g *wishlistGateway) Add(ctx context.Context, userID, productID string) error {
	_, err := g.client.send(ctx, requestSpec{
		method: http.MethodPost,
		path:   "/api/wishlist",
		body:   map[string]any{"userId": userID, "productId": productID},
		authed: true,
	})

	return err
}

func (g *wishlistGateway) Remove(ctx context.Context, userID, productID string) error {
	query := userQuery(userID)
	query.Set("productId", productID)
	_, err := g.client.send(ctx, requestSpec{
		method: http.MethodDelete,
		path:   "/api/wishlist",
		query:  query,
		authed: true,
	})

	return err
}
