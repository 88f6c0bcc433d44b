package backend

import (
	"context"
	"net/http"
	"net/url"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/gateway"
)

// orderGateway implements gateway.OrderGateway.
type orderGateway struct {
	client *Client
}

// NewOrderGateway wires the order endpoints.
func NewOrderGateway(client *Client) gateway.OrderGateway {
	return &orderGateway{client: client}
}

func (g *orderGateway) Orders(ctx context.Context, userID string) ([]entity.Order, error) {
	raw, err := g.client.get(ctx, "/api/orders", userQuery(userID), true)
	if err != nil {
		return nil, err
	}

	wires, err := decodeList[wireOrder](raw, "orders")
	if err != nil {
		return nil, err
	}

	orders := make([]entity.Order, len(wires))
	for i, w := range wires {
		orders[i] = w.toEntity()
	}

	return orders, nil
}

func (g *orderGateway) Order(ctx context.Context, userID, orderID string) (*entity.Order, error) {
	raw, err := g.client.get(ctx, "/api/orders/"+url.PathEscape(orderID), userQuery(userID), true)
	if err != nil {
		return nil, err
	}

	wire, err := decodeObject[wireOrder](raw, "order")
	if err != nil {
		return nil, err
	}

	order := wire.toEntity()
	if order.ID == "" {
		return nil, gateway.ErrNotFound
	}

	return &order, nil
}

func (g *orderGateway) Create(ctx context.Context, userID string, draft gateway.OrderDraft) (string, error) {
	items := make([]map[string]any, len(draft.Items))
	for i, item := range draft.Items {
		items[i] = map[string]any{
			"productId":     item.ProductID,
			"storeId":       item.StoreID,
			"name":          item.Name,
			"quantity":      item.Quantity,
			"size":          item.Size,
			"price":         item.UnitPrice,
			"discountPrice": item.DiscountPrice,
		}
	}
	body := map[string]any{
		"userId":          userID,
		"items":           items,
		"shippingAddress": draft.ShippingAddress,
		"paymentMethod":   draft.PaymentMethod,
	}

	raw, err := g.client.send(ctx, requestSpec{
		method: http.MethodPost,
		path:   "/api/orders",
		body:   body,
		authed: true,
	})
	if err != nil {
		return "", err
	}

	wire, err := decodeObject[wireOrder](raw, "order")
	if err != nil {
		return "", err
	}

	return wire.toEntity().ID, nil
}

func (g *orderGateway) Cancel(ctx context.Context, userID, orderID string) error {
	query := userQuery(userID)
	_, err := g.client.send(ctx, requestSpec{
		method: http.MethodDelete,
		path:   "/api/orders/" + url.PathEscape(orderID),
		query:  query,
		authed: true,
	})

	return err
}

// reviewGateway implements gateway.ReviewGateway.
type reviewGateway struct {
	client *Client
}

// NewReviewGateway wires the review endpoints.
func NewReviewGateway(client *Client) gateway.ReviewGateway {
	return &reviewGateway{client: client}
}

func (g *reviewGateway) ByProduct(ctx context.Context, productID string) ([]entity.Review, error) {
	raw, err := g.client.get(ctx, "/api/reviews/product/"+url.PathEscape(productID), nil, false)
	if err != nil {
		return nil, err
	}

	wires, err := decodeList[wireReview](raw, "reviews")
	if err != nil {
		return nil, err
	}

	reviews := make([]entity.Review, len(wires))
	for i, w := range wires {
		reviews[i] = w.toEntity()
	}

	return reviews, nil
}

func (g *reviewGateway) Create(ctx context.Context, userID string, review entity.Review) error {
	body := map[string]any{
		"userId":    userID,
		"productId": review.ProductID,
		"rating":    review.Rating,
		"comment":   review.Comment,
	}
	_, err := g.client.send(ctx, requestSpec{
		method: http.MethodPost,
		path:   "/api/reviews",
		body:   body,
		authed: true,
	})

	return err
}
