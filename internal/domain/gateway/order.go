package gateway

import (
	"context"

	"storefront/internal/domain/entity"
)

// OrderDraft is the order-creation payload assembled by checkout.
type OrderDraft struct {
	Items           []entity.OrderItem
	ShippingAddress entity.Address
	PaymentMethod   string
}

// OrderGateway reads and mutates the user's orders.
type OrderGateway interface {
	Orders(ctx context.Context, userID string) ([]entity.Order, error)
	Order(ctx context.Context, userID, orderID string) (*entity.Order, error)
	Create(ctx context.Context, userID string, draft OrderDraft) (orderID string, err error)
	Cancel(ctx context.Context, userID, orderID string) error
}

// ReviewGateway reads and submits product reviews.
type ReviewGateway interface {
	ByProduct(ctx context.Context, productID string) ([]entity.Review, error)
	Create(ctx context.Context, userID string, review entity.Review) error
}
