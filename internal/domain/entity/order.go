package entity

import "time"

// OrderStatus is the backend-reported lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusShipped   OrderStatus = "Shipped"
	OrderStatusDelivered OrderStatus = "Delivered"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// PaymentMethodCOD is the only payment method the storefront offers.
const PaymentMethodCOD = "Cash on Delivery"

// OrderItem is one line of a placed order.
type OrderItem struct {
	ProductID     string  `json:"productId"`
	StoreID       string  `json:"storeId,omitempty"`
	Name          string  `json:"name"`
	Quantity      int     `json:"quantity"`
	Size          string  `json:"size,omitempty"`
	UnitPrice     float64 `json:"unitPrice"`
	DiscountPrice float64 `json:"discountPrice,omitempty"`
}

// Order is the storefront projection of a placed order.
type Order struct {
	ID              string      `json:"id"`
	Items           []OrderItem `json:"items"`
	TotalAmount     float64     `json:"totalAmount"`
	DiscountAmount  float64     `json:"discountAmount,omitempty"`
	Status          OrderStatus `json:"status"`
	PaymentMethod   string      `json:"paymentMethod"`
	PaymentStatus   string      `json:"paymentStatus,omitempty"`
	ShippingAddress Address     `json:"shippingAddress"`
	CreatedAt       time.Time   `json:"createdAt"`
}

// Cancellable reports whether the storefront may offer cancellation.
// The backend remains authoritative; this only gates the control.
func (o Order) Cancellable() bool {
	return o.Status == OrderStatusPending
}
