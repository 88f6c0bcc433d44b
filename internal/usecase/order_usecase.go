package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// OrderListView is the order history page.
type OrderListView struct {
	Orders []entity.Order `json:"orders"`
}

// OrderUsecase reads the user's orders and supports optimistic cancellation.
type OrderUsecase interface {
	List(ctx context.Context, userID string) (*OrderListView, error)
	Detail(ctx context.Context, userID, orderID string) (*entity.Order, error)

	// Cancel is only offered for pending orders. The cached list view is
	// updated optimistically and rolled back if the backend refuses.
	Cancel(ctx context.Context, userID, orderID string) (*OrderListView, error)
}

// SubmitReviewInput carries a new product review.
type SubmitReviewInput struct {
	ProductID string `json:"productId" validate:"required"`
	Rating    int    `json:"rating" validate:"min=1,max=5"`
	Comment   string `json:"comment"`
}

// ReviewUsecase reads and submits product reviews.
type ReviewUsecase interface {
	ForProduct(ctx context.Context, productID string) ([]entity.Review, error)
	Submit(ctx context.Context, userID string, input SubmitReviewInput) error
}
