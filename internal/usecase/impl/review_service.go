package impl

import (
	"context"
	"log/slog"
	"strings"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/gateway"
	"storefront/internal/usecase"
)

// reviewService implements usecase.ReviewUsecase.
type reviewService struct {
	reviews gateway.ReviewGateway
	logger  *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(reviews gateway.ReviewGateway, logger *slog.Logger) usecase.ReviewUsecase {
	return &reviewService{reviews: reviews, logger: logger}
}

func (srv *reviewService) ForProduct(ctx context.Context, productID string) ([]entity.Review, error) {
	reviews, err := srv.reviews.ByProduct(ctx, productID)
	if err != nil {
		return nil, mapGatewayError(err)
	}
	if reviews == nil {
		reviews = []entity.Review{}
	}

	return reviews, nil
}

func (srv *reviewService) Submit(ctx context.Context, userID string, input usecase.SubmitReviewInput) error {
	if input.Rating < 1 || input.Rating > 5 {
		return domainerrors.ErrInvalidInput.WithDetails("rating must be between 1 and 5")
	}

	review := entity.Review{
		ProductID: input.ProductID,
		UserID:    userID,
		Rating:    input.Rating,
		Comment:   strings.TrimSpace(input.Comment),
	}
	if err := srv.reviews.Create(ctx, userID, review); err != nil {
		return mapGatewayError(err)
	}

	return nil
}
