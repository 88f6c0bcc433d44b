package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order-history and review handlers.
type OrderHandler struct {
	orders  usecase.OrderUsecase
	reviews usecase.ReviewUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(orders usecase.OrderUsecase, reviews usecase.ReviewUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{orders: orders, reviews: reviews, logger: logger}
}

// List serves the order history page.
func (h *OrderHandler) List(c echo.Context) error {
	userID, _ := middleware.UserID(c)

	view, err := h.orders.List(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// Detail serves one order.
func (h *OrderHandler) Detail(c echo.Context) error {
	userID, _ := middleware.UserID(c)

	order, err := h.orders.Detail(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "")
}

// Cancel cancels a pending order.
func (h *OrderHandler) Cancel(c echo.Context) error {
	userID, _ := middleware.UserID(c)

	view, err := h.orders.Cancel(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "order cancelled")
}

// ProductReviews lists reviews for a product; no session required.
func (h *OrderHandler) ProductReviews(c echo.Context) error {
	reviews, err := h.reviews.ForProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reviews, "")
}

// SubmitReview posts a review for a product the customer bought.
func (h *OrderHandler) SubmitReview(c echo.Context) error {
	userID, _ := middleware.UserID(c)

	var input usecase.SubmitReviewInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "invalid review input")
	}
	input.ProductID = c.Param("id")
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.reviews.Submit(c.Request().Context(), userID, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "review submitted")
}
