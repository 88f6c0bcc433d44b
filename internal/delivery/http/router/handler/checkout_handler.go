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

// CheckoutHandler drives the checkout wizard over HTTP.
type CheckoutHandler struct {
	uc     usecase.CheckoutUsecase
	logger *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler, injected by Fx.
func NewCheckoutHandler(uc usecase.CheckoutUsecase, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{uc: uc, logger: logger}
}

// Start begins (or restarts) the wizard at the address step.
func (h *CheckoutHandler) Start(c echo.Context) error {
	userID, _ := middleware.UserID(c)

	view, err := h.uc.Start(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "checkout started")
}

// View returns the wizard's current step.
func (h *CheckoutHandler) View(c echo.Context) error {
	userID, _ := middleware.UserID(c)

	view, err := h.uc.View(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

type selectAddressInput struct {
	Index *int `json:"index" validate:"required"`
}

// SelectAddress picks a shipping address by index.
func (h *CheckoutHandler) SelectAddress(c echo.Context) error {
	userID, _ := middleware.UserID(c)

	var input selectAddressInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "invalid address selection")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	view, err := h.uc.SelectAddress(c.Request().Context(), userID, *input.Index)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// Next advances the wizard one step.
func (h *CheckoutHandler) Next(c echo.Context) error {
	userID, _ := middleware.UserID(c)

	view, err := h.uc.Next(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// Back steps the wizard backward.
func (h *CheckoutHandler) Back(c echo.Context) error {
	userID, _ := middleware.UserID(c)

	view, err := h.uc.Back(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// Submit places the order from the review step.
func (h *CheckoutHandler) Submit(c echo.Context) error {
	userID, _ := middleware.UserID(c)

	confirmation, err := h.uc.Submit(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, confirmation, "order placed")
}
