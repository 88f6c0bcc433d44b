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

// CartHandler holds dependencies for cart and wishlist handlers.
type CartHandler struct {
	cart     usecase.CartUsecase
	wishlist usecase.WishlistUsecase
	logger   *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(cart usecase.CartUsecase, wishlist usecase.WishlistUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{cart: cart, wishlist: wishlist, logger: logger}
}

// View serves the cart page.
func (h *CartHandler) View(c echo.Context) error {
	userID, _ := middleware.UserID(c)

	view, err := h.cart.View(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// Add adds a line to the cart.
func (h *CartHandler) Add(c echo.Context) error {
	userID, _ := middleware.UserID(c)

	var input usecase.AddToCartInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "invalid add-to-cart input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	view, err := h.cart.Add(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "added to cart")
}

type changeQuantityInput struct {
	Size  string `json:"size"`
	Delta int    `json:"delta" validate:"required"`
}

// ChangeQuantity applies a +1/-1 style delta to a cart line.
func (h *CartHandler) ChangeQuantity(c echo.Context) error {
	userID, _ := middleware.UserID(c)

	var input changeQuantityInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "invalid quantity input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	view, err := h.cart.ChangeQuantity(c.Request().Context(), userID, c.Param("productID"), input.Size, input.Delta)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// Remove deletes a cart line. The size rides in the query because DELETE
// bodies are unreliable across proxies.
func (h *CartHandler) Remove(c echo.Context) error {
	userID, _ := middleware.UserID(c)

	view, err := h.cart.Remove(c.Request().Context(), userID, c.Param("productID"), c.QueryParam("size"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "removed from cart")
}

// Wishlist serves the wishlist page.
func (h *CartHandler) Wishlist(c echo.Context) error {
	userID, _ := middleware.UserID(c)

	items, err := h.wishlist.View(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "")
}

// ToggleWishlist flips a product's saved state.
func (h *CartHandler) ToggleWishlist(c echo.Context) error {
	userID, _ := middleware.UserID(c)

	saved, err := h.wishlist.Toggle(c.Request().Context(), userID, c.Param("productID"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"saved": saved}, "")
}
