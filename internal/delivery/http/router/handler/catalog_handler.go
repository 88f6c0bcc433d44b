// Package handler contains the HTTP handlers for the storefront.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for catalog page handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{uc: uc, logger: logger}
}

// Home serves the landing page view.
func (h *CatalogHandler) Home(c echo.Context) error {
	view, err := h.uc.Home(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}
	if view.Fallback {
		middleware.RecordFallback("home")
	}

	return response.Success(c, http.StatusOK, view, "")
}

// Categories lists the catalog categories.
func (h *CatalogHandler) Categories(c echo.Context) error {
	categories, err := h.uc.Categories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "")
}

// Category serves one category's product listing.
func (h *CatalogHandler) Category(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	view, err := h.uc.CategoryProducts(c.Request().Context(), c.Param("slug"), page, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// Product serves the product detail page.
func (h *CatalogHandler) Product(c echo.Context) error {
	view, err := h.uc.ProductDetail(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// Search serves the search results page.
func (h *CatalogHandler) Search(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	view, err := h.uc.Search(c.Request().Context(), usecase.SearchInput{
		Query: c.QueryParam("q"),
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// Suggestions serves search-as-you-type completions. The requester key
// scopes supersession: a newer query from the same client cancels the
// older in-flight fetch.
func (h *CatalogHandler) Suggestions(c echo.Context) error {
	requester := c.Request().Header.Get("X-Client-Id")
	if requester == "" {
		requester = c.RealIP()
	}

	suggestions, err := h.uc.Suggestions(c.Request().Context(), requester, c.QueryParam("q"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, suggestions, "")
}
