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

// DealsHandler serves the flash-deals page.
type DealsHandler struct {
	uc     usecase.DealsUsecase
	logger *slog.Logger
}

// NewDealsHandler is the constructor for DealsHandler, injected by Fx.
func NewDealsHandler(uc usecase.DealsUsecase, logger *slog.Logger) *DealsHandler {
	return &DealsHandler{uc: uc, logger: logger}
}

// View serves the deals page with the current countdown values.
func (h *DealsHandler) View(c echo.Context) error {
	view, err := h.uc.View(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}
	if view.Fallback {
		middleware.RecordFallback("deals")
	}

	return response.Success(c, http.StatusOK, view, "")
}
