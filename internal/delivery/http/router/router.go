// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/config"
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config *config.Config

	CatalogHandler  *handler.CatalogHandler
	CartHandler     *handler.CartHandler
	CheckoutHandler *handler.CheckoutHandler
	OrderHandler    *handler.OrderHandler
	AccountHandler  *handler.AccountHandler
	DealsHandler    *handler.DealsHandler
	PageHandler     *handler.PageHandler

	SessionMiddleware *middleware.SessionMiddleware
	MetricsMiddleware *middleware.MetricsMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the routes for the storefront.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params

	e.GET("/health", handler.HealthCheck)
	if p.Config.Metrics.Enabled {
		e.Use(p.MetricsMiddleware.Handle)
		e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	}

	// Public catalog pages. No session required; every fetch hits the
	// backend with no-store semantics.
	e.GET("/", p.CatalogHandler.Home)
	e.GET("/deals", p.DealsHandler.View)
	e.GET("/categories", p.CatalogHandler.Categories)
	e.GET("/category/:slug", p.CatalogHandler.Category)
	e.GET("/product/:id", p.CatalogHandler.Product)
	e.GET("/product/:id/reviews", p.OrderHandler.ProductReviews)
	e.GET("/search", p.CatalogHandler.Search)
	e.GET("/search/suggestions", p.CatalogHandler.Suggestions)

	// Support pages and the sign-in landing the session gate points at.
	e.GET("/login", p.PageHandler.Login)
	e.GET("/faq", p.PageHandler.FAQ)
	e.GET("/privacy", p.PageHandler.Privacy)
	e.GET("/terms", p.PageHandler.Terms)
	e.GET("/contact", p.PageHandler.Contact)

	// Authentication.
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", p.AccountHandler.Login)
		authGroup.POST("/register", p.AccountHandler.Register)
		authGroup.POST("/google", p.AccountHandler.GoogleLogin)
		authGroup.POST("/logout", p.AccountHandler.Logout)
	}

	// Everything below requires a signed-in session; without one the gate
	// redirects to /login?redirect=<originating path>.
	gated := e.Group("", p.SessionMiddleware.Require)
	{
		gated.GET("/cart", p.CartHandler.View)
		gated.POST("/cart/items", p.CartHandler.Add)
		gated.POST("/cart/items/:productID/quantity", p.CartHandler.ChangeQuantity)
		gated.DELETE("/cart/items/:productID", p.CartHandler.Remove)

		gated.GET("/wishlist", p.CartHandler.Wishlist)
		gated.POST("/wishlist/:productID/toggle", p.CartHandler.ToggleWishlist)

		gated.POST("/checkout", p.CheckoutHandler.Start)
		gated.GET("/checkout", p.CheckoutHandler.View)
		gated.POST("/checkout/address", p.CheckoutHandler.SelectAddress)
		gated.POST("/checkout/next", p.CheckoutHandler.Next)
		gated.POST("/checkout/back", p.CheckoutHandler.Back)
		gated.POST("/checkout/submit", p.CheckoutHandler.Submit)

		gated.GET("/orders", p.OrderHandler.List)
		gated.GET("/orders/:id", p.OrderHandler.Detail)
		gated.POST("/orders/:id/cancel", p.OrderHandler.Cancel)

		gated.POST("/product/:id/reviews", p.OrderHandler.SubmitReview)

		gated.GET("/account/profile", p.AccountHandler.Profile)
		gated.PATCH("/account/profile", p.AccountHandler.UpdateProfile)
		gated.GET("/account/addresses", p.AccountHandler.Addresses)
		gated.POST("/account/addresses", p.AccountHandler.CreateAddress)
	}
}
