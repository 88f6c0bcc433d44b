package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// PageHandler serves the static support pages.
type PageHandler struct{}

// NewPageHandler is the constructor for PageHandler.
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

type supportPage struct {
	Title    string   `json:"title"`
	Sections []string `json:"sections"`
}

// FAQ serves the frequently-asked-questions page.
func (h *PageHandler) FAQ(c echo.Context) error {
	return response.Success(c, http.StatusOK, supportPage{
		Title: "Frequently Asked Questions",
		Sections: []string{
			"Orders placed before 2pm ship the same day.",
			"Cash on delivery is available on every order.",
			"Pending orders can be cancelled from the order history page.",
			"Returns are accepted within 30 days of delivery.",
		},
	}, "")
}

// Privacy serves the privacy policy page.
func (h *PageHandler) Privacy(c echo.Context) error {
	return response.Success(c, http.StatusOK, supportPage{
		Title: "Privacy Policy",
		Sections: []string{
			"We only store the data needed to fulfil your orders.",
			"Your session identifiers never leave this device and our store.",
			"We do not sell or share personal data with third parties.",
		},
	}, "")
}

// Terms serves the terms of service page.
func (h *PageHandler) Terms(c echo.Context) error {
	return response.Success(c, http.StatusOK, supportPage{
		Title: "Terms of Service",
		Sections: []string{
			"Prices and availability are confirmed at order time.",
			"Flash-deal countdowns are promotional displays only.",
			"The store may refuse orders that cannot be fulfilled.",
		},
	}, "")
}

// Contact serves the contact page.
func (h *PageHandler) Contact(c echo.Context) error {
	return response.Success(c, http.StatusOK, supportPage{
		Title: "Contact Us",
		Sections: []string{
			"Email: support@example.com",
			"Phone: +1 (555) 010-0100, weekdays 9am-6pm",
		},
	}, "")
}

// Login is the sign-in landing the session gate redirects to. It echoes
// the redirect target so the client can come back after authenticating.
func (h *PageHandler) Login(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{
		"redirect": c.QueryParam("redirect"),
		"login":    "/auth/login",
		"register": "/auth/register",
		"google":   "/auth/google",
	}, "sign in to continue")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
