package middleware

import (
	"net/http"
	"net/url"

	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const (
	// keyUserID is where the session middleware stores the signed-in user's
	// id on the echo context.
	keyUserID = "userID"

	loginPath     = "/login"
	redirectParam = "redirect"
)

// SessionMiddleware gates routes on a valid session. A request without one
// is sent to the login route carrying the originating path, so the customer
// lands back where they started after signing in.
type SessionMiddleware struct {
	sessions service.SessionStore
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(sessions service.SessionStore) *SessionMiddleware {
	return &SessionMiddleware{sessions: sessions}
}

// Require validates the session and stores the user id on the context.
func (m *SessionMiddleware) Require(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		session, ok := m.sessions.Current()
		if !ok || !session.Valid() {
			return c.Redirect(http.StatusSeeOther, loginPath+"?"+redirectParam+"="+url.QueryEscape(originatingPath(c)))
		}

		c.Set(keyUserID, session.UserID)

		return next(c)
	}
}

// UserID reads the session user id the Require middleware stored.
func UserID(c echo.Context) (string, bool) {
	id, ok := c.Get(keyUserID).(string)

	return id, ok && id != ""
}

func originatingPath(c echo.Context) string {
	req := c.Request()
	path := req.URL.Path
	if req.URL.RawQuery != "" {
		path += "?" + req.URL.RawQuery
	}

	return path
}
