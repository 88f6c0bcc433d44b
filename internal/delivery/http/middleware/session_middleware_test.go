package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain/service"
)

type stubSessions struct {
	session service.Session
	has     bool
}

func (s *stubSessions) Current() (service.Session, bool) { return s.session, s.has }
func (s *stubSessions) Save(service.Session) error       { return nil }
func (s *stubSessions) Invalidate() error                { return nil }

func gateRequest(t *testing.T, sessions service.SessionStore, target string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	mw := NewSessionMiddleware(sessions)
	e.GET("/orders", func(c echo.Context) error {
		userID, ok := UserID(c)
		require.True(t, ok)

		return c.String(http.StatusOK, userID)
	}, mw.Require)

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestSessionMiddleware_RedirectsWithoutSession(t *testing.T) {
	rec := gateRequest(t, &stubSessions{}, "/orders?page=2")

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login?redirect=%2Forders%3Fpage%3D2", rec.Header().Get(echo.HeaderLocation))
}

func TestSessionMiddleware_RedirectsWhenSessionIncomplete(t *testing.T) {
	// A token without a user id is not a usable identity.
	rec := gateRequest(t, &stubSessions{session: service.Session{Token: "tok"}, has: true}, "/orders")

	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestSessionMiddleware_PassesUserIDThrough(t *testing.T) {
	sessions := &stubSessions{session: service.Session{Token: "tok", UserID: "u1"}, has: true}
	rec := gateRequest(t, sessions, "/orders")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u1", rec.Body.String())
}
