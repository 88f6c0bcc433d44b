// Package backend implements the gateway contracts against the remote
// storefront API. It is the only place outbound HTTP happens and the only
// place backend response envelopes are interpreted.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"storefront/config"
	"storefront/internal/domain/gateway"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

// Client carries the shared HTTP plumbing for all gateway implementations.
type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
	sessions  service.SessionStore
	logger    *slog.Logger
}

// New creates the backend client. The request timeout comes from config;
// per-call deadlines and cancellation ride on the caller's context.
func New(cfg *config.Config, sessions service.SessionStore, logger *slog.Logger) *Client {
	return &Client{
		baseURL:   strings.TrimRight(cfg.Backend.BaseURL, "/"),
		userAgent: cfg.Backend.UserAgent,
		http:      &http.Client{Timeout: cfg.Backend.RequestTimeout},
		sessions:  sessions,
		logger:    logger,
	}
}

// requestSpec describes one backend call.
type requestSpec struct {
	method string
	path   string
	query  url.Values
	body   any
	authed bool

	// cacheControl overrides the default no-store directive; the category
	// list is the one fetch allowed to hint revalidation instead.
	cacheControl string
}

// send performs the call and returns the raw response body for the caller
// to normalize. Identity handling is centralized here: authenticated calls
// read the bearer token from the session store, and any 401 invalidates
// the store once before the error is returned.
func (c *Client) send(ctx context.Context, spec requestSpec) ([]byte, error) {
	endpoint := c.baseURL + spec.path
	if len(spec.query) > 0 {
		endpoint += "?" + spec.query.Encode()
	}

	var payload io.Reader
	if spec.body != nil {
		encoded, err := json.Marshal(spec.body)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode request body")
		}
		payload = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, spec.method, endpoint, payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create backend request")
	}

	cacheControl := spec.cacheControl
	if cacheControl == "" {
		cacheControl = "no-store"
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", cacheControl)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if spec.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if spec.authed {
		session, ok := c.sessions.Current()
		if !ok {
			return nil, gateway.ErrUnauthorized
		}
		req.Header.Set("Authorization", "Bearer "+session.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "backend %s %s failed", spec.method, spec.path)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read backend response")
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return raw, nil

	case resp.StatusCode == http.StatusUnauthorized && spec.authed:
		// The single session-invalidation path: any authenticated 401
		// clears the stored identity before the error propagates.
		if err := c.sessions.Invalidate(); err != nil {
			c.logger.Error("failed to invalidate session after 401", slog.Any("error", err))
		}

		return nil, gateway.ErrUnauthorized

	case resp.StatusCode == http.StatusNotFound:
		return nil, gateway.ErrNotFound

	default:
		message := serverMessage(raw)
		c.logger.Warn("backend rejected request",
			slog.String("method", spec.method),
			slog.String("path", spec.path),
			slog.Int("status", resp.StatusCode),
			slog.String("message", message),
		)
		if message == "" {
			return nil, errors.Wrapf(gateway.ErrRejected, "status %d", resp.StatusCode)
		}

		return nil, errors.Wrap(gateway.ErrRejected, message)
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, authed bool) ([]byte, error) {
	return c.send(ctx, requestSpec{method: http.MethodGet, path: path, query: query, authed: authed})
}

// serverMessage pulls the human-readable message out of an error body.
// The backend is inconsistent about the key it uses.
func serverMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	if body.Message != "" {
		return body.Message
	}

	return body.Error
}
