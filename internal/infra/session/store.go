// Package session persists the storefront's two identity primitives: the
// backend bearer token and the user id. This is the only writer of that
// state; everything else goes through the service.SessionStore contract.
package session

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// storedSession is the on-disk shape. Both values are raw strings; there is
// deliberately no JSON-quoted user-id variant to compensate for.
type storedSession struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}

// FileStore keeps the session in memory and mirrors it to one JSON file so
// a restart does not sign the customer out.
type FileStore struct {
	path   string
	logger *slog.Logger

	mu      sync.RWMutex
	current service.Session
	has     bool
}

// NewFileStore loads any previously persisted session. A missing or
// unreadable file means no session, not an error.
func NewFileStore(cfg *config.Config, logger *slog.Logger) (service.SessionStore, error) {
	store := &FileStore{
		path:   cfg.Session.Path,
		logger: logger,
	}

	raw, err := os.ReadFile(store.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("failed to read session file, starting signed out",
				slog.String("path", store.path), slog.Any("error", err))
		}

		return store, nil
	}

	var stored storedSession
	if err := json.Unmarshal(raw, &stored); err != nil {
		logger.Warn("session file is corrupt, starting signed out", slog.Any("error", err))

		return store, nil
	}

	store.current = service.Session{Token: stored.Token, UserID: stored.UserID}
	store.has = store.current.Valid()

	return store, nil
}

// Current returns the stored session. A token whose JWT exp claim is in the
// past counts as absent; opaque non-JWT tokens are kept as-is.
func (s *FileStore) Current() (service.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.has || !s.current.Valid() {
		return service.Session{}, false
	}
	if tokenExpired(s.current.Token) {
		return service.Session{}, false
	}

	return s.current, true
}

// Save replaces the session in memory and on disk.
func (s *FileStore) Save(session service.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	encoded, err := json.Marshal(storedSession{Token: session.Token, UserID: session.UserID})
	if err != nil {
		return errors.Wrap(err, "failed to encode session")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrap(err, "failed to create session directory")
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, encoded, 0o600); err != nil {
		return errors.Wrap(err, "failed to write session file")
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return errors.Wrap(err, "failed to replace session file")
	}

	s.current = session
	s.has = true

	return nil
}

// Invalidate clears the session everywhere. Called by the backend client on
// any authenticated 401 and by logout; idempotent.
func (s *FileStore) Invalidate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = service.Session{}
	s.has = false

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "failed to remove session file")
	}

	return nil
}

// tokenExpired inspects the bearer token's exp claim without verifying the
// signature; the backend is the verifier, this only avoids sending a token
// known to be stale.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}

	expiry, err := claims.GetExpirationTime()
	if err != nil || expiry == nil {
		return false
	}

	return expiry.Before(time.Now())
}
