// Package session implements a database-backed HTTP session store. Cookies
// carry only an opaque session token; all payload stays server-side.
package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"plateful/config"
	"plateful/internal/domain/entity"
	"plateful/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	defaultCookieName = "plateful_session"
	defaultLifetime   = 12 * time.Hour
)

// contextKey is the echo context key the middleware stores the handle under.
const contextKey = "plateful.session"

// Session is a mutable handle over one session row. It is not safe for
// concurrent use; each request gets its own handle.
type Session struct {
	id       entity.SessionID
	values   map[string]string
	modified bool
}

// ID returns the session's storage key.
func (s *Session) ID() entity.SessionID {
	return s.id
}

// Get returns a stored value, or the empty string when absent.
func (s *Session) Get(key string) string {
	return s.values[key]
}

// Set stores a value and marks the session dirty.
func (s *Session) Set(key, value string) {
	s.values[key] = value
	s.modified = true
}

// Delete removes a single value.
func (s *Session) Delete(key string) {
	if _, ok := s.values[key]; ok {
		delete(s.values, key)
		s.modified = true
	}
}

// Clear removes all values. Saving a cleared session deletes its row and
// expires the cookie.
func (s *Session) Clear() {
	s.values = make(map[string]string)
	s.modified = true
}

// Store opens and saves sessions against the repository, and owns the
// sign/unsign boundary between SessionID and SessionToken.
type Store struct {
	repo       repository.SessionRepository
	cookieName string
	lifetime   time.Duration
	secure     bool
	signKey    []byte

	now func() time.Time
}

// NewStore builds a Store from config. A non-empty session sign key enables
// HMAC signing of cookie values.
func NewStore(repo repository.SessionRepository, cfg *config.Config) *Store {
	store := &Store{
		repo:       repo,
		cookieName: defaultCookieName,
		lifetime:   defaultLifetime,
		now:        time.Now,
	}
	if cfg.Session != nil {
		if cfg.Session.CookieName != "" {
			store.cookieName = cfg.Session.CookieName
		}
		if cfg.Session.Lifetime > 0 {
			store.lifetime = cfg.Session.Lifetime
		}
		store.secure = cfg.Session.Secure
	}
	if cfg.Secrets.SessionSignKey != "" {
		store.signKey = []byte(cfg.Secrets.SessionSignKey)
	}

	return store
}

// Open resolves the request cookie to a session handle. Missing, unsigned,
// unknown or expired cookies all yield a fresh empty session rather than an
// error; expired rows are deleted on the spot.
func (s *Store) Open(c echo.Context) (*Session, error) {
	cookie, err := c.Cookie(s.cookieName)
	if err != nil || cookie.Value == "" {
		return s.fresh(), nil
	}

	id, ok := s.unsign(entity.SessionToken(cookie.Value))
	if !ok {
		return s.fresh(), nil
	}

	ctx := c.Request().Context()
	record, err := s.repo.Find(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return s.fresh(), nil
		}

		return nil, errors.WithStack(err)
	}

	if record.Expired(s.now()) {
		if err := s.repo.Delete(ctx, id); err != nil {
			return nil, errors.WithStack(err)
		}

		return s.fresh(), nil
	}

	values := make(map[string]string)
	if len(record.Data) > 0 {
		if err := json.Unmarshal(record.Data, &values); err != nil {
			// Undecodable payload is treated like a missing session.
			return s.fresh(), nil
		}
	}

	return &Session{id: record.ID, values: values}, nil
}

// Save persists the handle and refreshes the cookie. An untouched session is
// a no-op. A cleared session deletes its row and expires the cookie.
func (s *Store) Save(c echo.Context, session *Session) error {
	if session == nil || !session.modified {
		return nil
	}

	ctx := c.Request().Context()

	if len(session.values) == 0 {
		if err := s.repo.Delete(ctx, session.id); err != nil {
			return errors.WithStack(err)
		}
		s.setCookie(c, "", -1)
		session.modified = false

		return nil
	}

	data, err := json.Marshal(session.values)
	if err != nil {
		return errors.Wrap(err, "encode session payload")
	}

	record := &entity.SessionRecord{
		ID:        session.id,
		Data:      data,
		ExpiresAt: s.now().UTC().Add(s.lifetime),
	}
	if err := s.repo.Save(ctx, record); err != nil {
		return errors.WithStack(err)
	}

	s.setCookie(c, string(s.sign(session.id)), int(s.lifetime.Seconds()))
	session.modified = false

	return nil
}

// Destroy deletes the session row and expires the cookie regardless of the
// handle's state.
func (s *Store) Destroy(c echo.Context, session *Session) error {
	if session == nil {
		return nil
	}
	if err := s.repo.Delete(c.Request().Context(), session.id); err != nil {
		return errors.WithStack(err)
	}
	session.values = make(map[string]string)
	session.modified = false
	s.setCookie(c, "", -1)

	return nil
}

// Middleware opens the session before the handler runs and saves it after.
func (s *Store) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, err := s.Open(c)
			if err != nil {
				return errors.WithStack(err)
			}
			c.Set(contextKey, session)

			if err := next(c); err != nil {
				return err
			}

			return s.Save(c, session)
		}
	}
}

// FromContext returns the session handle attached by Middleware, or nil when
// the middleware did not run.
func FromContext(c echo.Context) *Session {
	session, _ := c.Get(contextKey).(*Session)

	return session
}

func (s *Store) fresh() *Session {
	return &Session{id: uuid.New(), values: make(map[string]string)}
}

// sign renders the cookie value for a session ID, appending an HMAC-SHA256
// signature when a sign key is configured.
func (s *Store) sign(id entity.SessionID) entity.SessionToken {
	if len(s.signKey) == 0 {
		return entity.SessionToken(id.String())
	}

	mac := hmac.New(sha256.New, s.signKey)
	mac.Write([]byte(id.String()))
	sig := base64.RawURLEncoding.EncodeToString(mac.Sum(nil))

	return entity.SessionToken(id.String() + "." + sig)
}

// unsign validates a cookie value and recovers the session ID. It reports
// false for malformed values and for bad signatures.
func (s *Store) unsign(token entity.SessionToken) (entity.SessionID, bool) {
	raw := string(token)

	if len(s.signKey) == 0 {
		id, err := uuid.Parse(raw)
		if err != nil {
			return uuid.Nil, false
		}

		return id, true
	}

	idPart, sigPart, found := strings.Cut(raw, ".")
	if !found {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(idPart)
	if err != nil {
		return uuid.Nil, false
	}

	mac := hmac.New(sha256.New, s.signKey)
	mac.Write([]byte(idPart))
	want := base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(sigPart), []byte(want)) {
		return uuid.Nil, false
	}

	return id, true
}

func (s *Store) setCookie(c echo.Context, value string, maxAge int) {
	c.SetCookie(&http.Cookie{
		Name:     s.cookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteStrictMode,
	})
}
