// Package session implements cookie-backed authentication state. A request's
// session is loaded once by the middleware and threaded through the request
// context; resolvers read the identity with UserID or RequireUser and
// establish or tear it down with Authenticate and Destroy.
package session

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/inkwell/blog-backend/internal/core/domain"
	"github.com/inkwell/blog-backend/internal/core/ports"
)

// CookieName is the client-visible session cookie.
const CookieName = "sid"

// DefaultTTL is the session lifetime when none is configured.
const DefaultTTL = 7 * 24 * time.Hour

// Config controls cookie attributes and session lifetime.
type Config struct {
	// TTL is both the store record lifetime and the cookie max age.
	TTL time.Duration
	// Secure marks the cookie HTTPS-only. Enable outside development.
	Secure bool
}

type ctxKey struct{}

// Session is the per-request authentication state. It is not safe for
// concurrent use; each request owns exactly one.
type Session struct {
	store  ports.SessionStore
	cfg    Config
	w      http.ResponseWriter
	token  string
	userID string
}

// New builds a Session around an already-resolved identity. token and userID
// may be empty for an anonymous request.
func New(store ports.SessionStore, cfg Config, w http.ResponseWriter, token, userID string) *Session {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	return &Session{store: store, cfg: cfg, w: w, token: token, userID: userID}
}

// UserID returns the authenticated user id, if any.
func (s *Session) UserID() (string, bool) {
	return s.userID, s.userID != ""
}

// Authenticate binds userID to this client: a fresh token is minted, the
// store record written with the configured TTL, and the cookie set on the
// response. Called on successful login and registration.
func (s *Session) Authenticate(ctx context.Context, userID string) error {
	token := uuid.NewString()
	if err := s.store.Set(ctx, token, userID, s.cfg.TTL); err != nil {
		return err
	}

	s.token = token
	s.userID = userID
	http.SetCookie(s.w, s.cookie(token, int(s.cfg.TTL.Seconds())))
	return nil
}

// Destroy removes the store record and expires the cookie. The cookie is
// cleared even when the store destroy fails; the error is still returned so
// the caller can report the failure.
func (s *Session) Destroy(ctx context.Context) error {
	http.SetCookie(s.w, s.cookie("", -1))

	token := s.token
	s.token = ""
	s.userID = ""
	if token == "" {
		return nil
	}
	return s.store.Destroy(ctx, token)
}

func (s *Session) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   s.cfg.Secure,
	}
}

// NewContext returns ctx carrying s.
func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the request's Session, or nil when the middleware did
// not run.
func FromContext(ctx context.Context) *Session {
	s, _ := ctx.Value(ctxKey{}).(*Session)
	return s
}

// RequireUser is the authorization guard: it returns the session identity or
// domain.ErrNotAuthenticated when the request is anonymous. It has no side
// effects.
func RequireUser(ctx context.Context) (string, error) {
	s := FromContext(ctx)
	if s == nil {
		return "", domain.ErrNotAuthenticated
	}
	userID, ok := s.UserID()
	if !ok {
		return "", domain.ErrNotAuthenticated
	}
	return userID, nil
}
