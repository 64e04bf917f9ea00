package ports

import (
	"context"
	"time"
)

// SessionStore persists the per-client session record, addressed by the
// opaque cookie token. Implementations must be safe for concurrent use.
type SessionStore interface {
	// Get returns the user id bound to token, or domain.ErrSessionNotFound
	// when the token is unknown or expired.
	Get(ctx context.Context, token string) (string, error)
	Set(ctx context.Context, token, userID string, ttl time.Duration) error
	Destroy(ctx context.Context, token string) error
}
