package session

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inkwell/blog-backend/internal/core/domain"
	"github.com/inkwell/blog-backend/internal/core/ports"
)

// Middleware resolves the session cookie against the store and injects a
// *Session into the request context. A missing cookie, an unknown token, and
// an expired token all yield an anonymous session; an unreachable store
// aborts the request.
//
// A token that no longer resolves is discarded rather than reused, so a
// later Authenticate always mints a fresh token.
func Middleware(store ports.SessionStore, cfg Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			var token, userID string
			if cookie, err := req.Cookie(CookieName); err == nil && cookie.Value != "" {
				userID, err = store.Get(req.Context(), cookie.Value)
				switch {
				case err == nil:
					token = cookie.Value
				case errors.Is(err, domain.ErrSessionNotFound):
					// anonymous
				default:
					return echo.NewHTTPError(http.StatusInternalServerError, "session store unavailable").SetInternal(err)
				}
			}

			s := New(store, cfg, c.Response(), token, userID)
			c.SetRequest(req.WithContext(NewContext(req.Context(), s)))
			return next(c)
		}
	}
}
