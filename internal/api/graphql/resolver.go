package graphql

import (
	"context"

	graphqlgo "github.com/graph-gophers/graphql-go"
	"github.com/rs/zerolog"

	"github.com/inkwell/blog-backend/internal/api/metrics"
	"github.com/inkwell/blog-backend/internal/api/session"
	"github.com/inkwell/blog-backend/internal/core/domain"
	"github.com/inkwell/blog-backend/internal/core/ports"
)

// Resolver is the root resolver. Services are injected at construction;
// per-request state (the session) travels in the context.
type Resolver struct {
	users  ports.UserService
	posts  ports.PostService
	logger zerolog.Logger
}

func NewResolver(users ports.UserService, posts ports.PostService, logger zerolog.Logger) *Resolver {
	return &Resolver{users: users, posts: posts, logger: logger}
}

// NewSchema parses Schema against a root resolver. Panics on a schema/
// resolver mismatch, which is a programming error caught at startup.
func NewSchema(r *Resolver) *graphqlgo.Schema {
	return graphqlgo.MustParseSchema(Schema, r)
}

// ── Account operations ────────────────────────────────────────────────────────

type credentialsArgs struct {
	Username string
	Password string
}

func (r *Resolver) Register(ctx context.Context, args credentialsArgs) (*userResponseResolver, error) {
	user, errs, err := r.users.Register(ctx, args.Username, args.Password)
	if err != nil {
		return nil, err
	}
	if errs != nil {
		metrics.ValidationFailuresTotal.WithLabelValues(errs[0].Field).Inc()
		return newUserResponse(r, nil, errs), nil
	}

	metrics.UsersRegisteredTotal.Inc()
	if err := r.authenticate(ctx, user.ID); err != nil {
		return nil, err
	}
	return newUserResponse(r, user, nil), nil
}

func (r *Resolver) Login(ctx context.Context, args credentialsArgs) (*userResponseResolver, error) {
	user, errs, err := r.users.Login(ctx, args.Username, args.Password)
	if err != nil {
		return nil, err
	}
	if errs != nil {
		metrics.LoginsTotal.WithLabelValues(loginOutcome(errs[0])).Inc()
		return newUserResponse(r, nil, errs), nil
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	if err := r.authenticate(ctx, user.ID); err != nil {
		return nil, err
	}
	return newUserResponse(r, user, nil), nil
}

// Logout destroys the caller's session. The cookie is cleared regardless;
// false is reported only when the store destroy fails.
func (r *Resolver) Logout(ctx context.Context) (bool, error) {
	s := session.FromContext(ctx)
	if s == nil {
		return true, nil
	}
	if err := s.Destroy(ctx); err != nil {
		r.logger.Error().Err(err).Msg("session destroy failed")
		return false, nil
	}
	metrics.SessionsDestroyedTotal.Inc()
	return true, nil
}

// CurrentUser returns the authenticated account, or null for an anonymous
// request or a stale session identity. It never errors on absence.
func (r *Resolver) CurrentUser(ctx context.Context) (*userResolver, error) {
	s := session.FromContext(ctx)
	if s == nil {
		return nil, nil
	}
	userID, ok := s.UserID()
	if !ok {
		return nil, nil
	}

	user, err := r.users.CurrentUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return &userResolver{r: r, user: user}, nil
}

func (r *Resolver) authenticate(ctx context.Context, userID string) error {
	s := session.FromContext(ctx)
	if s == nil {
		return domain.ErrSessionNotFound
	}
	if err := s.Authenticate(ctx, userID); err != nil {
		return err
	}
	metrics.SessionsStartedTotal.Inc()
	return nil
}

func loginOutcome(fe domain.FieldError) string {
	switch {
	case fe.Message == "User not found":
		return "unknown_user"
	case fe.Field == "password" && fe.Message == "Password is incorrect":
		return "bad_password"
	default:
		return "invalid"
	}
}
