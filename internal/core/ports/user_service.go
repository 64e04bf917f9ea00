package ports

import (
	"context"

	"github.com/inkwell/blog-backend/internal/core/domain"
)

// UserService implements account registration and credential verification.
// Field errors are returned as data: (nil, errs, nil) means the input was
// rejected; (nil, nil, err) means the store failed.
type UserService interface {
	Register(ctx context.Context, username, password string) (*domain.User, []domain.FieldError, error)
	Login(ctx context.Context, username, password string) (*domain.User, []domain.FieldError, error)
	// CurrentUser resolves a session identity to its account. A missing or
	// deleted account yields (nil, nil), never an error.
	CurrentUser(ctx context.Context, userID string) (*domain.User, error)
}
