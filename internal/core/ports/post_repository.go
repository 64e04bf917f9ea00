package ports

import (
	"context"
	"time"

	"github.com/inkwell/blog-backend/internal/core/domain"
)

// PostsFilter carries the range-query parameters for listing posts.
// Ordering is always created_at descending.
type PostsFilter struct {
	Before *time.Time // optional: created_at strictly before this instant
	Limit  int        // max rows returned; callers set it, the store obeys it
}

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	// FindByID retrieves a post by id; absence is domain.ErrPostNotFound.
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	// Update overwrites title and body and refreshes updated_at, returning
	// the stored post. Absence is domain.ErrPostNotFound.
	Update(ctx context.Context, id, title, body string) (*domain.Post, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter PostsFilter) ([]*domain.Post, error)
	// ListByAuthor returns all posts owned by authorID, newest first.
	ListByAuthor(ctx context.Context, authorID string) ([]*domain.Post, error)
}
