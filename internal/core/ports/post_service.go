package ports

import (
	"context"

	"github.com/inkwell/blog-backend/internal/core/domain"
)

// PaginatedPosts is one page of the post feed.
type PaginatedPosts struct {
	Posts   []*domain.Post
	HasMore bool
}

// PostService implements the post query and mutation operations. The acting
// user's identity is passed explicitly; authorization is resolved before the
// call, ownership inside it.
type PostService interface {
	// List returns up to min(take, 50) posts ordered by creation time
	// descending, starting strictly after the optional cursor (a prior
	// item's createdAt in RFC3339Nano form).
	List(ctx context.Context, take int32, cursor *string) (*PaginatedPosts, error)
	// Get returns (nil, nil) when no post has the given id.
	Get(ctx context.Context, id string) (*domain.Post, error)
	ListByAuthor(ctx context.Context, authorID string) ([]*domain.Post, error)
	Create(ctx context.Context, authorID, title, body string) (*domain.Post, []domain.FieldError, error)
	// Update returns (nil, nil, nil) when the post is missing or owned by
	// someone else; the two cases are deliberately indistinguishable.
	Update(ctx context.Context, userID, id, title, body string) (*domain.Post, []domain.FieldError, error)
	// Delete reports true for a missing post (idempotent) and for a
	// successful owner delete; false when the post belongs to someone else.
	Delete(ctx context.Context, userID, id string) (bool, error)
}
