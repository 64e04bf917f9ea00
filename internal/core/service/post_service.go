package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/inkwell/blog-backend/internal/core/domain"
	"github.com/inkwell/blog-backend/internal/core/ports"
	"github.com/inkwell/blog-backend/internal/core/validation"
)

// maxPageSize caps the number of posts returned by a single List call.
const maxPageSize = 50

// PostService implements the post feed and ownership-checked mutations.
type PostService struct {
	repo   ports.PostRepository
	logger zerolog.Logger
}

func NewPostService(repo ports.PostRepository, logger zerolog.Logger) *PostService {
	return &PostService{repo: repo, logger: logger}
}

// List returns one page of the feed, newest first. The page size is clamped
// to maxPageSize; one extra row is fetched to decide HasMore and is never
// returned to the caller. The cursor is a prior item's createdAt in
// RFC3339Nano form; results start strictly after it.
func (s *PostService) List(ctx context.Context, take int32, cursor *string) (*ports.PaginatedPosts, error) {
	limit := int(take)
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if limit < 0 {
		limit = 0
	}

	filter := ports.PostsFilter{Limit: limit + 1}
	if cursor != nil && *cursor != "" {
		before, err := time.Parse(time.RFC3339Nano, *cursor)
		if err != nil {
			return nil, fmt.Errorf("invalid cursor %q: %w", *cursor, err)
		}
		filter.Before = &before
	}

	posts, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	hasMore := len(posts) == limit+1
	if hasMore {
		posts = posts[:limit]
	}

	return &ports.PaginatedPosts{Posts: posts, HasMore: hasMore}, nil
}

// Get returns the post with the given id, or nil when it does not exist.
func (s *PostService) Get(ctx context.Context, id string) (*domain.Post, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return post, nil
}

// ListByAuthor returns all posts owned by authorID, newest first.
func (s *PostService) ListByAuthor(ctx context.Context, authorID string) ([]*domain.Post, error) {
	return s.repo.ListByAuthor(ctx, authorID)
}

// Create validates the input and persists a new post owned by authorID.
func (s *PostService) Create(ctx context.Context, authorID, title, body string) (*domain.Post, []domain.FieldError, error) {
	if errs := validation.Check(validation.PostInput{Title: title, Body: body}); errs != nil {
		return nil, errs, nil
	}

	now := time.Now().UTC()
	post, err := s.repo.Create(ctx, &domain.Post{
		Title:     title,
		Body:      body,
		AuthorID:  authorID,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("author_id", authorID).Msg("failed to create post")
		return nil, nil, err
	}

	s.logger.Info().Str("post_id", post.ID).Str("author_id", authorID).Msg("post created")
	return post, nil, nil
}

// Update rewrites a post the caller owns. A missing post and a post owned by
// someone else both yield a nil result, so non-owners cannot probe for
// existence. The fetch-then-write pair is not transactional; a concurrent
// delete surfaces as not-found from the store.
func (s *PostService) Update(ctx context.Context, userID, id, title, body string) (*domain.Post, []domain.FieldError, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return nil, nil, nil
		}
		return nil, nil, err
	}
	if post.AuthorID != userID {
		return nil, nil, nil
	}

	if errs := validation.Check(validation.PostInput{Title: title, Body: body}); errs != nil {
		return nil, errs, nil
	}

	updated, err := s.repo.Update(ctx, id, title, body)
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return nil, nil, nil
		}
		return nil, nil, err
	}

	s.logger.Info().Str("post_id", id).Msg("post updated")
	return updated, nil, nil
}

// Delete removes a post the caller owns. Deleting a missing post reports
// true (idempotent); a post owned by someone else is silently refused with
// false and never mutated.
func (s *PostService) Delete(ctx context.Context, userID, id string) (bool, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return true, nil
		}
		return false, err
	}
	if post.AuthorID != userID {
		return false, nil
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return true, nil
		}
		return false, err
	}

	s.logger.Info().Str("post_id", id).Msg("post deleted")
	return true, nil
}
