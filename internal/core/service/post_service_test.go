package service

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/inkwell/blog-backend/internal/core/domain"
	"github.com/inkwell/blog-backend/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubPostRepo struct {
	posts  map[string]*domain.Post
	nextID int
}

func newStubPostRepo() *stubPostRepo {
	return &stubPostRepo{posts: make(map[string]*domain.Post)}
}

func clonePost(p *domain.Post) *domain.Post {
	clone := *p
	return &clone
}

func (r *stubPostRepo) Create(_ context.Context, post *domain.Post) (*domain.Post, error) {
	r.nextID++
	created := clonePost(post)
	created.ID = fmt.Sprintf("post-%d", r.nextID)
	r.posts[created.ID] = clonePost(created)
	return created, nil
}

func (r *stubPostRepo) FindByID(_ context.Context, id string) (*domain.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	return clonePost(p), nil
}

func (r *stubPostRepo) Update(_ context.Context, id, title, body string) (*domain.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	p.Title = title
	p.Body = body
	p.UpdatedAt = time.Now().UTC()
	return clonePost(p), nil
}

func (r *stubPostRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.posts[id]; !ok {
		return domain.ErrPostNotFound
	}
	delete(r.posts, id)
	return nil
}

// List mirrors the real Mongo query: created_at strictly before the cursor,
// newest first, capped at Limit.
func (r *stubPostRepo) List(_ context.Context, filter ports.PostsFilter) ([]*domain.Post, error) {
	var matched []*domain.Post
	for _, p := range r.posts {
		if filter.Before != nil && !p.CreatedAt.Before(*filter.Before) {
			continue
		}
		matched = append(matched, clonePost(p))
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	if filter.Limit > 0 && len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}

func (r *stubPostRepo) ListByAuthor(_ context.Context, authorID string) ([]*domain.Post, error) {
	var matched []*domain.Post
	for _, p := range r.posts {
		if p.AuthorID == authorID {
			matched = append(matched, clonePost(p))
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return matched, nil
}

// seedPosts inserts n posts with strictly decreasing creation times, newest
// first, and returns them in that order.
func seedPosts(t *testing.T, repo *stubPostRepo, authorID string, n int) []*domain.Post {
	t.Helper()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	posts := make([]*domain.Post, 0, n)
	for i := 0; i < n; i++ {
		created, err := repo.Create(context.Background(), &domain.Post{
			Title:     fmt.Sprintf("title %d", i),
			Body:      fmt.Sprintf("body %d", i),
			AuthorID:  authorID,
			CreatedAt: base.Add(-time.Duration(i) * time.Minute),
			UpdatedAt: base.Add(-time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("seed post %d: %v", i, err)
		}
		posts = append(posts, created)
	}
	return posts
}

// ---------------------------------------------------------------------------
// List
// ---------------------------------------------------------------------------

func TestPostService_List_CapsPageSize(t *testing.T) {
	repo := newStubPostRepo()
	seedPosts(t, repo, "alice", 60)
	svc := NewPostService(repo, zerolog.Nop())

	page, err := svc.List(context.Background(), 100, nil)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(page.Posts) != 50 {
		t.Fatalf("got %d posts, want 50", len(page.Posts))
	}
	if !page.HasMore {
		t.Fatalf("expected HasMore with 60 posts and a capped page of 50")
	}
}

func TestPostService_List_HasMore(t *testing.T) {
	repo := newStubPostRepo()
	seedPosts(t, repo, "alice", 10)
	svc := NewPostService(repo, zerolog.Nop())

	page, err := svc.List(context.Background(), 10, nil)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(page.Posts) != 10 || page.HasMore {
		t.Fatalf("got %d posts, HasMore=%v; want 10 posts and HasMore=false", len(page.Posts), page.HasMore)
	}

	page, err = svc.List(context.Background(), 9, nil)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(page.Posts) != 9 || !page.HasMore {
		t.Fatalf("got %d posts, HasMore=%v; want 9 posts and HasMore=true", len(page.Posts), page.HasMore)
	}
}

func TestPostService_List_NewestFirst(t *testing.T) {
	repo := newStubPostRepo()
	seeded := seedPosts(t, repo, "alice", 5)
	svc := NewPostService(repo, zerolog.Nop())

	page, err := svc.List(context.Background(), 5, nil)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	for i, p := range page.Posts {
		if p.ID != seeded[i].ID {
			t.Fatalf("position %d: got %s, want %s", i, p.ID, seeded[i].ID)
		}
	}
}

func TestPostService_List_CursorExcludesAnchor(t *testing.T) {
	repo := newStubPostRepo()
	seeded := seedPosts(t, repo, "alice", 10)
	svc := NewPostService(repo, zerolog.Nop())

	// Anchor at the third-newest post; expect the page to start just after it.
	cursor := seeded[2].CreatedAt.UTC().Format(time.RFC3339Nano)
	page, err := svc.List(context.Background(), 5, &cursor)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	for _, p := range page.Posts {
		if p.ID == seeded[2].ID {
			t.Fatalf("page contains the cursor anchor %s", p.ID)
		}
	}
	if len(page.Posts) == 0 || page.Posts[0].ID != seeded[3].ID {
		t.Fatalf("page does not start immediately after the anchor: %+v", page.Posts)
	}
	if !page.HasMore {
		t.Fatalf("expected HasMore: 7 posts remain after the anchor, page size 5")
	}
}

func TestPostService_List_InvalidCursor(t *testing.T) {
	svc := NewPostService(newStubPostRepo(), zerolog.Nop())

	cursor := "not-a-timestamp"
	if _, err := svc.List(context.Background(), 5, &cursor); err == nil {
		t.Fatalf("expected error for unparseable cursor")
	}
}

// ---------------------------------------------------------------------------
// Get / ListByAuthor
// ---------------------------------------------------------------------------

func TestPostService_Get_Missing(t *testing.T) {
	svc := NewPostService(newStubPostRepo(), zerolog.Nop())

	post, err := svc.Get(context.Background(), "post-404")
	if err != nil {
		t.Fatalf("missing post must not be an error, got %v", err)
	}
	if post != nil {
		t.Fatalf("expected nil post, got %+v", post)
	}
}

func TestPostService_ListByAuthor(t *testing.T) {
	repo := newStubPostRepo()
	seeded := seedPosts(t, repo, "alice", 3)
	seedPosts(t, repo, "mallory", 2)
	svc := NewPostService(repo, zerolog.Nop())

	posts, err := svc.ListByAuthor(context.Background(), "alice")
	if err != nil {
		t.Fatalf("ListByAuthor returned error: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("got %d posts, want 3", len(posts))
	}
	for i, p := range posts {
		if p.AuthorID != "alice" {
			t.Fatalf("post %s belongs to %s", p.ID, p.AuthorID)
		}
		if p.ID != seeded[i].ID {
			t.Fatalf("position %d: got %s, want %s (newest first)", i, p.ID, seeded[i].ID)
		}
	}
}

// ---------------------------------------------------------------------------
// Create / Update / Delete
// ---------------------------------------------------------------------------

func TestPostService_Create(t *testing.T) {
	repo := newStubPostRepo()
	svc := NewPostService(repo, zerolog.Nop())

	post, errs, err := svc.Create(context.Background(), "alice", "Hello", "World")
	if err != nil || errs != nil {
		t.Fatalf("create failed: errs=%v err=%v", errs, err)
	}
	if post.AuthorID != "alice" {
		t.Fatalf("author = %s, want alice", post.AuthorID)
	}

	post, errs, err = svc.Create(context.Background(), "alice", "", "World")
	if err != nil || post != nil {
		t.Fatalf("expected validation failure, got post=%+v err=%v", post, err)
	}
	if len(errs) != 1 || errs[0].Field != "title" {
		t.Fatalf("unexpected field errors: %v", errs)
	}
}

func TestPostService_Update_Owner(t *testing.T) {
	repo := newStubPostRepo()
	seeded := seedPosts(t, repo, "alice", 1)
	svc := NewPostService(repo, zerolog.Nop())

	post, errs, err := svc.Update(context.Background(), "alice", seeded[0].ID, "new title", "new body")
	if err != nil || errs != nil {
		t.Fatalf("update failed: errs=%v err=%v", errs, err)
	}
	if post == nil || post.Title != "new title" || post.Body != "new body" {
		t.Fatalf("unexpected post after update: %+v", post)
	}
}

func TestPostService_Update_NonOwnerIndistinguishableFromMissing(t *testing.T) {
	repo := newStubPostRepo()
	seeded := seedPosts(t, repo, "alice", 1)
	svc := NewPostService(repo, zerolog.Nop())

	post, errs, err := svc.Update(context.Background(), "mallory", seeded[0].ID, "hijacked", "hijacked")
	if err != nil || errs != nil || post != nil {
		t.Fatalf("non-owner update must yield nil: post=%+v errs=%v err=%v", post, errs, err)
	}

	missing, errs, err := svc.Update(context.Background(), "mallory", "post-404", "x", "y")
	if err != nil || errs != nil || missing != nil {
		t.Fatalf("missing-post update must yield nil: post=%+v errs=%v err=%v", missing, errs, err)
	}

	// The target was never mutated.
	stored, _ := repo.FindByID(context.Background(), seeded[0].ID)
	if stored.Title != seeded[0].Title || stored.Body != seeded[0].Body {
		t.Fatalf("non-owner update mutated the post: %+v", stored)
	}
}

func TestPostService_Update_Validation(t *testing.T) {
	repo := newStubPostRepo()
	seeded := seedPosts(t, repo, "alice", 1)
	svc := NewPostService(repo, zerolog.Nop())

	post, errs, err := svc.Update(context.Background(), "alice", seeded[0].ID, "", "body")
	if err != nil || post != nil {
		t.Fatalf("expected validation failure, got post=%+v err=%v", post, err)
	}
	if len(errs) != 1 || errs[0].Field != "title" || errs[0].Message != "Enter a title" {
		t.Fatalf("unexpected field errors: %v", errs)
	}
}

func TestPostService_Delete(t *testing.T) {
	repo := newStubPostRepo()
	seeded := seedPosts(t, repo, "alice", 1)
	svc := NewPostService(repo, zerolog.Nop())

	// Non-owner: refused without error, post untouched.
	ok, err := svc.Delete(context.Background(), "mallory", seeded[0].ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("non-owner delete reported true")
	}
	if _, err := repo.FindByID(context.Background(), seeded[0].ID); err != nil {
		t.Fatalf("non-owner delete removed the post")
	}

	// Missing post: idempotent true.
	ok, err = svc.Delete(context.Background(), "alice", "post-404")
	if err != nil || !ok {
		t.Fatalf("idempotent delete: ok=%v err=%v, want true, nil", ok, err)
	}

	// Owner: removed.
	ok, err = svc.Delete(context.Background(), "alice", seeded[0].ID)
	if err != nil || !ok {
		t.Fatalf("owner delete: ok=%v err=%v, want true, nil", ok, err)
	}
	if _, err := repo.FindByID(context.Background(), seeded[0].ID); err == nil {
		t.Fatalf("post still present after owner delete")
	}
}
