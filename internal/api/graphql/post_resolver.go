package graphql

import (
	"context"
	"fmt"
	"time"

	graphqlgo "github.com/graph-gophers/graphql-go"

	"github.com/inkwell/blog-backend/internal/api/metrics"
	"github.com/inkwell/blog-backend/internal/api/session"
	"github.com/inkwell/blog-backend/internal/core/domain"
)

// ── Post queries ──────────────────────────────────────────────────────────────

type postsArgs struct {
	Take   int32
	Cursor *string
}

func (r *Resolver) Posts(ctx context.Context, args postsArgs) (*paginatedPostsResolver, error) {
	page, err := r.posts.List(ctx, args.Take, args.Cursor)
	if err != nil {
		return nil, err
	}
	return &paginatedPostsResolver{
		posts:   newPostResolvers(r, page.Posts),
		hasMore: page.HasMore,
	}, nil
}

type postIDArgs struct {
	PostID graphqlgo.ID
}

func (r *Resolver) Post(ctx context.Context, args postIDArgs) (*postResolver, error) {
	post, err := r.posts.Get(ctx, string(args.PostID))
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, nil
	}
	return &postResolver{r: r, post: post}, nil
}

func (r *Resolver) GetPostsByUser(ctx context.Context) ([]*postResolver, error) {
	userID, err := session.RequireUser(ctx)
	if err != nil {
		return nil, err
	}

	posts, err := r.posts.ListByAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}
	return newPostResolvers(r, posts), nil
}

// ── Post mutations ────────────────────────────────────────────────────────────

type createPostArgs struct {
	Title string
	Body  string
}

func (r *Resolver) CreatePost(ctx context.Context, args createPostArgs) (*postResponseResolver, error) {
	userID, err := session.RequireUser(ctx)
	if err != nil {
		return nil, err
	}

	post, errs, err := r.posts.Create(ctx, userID, args.Title, args.Body)
	if err != nil {
		return nil, err
	}
	if errs != nil {
		metrics.ValidationFailuresTotal.WithLabelValues(errs[0].Field).Inc()
		return newPostResponse(r, nil, errs), nil
	}

	metrics.PostMutationsTotal.WithLabelValues("create").Inc()
	return newPostResponse(r, post, nil), nil
}

type updatePostArgs struct {
	PostID graphqlgo.ID
	Title  string
	Body   string
}

func (r *Resolver) UpdatePost(ctx context.Context, args updatePostArgs) (*postResponseResolver, error) {
	userID, err := session.RequireUser(ctx)
	if err != nil {
		return nil, err
	}

	post, errs, err := r.posts.Update(ctx, userID, string(args.PostID), args.Title, args.Body)
	if err != nil {
		return nil, err
	}
	if errs != nil {
		metrics.ValidationFailuresTotal.WithLabelValues(errs[0].Field).Inc()
		return newPostResponse(r, nil, errs), nil
	}
	if post == nil {
		// Missing and not-owned are the same null, by contract.
		return nil, nil
	}

	metrics.PostMutationsTotal.WithLabelValues("update").Inc()
	return newPostResponse(r, post, nil), nil
}

func (r *Resolver) DeletePost(ctx context.Context, args postIDArgs) (bool, error) {
	userID, err := session.RequireUser(ctx)
	if err != nil {
		return false, err
	}

	ok, err := r.posts.Delete(ctx, userID, string(args.PostID))
	if err != nil {
		return false, err
	}
	if ok {
		metrics.PostMutationsTotal.WithLabelValues("delete").Inc()
	}
	return ok, nil
}

// ── Type resolvers ────────────────────────────────────────────────────────────

type postResolver struct {
	r    *Resolver
	post *domain.Post
}

func newPostResolvers(r *Resolver, posts []*domain.Post) []*postResolver {
	resolvers := make([]*postResolver, 0, len(posts))
	for _, p := range posts {
		resolvers = append(resolvers, &postResolver{r: r, post: p})
	}
	return resolvers
}

func (p *postResolver) ID() graphqlgo.ID { return graphqlgo.ID(p.post.ID) }
func (p *postResolver) Title() string    { return p.post.Title }
func (p *postResolver) Body() string     { return p.post.Body }

// BodySnippet is the list-view preview: the first 50 characters of the body.
func (p *postResolver) BodySnippet() string { return p.post.Snippet() }

// CreatedAt doubles as the pagination cursor; the RFC3339Nano form
// round-trips through posts(cursor:).
func (p *postResolver) CreatedAt() string { return p.post.CreatedAt.UTC().Format(time.RFC3339Nano) }
func (p *postResolver) UpdatedAt() string { return p.post.UpdatedAt.UTC().Format(time.RFC3339Nano) }

func (p *postResolver) AuthorID() graphqlgo.ID { return graphqlgo.ID(p.post.AuthorID) }

func (p *postResolver) Author(ctx context.Context) (*userResolver, error) {
	user, err := p.r.users.CurrentUser(ctx, p.post.AuthorID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("author %s not found", p.post.AuthorID)
	}
	return &userResolver{r: p.r, user: user}, nil
}

type paginatedPostsResolver struct {
	posts   []*postResolver
	hasMore bool
}

func (p *paginatedPostsResolver) Posts() []*postResolver { return p.posts }
func (p *paginatedPostsResolver) HasMore() bool          { return p.hasMore }

type postResponseResolver struct {
	post   *postResolver
	errors *[]*fieldErrorResolver
}

func newPostResponse(r *Resolver, post *domain.Post, errs []domain.FieldError) *postResponseResolver {
	resp := &postResponseResolver{errors: newFieldErrorResolvers(errs)}
	if post != nil {
		resp.post = &postResolver{r: r, post: post}
	}
	return resp
}

func (p *postResponseResolver) Post() *postResolver            { return p.post }
func (p *postResponseResolver) Errors() *[]*fieldErrorResolver { return p.errors }
