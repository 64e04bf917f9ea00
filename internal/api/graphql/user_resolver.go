package graphql

import (
	"context"
	"time"

	graphqlgo "github.com/graph-gophers/graphql-go"

	"github.com/inkwell/blog-backend/internal/core/domain"
)

type userResolver struct {
	r    *Resolver
	user *domain.User
}

func (u *userResolver) ID() graphqlgo.ID { return graphqlgo.ID(u.user.ID) }
func (u *userResolver) Username() string { return u.user.Username }
func (u *userResolver) CreatedAt() string {
	return u.user.CreatedAt.UTC().Format(time.RFC3339Nano)
}
func (u *userResolver) UpdatedAt() string {
	return u.user.UpdatedAt.UTC().Format(time.RFC3339Nano)
}

func (u *userResolver) Posts(ctx context.Context) ([]*postResolver, error) {
	posts, err := u.r.posts.ListByAuthor(ctx, u.user.ID)
	if err != nil {
		return nil, err
	}
	return newPostResolvers(u.r, posts), nil
}

type userResponseResolver struct {
	user   *userResolver
	errors *[]*fieldErrorResolver
}

func newUserResponse(r *Resolver, user *domain.User, errs []domain.FieldError) *userResponseResolver {
	resp := &userResponseResolver{errors: newFieldErrorResolvers(errs)}
	if user != nil {
		resp.user = &userResolver{r: r, user: user}
	}
	return resp
}

func (u *userResponseResolver) User() *userResolver            { return u.user }
func (u *userResponseResolver) Errors() *[]*fieldErrorResolver { return u.errors }

type fieldErrorResolver struct {
	fe domain.FieldError
}

func newFieldErrorResolvers(errs []domain.FieldError) *[]*fieldErrorResolver {
	if len(errs) == 0 {
		return nil
	}
	resolvers := make([]*fieldErrorResolver, 0, len(errs))
	for _, fe := range errs {
		resolvers = append(resolvers, &fieldErrorResolver{fe: fe})
	}
	return &resolvers
}

func (f *fieldErrorResolver) Field() string   { return f.fe.Field }
func (f *fieldErrorResolver) Message() string { return f.fe.Message }
