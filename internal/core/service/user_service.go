package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/inkwell/blog-backend/internal/core/domain"
	"github.com/inkwell/blog-backend/internal/core/ports"
	"github.com/inkwell/blog-backend/internal/core/validation"
)

// UserService implements registration, login, and current-user lookup.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// Register creates an account. A duplicate username is reported as a field
// error; any other store failure propagates.
func (s *UserService) Register(ctx context.Context, username, password string) (*domain.User, []domain.FieldError, error) {
	if errs := validation.Check(validation.RegisterInput{Username: username, Password: password}); errs != nil {
		return nil, errs, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			return nil, []domain.FieldError{{Field: "username", Message: "Username is already taken"}}, nil
		}
		s.logger.Error().Err(err).Str("username", username).Msg("failed to create user")
		return nil, nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("username", created.Username).Msg("user registered")
	return created, nil, nil
}

// Login verifies credentials. An unknown username and a wrong password are
// both field errors, on their respective fields.
func (s *UserService) Login(ctx context.Context, username, password string) (*domain.User, []domain.FieldError, error) {
	if errs := validation.Check(validation.LoginInput{Username: username, Password: password}); errs != nil {
		return nil, errs, nil
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, []domain.FieldError{{Field: "username", Message: "User not found"}}, nil
		}
		return nil, nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, []domain.FieldError{{Field: "password", Message: "Password is incorrect"}}, nil
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")
	return user, nil, nil
}

// CurrentUser resolves a session identity to its account. A stale identity
// (deleted account) yields nil rather than an error.
func (s *UserService) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	if userID == "" {
		return nil, nil
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}
