package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"chatApp/internal/auth"
	"chatApp/internal/errs"
	"chatApp/repository"
)

// UserService owns registration, authentication and profile lookup.
// Password material never leaves it.
type UserService struct {
	users    repository.UserRepositoryI
	log      *slog.Logger
	hashCost int
}

type UserOption func(*UserService)

// WithHashCost sets the bcrypt cost used for new password hashes.
func WithHashCost(cost int) UserOption {
	return func(s *UserService) { s.hashCost = cost }
}

func NewUserService(users repository.UserRepositoryI, log *slog.Logger, opts ...UserOption) *UserService {
	s := &UserService{users: users, log: orDiscard(log), hashCost: bcrypt.DefaultCost}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type credentials struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// Register creates a user and returns its username.
func (s *UserService) Register(ctx context.Context, username, password string) (string, error) {
	if err := validateStruct(credentials{Username: username, Password: password}); err != nil {
		return "", err
	}

	hash, err := auth.HashPassword(password, s.hashCost)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooLong) {
			return "", fmt.Errorf("%w: password must be at most %d bytes", errs.ErrValidation, auth.MaxPasswordBytes)
		}
		return "", err
	}

	u, err := s.users.Create(ctx, username, hash)
	if err != nil {
		if errors.Is(err, errs.ErrDuplicateUsername) {
			return "", err
		}
		return "", storageErr("create user", err)
	}
	s.log.InfoContext(ctx, "user registered", slog.Int64("user_id", u.ID), slog.String("username", u.Username))
	return u.Username, nil
}

// Authenticate checks a username/password pair and returns the username.
// Unknown users are errs.ErrNotFound; any password mismatch, including an
// empty password, is errs.ErrInvalidCredentials.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (string, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return "", storageErr("get user", err)
	}
	if u == nil {
		return "", fmt.Errorf("%w: user %q", errs.ErrNotFound, username)
	}

	ok, err := auth.ComparePassword(password, u.PasswordHash)
	if err != nil {
		s.log.WarnContext(ctx, "stored password hash unreadable", slog.String("username", username), slog.Any("error", err))
		return "", errs.ErrInvalidCredentials
	}
	if !ok {
		return "", errs.ErrInvalidCredentials
	}
	s.log.DebugContext(ctx, "user authenticated", slog.String("username", username))
	return u.Username, nil
}

// GetProfile returns the username of an existing user.
func (s *UserService) GetProfile(ctx context.Context, username string) (string, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return "", storageErr("get user", err)
	}
	if u == nil {
		return "", fmt.Errorf("%w: user %q", errs.ErrNotFound, username)
	}
	return u.Username, nil
}
