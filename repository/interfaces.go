//go:generate go run go.uber.org/mock/mockgen -source=interfaces.go -destination=../internal/mocks/mock_repository.go -package=mocks
package repository

import (
	"context"
	"time"

	"chatApp/models"
)

// DefaultTimeout bounds a single storage round-trip when no timeout is configured.
const DefaultTimeout = 3 * time.Second

// UserRepositoryI defines operations on User entities.
type UserRepositoryI interface {
	// Create inserts a user. A taken username yields errs.ErrDuplicateUsername.
	Create(ctx context.Context, username, passwordHash string) (*models.User, error)
	// GetByUsername returns nil, nil when the user does not exist.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// MessageRepositoryI defines operations on Message entities.
type MessageRepositoryI interface {
	Create(ctx context.Context, m *models.Message) (*models.Message, error)
	// CreateWithReply stores m and then reply, linked to m through ReplyTo, in one
	// transaction. IDs (and reply.ReplyTo) are set in place only on success.
	CreateWithReply(ctx context.Context, m, reply *models.Message) error
	// ListBetween returns the conversation between a and b, oldest first: messages
	// exchanged in either direction plus the replies linked to them.
	ListBetween(ctx context.Context, a, b string) ([]models.Message, error)
	// ListForUser returns messages sent or received by username, newest first.
	ListForUser(ctx context.Context, username string) ([]models.Message, error)
	ListAll(ctx context.Context) ([]models.Message, error)
	// Delete reports whether a row was removed.
	Delete(ctx context.Context, id int64) (bool, error)
}

func callTimeout(d time.Duration) time.Duration {
	if d <= 0 {
		return DefaultTimeout
	}
	return d
}
