// Package gormstore implements the repository interfaces on top of gorm.
// It backs PostgreSQL deployments; the SQLite dialector is used in tests.
package gormstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"chatApp/internal/errs"
	"chatApp/models"
	"chatApp/repository"
)

type userRow struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
}

func (userRow) TableName() string { return "users" }

type messageRow struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Sender    string `gorm:"not null;index"`
	Receiver  string `gorm:"not null;index"`
	Body      string `gorm:"not null"`
	Timestamp string `gorm:"column:timestamp;not null"`
	ReplyTo   *int64 `gorm:"index"`
}

func (messageRow) TableName() string { return "messages" }

func (r messageRow) toModel() models.Message {
	return models.Message{ID: r.ID, Sender: r.Sender, Receiver: r.Receiver, Body: r.Body, Timestamp: r.Timestamp, ReplyTo: r.ReplyTo}
}

func fromModel(m *models.Message) messageRow {
	return messageRow{Sender: m.Sender, Receiver: m.Receiver, Body: m.Body, Timestamp: m.Timestamp, ReplyTo: m.ReplyTo}
}

// AutoMigrate creates or updates the users and messages tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&userRow{}, &messageRow{})
}

func callTimeout(d time.Duration) time.Duration {
	if d <= 0 {
		return repository.DefaultTimeout
	}
	return d
}

// UserRepository is the gorm implementation of repository.UserRepositoryI.
type UserRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

var _ repository.UserRepositoryI = (*UserRepository)(nil)

func NewUserRepository(db *gorm.DB, timeout time.Duration) *UserRepository {
	return &UserRepository{db: db, timeout: callTimeout(timeout)}
}

func (r *UserRepository) Create(ctx context.Context, username, passwordHash string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := userRow{Username: username, PasswordHash: passwordHash}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, fmt.Errorf("%w: %s", errs.ErrDuplicateUsername, username)
		}
		return nil, err
	}
	return &models.User{ID: row.ID, Username: row.Username, PasswordHash: row.PasswordHash}, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var row userRow
	err := r.db.WithContext(ctx).Where("username = ?", username).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &models.User{ID: row.ID, Username: row.Username, PasswordHash: row.PasswordHash}, nil
}

// MessageRepository is the gorm implementation of repository.MessageRepositoryI.
type MessageRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

var _ repository.MessageRepositoryI = (*MessageRepository)(nil)

func NewMessageRepository(db *gorm.DB, timeout time.Duration) *MessageRepository {
	return &MessageRepository{db: db, timeout: callTimeout(timeout)}
}

func (r *MessageRepository) Create(ctx context.Context, m *models.Message) (*models.Message, error) {
	if m == nil {
		return nil, errors.New("message is nil")
	}
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := fromModel(m)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, err
	}
	out := row.toModel()
	return &out, nil
}

// CreateWithReply inserts m and then reply, linked to m, in one transaction.
func (r *MessageRepository) CreateWithReply(ctx context.Context, m, reply *models.Message) error {
	if m == nil || reply == nil {
		return errors.New("message is nil")
	}
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	first, second := fromModel(m), fromModel(reply)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&first).Error; err != nil {
			return err
		}
		second.ReplyTo = &first.ID
		return tx.Create(&second).Error
	})
	if err != nil {
		return err
	}
	m.ID = first.ID
	reply.ID = second.ID
	reply.ReplyTo = second.ReplyTo
	return nil
}

const pairFilter = "(sender = ? AND receiver = ?) OR (sender = ? AND receiver = ?)"

func (r *MessageRepository) ListBetween(ctx context.Context, a, b string) ([]models.Message, error) {
	return r.find(ctx, false,
		pairFilter+" OR reply_to IN (SELECT id FROM messages WHERE "+pairFilter+")",
		a, b, b, a, a, b, b, a)
}

func (r *MessageRepository) ListForUser(ctx context.Context, username string) ([]models.Message, error) {
	return r.find(ctx, true, "sender = ? OR receiver = ?", username, username)
}

func (r *MessageRepository) ListAll(ctx context.Context) ([]models.Message, error) {
	return r.find(ctx, true, "")
}

func (r *MessageRepository) Delete(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res := r.db.WithContext(ctx).Delete(&messageRow{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *MessageRepository) find(ctx context.Context, desc bool, where string, args ...any) ([]models.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	q := r.db.WithContext(ctx)
	if where != "" {
		q = q.Where(where, args...)
	}
	// "timestamp" is a type name in PostgreSQL, so let gorm quote it.
	q = q.Order(clause.OrderByColumn{Column: clause.Column{Name: "timestamp"}, Desc: desc}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: desc})

	var rows []messageRow
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return lo.Map(rows, func(row messageRow, _ int) models.Message { return row.toModel() }), nil
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	var se sqlite3.Error
	if errors.As(err, &se) {
		return se.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}
