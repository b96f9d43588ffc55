package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"chatApp/models"
)

var _ MessageRepositoryI = (*MessageRepository)(nil)

const messageColumns = `id, sender, receiver, body, timestamp, reply_to`

// pairFilter matches messages exchanged between two users in either direction.
// Arguments: a, b, b, a.
const pairFilter = `(sender = ? AND receiver = ?) OR (sender = ? AND receiver = ?)`

// MessageRepository stores chat messages in SQLite.
type MessageRepository struct {
	db      *sql.DB
	timeout time.Duration
}

// NewMessageRepository creates a new MessageRepository.
func NewMessageRepository(db *sql.DB, timeout time.Duration) *MessageRepository {
	return &MessageRepository{db: db, timeout: callTimeout(timeout)}
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertMessage(ctx context.Context, ex execer, m *models.Message, replyTo *int64) (int64, error) {
	res, err := ex.ExecContext(ctx, `INSERT INTO messages (sender, receiver, body, timestamp, reply_to) VALUES (?,?,?,?,?)`,
		m.Sender, m.Receiver, m.Body, m.Timestamp, replyTo)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Create inserts a single message and returns a copy carrying its ID.
func (r *MessageRepository) Create(ctx context.Context, m *models.Message) (*models.Message, error) {
	if m == nil {
		return nil, errors.New("message is nil")
	}
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	id, err := insertMessage(ctx, r.db, m, m.ReplyTo)
	if err != nil {
		return nil, err
	}
	out := *m
	out.ID = id
	return &out, nil
}

// CreateWithReply inserts m and its reply inside one transaction.
// On failure neither row is stored.
func (r *MessageRepository) CreateWithReply(ctx context.Context, m, reply *models.Message) error {
	if m == nil || reply == nil {
		return errors.New("message is nil")
	}
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	id, err := insertMessage(ctx, tx, m, m.ReplyTo)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	replyID, err := insertMessage(ctx, tx, reply, &id)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	m.ID = id
	reply.ID = replyID
	reply.ReplyTo = &id
	return nil
}

func (r *MessageRepository) ListBetween(ctx context.Context, a, b string) ([]models.Message, error) {
	return r.query(ctx, `SELECT `+messageColumns+` FROM messages
		WHERE `+pairFilter+`
		   OR reply_to IN (SELECT id FROM messages WHERE `+pairFilter+`)
		ORDER BY timestamp ASC, id ASC`, a, b, b, a, a, b, b, a)
}

func (r *MessageRepository) ListForUser(ctx context.Context, username string) ([]models.Message, error) {
	return r.query(ctx, `SELECT `+messageColumns+` FROM messages
		WHERE sender = ? OR receiver = ?
		ORDER BY timestamp DESC, id DESC`, username, username)
}

func (r *MessageRepository) ListAll(ctx context.Context) ([]models.Message, error) {
	return r.query(ctx, `SELECT `+messageColumns+` FROM messages ORDER BY timestamp DESC, id DESC`)
}

// Delete removes a message by ID. A missing ID is not an error.
func (r *MessageRepository) Delete(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM messages WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *MessageRepository) query(ctx context.Context, q string, args ...any) ([]models.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []models.Message{}
	for rows.Next() {
		var m models.Message
		var replyTo sql.NullInt64
		if err := rows.Scan(&m.ID, &m.Sender, &m.Receiver, &m.Body, &m.Timestamp, &replyTo); err != nil {
			return nil, err
		}
		if replyTo.Valid {
			v := replyTo.Int64
			m.ReplyTo = &v
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
