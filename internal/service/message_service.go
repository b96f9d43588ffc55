package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"chatApp/internal/errs"
	"chatApp/models"
	"chatApp/repository"
)

const (
	// ServerSender authors the acknowledgment stored for every sent message.
	ServerSender = "Server"
	// AckBody is the fixed acknowledgment text.
	AckBody = "Server: Message received!"
	// TimestampLayout is fixed width so stored timestamps sort lexicographically.
	TimestampLayout = "2006-01-02T15:04:05.000000Z07:00"
	// DefaultMaxBodyLength caps message bodies, in runes.
	DefaultMaxBodyLength = 4096
)

// SendInput is a message as submitted by a client. Timestamp is optional.
type SendInput struct {
	Sender    string `validate:"required"`
	Receiver  string `validate:"required"`
	Body      string `validate:"required" label:"message"`
	Timestamp string
}

// SendResult identifies the stored message and carries the acknowledgment text.
type SendResult struct {
	ID       int64
	Response string
}

// MessageService implements message exchange: send with acknowledgment,
// conversation history, deletion and listings.
type MessageService struct {
	messages repository.MessageRepositoryI
	log      *slog.Logger
	now      func() time.Time
	maxBody  int
}

type MessageOption func(*MessageService)

// WithClock overrides the clock used to stamp messages sent without a timestamp.
func WithClock(now func() time.Time) MessageOption {
	return func(s *MessageService) { s.now = now }
}

// WithMaxBodyLength sets the body cap in runes. Non-positive values keep the default.
func WithMaxBodyLength(n int) MessageOption {
	return func(s *MessageService) {
		if n > 0 {
			s.maxBody = n
		}
	}
}

func NewMessageService(messages repository.MessageRepositoryI, log *slog.Logger, opts ...MessageOption) *MessageService {
	s := &MessageService{
		messages: messages,
		log:      orDiscard(log),
		now:      time.Now,
		maxBody:  DefaultMaxBodyLength,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Send stores the message together with the Server acknowledgment addressed
// back to the sender. Both rows are written in one transaction and the
// acknowledgment is linked to the message it answers.
func (s *MessageService) Send(ctx context.Context, in SendInput) (SendResult, error) {
	if err := validateStruct(in); err != nil {
		return SendResult{}, err
	}
	if n := utf8.RuneCountInString(in.Body); n > s.maxBody {
		return SendResult{}, fmt.Errorf("%w: message exceeds %d characters", errs.ErrValidation, s.maxBody)
	}
	ts := in.Timestamp
	if ts == "" {
		ts = s.now().UTC().Format(TimestampLayout)
	}

	msg := &models.Message{Sender: in.Sender, Receiver: in.Receiver, Body: in.Body, Timestamp: ts}
	ack := &models.Message{Sender: ServerSender, Receiver: in.Sender, Body: AckBody, Timestamp: ts}
	if err := s.messages.CreateWithReply(ctx, msg, ack); err != nil {
		return SendResult{}, storageErr("insert message", err)
	}
	s.log.InfoContext(ctx, "message sent",
		slog.Int64("message_id", msg.ID),
		slog.Int64("ack_id", ack.ID),
		slog.String("sender", msg.Sender),
		slog.String("receiver", msg.Receiver),
	)
	return SendResult{ID: msg.ID, Response: AckBody}, nil
}

type conversation struct {
	Sender   string `validate:"required"`
	Receiver string `validate:"required"`
}

// History returns the conversation between a and b, oldest first.
// An empty conversation is reported as errs.ErrNotFound.
func (s *MessageService) History(ctx context.Context, a, b string) ([]models.Message, error) {
	if err := validateStruct(conversation{Sender: a, Receiver: b}); err != nil {
		return nil, err
	}
	msgs, err := s.messages.ListBetween(ctx, a, b)
	if err != nil {
		return nil, storageErr("list conversation", err)
	}
	if len(msgs) == 0 {
		return nil, fmt.Errorf("%w: no messages between %q and %q", errs.ErrNotFound, a, b)
	}
	return msgs, nil
}

// Delete removes one message by ID.
func (s *MessageService) Delete(ctx context.Context, id int64) error {
	removed, err := s.messages.Delete(ctx, id)
	if err != nil {
		return storageErr("delete message", err)
	}
	if !removed {
		return fmt.Errorf("%w: message %d", errs.ErrNotFound, id)
	}
	s.log.InfoContext(ctx, "message deleted", slog.Int64("message_id", id))
	return nil
}

// AllForUser lists messages sent or received by username, newest first.
func (s *MessageService) AllForUser(ctx context.Context, username string) ([]models.Message, error) {
	msgs, err := s.messages.ListForUser(ctx, username)
	if err != nil {
		return nil, storageErr("list user messages", err)
	}
	return msgs, nil
}

// AllMessages lists every stored message, newest first.
func (s *MessageService) AllMessages(ctx context.Context) ([]models.Message, error) {
	msgs, err := s.messages.ListAll(ctx)
	if err != nil {
		return nil, storageErr("list messages", err)
	}
	return msgs, nil
}
