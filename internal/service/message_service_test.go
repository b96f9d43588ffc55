package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"chatApp/internal/errs"
	"chatApp/internal/mocks"
	"chatApp/models"
)

var fixedNow = time.Date(2024, 3, 9, 14, 5, 7, 123456000, time.FixedZone("CET", 3600))

func TestMessageService_Send(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockMessageRepositoryI(ctrl)
	svc := NewMessageService(mockRepo, nil, WithClock(func() time.Time { return fixedNow }))
	ctx := context.Background()

	t.Run("should store the message and the acknowledgment together", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().
			CreateWithReply(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg, ack *models.Message) error {
				req.Equal("alice", msg.Sender)
				req.Equal("bob", msg.Receiver)
				req.Equal("hello", msg.Body)
				req.Equal("2024-03-09T13:05:07.123456Z", msg.Timestamp)

				req.Equal(ServerSender, ack.Sender)
				req.Equal("alice", ack.Receiver)
				req.Equal(AckBody, ack.Body)
				req.Equal(msg.Timestamp, ack.Timestamp)

				msg.ID, ack.ID = 1, 2
				return nil
			}).
			Times(1)

		res, err := svc.Send(ctx, SendInput{Sender: "alice", Receiver: "bob", Body: "hello"})
		req.NoError(err)
		req.Equal(int64(1), res.ID)
		req.Equal("Server: Message received!", res.Response)
	})

	t.Run("should keep a caller supplied timestamp verbatim", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().
			CreateWithReply(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg, ack *models.Message) error {
				req.Equal("2023-12-31T23:59:59+00:00", msg.Timestamp)
				req.Equal("2023-12-31T23:59:59+00:00", ack.Timestamp)
				return nil
			})

		_, err := svc.Send(ctx, SendInput{Sender: "a", Receiver: "b", Body: "x", Timestamp: "2023-12-31T23:59:59+00:00"})
		req.NoError(err)
	})

	t.Run("should validate input", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().CreateWithReply(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.Send(ctx, SendInput{Receiver: "bob", Body: "hello"})
		req.ErrorIs(err, errs.ErrValidation)
		req.Contains(err.Error(), "sender is required")

		_, err = svc.Send(ctx, SendInput{Sender: "alice", Receiver: "bob"})
		req.ErrorIs(err, errs.ErrValidation)
		req.Contains(err.Error(), "message is required")

		capped := NewMessageService(mockRepo, nil, WithMaxBodyLength(3))
		_, err = capped.Send(ctx, SendInput{Sender: "alice", Receiver: "bob", Body: "four"})
		req.ErrorIs(err, errs.ErrValidation)
		_, err = capped.Send(ctx, SendInput{Sender: "alice", Receiver: "bob", Body: strings.Repeat("é", 4)})
		req.ErrorIs(err, errs.ErrValidation)
	})

	t.Run("should report storage failures", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().CreateWithReply(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("database is locked"))

		_, err := svc.Send(ctx, SendInput{Sender: "alice", Receiver: "bob", Body: "hello"})
		req.ErrorIs(err, errs.ErrStorageUnavailable)
		req.Contains(err.Error(), "database is locked")
	})
}

func TestMessageService_History(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockMessageRepositoryI(ctrl)
	svc := NewMessageService(mockRepo, nil)
	ctx := context.Background()
	req := require.New(t)

	conv := []models.Message{{ID: 1, Sender: "alice", Receiver: "bob", Body: "hi", Timestamp: "t"}}
	mockRepo.EXPECT().ListBetween(gomock.Any(), "alice", "bob").Return(conv, nil)
	got, err := svc.History(ctx, "alice", "bob")
	req.NoError(err)
	req.Equal(conv, got)

	mockRepo.EXPECT().ListBetween(gomock.Any(), "nobody1", "nobody2").Return([]models.Message{}, nil)
	_, err = svc.History(ctx, "nobody1", "nobody2")
	req.ErrorIs(err, errs.ErrNotFound)

	mockRepo.EXPECT().ListBetween(gomock.Any(), "a", "b").Return(nil, errors.New("boom"))
	_, err = svc.History(ctx, "a", "b")
	req.ErrorIs(err, errs.ErrStorageUnavailable)

	_, err = svc.History(ctx, "alice", "")
	req.ErrorIs(err, errs.ErrValidation)
}

func TestMessageService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockMessageRepositoryI(ctrl)
	svc := NewMessageService(mockRepo, nil)
	ctx := context.Background()
	req := require.New(t)

	mockRepo.EXPECT().Delete(gomock.Any(), int64(4)).Return(true, nil)
	req.NoError(svc.Delete(ctx, 4))

	mockRepo.EXPECT().Delete(gomock.Any(), int64(4)).Return(false, nil)
	req.ErrorIs(svc.Delete(ctx, 4), errs.ErrNotFound)

	mockRepo.EXPECT().Delete(gomock.Any(), int64(5)).Return(false, errors.New("boom"))
	req.ErrorIs(svc.Delete(ctx, 5), errs.ErrStorageUnavailable)
}

func TestMessageService_Listings(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockMessageRepositoryI(ctrl)
	svc := NewMessageService(mockRepo, nil)
	ctx := context.Background()
	req := require.New(t)

	mockRepo.EXPECT().ListForUser(gomock.Any(), "alice").Return([]models.Message{}, nil)
	msgs, err := svc.AllForUser(ctx, "alice")
	req.NoError(err)
	req.Empty(msgs)

	mockRepo.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("boom"))
	_, err = svc.AllMessages(ctx)
	req.ErrorIs(err, errs.ErrStorageUnavailable)
}
