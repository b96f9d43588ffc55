package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"chatApp/internal/errs"
	"chatApp/internal/testutil"
	"chatApp/repository"
)

func newSQLiteServices(t *testing.T) (*UserService, *MessageService) {
	t.Helper()
	d := testutil.OpenInMemoryDB(t)
	users := NewUserService(repository.NewUserRepository(d, 0), nil, WithHashCost(bcrypt.MinCost))
	messages := NewMessageService(repository.NewMessageRepository(d, 0), nil)
	return users, messages
}

func TestScenario_RegisterLoginSendHistory(t *testing.T) {
	req := require.New(t)
	users, messages := newSQLiteServices(t)
	ctx := context.Background()

	_, err := users.Register(ctx, "alice", "pw1")
	req.NoError(err)
	_, err = users.Register(ctx, "alice", "pw2")
	req.ErrorIs(err, errs.ErrDuplicateUsername)

	_, err = users.Authenticate(ctx, "alice", "pw1")
	req.NoError(err)
	_, err = users.Authenticate(ctx, "alice", "pw2")
	req.ErrorIs(err, errs.ErrInvalidCredentials)
	_, err = users.Authenticate(ctx, "alice", "wrong")
	req.ErrorIs(err, errs.ErrInvalidCredentials)

	res, err := messages.Send(ctx, SendInput{Sender: "alice", Receiver: "bob", Body: "hello"})
	req.NoError(err)
	req.Equal(int64(1), res.ID)
	req.Equal("Server: Message received!", res.Response)

	hist, err := messages.History(ctx, "alice", "bob")
	req.NoError(err)
	req.Len(hist, 2)
	req.Equal(int64(1), hist[0].ID)
	req.Equal("alice", hist[0].Sender)
	req.Equal("bob", hist[0].Receiver)
	req.Equal(int64(2), hist[1].ID)
	req.Equal("Server", hist[1].Sender)
	req.Equal("alice", hist[1].Receiver)

	_, err = messages.History(ctx, "nobody1", "nobody2")
	req.ErrorIs(err, errs.ErrNotFound)
}

func TestScenario_HistoryGrowsByTwoPerSend(t *testing.T) {
	req := require.New(t)
	_, messages := newSQLiteServices(t)
	ctx := context.Background()

	const sends = 3
	var first int64
	for i := 0; i < sends; i++ {
		res, err := messages.Send(ctx, SendInput{Sender: "A", Receiver: "B", Body: "hi"})
		req.NoError(err)
		if i == 0 {
			first = res.ID
		}
	}

	ab, err := messages.History(ctx, "A", "B")
	req.NoError(err)
	req.Len(ab, 2*sends)
	for i := 1; i < len(ab); i++ {
		req.LessOrEqual(ab[i-1].Timestamp, ab[i].Timestamp)
	}

	ba, err := messages.History(ctx, "B", "A")
	req.NoError(err)
	req.Equal(ab, ba)

	req.NoError(messages.Delete(ctx, first))
	req.ErrorIs(messages.Delete(ctx, first), errs.ErrNotFound)

	// The acknowledgment row survives but drops out of the conversation with its message.
	after, err := messages.History(ctx, "A", "B")
	req.NoError(err)
	req.Len(after, 2*sends-2)
	for _, m := range after {
		req.NotEqual(first, m.ID)
	}

	all, err := messages.AllMessages(ctx)
	req.NoError(err)
	req.Len(all, 2*sends-1)
}
