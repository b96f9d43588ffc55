// Package handler holds the gin handlers of the chat HTTP API.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"chatApp/internal/errs"
	"chatApp/internal/service"
	"chatApp/models"
)

// UserService is the subset of service.UserService used by the handlers.
type UserService interface {
	Register(ctx context.Context, username, password string) (string, error)
	Authenticate(ctx context.Context, username, password string) (string, error)
	GetProfile(ctx context.Context, username string) (string, error)
}

// MessageService is the subset of service.MessageService used by the handlers.
type MessageService interface {
	Send(ctx context.Context, in service.SendInput) (service.SendResult, error)
	History(ctx context.Context, a, b string) ([]models.Message, error)
	Delete(ctx context.Context, id int64) error
	AllForUser(ctx context.Context, username string) ([]models.Message, error)
	AllMessages(ctx context.Context) ([]models.Message, error)
}

// RequestIDKey is the gin context key holding the request id.
const RequestIDKey = "request_id"

// failure describes how one route reports the error taxonomy.
type failure struct {
	notFound string
	dbPrefix string
}

var (
	userFailure    = failure{notFound: "User not found", dbPrefix: "Database error"}
	historyFailure = failure{notFound: "No messages found", dbPrefix: "Database Error"}
	deleteFailure  = failure{notFound: "Message ID not found", dbPrefix: "Database Error"}
	messageFailure = failure{notFound: "Not found", dbPrefix: "Database Error"}
)

func detail(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"detail": msg})
}

func (f failure) respond(c *gin.Context, log *slog.Logger, err error) {
	_ = c.Error(err)
	switch {
	case errors.Is(err, errs.ErrValidation):
		detail(c, http.StatusBadRequest, trimCause(err, errs.ErrValidation))
	case errors.Is(err, errs.ErrDuplicateUsername):
		detail(c, http.StatusBadRequest, "Username already exists")
	case errors.Is(err, errs.ErrNotFound):
		detail(c, http.StatusNotFound, f.notFound)
	case errors.Is(err, errs.ErrInvalidCredentials):
		detail(c, http.StatusUnauthorized, "Invalid credentials")
	default:
		log.ErrorContext(c.Request.Context(), "request failed",
			slog.String("request_id", c.GetString(RequestIDKey)),
			slog.String("path", c.FullPath()),
			slog.Any("error", err),
		)
		detail(c, http.StatusInternalServerError, f.dbPrefix+": "+trimCause(err, errs.ErrStorageUnavailable))
	}
}

// trimCause drops the sentinel prefix from a wrapped error message.
func trimCause(err, sentinel error) string {
	return strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
}

func orDiscard(log *slog.Logger) *slog.Logger {
	if log == nil {
		return slog.New(slog.DiscardHandler)
	}
	return log
}
