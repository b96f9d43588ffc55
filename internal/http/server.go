// Package httpserver wires the chat HTTP API onto gin.
package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"chatApp/internal/http/handler"
)

// NewRouter builds the gin engine with middleware and every route registered.
func NewRouter(users handler.UserService, messages handler.MessageService, log *slog.Logger) *gin.Engine {
	log = orDiscard(log)
	uh := handler.NewUserHandler(users, log)
	mh := handler.NewMessageHandler(messages, log)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestID())
	router.Use(AccessLog(log))
	router.Use(CORS())

	router.GET("/", handler.Root)
	router.GET("/status", handler.Status)

	router.POST("/register", uh.Register)
	router.POST("/login", uh.Login)
	router.GET("/users/:username", uh.Profile)

	api := router.Group("/api")
	{
		api.POST("/send/", mh.Send)
		api.GET("/history/", mh.History)
		api.DELETE("/delete/:message_id", mh.Delete)
		api.GET("/messages/", mh.ListAll)
		api.GET("/users/:username/messages", mh.ListForUser)
	}
	return router
}

// Start serves h on addr and returns a shutdown function.
func Start(addr string, h http.Handler, log *slog.Logger) (func(context.Context) error, error) {
	log = orDiscard(log)
	if addr == "" {
		addr = ":8000"
	}
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	srv := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server stopped", slog.Any("error", err))
		}
	}()
	log.Info("http server listening", slog.String("addr", lis.Addr().String()))
	return srv.Shutdown, nil
}

func orDiscard(log *slog.Logger) *slog.Logger {
	if log == nil {
		return slog.New(slog.DiscardHandler)
	}
	return log
}
