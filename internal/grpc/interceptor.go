package grpcserver

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// NewUnaryLoggingInterceptor returns a gRPC unary interceptor that logs each call
// with its status code and latency. Methods listed in quiet are logged at debug level
// (e.g., health checks polled by orchestrators).
func NewUnaryLoggingInterceptor(log *slog.Logger, quiet ...string) grpc.UnaryServerInterceptor {
	log = orDiscard(log)
	q := make(map[string]struct{}, len(quiet))
	for _, m := range quiet {
		q[strings.TrimSpace(m)] = struct{}{}
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		level := slog.LevelInfo
		if _, ok := q[info.FullMethod]; ok {
			level = slog.LevelDebug
		}
		if err != nil {
			level = slog.LevelWarn
		}
		log.LogAttrs(ctx, level, "grpc call",
			slog.String("method", info.FullMethod),
			slog.String("code", status.Code(err).String()),
			slog.Duration("latency", time.Since(start)),
		)
		return resp, err
	}
}
