package grpcserver

import (
	"context"
	"log/slog"
	"net"

	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const healthCheckMethod = "/grpc.health.v1.Health/Check"

// NewServer builds a gRPC server exposing the health service backed by probe.
func NewServer(probe *HealthProbe, log *slog.Logger) *grpc.Server {
	srv := grpc.NewServer(grpc.UnaryInterceptor(NewUnaryLoggingInterceptor(log, healthCheckMethod)))
	healthpb.RegisterHealthServer(srv, probe.health)
	return srv
}

// StartGRPC starts the gRPC server on addr together with the storage probe
// loop and returns a shutdown function.
func StartGRPC(addr string, probe *HealthProbe, log *slog.Logger) (func(context.Context) error, error) {
	if probe == nil {
		panic("health probe is required")
	}
	if addr == "" {
		addr = ":50051"
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	srv := NewServer(probe, log)
	probeCtx, stopProbe := context.WithCancel(context.Background())
	go probe.Run(probeCtx)
	go func() {
		if err := srv.Serve(lis); err != nil {
			orDiscard(log).Error("grpc server stopped", slog.Any("error", err))
		}
	}()
	orDiscard(log).Info("grpc server listening", slog.String("addr", lis.Addr().String()))

	return func(ctx context.Context) error {
		stopProbe()
		probe.Shutdown()
		done := make(chan struct{})
		go func() { srv.GracefulStop(); close(done) }()
		select {
		case <-done:
			return nil
		case <-ctx.Done():
			srv.Stop()
			return ctx.Err()
		}
	}, nil
}

func orDiscard(log *slog.Logger) *slog.Logger {
	if log == nil {
		return slog.New(slog.DiscardHandler)
	}
	return log
}
