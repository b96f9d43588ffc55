package grpcserver

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthProbe keeps the overall health status in line with storage reachability.
type HealthProbe struct {
	health   *health.Server
	pinger   Pinger
	interval time.Duration
	log      *slog.Logger

	mu   sync.Mutex
	last healthpb.HealthCheckResponse_ServingStatus
}

func NewHealthProbe(p Pinger, interval time.Duration, log *slog.Logger) *HealthProbe {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	return &HealthProbe{
		health:   hs,
		pinger:   p,
		interval: interval,
		log:      orDiscard(log),
		last:     healthpb.HealthCheckResponse_NOT_SERVING,
	}
}

// Check pings storage once and publishes the resulting status.
func (h *HealthProbe) Check(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	ctx, cancel := context.WithTimeout(ctx, h.interval)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	err := h.pinger.PingContext(ctx)
	if err != nil {
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	h.health.SetServingStatus("", status)

	h.mu.Lock()
	changed := status != h.last
	h.last = status
	h.mu.Unlock()
	if changed {
		if err != nil {
			h.log.Warn("storage unreachable", slog.Any("error", err))
		} else {
			h.log.Info("storage reachable")
		}
	}
	return status
}

// Run probes immediately and then every interval until ctx is done.
func (h *HealthProbe) Run(ctx context.Context) {
	h.Check(ctx)
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.Check(ctx)
		}
	}
}

// Shutdown marks every service NOT_SERVING and ignores later updates.
func (h *HealthProbe) Shutdown() {
	h.health.Shutdown()
}
