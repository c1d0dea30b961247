package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/MKhiriev/eat-around/internal/logger"
	"github.com/MKhiriev/eat-around/internal/store"
)

// OverallService is the health service name that aggregates every backend.
const OverallService = ""

// Handler is the gRPC transport handler. It serves the standard
// grpc.health.v1 service with one status per storage backend, named after
// the backend, and an aggregate status under [OverallService].
type Handler struct {
	health   *health.Server
	checkers map[string]store.HealthChecker
	version  string

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. Every service reports NOT_SERVING
// until the first [Handler.Refresh].
func NewHandler(checkers map[string]store.HealthChecker, version string, logger *logger.Logger) *Handler {
	h := &Handler{
		health:   health.NewServer(),
		checkers: checkers,
		version:  version,
		logger:   logger,
	}

	h.health.SetServingStatus(OverallService, healthpb.HealthCheckResponse_NOT_SERVING)
	for name := range checkers {
		h.health.SetServingStatus(name, healthpb.HealthCheckResponse_NOT_SERVING)
	}

	logger.Debug().Str("version", version).Int("backends", len(checkers)).Msg("gRPC handler created")
	return h
}

// Register attaches the health and reflection services to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
	reflection.Register(s)
}

// Refresh pings every backend and publishes the results. It reports
// whether all backends are reachable.
func (h *Handler) Refresh(ctx context.Context) bool {
	healthy := true
	for name, checker := range h.checkers {
		status := healthpb.HealthCheckResponse_SERVING
		if err := checker.Ping(ctx); err != nil {
			h.logger.Warn().Err(err).Str("backend", name).Msg("backend health check failed")
			status = healthpb.HealthCheckResponse_NOT_SERVING
			healthy = false
		}
		h.health.SetServingStatus(name, status)
	}

	overall := healthpb.HealthCheckResponse_SERVING
	if !healthy {
		overall = healthpb.HealthCheckResponse_NOT_SERVING
	}
	h.health.SetServingStatus(OverallService, overall)
	return healthy
}

// Watch refreshes immediately and then on every tick until ctx is done.
func (h *Handler) Watch(ctx context.Context, interval time.Duration) {
	h.refreshWithTimeout(ctx, interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.refreshWithTimeout(ctx, interval)
		}
	}
}

func (h *Handler) refreshWithTimeout(ctx context.Context, timeout time.Duration) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	h.Refresh(ctx)
}

// Shutdown marks every service NOT_SERVING so clients drain before the
// server stops.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
