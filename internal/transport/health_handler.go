// Package transport exposes the miner over gRPC and HTTP.
package transport

import (
	"context"
	"time"

	"github.com/goodnatureofminers/fortuna-miner/internal/fortuna/service/miner"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// ServiceName is the health service name of the mining loop.
const ServiceName = "fortuna.miner"

// HealthHandler reports the mining loop as serving while it keeps making progress.
type HealthHandler struct {
	healthpb.UnimplementedHealthServer
	source   StatusSource
	maxQuiet time.Duration
	now      func() time.Time
}

// NewHealthHandler returns a HealthHandler. The loop is unhealthy once its status
// has not changed for maxQuiet.
func NewHealthHandler(source StatusSource, maxQuiet time.Duration) *HealthHandler {
	return &HealthHandler{source: source, maxQuiet: maxQuiet, now: time.Now}
}

// Check implements grpc_health_v1.HealthServer.
func (h *HealthHandler) Check(_ context.Context, req *healthpb.HealthCheckRequest) (*healthpb.HealthCheckResponse, error) {
	if svc := req.GetService(); svc != "" && svc != ServiceName {
		return nil, status.Errorf(codes.NotFound, "unknown service %q", svc)
	}
	return &healthpb.HealthCheckResponse{Status: h.serving(h.source.Status())}, nil
}

func (h *HealthHandler) serving(s miner.Status) healthpb.HealthCheckResponse_ServingStatus {
	if s.Stage == miner.StageIdle || s.UpdatedAt.IsZero() {
		return healthpb.HealthCheckResponse_NOT_SERVING
	}
	if h.maxQuiet > 0 && h.now().Sub(s.UpdatedAt) > h.maxQuiet {
		return healthpb.HealthCheckResponse_NOT_SERVING
	}
	return healthpb.HealthCheckResponse_SERVING
}
