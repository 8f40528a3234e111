// Package grpcserver exposes the standard gRPC health service. The catalog
// service reports SERVING only while its repository answers pings.
package grpcserver

import (
	"context"
	"log/slog"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// CatalogService is the health service name tracking catalog reachability.
const CatalogService = "matcher.Catalog"

// Prober is satisfied by catalog.Repository.
type Prober interface {
	Ping(ctx context.Context) error
}

// Server owns the gRPC server and its health state.
type Server struct {
	grpc   *grpc.Server
	health *health.Server
	probe  Prober
}

// NewServer constructs a Server. Every service starts NOT_SERVING until the
// first CheckNow.
func NewServer(probe Prober) *Server {
	gs := grpc.NewServer(grpc.ChainUnaryInterceptor(logUnary))
	hs := health.NewServer()
	healthpb.RegisterHealthServer(gs, hs)

	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	hs.SetServingStatus(CatalogService, healthpb.HealthCheckResponse_NOT_SERVING)

	return &Server{grpc: gs, health: hs, probe: probe}
}

// CheckNow pings the catalog and updates the serving status.
func (s *Server) CheckNow(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	st := healthpb.HealthCheckResponse_SERVING
	if err := s.probe.Ping(ctx); err != nil {
		slog.Warn("catalog ping failed", "err", err)
		st = healthpb.HealthCheckResponse_NOT_SERVING
	}
	s.health.SetServingStatus("", st)
	s.health.SetServingStatus(CatalogService, st)
	return st
}

// Watch calls CheckNow every interval until ctx is done.
func (s *Server) Watch(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			pingCtx, cancel := context.WithTimeout(ctx, interval/2)
			s.CheckNow(pingCtx)
			cancel()
		}
	}
}

// Serve blocks accepting connections on lis.
func (s *Server) Serve(lis net.Listener) error {
	return s.grpc.Serve(lis)
}

// Stop marks every service NOT_SERVING and drains in-flight RPCs.
func (s *Server) Stop() {
	s.health.Shutdown()
	s.grpc.GracefulStop()
}

func logUnary(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	slog.Debug("grpc call",
		"method", info.FullMethod,
		"code", status.Code(err).String(),
		"elapsed", time.Since(start),
	)
	return resp, err
}
