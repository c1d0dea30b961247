package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"google.golang.org/grpc"

	"github.com/MKhiriev/eat-around/internal/config"
	myGRPC "github.com/MKhiriev/eat-around/internal/handler/grpc"
	"github.com/MKhiriev/eat-around/internal/logger"
	"github.com/MKhiriev/eat-around/internal/workers"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server         *grpc.Server
	address        string
	healthInterval time.Duration

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	s := grpc.NewServer(handler.ServerOptions()...)
	handler.Register(s)

	return &grpcServer{
		handler:        handler,
		server:         s,
		address:        cfg.GRPCAddress,
		healthInterval: cfg.HealthCheckInterval,
		logger:         logger,
	}
}

// run listens on the configured address and serves until GracefulStop.
// Being stopped before Serve starts is not an error.
// Backend health is refreshed in the background while ctx is alive.
func (g *grpcServer) run(ctx context.Context) error {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("gRPC listen on %s: %w", g.address, err)
	}

	ctx, cancel := context.WithCancel(ctx)
	background := g.healthWorkers()
	background.Start(ctx)
	defer background.Wait()
	defer cancel()

	if err = g.server.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("gRPC serve: %w", err)
	}
	return nil
}

// healthWorkers keeps backend health fresh. Without an interval health is
// refreshed once.
func (g *grpcServer) healthWorkers() *workers.Workers {
	if g.healthInterval <= 0 {
		return workers.New(workers.Func(func(ctx context.Context) { g.handler.Refresh(ctx) }))
	}
	return workers.New(workers.Func(func(ctx context.Context) { g.handler.Watch(ctx, g.healthInterval) }))
}

// shutdown flips health to NOT_SERVING and drains in-flight calls. Calls
// still running when ctx expires are cut off.
func (g *grpcServer) shutdown(ctx context.Context) {
	g.logger.Info().Msg("gRPC server shutdown")
	g.handler.Shutdown()

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-ctx.Done():
		g.server.Stop()
	}
}
