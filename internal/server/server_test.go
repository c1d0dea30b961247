package server

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/eat-around/internal/config"
	"github.com/MKhiriev/eat-around/internal/handler"
	myGRPC "github.com/MKhiriev/eat-around/internal/handler/grpc"
	myHTTP "github.com/MKhiriev/eat-around/internal/handler/http"
	"github.com/MKhiriev/eat-around/internal/logger"
	"github.com/MKhiriev/eat-around/internal/service"
	"github.com/MKhiriev/eat-around/internal/store"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func testHandlers(cfg config.Server) *handler.Handlers {
	h := &handler.Handlers{}
	if cfg.HTTPAddress != "" {
		h.HTTP = myHTTP.NewHandler(&service.Services{}, cfg, logger.Nop())
	}
	if cfg.GRPCAddress != "" {
		checkers := map[string]store.HealthChecker{
			"mongo": pingFunc(func(context.Context) error { return nil }),
		}
		h.GRPC = myGRPC.NewHandler(checkers, "test", logger.Nop())
	}
	return h
}

func TestNewServer(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Server
		wantHTTP bool
		wantGRPC bool
		wantErr  error
	}{
		{name: "both", cfg: config.Server{HTTPAddress: "127.0.0.1:0", GRPCAddress: "127.0.0.1:0"}, wantHTTP: true, wantGRPC: true},
		{name: "http only", cfg: config.Server{HTTPAddress: "127.0.0.1:0"}, wantHTTP: true},
		{name: "grpc only", cfg: config.Server{GRPCAddress: "127.0.0.1:0"}, wantGRPC: true},
		{name: "none", wantErr: errNoServersAreCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, err := NewServer(testHandlers(tt.cfg), tt.cfg, logger.Nop())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			s := srv.(*server)
			assert.Equal(t, tt.wantHTTP, s.httpServer != nil)
			assert.Equal(t, tt.wantGRPC, s.gRPCServer != nil)
		})
	}
}

func TestNewHTTPServer_Settings(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:8081", RequestTimeout: 7 * time.Second}

	h := newHTTPServer(nil, cfg, logger.Nop())

	assert.Equal(t, "127.0.0.1:8081", h.server.Addr)
	assert.Equal(t, 7*time.Second, h.server.ReadHeaderTimeout)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	cfg := config.Server{
		HTTPAddress:         "127.0.0.1:0",
		GRPCAddress:         "127.0.0.1:0",
		HealthCheckInterval: 50 * time.Millisecond,
	}
	srv, err := NewServer(testHandlers(cfg), cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.(*server).run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}

func TestRun_ReturnsListenError(t *testing.T) {
	cfg := config.Server{GRPCAddress: "256.0.0.1:99999"}
	srv, err := NewServer(testHandlers(cfg), cfg, logger.Nop())
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- srv.(*server).run(context.Background()) }()

	select {
	case err = <-done:
		require.Error(t, err)
		assert.Contains(t, err.Error(), "gRPC listen")
	case <-time.After(5 * time.Second):
		t.Fatal("server did not report listen error")
	}
}

func TestRun_NoServers(t *testing.T) {
	s := &server{logger: logger.Nop()}

	err := s.run(context.Background())
	assert.True(t, errors.Is(err, errNoServersAreCreated))
}
