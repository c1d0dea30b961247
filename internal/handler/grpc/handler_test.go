package grpc

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/eat-around/internal/logger"
	"github.com/MKhiriev/eat-around/internal/mock"
	"github.com/MKhiriev/eat-around/internal/store"
)

func checkStatus(t *testing.T, h *Handler, service string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()
	resp, err := h.health.Check(context.Background(), &healthpb.HealthCheckRequest{Service: service})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestHandler_NotServingBeforeRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewHandler(map[string]store.HealthChecker{"mongo": mock.NewMockHealthChecker(ctrl)}, "1.0.0", logger.Nop())

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, checkStatus(t, h, OverallService))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, checkStatus(t, h, "mongo"))
}

func TestHandler_Refresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	mongo := mock.NewMockHealthChecker(ctrl)
	redis := mock.NewMockHealthChecker(ctrl)
	h := NewHandler(map[string]store.HealthChecker{"mongo": mongo, "redis": redis}, "1.0.0", logger.Nop())

	mongo.EXPECT().Ping(gomock.Any()).Return(nil).Times(2)
	redis.EXPECT().Ping(gomock.Any()).Return(nil)
	redis.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))

	assert.True(t, h.Refresh(context.Background()))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, checkStatus(t, h, OverallService))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, checkStatus(t, h, "redis"))

	assert.False(t, h.Refresh(context.Background()))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, checkStatus(t, h, OverallService))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, checkStatus(t, h, "mongo"))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, checkStatus(t, h, "redis"))
}

func TestHandler_UnknownService(t *testing.T) {
	h := NewHandler(nil, "1.0.0", logger.Nop())

	_, err := h.health.Check(context.Background(), &healthpb.HealthCheckRequest{Service: "postgres"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestHandler_Shutdown(t *testing.T) {
	h := NewHandler(nil, "1.0.0", logger.Nop())
	require.True(t, h.Refresh(context.Background()))

	h.Shutdown()

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, checkStatus(t, h, OverallService))
}

func TestRecoveryInterceptor(t *testing.T) {
	h := NewHandler(nil, "test", logger.Nop())
	info := &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}

	_, err := h.recoveryInterceptor(context.Background(), nil, info, func(context.Context, any) (any, error) {
		panic("boom")
	})
	assert.Equal(t, codes.Internal, status.Code(err))

	resp, err := h.recoveryInterceptor(context.Background(), nil, info, func(context.Context, any) (any, error) {
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
}

func TestLoggingInterceptor_PassesThrough(t *testing.T) {
	h := NewHandler(nil, "test", logger.Nop())
	info := &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}
	want := status.Error(codes.Unavailable, "down")

	_, err := h.loggingInterceptor(context.Background(), nil, info, func(context.Context, any) (any, error) {
		return nil, want
	})
	assert.Equal(t, want, err)
	assert.Len(t, h.ServerOptions(), 1)
}
