package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/eat-around/internal/config"
	"github.com/MKhiriev/eat-around/internal/logger"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestNewStorages_EmptyDSN(t *testing.T) {
	s, err := NewStorages(context.Background(), config.Storage{}, logger.Nop())
	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrUnsupportedDSN)
}

func TestStorages_CloseReverseOrder(t *testing.T) {
	var order []string
	closeErr := errors.New("close failed")

	s := &Storages{closers: []func(context.Context) error{
		func(context.Context) error { order = append(order, "db"); return nil },
		func(context.Context) error { order = append(order, "cache"); return closeErr },
	}}

	err := s.Close(context.Background())

	assert.ErrorIs(t, err, closeErr)
	assert.Equal(t, []string{"cache", "db"}, order)

	// Closing twice is a no-op.
	assert.NoError(t, s.Close(context.Background()))
	assert.Len(t, order, 2)
}

func TestStorages_PingJoinsFailures(t *testing.T) {
	down := errors.New("connection refused")
	s := &Storages{checkers: map[string]HealthChecker{
		"mongo": pingFunc(func(context.Context) error { return nil }),
		"redis": pingFunc(func(context.Context) error { return down }),
	}}

	err := s.Ping(context.Background())

	require.ErrorIs(t, err, down)
	assert.Contains(t, err.Error(), "redis")
	assert.Len(t, s.Checkers(), 2)
}

func TestNewRedisFoodCache_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	c, err := NewRedisFoodCache(ctx, config.Cache{RedisAddress: "127.0.0.1:1"}, logger.Nop())
	assert.Nil(t, c)
	assert.Error(t, err)
}
