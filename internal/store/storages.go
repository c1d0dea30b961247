// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/eat-around/internal/config"
	"github.com/MKhiriev/eat-around/internal/logger"
)

// Storages groups the repositories used by the service layer together with
// the backends they were built on.
type Storages struct {
	UserRepository  UserRepository
	OrderRepository OrderRepository
	FoodRepository  FoodRepository

	checkers map[string]HealthChecker
	closers  []func(ctx context.Context) error
}

// NewStorages initialises the storage layer. The DSN scheme selects the
// primary backend:
//   - mongodb:// or mongodb+srv:// opens MongoDB and ensures its indexes;
//   - postgres:// or postgresql:// opens PostgreSQL and runs migrations;
//   - anything else is treated as a SQLite file and migrated.
//
// When a Redis address is configured, food listings are cached.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	s := &Storages{checkers: make(map[string]HealthChecker)}

	switch dsn := cfg.DB.DSN; {
	case dsn == "":
		return nil, ErrUnsupportedDSN
	case isMongoDSN(dsn):
		db, err := NewConnectMongo(ctx, cfg.DB, log)
		if err != nil {
			return nil, fmt.Errorf("mongo connection error: %w", err)
		}
		s.UserRepository = NewMongoUserRepository(db, log)
		s.OrderRepository = NewMongoOrderRepository(db, log)
		s.FoodRepository = NewMongoFoodRepository(db, log)
		s.checkers["mongo"] = db
		s.closers = append(s.closers, db.Close)
	default:
		db, err := connectSQL(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		s.UserRepository = NewUserRepository(db, log)
		s.OrderRepository = NewOrderRepository(db, log)
		s.FoodRepository = NewFoodRepository(db, log)
		s.checkers[db.dialect] = db
		s.closers = append(s.closers, func(context.Context) error { return db.Close() })
	}

	if cfg.Cache.RedisAddress != "" {
		cache, err := NewRedisFoodCache(ctx, cfg.Cache, log)
		if err != nil {
			_ = s.Close(ctx)
			return nil, fmt.Errorf("redis connection error: %w", err)
		}
		s.FoodRepository = NewCachedFoodRepository(s.FoodRepository, cache)
		s.checkers["redis"] = cache
		s.closers = append(s.closers, func(context.Context) error { return cache.Close() })
	}

	return s, nil
}

func connectSQL(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if strings.HasPrefix(cfg.DSN, "postgres://") || strings.HasPrefix(cfg.DSN, "postgresql://") {
		db, err := NewConnectPostgres(ctx, cfg, log)
		if err != nil {
			return nil, fmt.Errorf("postgres connection error: %w", err)
		}
		return db, nil
	}

	db, err := NewConnectSQLite(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}
	return db, nil
}

// Checkers returns the health checkers of every backend keyed by name.
func (s *Storages) Checkers() map[string]HealthChecker {
	return s.checkers
}

// Ping checks every backend and joins the failures.
func (s *Storages) Ping(ctx context.Context) error {
	var errs []error
	for name, checker := range s.checkers {
		if err := checker.Ping(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

// Close releases every backend in reverse order of opening.
func (s *Storages) Close(ctx context.Context) error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil
	return errors.Join(errs...)
}
