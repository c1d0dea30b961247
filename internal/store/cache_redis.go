package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/eat-around/internal/config"
	"github.com/MKhiriev/eat-around/internal/logger"
	"github.com/MKhiriev/eat-around/models"
)

// Category listings live under their own sub-prefix so that no category
// name can map to the unfiltered key.
const (
	foodsCacheKeyPrefix      = "eat-around:foods:"
	foodsCacheAllKey         = foodsCacheKeyPrefix + "all"
	foodsCacheCategoryPrefix = foodsCacheKeyPrefix + "cat:"
)

// RedisFoodCache implements [FoodCache] with JSON-encoded listings stored
// under one key per category.
type RedisFoodCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *logger.Logger
}

// NewRedisFoodCache connects to Redis and pings it.
func NewRedisFoodCache(ctx context.Context, cfg config.Cache, log *logger.Logger) (*RedisFoodCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisFoodCache").Msg("error connecting redis (ping)")
		_ = client.Close()
		return nil, fmt.Errorf("error pinging redis: %w", err)
	}
	log.Info().Str("func", "NewRedisFoodCache").Str("addr", cfg.RedisAddress).Msg("connected to redis successfully")

	return &RedisFoodCache{client: client, ttl: cfg.FoodsTTL, logger: log}, nil
}

func foodsCacheKey(filter models.FoodFilter) string {
	if filter.Category == "" {
		return foodsCacheAllKey
	}
	return foodsCacheCategoryPrefix + filter.Category
}

func (c *RedisFoodCache) GetFoods(ctx context.Context, filter models.FoodFilter) ([]models.Food, bool, error) {
	val, err := c.client.Get(ctx, foodsCacheKey(filter)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var foods []models.Food
	if err = json.Unmarshal(val, &foods); err != nil {
		return nil, false, err
	}
	return foods, true, nil
}

func (c *RedisFoodCache) SetFoods(ctx context.Context, filter models.FoodFilter, foods []models.Food) error {
	data, err := json.Marshal(foods)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, foodsCacheKey(filter), data, c.ttl).Err()
}

// Invalidate removes every cached listing.
func (c *RedisFoodCache) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, foodsCacheKeyPrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

// Ping implements [HealthChecker].
func (c *RedisFoodCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close releases the client.
func (c *RedisFoodCache) Close() error {
	return c.client.Close()
}

// cachedFoodRepository serves listings from a [FoodCache] and falls back to
// the wrapped repository on a miss. Cache failures are logged and never
// fail the request.
type cachedFoodRepository struct {
	next  FoodRepository
	cache FoodCache
}

// NewCachedFoodRepository decorates next with cache.
func NewCachedFoodRepository(next FoodRepository, cache FoodCache) FoodRepository {
	return &cachedFoodRepository{next: next, cache: cache}
}

func (r *cachedFoodRepository) ListFoods(ctx context.Context, filter models.FoodFilter) ([]models.Food, error) {
	log := logger.FromContext(ctx)

	foods, ok, err := r.cache.GetFoods(ctx, filter)
	if err != nil {
		log.Warn().Err(err).Msg("error reading foods from cache")
	}
	if ok {
		return foods, nil
	}

	foods, err = r.next.ListFoods(ctx, filter)
	if err != nil {
		return nil, err
	}

	if err = r.cache.SetFoods(ctx, filter, foods); err != nil {
		log.Warn().Err(err).Msg("error writing foods to cache")
	}
	return foods, nil
}

func (r *cachedFoodRepository) ImportFoods(ctx context.Context, foods []models.Food) (int, error) {
	n, err := r.next.ImportFoods(ctx, foods)
	if err != nil {
		return n, err
	}

	if err = r.cache.Invalidate(ctx); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("error invalidating foods cache")
	}
	return n, nil
}
