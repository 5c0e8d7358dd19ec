package cache

//go:generate go run go.uber.org/mock/mockgen -source=./cache.go -destination=./mocks/cache_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hostel/infras/otel"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	otelScopeName         = "cache"
	otelCacheKeyAttribute = "cache.key"
	scanBatchSize         = 100
)

// Nil is returned by Get on a cache miss.
var Nil = redis.Nil

type RedisCache interface {
	Save(ctx context.Context, key string, value any, duration int) (err error)
	Get(ctx context.Context, key string, value any) (err error)
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context, pattern string) error
}

type redisCache struct {
	client *redis.Client
	otel   otel.Otel
}

func NewRedisCache(client *redis.Client, ot otel.Otel) RedisCache {
	return &redisCache{
		client: client,
		otel:   ot,
	}
}

// Clear deletes every key matching pattern.
func (cache *redisCache) Clear(ctx context.Context, pattern string) (err error) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Clear")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, pattern)

	iter := cache.client.Scan(ctx, 0, pattern, scanBatchSize).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		if err = cache.client.Del(ctx, key).Err(); err != nil {
			log.Error().Err(err).Str("key", key).Str("RedisCache", "Clear").Msg("failed to del cache")

			return fmt.Errorf("failed to delete cache value: %w", err)
		}
	}

	if err = iter.Err(); err != nil {
		log.Error().Err(err).Str("pattern", pattern).Str("RedisCache", "Clear").Msg("failed to scan cache")

		return fmt.Errorf("failed to scan cache keys: %w", err)
	}

	return nil
}

func (cache *redisCache) Delete(ctx context.Context, key string) (err error) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	if err = cache.client.Del(ctx, key).Err(); err != nil {
		log.Error().Str("key", key).Err(err).Str("RedisCache", "Delete").Msg("failed to del cache")

		return fmt.Errorf("failed to delete cache value: %w", err)
	}

	return nil
}

// Get decodes the cached JSON value into value. A miss returns an error wrapping Nil.
func (cache *redisCache) Get(ctx context.Context, key string, value any) (err error) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Get")
	defer scope.End()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	cacheValue, err := cache.client.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			scope.TraceError(err)
		}

		return fmt.Errorf("failed to get cache value: %w", err)
	}

	if str, ok := value.(*string); ok {
		*str = cacheValue

		return nil
	}

	if err = json.Unmarshal([]byte(cacheValue), value); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("key", key).Str("RedisCache", "Get").Msg("failed to unmarshal cache")

		return fmt.Errorf("failed to unmarshal cache value: %w", err)
	}

	return nil
}

// Save stores value as JSON for duration seconds.
func (cache *redisCache) Save(ctx context.Context, key string, value any, duration int) (err error) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	var raw []byte
	if str, ok := value.(string); ok {
		raw = []byte(str)
	} else if raw, err = json.Marshal(value); err != nil {
		log.Error().Err(err).Str("key", key).Str("RedisCache", "Save").Msg("failed to marshal cache")

		return fmt.Errorf("failed to marshal cache value: %w", err)
	}

	if err = cache.client.Set(ctx, key, raw, time.Second*time.Duration(duration)).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Str("RedisCache", "Save").Msg("failed to set cache")

		return fmt.Errorf("failed to set cache value: %w", err)
	}

	log.Debug().Str("RedisCache", "Save").Str("key", key).Msg("cache stored")

	return nil
}
