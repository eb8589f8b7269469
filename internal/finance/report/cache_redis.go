// Copyright (c) 2026 Fiscora. All rights reserved.
// Author: d.marchetti.dev@gmail.com

package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmarchetti/fiscora/internal/platform/constants"
)

// Cache defines the snapshot cache contract for computed overviews.
//
// A nil, nil return from Get is a cache miss. Implementations must never be
// required for correctness: callers fall back to a live rebuild on any error.
type Cache interface {
	Get(context context.Context, months int) (*Overview, error)
	Set(context context.Context, overview *Overview, timeToLive time.Duration) error
}

// RedisCache stores overview snapshots in Redis as JSON blobs.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a Redis-backed overview cache.
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (cache *RedisCache) Get(context context.Context, months int) (*Overview, error) {
	payload, err := cache.client.Get(context, cacheKey(months)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("report_cache_get_failed: %w", err)
	}

	overview := &Overview{}
	if err := json.Unmarshal(payload, overview); err != nil {
		// A corrupt entry behaves like a miss; the rebuild overwrites it.
		return nil, fmt.Errorf("report_cache_decode_failed: %w", err)
	}

	return overview, nil
}

func (cache *RedisCache) Set(context context.Context, overview *Overview, timeToLive time.Duration) error {
	payload, err := json.Marshal(overview)
	if err != nil {
		return fmt.Errorf("report_cache_encode_failed: %w", err)
	}

	if err := cache.client.Set(context, cacheKey(overview.Months), payload, timeToLive).Err(); err != nil {
		return fmt.Errorf("report_cache_set_failed: %w", err)
	}

	return nil
}

// cacheKey builds the Redis key for an overview window.
func cacheKey(months int) string {
	return constants.RedisPrefixReportOverview + strconv.Itoa(months)
}
