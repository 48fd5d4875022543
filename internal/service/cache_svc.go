package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/directly-app/directly/internal/middleware"
)

// Cached read TTL. Write paths invalidate explicitly, so the TTL only bounds
// staleness from writes outside this process.
const listCacheTTL = 5 * time.Minute

const (
	listCacheKey  = "videos:list"
	statsCacheKey = "videos:stats"
)

// CacheService provides a Redis cache-aside layer for the video list and the
// dashboard stats.
type CacheService struct {
	rdb *redis.Client
}

// NewCacheService creates a new CacheService. If redisURL is empty or the
// connection fails, it returns a CacheService with a nil client (cache
// operations become no-ops).
func NewCacheService(redisURL string) *CacheService {
	if redisURL == "" {
		middleware.Logger.Info().Msg("redis: no URL configured, caching disabled")
		return &CacheService{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		middleware.Logger.Warn().Err(err).Msg("redis: invalid URL, caching disabled")
		return &CacheService{}
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		middleware.Logger.Warn().Err(err).Msg("redis: connection failed, caching disabled")
		return &CacheService{}
	}

	middleware.Logger.Info().Msg("redis: connected, caching enabled")
	return &CacheService{rdb: rdb}
}

// Client returns the underlying Redis client (for health checks). May be nil.
func (c *CacheService) Client() *redis.Client {
	if c == nil {
		return nil
	}
	return c.rdb
}

// GetList retrieves the cached video list. Returns nil if not cached or the
// cache is disabled.
func (c *CacheService) GetList(ctx context.Context) ([]byte, error) {
	return c.get(ctx, listCacheKey)
}

// SetList stores the video list in cache.
func (c *CacheService) SetList(ctx context.Context, data any) error {
	return c.set(ctx, listCacheKey, data)
}

// GetStats retrieves the cached stats response. Returns nil if not cached.
func (c *CacheService) GetStats(ctx context.Context) ([]byte, error) {
	return c.get(ctx, statsCacheKey)
}

// SetStats stores the stats response in cache.
func (c *CacheService) SetStats(ctx context.Context, data any) error {
	return c.set(ctx, statsCacheKey, data)
}

// Invalidate drops the list and stats entries. Called after any mutation of
// the record set.
func (c *CacheService) Invalidate(ctx context.Context) error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, listCacheKey, statsCacheKey).Err()
}

// Close shuts down the Redis connection.
func (c *CacheService) Close() error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

func (c *CacheService) get(ctx context.Context, key string) ([]byte, error) {
	if c == nil || c.rdb == nil {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return data, err
}

func (c *CacheService) set(ctx context.Context, key string, data any) error {
	if c == nil || c.rdb == nil {
		return nil
	}
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, b, listCacheTTL).Err()
}
