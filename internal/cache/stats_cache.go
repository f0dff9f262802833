package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/recruit-ops/internal/domain"
)

const statsKey = "recruit-ops:dashboard:snapshot"

// StatsSnapshot is a dashboard summary tagged with the dataset revision it
// was computed from.
type StatsSnapshot struct {
	Revision uint64                `json:"revision"`
	Stats    domain.DashboardStats `json:"stats"`
}

// StatsCache holds the computed dashboard summary between mutations. Readers
// must compare the snapshot revision with the live dataset before using it.
type StatsCache interface {
	Get(ctx context.Context) (*StatsSnapshot, error)
	Set(ctx context.Context, snapshot StatsSnapshot) error
	Invalidate(ctx context.Context) error
}

// ErrMiss is returned by Get when nothing is cached.
var ErrMiss = errors.New("cache miss")

type redisStatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStatsCache returns a Redis-backed cache, or a no-op cache when client
// is nil or ttl is not positive.
func NewStatsCache(client *redis.Client, ttl time.Duration) StatsCache {
	if client == nil || ttl <= 0 {
		return noopStatsCache{}
	}
	return &redisStatsCache{client: client, ttl: ttl}
}

func (c *redisStatsCache) Get(ctx context.Context) (*StatsSnapshot, error) {
	b, err := c.client.Get(ctx, statsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrMiss
		}
		return nil, err
	}
	var snapshot StatsSnapshot
	if err := json.Unmarshal(b, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (c *redisStatsCache) Set(ctx context.Context, snapshot StatsSnapshot) error {
	b, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, statsKey, b, c.ttl).Err()
}

func (c *redisStatsCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, statsKey).Err()
}

type noopStatsCache struct{}

func (noopStatsCache) Get(context.Context) (*StatsSnapshot, error) { return nil, ErrMiss }
func (noopStatsCache) Set(context.Context, StatsSnapshot) error    { return nil }
func (noopStatsCache) Invalidate(context.Context) error            { return nil }
