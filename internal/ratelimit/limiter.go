package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"github.com/spec-kit/recruit-ops/internal/config"
)

// Limiter decides whether the caller identified by key may proceed. When it
// may not, retryAfter tells the client how long to back off.
type Limiter interface {
	Allow(ctx context.Context, key string) (allowed bool, retryAfter time.Duration, err error)
}

// New returns a Redis fixed-window limiter when client is set, otherwise a
// per-process token bucket.
func New(client *redis.Client, cfg config.RateLimitConfig) Limiter {
	if client == nil {
		return NewLocal(cfg.RPS, cfg.Burst)
	}
	return NewRedis(client, cfg.RPS, cfg.Burst, cfg.Window)
}

type redisLimiter struct {
	client        *redis.Client
	windowSeconds int
	allowed       int64
	now           func() time.Time
}

// NewRedis builds a fixed-window limiter shared by every replica. Each window
// admits floor(rps*window)+burst requests per key.
func NewRedis(client *redis.Client, rps float64, burst int, window time.Duration) Limiter {
	windowSeconds := int(window.Seconds())
	if windowSeconds <= 0 {
		windowSeconds = 1
	}
	return &redisLimiter{
		client:        client,
		windowSeconds: windowSeconds,
		allowed:       int64(rps*float64(windowSeconds)) + int64(burst),
		now:           time.Now,
	}
}

func (l *redisLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	bucket := l.now().Unix() / int64(l.windowSeconds)
	redisKey := fmt.Sprintf("rl:%s:%d", key, bucket)

	cnt, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, 0, fmt.Errorf("rate limit check: %w", err)
	}
	if cnt == 1 {
		_ = l.client.Expire(ctx, redisKey, time.Duration(l.windowSeconds+1)*time.Second).Err()
	}
	if cnt > l.allowed {
		return false, time.Duration(l.windowSeconds) * time.Second, nil
	}
	return true, 0, nil
}

type localLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      rate.Limit
	burst    int
}

// NewLocal builds an in-process token bucket per key.
func NewLocal(rps float64, burst int) Limiter {
	if burst < 1 {
		burst = 1
	}
	return &localLimiter{limiters: map[string]*rate.Limiter{}, rps: rate.Limit(rps), burst: burst}
}

func (l *localLimiter) Allow(_ context.Context, key string) (bool, time.Duration, error) {
	l.mu.Lock()
	lim, ok := l.limiters[key]
	if !ok {
		lim = rate.NewLimiter(l.rps, l.burst)
		l.limiters[key] = lim
	}
	l.mu.Unlock()

	if lim.Allow() {
		return true, 0, nil
	}
	return false, time.Second, nil
}
