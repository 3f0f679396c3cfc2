package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"foodai-api/internal/pkg/clock"
	"foodai-api/internal/pkg/config"
	"foodai-api/internal/pkg/errs"
)

// Limiter is a fixed-window rate limiter keyed by caller identity.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// NewRedisClient builds a client from REDIS_URL. Callers own the Close.
func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, errs.Wrap(err, "failed to parse redis url")
	}
	opt.ReadTimeout = time.Duration(cfg.ReadTimeout) * time.Second
	opt.WriteTimeout = time.Duration(cfg.WriteTimeout) * time.Second
	opt.DialTimeout = time.Duration(cfg.DialTimeout) * time.Second
	return redis.NewClient(opt), nil
}

// RedisLimiter counts requests per key in a fixed window shared across
// instances. A redis failure fails open: the request is allowed and the
// error logged.
type RedisLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

func NewRedisLimiter(client *redis.Client, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{client: client, limit: limit, window: window}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := fmt.Sprintf("ratelimit:chat:%s", key)

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		slog.Warn("rate limiter unavailable, allowing request", "error", err, "key", key)
		return true, nil
	}
	if count == 1 {
		if err := l.client.Expire(ctx, redisKey, l.window).Err(); err != nil {
			slog.Warn("failed to set rate limit window", "error", err, "key", key)
		}
	}
	return count <= int64(l.limit), nil
}

// MemoryLimiter is the single-process fallback used when no redis is
// configured.
type MemoryLimiter struct {
	mu     sync.Mutex
	counts map[string]*windowCount
	limit  int
	window time.Duration
	clock  clock.Clock
}

type windowCount struct {
	count   int
	resetAt time.Time
}

func NewMemoryLimiter(limit int, window time.Duration, clk clock.Clock) *MemoryLimiter {
	return &MemoryLimiter{
		counts: make(map[string]*windowCount),
		limit:  limit,
		window: window,
		clock:  clk,
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	wc, ok := l.counts[key]
	if !ok || now.After(wc.resetAt) {
		l.counts[key] = &windowCount{count: 1, resetAt: now.Add(l.window)}
		return true, nil
	}
	wc.count++
	return wc.count <= l.limit, nil
}
