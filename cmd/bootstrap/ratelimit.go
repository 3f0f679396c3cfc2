package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"foodai-api/internal/infra/ratelimit"
	"foodai-api/internal/pkg/clock"
	"foodai-api/internal/pkg/config"

	"go.uber.org/fx"
)

var RateLimitModule = fx.Module("ratelimit",
	fx.Provide(
		NewChatLimiter,
	),
)

// NewChatLimiter wires the chat rate limiter: redis-backed when REDIS_URL is
// set so the window is shared across instances, in-process otherwise.
func NewChatLimiter(lc fx.Lifecycle, cfg config.Config, clk clock.Clock) (ratelimit.Limiter, error) {
	window, err := time.ParseDuration(cfg.Chat.RateWindow)
	if err != nil {
		window = time.Minute
	}

	if cfg.Redis.URL == "" {
		slog.Info("no redis configured, chat rate limiting is per-instance")
		return ratelimit.NewMemoryLimiter(cfg.Chat.RateLimit, window, clk), nil
	}

	client, err := ratelimit.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return ratelimit.NewRedisLimiter(client, cfg.Chat.RateLimit, window), nil
}
