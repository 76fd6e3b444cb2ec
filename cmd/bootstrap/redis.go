package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"content-dispatch/internal/infra/queue"
	"content-dispatch/internal/pkg/clock"
	"content-dispatch/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
		NewBroker,
	),
)

// NewRedisClient is closed after the pools have drained because fx runs
// OnStop hooks in reverse registration order.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (redis.UniversalClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			logger.Info("redis client closed")
			return client.Close()
		},
	})
	return client, nil
}

func NewBroker(client redis.UniversalClient, cfg config.Config, clk clock.Clock, logger *slog.Logger) *queue.Broker {
	return queue.NewBroker(client, cfg.Redis.Prefix, queue.DefaultPolicies(),
		queue.WithLogger(logger),
		queue.WithClock(clk),
	)
}
