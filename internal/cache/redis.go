package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/solodko/solodko-api/internal/config"
)

// Client is the shared redis connection, nil until InitRedis succeeds.
var Client *redis.Client

// InitRedis connects and pings the configured redis.
func InitRedis(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	Client = client
	return client, nil
}

// Close shuts the shared connection down.
func Close() error {
	if Client == nil {
		return nil
	}
	return Client.Close()
}

// Incr increments a counter key and sets its TTL on first use. Used by the
// rate limiter.
func Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	if Client == nil {
		return 0, fmt.Errorf("redis not initialized")
	}
	count, err := Client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		if err := Client.Expire(ctx, key, window).Err(); err != nil {
			return count, err
		}
	}
	return count, nil
}
