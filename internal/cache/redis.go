package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"healthmate/internal/config"

	"github.com/redis/go-redis/v9"
)

// RedisClient caches computed dashboard statistics. AI insights are never
// cached here; each generation goes straight to the document store.
type RedisClient struct {
	client *redis.Client
}

func NewRedisClient(cfg config.RedisConfig) (*RedisClient, error) {
	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisClient{client: client}, nil
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}

func statsKey(userID uint) string {
	return fmt.Sprintf("stats:dashboard:%d", userID)
}

func (r *RedisClient) StoreDashboardStats(ctx context.Context, userID uint, stats interface{}, ttl time.Duration) error {
	jsonData, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}

	if err := r.client.Set(ctx, statsKey(userID), jsonData, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store stats in Redis: %w", err)
	}
	return nil
}

// GetDashboardStats unmarshals the cached stats into dest. The second return
// is false when no entry exists.
func (r *RedisClient) GetDashboardStats(ctx context.Context, userID uint, dest interface{}) (bool, error) {
	data, err := r.client.Get(ctx, statsKey(userID)).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get stats from Redis: %w", err)
	}

	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal stats: %w", err)
	}
	return true, nil
}

func (r *RedisClient) InvalidateDashboardStats(ctx context.Context, userID uint) error {
	return r.client.Del(ctx, statsKey(userID)).Err()
}
