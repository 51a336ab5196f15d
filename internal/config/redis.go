package config

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisClient متغیر برای دسترسی به Redis؛ اگر REDIS_ADDR تنظیم نشده باشد nil می‌ماند
var RedisClient *redis.Client

// InitRedis اتصال به Redis را راه‌اندازی می‌کند
func InitRedis(ctx context.Context, s Settings) error {
	if s.RedisAddr == "" {
		Logger.Info("REDIS_ADDR not set, users snapshot kept in memory")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     s.RedisAddr,
		Password: s.RedisPassword,
		DB:       s.RedisDB,
	})

	// بررسی اتصال به Redis
	pong, err := client.Ping(ctx).Result()
	if err != nil {
		_ = client.Close()
		return fmt.Errorf("connect to redis at %s: %w", s.RedisAddr, err)
	}

	RedisClient = client
	Logger.Info("✅ Connected to Redis", zap.String("addr", s.RedisAddr), zap.String("ping", pong))
	return nil
}
