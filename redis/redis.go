package redis

import (
	"context"

	"github.com/elsonpulikkan96/reborncloud.online/config"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

var ctx = context.Background()

// NewClient connects to Redis, which backs session state and the audit trail.
func NewClient(cfg config.RedisConfig) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
	})

	_, err := rdb.Ping(ctx).Result()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}

	log.Info().Str("address", cfg.Address).Msg("Connected to Redis")
	return rdb
}
