package config

import (
	"context"
	"crypto/tls"
	"fmt"
	"strings"
	"time"

	"github.com/NomadCrew/nomad-checklist-backend/logger"
	"github.com/redis/go-redis/v9"
)

// RedisOptions builds client options for cfg. TLS is enabled when requested
// explicitly or when the address points at Upstash.
func RedisOptions(cfg *RedisConfig) *redis.Options {
	log := logger.GetLogger()

	opts := &redis.Options{
		Addr:            cfg.Address,
		Password:        cfg.Password,
		DB:              cfg.DB,
		PoolSize:        cfg.PoolSize,
		MinIdleConns:    cfg.MinIdleConns,
		ConnMaxLifetime: time.Hour,
		MaxRetries:      3,
		MinRetryBackoff: 100 * time.Millisecond,
		MaxRetryBackoff: 2 * time.Second,
		DialTimeout:     5 * time.Second,
		ReadTimeout:     3 * time.Second,
		WriteTimeout:    3 * time.Second,
	}

	// Log only non-sensitive Redis connection information
	log.Infow("Configuring Redis connection",
		"address", cfg.Address,
		"db", cfg.DB,
		"pool_size", cfg.PoolSize,
		"use_tls", cfg.UseTLS)

	if cfg.UseTLS || strings.Contains(cfg.Address, "upstash.io") {
		opts.TLSConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
		}
	}

	return opts
}

// Pinger is the subset of a Redis client needed to probe connectivity.
type Pinger interface {
	Ping(ctx context.Context) *redis.StatusCmd
}

// WaitForRedis pings client until it answers, giving up after attempts tries.
func WaitForRedis(ctx context.Context, client Pinger, attempts int, delay time.Duration) error {
	log := logger.GetLogger()

	var err error
	for i := 0; i < attempts; i++ {
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		err = client.Ping(pingCtx).Err()
		cancel()

		if err == nil {
			if i > 0 {
				log.Infow("Successfully connected to Redis after retries", "attempt", i+1)
			}
			return nil
		}

		if i < attempts-1 {
			log.Warnw("Failed to ping Redis, retrying...",
				"error", err,
				"attempt", i+1,
				"max_attempts", attempts)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}

	return fmt.Errorf("failed to ping Redis after %d attempts: %w", attempts, err)
}
