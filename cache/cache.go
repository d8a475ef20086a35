// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client is a small read-through cache for leaderboard payloads. A nil
// *Client is valid and disables caching, so callers never branch on
// whether redis is configured.
type Client struct {
	rdb *redis.Client
	ttl time.Duration
}

// New connects to redis. An empty redisURL returns (nil, nil): caching
// disabled, not an error.
func New(redisURL string, ttl time.Duration) (*Client, error) {
	if redisURL == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	slog.Info("Connected to Redis", "addr", opts.Addr)

	return &Client{rdb: rdb, ttl: ttl}, nil
}

// Get returns the cached payload for key and whether it was present.
func (c *Client) Get(ctx context.Context, key string) (string, bool) {
	if c == nil {
		return "", false
	}

	val, err := c.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		slog.Warn("cache get failed", "key", key, "error", err)
		return "", false
	}

	return val, true
}

// Set stores a payload under key with the configured TTL. Failures are
// logged and swallowed; the cache is best-effort.
func (c *Client) Set(ctx context.Context, key, val string) {
	if c == nil {
		return
	}

	if err := c.rdb.Set(ctx, key, val, c.ttl).Err(); err != nil {
		slog.Warn("cache set failed", "key", key, "error", err)
	}
}

// Close releases the redis connection. Safe on nil.
func (c *Client) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}
