package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Client is a thin wrapper around go-redis used to mirror small JSON values
// (currently the active content payload) across instances. Redis being down
// degrades to a no-op rather than an error; the in-memory cache remains the
// source of truth for viewer queries.
type Client struct {
	rdb      *redis.Client
	logger   zerolog.Logger
	disabled bool
}

func New(addr, username, password string, logger zerolog.Logger) *Client {
	if addr == "" {
		logger.Warn().Msg("redis address not configured, mirror disabled")
		return &Client{logger: logger, disabled: true}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Warn().Err(err).Msg("redis unreachable, mirror disabled")
		return &Client{logger: logger, disabled: true}
	}

	logger.Info().Str("addr", addr).Msg("connected to redis")
	return &Client{rdb: rdb, logger: logger}
}

// SetJSON marshals value and stores it under key with the given expiration.
func (c *Client) SetJSON(ctx context.Context, key string, value any, expiration time.Duration) {
	if c.disabled {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		c.logger.Error().Err(err).Str("key", key).Msg("failed to marshal redis value")
		return
	}
	if err := c.rdb.Set(ctx, key, payload, expiration).Err(); err != nil {
		c.logger.Error().Err(err).Str("key", key).Msg("failed to write redis key")
	}
}

// GetJSON reads key into out, returning false on miss or error.
func (c *Client) GetJSON(ctx context.Context, key string, out any) bool {
	if c.disabled {
		return false
	}
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Error().Err(err).Str("key", key).Msg("failed to read redis key")
		}
		return false
	}
	return json.Unmarshal(raw, out) == nil
}

func (c *Client) Close() error {
	if c.rdb != nil {
		return c.rdb.Close()
	}
	return nil
}
