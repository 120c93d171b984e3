package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Config holds the redis connection settings
type Config struct {
	Host         string
	Port         int
	Password     string
	DB           int
	Enabled      bool
	PoolSize     int
	MinIdleConns int
}

// Client wraps the redis connection. A disabled client is a valid no-op:
// every read misses and every write succeeds silently, so callers never
// branch on availability.
type Client struct {
	rdb     *goredis.Client
	enabled bool
	log     *zap.Logger
}

func NewClient(cfg Config, log *zap.Logger) *Client {
	if !cfg.Enabled {
		log.Info("redis disabled, cache operations are no-ops")
		return &Client{enabled: false, log: log}
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn("redis unreachable, continuing with cache disabled", zap.Error(err))
		return &Client{enabled: false, log: log}
	}

	log.Info("connected to redis", zap.String("addr", fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)))
	return &Client{rdb: rdb, enabled: true, log: log}
}

// IsEnabled reports whether a live connection is backing the client
func (c *Client) IsEnabled() bool {
	return c.enabled
}

// Get returns the cached bytes, nil on miss
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if !c.enabled {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

// Set stores bytes with a TTL
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if !c.enabled {
		return nil
	}
	return c.rdb.Set(ctx, key, value, ttl).Err()
}

// Delete removes keys
func (c *Client) Delete(ctx context.Context, keys ...string) error {
	if !c.enabled || len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}

// Ping checks the connection
func (c *Client) Ping(ctx context.Context) error {
	if !c.enabled {
		return errors.New("redis disabled")
	}
	return c.rdb.Ping(ctx).Err()
}

// Close shuts the connection pool down
func (c *Client) Close() error {
	if !c.enabled {
		return nil
	}
	return c.rdb.Close()
}
