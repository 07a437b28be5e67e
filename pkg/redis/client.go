package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// CHAT SESSIONS IN REDIS

type Client struct {
	client *redis.Client
}

type Options struct {
	Addr     string
	Password string
	DB       int
	// MaxElapsedTime bounds the connect retries. Zero means two minutes.
	MaxElapsedTime time.Duration
}

// New opens a Redis client and pings it until it answers or retries run out.
func New(ctx context.Context, opts Options, logger *zap.Logger) (*Client, error) {
	const operation = "redis.New"

	client := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		PoolSize:     20,
		MinIdleConns: 2,
	})

	retryPolicy := backoff.NewExponentialBackOff()
	retryPolicy.MaxElapsedTime = 2 * time.Minute
	if opts.MaxElapsedTime > 0 {
		retryPolicy.MaxElapsedTime = opts.MaxElapsedTime
	}
	retryPolicy.MaxInterval = 15 * time.Second

	logger.Info("Connecting to Redis...", zap.String("addr", opts.Addr))

	err := backoff.RetryNotify(
		func() error {
			if err := client.Ping(ctx).Err(); err != nil {
				return fmt.Errorf("ping: %w", err)
			}
			return nil
		},
		backoff.WithContext(retryPolicy, ctx),
		func(err error, duration time.Duration) {
			logger.Warn("Redis connection failed, retrying...",
				zap.Error(err),
				zap.Duration("next_attempt_in", duration))
		},
	)
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%s: failed to connect after retries: %w", operation, err)
	}

	logger.Info("Successfully connected to Redis")
	return &Client{client: client}, nil
}

// Get retrieves a key's value. A missing key yields redis.Nil.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	return c.client.Get(ctx, key).Bytes()
}

// Set sets a key's value with TTL
func (c *Client) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, data, ttl).Err()
}

func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (c *Client) Close() {
	if c.client != nil {
		_ = c.client.Close()
	}
}
