package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
)

// DefaultConnectTimeout bounds the ping retries performed by NewClient.
const DefaultConnectTimeout = 5 * time.Second

// NewClient creates a new Redis client and waits until the server answers a ping.
func NewClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	return NewClientWithTimeout(ctx, redisURL, DefaultConnectTimeout)
}

// NewClientWithTimeout is NewClient with an explicit retry budget.
func NewClientWithTimeout(ctx context.Context, redisURL string, timeout time.Duration) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 50 * time.Millisecond
	policy.MaxInterval = time.Second
	policy.MaxElapsedTime = timeout

	ping := func() error {
		return client.Ping(ctx).Err()
	}

	if err := backoff.Retry(ping, backoff.WithContext(policy, ctx)); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}
