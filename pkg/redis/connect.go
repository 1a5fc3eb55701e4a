package redis

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const storeScheme = "store://"

// Connect establishes a connection to a Redis server using the provided configuration.
// It pings the server up to RetryAttempts times (at least once), waiting
// RetryInterval between attempts, all within ConnectTimeout.
//
// Returns:
//   - *redis.Client: A connected Redis client if successful
//   - error: ErrEmptyConnectionURL or ErrFailedToParseRedisConnString if the URL is unusable,
//     ErrRedisNotReady if all connection attempts fail
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	opts, err := ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, err
	}

	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	attempts := max(cfg.RetryAttempts, 1)

	var lastErr error
	for i := range attempts {
		redisClient := redis.NewClient(opts)

		// Check if the redis connection is established before proceeding with the application.
		if lastErr = redisClient.Ping(ctx).Err(); lastErr == nil {
			return redisClient, nil
		}

		_ = redisClient.Close()

		if i == attempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrRedisNotReady, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}

	return nil, errors.Join(ErrRedisNotReady, lastErr)
}

// ParseURL turns a store address into go-redis options.
// "store://host/" is rewritten to "redis://host/" before parsing.
// Client-side command retries are disabled: every lookup is one round trip.
func ParseURL(connURL string) (*redis.Options, error) {
	connURL = strings.TrimSpace(connURL)
	if connURL == "" {
		return nil, ErrEmptyConnectionURL
	}
	if strings.HasPrefix(connURL, storeScheme) {
		connURL = "redis://" + strings.TrimPrefix(connURL, storeScheme)
	}

	opts, err := redis.ParseURL(connURL)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseRedisConnString, err)
	}
	opts.MaxRetries = -1

	return opts, nil
}
