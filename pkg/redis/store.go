package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// Store is the shared handle to the backing key-value store.
// One value is used by every request goroutine at once; the underlying
// go-redis client pools and multiplexes connections, so callers need no locking.
type Store struct {
	db redis.UniversalClient
}

// NewStore wraps a connected client.
func NewStore(redisClient redis.UniversalClient) *Store {
	return &Store{db: redisClient}
}

// Get returns the string value stored at key.
// Missing keys (redis.Nil) yield ErrNotFound, anything else yields
// ErrUnavailable joined with the driver error.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	val, err := s.db.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", errors.Join(ErrUnavailable, err)
	}
	return val, nil
}

// Ping checks the connection without touching any key.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.Ping(ctx).Err(); err != nil {
		return errors.Join(ErrUnavailable, err)
	}
	return nil
}

// Close terminates the Redis connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}
