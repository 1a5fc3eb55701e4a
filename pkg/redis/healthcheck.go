package redis

import (
	"context"
	"errors"
)

// Healthcheck is a function that checks the health of the store.
// It returns an error if the store does not answer a PING.
func Healthcheck(s *Store) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := s.Ping(ctx); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}
