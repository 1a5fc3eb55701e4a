package redis

import "errors"

var (
	ErrFailedToParseRedisConnString = errors.New("failed to parse redis connection string")
	ErrRedisNotReady                = errors.New("redis did not become ready within the given time period")
	ErrEmptyConnectionURL           = errors.New("empty redis connection URL")
	ErrHealthcheckFailed            = errors.New("redis healthcheck failed")

	// ErrNotFound is returned by Store.Get when the key holds no value.
	ErrNotFound = errors.New("key not found")
	// ErrUnavailable is returned by Store.Get for any connection-level failure.
	ErrUnavailable = errors.New("store unavailable")
)
