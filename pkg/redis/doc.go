// Package redis provides the connection to the backing key-value store used
// by categoryd.
//
// The package wraps the go-redis client and adds:
//
//   - `Connect` which parses the store address, dials and pings the server,
//     optionally retrying the startup ping. A failure here is meant to stop the
//     process before it accepts any traffic.
//   - `Store`, a shareable handle exposing a single-key string `Get`. One Store
//     value is shared by all request goroutines; go-redis pools the underlying
//     network connections.
//   - `Healthcheck` to plug a PING into an admin readiness probe.
//
// Configuration is described by the `Config` struct whose fields are populated
// from environment variables via github.com/caarlos0/env.
//
// # Usage
//
//	cfg := redis.Config{
//	    ConnectionURL:  "store://localhost:6379/0",
//	    RetryAttempts:  1,
//	    ConnectTimeout: 10 * time.Second,
//	}
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    // startup-fatal
//	}
//	defer client.Close()
//
//	store := redis.NewStore(client)
//	value, err := store.Get(ctx, "https://example.com/")
//	switch {
//	case errors.Is(err, redis.ErrNotFound):
//	    // key is absent
//	case errors.Is(err, redis.ErrUnavailable):
//	    // connection-level failure
//	}
//
// # Errors
//
// The package defines sentinel errors (ErrRedisNotReady, ErrNotFound,
// ErrUnavailable, ...) that wrap the underlying go-redis errors using
// errors.Join, so they can be compared with errors.Is and unwrapped.
//
// Lookups are never retried by the client: Connect sets MaxRetries to -1.
//
// # See Also
//
//   - https://github.com/redis/go-redis – underlying driver
package redis
