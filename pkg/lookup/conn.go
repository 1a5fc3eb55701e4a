package lookup

import (
	"context"
	"log/slog"
	"net"

	"github.com/google/uuid"

	"github.com/dmitrymomot/categoryd/pkg/logger"
)

type connKey struct{}

// ConnContext gives every accepted connection its own identifier. Plug it into
// httpserver.WithConnContext; all requests served on the connection share it.
func ConnContext(ctx context.Context, _ net.Conn) context.Context {
	return context.WithValue(ctx, connKey{}, uuid.NewString())
}

// ConnIDFromContext returns the connection identifier, or "".
func ConnIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(connKey{}).(string)
	return id
}

// ConnLoggerExtractor injects the connection identifier into log records.
func ConnLoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id := ConnIDFromContext(ctx); id != "" {
			return logger.ConnID(id), true
		}
		return slog.Attr{}, false
	}
}
