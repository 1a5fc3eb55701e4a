package lookup

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/categoryd/pkg/logger"
	"github.com/dmitrymomot/categoryd/pkg/requestid"
)

// Handler wraps the service with the public middleware stack: panic recovery,
// request ids, the extra middlewares in the given order, metrics and the
// access log. Routing stays in ServeHTTP.
func (s *Service) Handler(mws ...func(http.Handler) http.Handler) http.Handler {
	stack := chi.Chain(middleware.Recoverer, requestid.Middleware)
	stack = append(stack, mws...)
	stack = append(stack,
		s.metrics.Middleware(RouteName),
		accessLog(s.log),
	)
	return stack.Handler(s)
}

// accessLog records every served request at debug level.
func accessLog(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			log.DebugContext(r.Context(), "request served",
				slog.String("method", r.Method),
				slog.String("path", r.URL.EscapedPath()),
				logger.Route(RouteName(r)),
				logger.Status(ww.Status()),
				slog.Int("bytes", ww.BytesWritten()),
				logger.Duration(time.Since(start)),
			)
		})
	}
}
