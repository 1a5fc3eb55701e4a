package lookup

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/categoryd/pkg/logger"
	"github.com/dmitrymomot/categoryd/pkg/metrics"
	"github.com/dmitrymomot/categoryd/pkg/redis"
)

// Getter reads a single string value from the backing store.
// Implementations return redis.ErrNotFound for absent keys and must be safe
// for concurrent use.
type Getter interface {
	Get(ctx context.Context, key string) (string, error)
}

// Service answers the public HTTP surface. It is stateless apart from the
// shared store handle, so a single value serves every connection.
type Service struct {
	store         Getter
	log           *slog.Logger
	metrics       *metrics.Metrics
	lookupTimeout time.Duration
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used for store failures and access logs.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMetrics records request and lookup metrics into m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithLookupTimeout bounds each store round trip. Zero, the default, means no
// deadline beyond the request context.
func WithLookupTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.lookupTimeout = d
		}
	}
}

// New creates a Service bound to store.
func New(store Getter, opts ...Option) *Service {
	if store == nil {
		panic("lookup.New: nil store")
	}
	s := &Service{
		store: store,
		log:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ServeHTTP dispatches the request to exactly one handler.
func (s *Service) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	kind, key := Route(r.Method, r.URL.EscapedPath(), r.URL.RawQuery)

	switch kind {
	case KindReady:
		s.ready(w)
	case KindCategory:
		s.category(w, r, key)
	case KindMissingParam:
		s.missingParam(w)
	default:
		s.notFound(w)
	}
}

// ready never touches the store.
func (s *Service) ready(w http.ResponseWriter) {
	writeText(w, http.StatusOK, "1")
}

// category answers 200 with the stored value. Store failures of any kind
// degrade to an empty value; they are logged, never surfaced to the client.
func (s *Service) category(w http.ResponseWriter, r *http.Request, key string) {
	ctx := r.Context()
	if s.lookupTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.lookupTimeout)
		defer cancel()
	}

	start := time.Now()
	value, err := s.store.Get(ctx, key)
	elapsed := time.Since(start)

	switch {
	case err == nil:
		s.metrics.ObserveLookup(metrics.LookupHit, elapsed)
	case errors.Is(err, redis.ErrNotFound):
		s.metrics.ObserveLookup(metrics.LookupMiss, elapsed)
		s.log.DebugContext(ctx, "category not found", logger.Key(key))
		value = ""
	default:
		s.metrics.ObserveLookup(metrics.LookupError, elapsed)
		s.log.WarnContext(ctx, "category lookup failed",
			logger.Key(key),
			logger.Duration(elapsed),
			logger.Error(err),
		)
		value = ""
	}

	writeText(w, http.StatusOK, value)
}

func (s *Service) missingParam(w http.ResponseWriter) {
	writeText(w, http.StatusOK, "")
}

func (s *Service) notFound(w http.ResponseWriter) {
	writeText(w, http.StatusNotFound, "")
}

// writeText writes body followed by a newline.
func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body+"\n")
}
