// Package environment propagates the current application environment
// (development, staging, production) through context.Context, HTTP requests
// and structured logs.
//
// Parse turns an APP_ENV value into an Environment, Middleware attaches it to
// every request context and LoggerExtractor exposes it to slog loggers built
// with pkg/logger.
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	handler = environment.Middleware(env)(handler)
//	log := logger.New(logger.WithContextExtractors(environment.LoggerExtractor()))
//
// FromContext returns "" when nothing was attached.
package environment
