// Package logger provides a context-aware wrapper around Go's slog package
// adding functional options for configuration, helper attribute constructors,
// and transparent injection of values stored in context.Context.
//
// The package aims to standardise structured logging across services by
// exposing a single factory – New – that creates a *slog.Logger configured by
// a set of Option functions. These options allow you to:
//
//   • Select an output format (text or json)
//   • Set the minimum log level
//   • Supply default slog.Attr values applied to every record
//   • Register ContextExtractor callbacks that inject attributes pulled from a
//     context value (for example a request id) every time Handle is invoked.
//
// # Architecture
//
// Logger builds a decorated slog.Handler. First, New determines the concrete
// slog.Handler implementation (slog.NewTextHandler or slog.NewJSONHandler)
// from the configured Format. It then wraps the handler with ContextHandler,
// which runs the registered ContextExtractor callbacks before delegating to
// the underlying handler.
//
// Helper constructors such as Error, Key, Route, RequestID, etc. live in attr.go and
// return commonly-used slog.Attr instances to keep attribute naming consistent
// across the codebase.
//
// # Usage
//
//	import "github.com/dmitrymomot/categoryd/pkg/logger"
//
//	func main() {
//	    log := logger.New(
//	        logger.WithEnvironment(os.Getenv("APP_ENV"), "categoryd"),
//	        logger.WithLevelName(os.Getenv("LOG_LEVEL")),
//	        logger.WithContextExtractors(
//	            requestid.LoggerExtractor(),
//	            environment.LoggerExtractor(),
//	        ),
//	    )
//	    logger.SetAsDefault(log)
//
//	    log.InfoContext(ctx, "lookup finished",
//	        logger.Key(key),
//	        logger.Duration(time.Since(start)),
//	    )
//	}
//
// # Configuration
//
// The behaviour of New can be tuned with a variety of Option helpers:
//
//   • WithEnvironment / WithDevelopment / WithProduction – presets per APP_ENV.
//   • WithFormat – override output format.
//   • WithLevel / WithLevelName – set a custom slog.Level.
//   • WithAttr – attach static attributes.
//   • WithContextExtractors – inject attributes from context.
//
// # Error Handling
//
// Error produces an attribute only when the supplied error is non-nil,
// allowing calls like:
//
//	log.Info("operation succeeded", logger.Error(err))
//
// without an additional nil check.
package logger
