// Package httpserver accepts inbound HTTP/1.1 connections and coordinates
// graceful shutdown.
//
// The core type is Server which builds an *http.Server and adds:
//
//   - A listener created through net.ListenConfig so every accepted TCP
//     connection gets keep-alive probes (DefaultKeepAlive, 150s). Only HTTP/1.1
//     is served; HTTP keep-alive stays enabled.
//
//   - Graceful Shutdown – Run blocks until the context is cancelled or an
//     interrupt/TERM signal is received. It then stops accepting connections
//     and waits for in-flight requests to complete. No drain deadline is
//     applied unless WithShutdownTimeout is used.
//
//   - Per-connection context – WithConnContext derives the base context for
//     each accepted connection; requests on that connection inherit it.
//
//   - Hooks – WithStartHook and WithStopHook run callbacks around the server
//     life-cycle. Start hooks run once the listener is bound, so Addr is
//     already valid inside them.
//
//   - Health Checks – HealthCheckHandler returns an http.HandlerFunc for
//     liveness and readiness probes on an admin listener.
//
// # Usage
//
//	srv := httpserver.New(
//		httpserver.WithAddr(":8080"),
//		httpserver.WithLogger(log),
//	)
//	if err := srv.Run(ctx, handler); err != nil {
//		log.Error("server stopped", logger.Error(err))
//		os.Exit(1)
//	}
//
// # Errors
//
// Run wraps all listen and serve errors with ErrStart, while Shutdown wraps
// underlying shutdown errors with ErrShutdown. Use errors.Is to distinguish them.
package httpserver
