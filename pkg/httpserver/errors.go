package httpserver

import "errors"

var (
	// ErrStart wraps listen and serve failures returned by Run.
	ErrStart = errors.New("http server: listen or serve failed")
	// ErrShutdown wraps failures to drain in-flight requests.
	ErrShutdown = errors.New("http server: graceful shutdown failed")
)
