// Package clientip resolves the originating client address of an HTTP request
// for logging.
//
// GetIP checks, in order, the first valid entry of X-Forwarded-For, then
// X-Real-IP, then the TCP peer address. Header values are trusted as-is, so
// the result is informational and must not be used for access control unless
// a proxy in front of the service rewrites those headers.
//
// Usage:
//
//	handler = clientip.Middleware(handler)
//	log := logger.New(logger.WithContextExtractors(clientip.LoggerExtractor()))
//
// Inside a handler the address is available through FromContext.
package clientip
