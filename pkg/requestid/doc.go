// Package requestid attaches a correlation identifier to every HTTP request.
//
// Middleware reuses a client supplied "X-Request-ID" header when it is made of
// [a-zA-Z0-9_-] and at most 128 bytes long, otherwise it generates a UUIDv4.
// The ID is stored in the request context (FromContext) and echoed back in the
// response header. LoggerExtractor injects it into slog records built by
// pkg/logger under the key "request_id".
package requestid
