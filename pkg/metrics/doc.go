// Package metrics exposes Prometheus collectors for categoryd: request counts
// and latency per route, and store lookup outcomes and latency.
//
// Collectors live on a private registry served by Handler, which is meant for
// the admin listener only; the public listener never exposes /metrics.
package metrics
