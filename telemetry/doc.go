// Package telemetry provides ambient instrumentation for package core's
// Store and package traversal's Engine: OpenTelemetry tracing spans,
// Prometheus counters, and a per-run correlation id (google/uuid)
// attached to each run's span. Hooks implements both core.StoreObserver and
// traversal.Observer; installing it never changes control flow — a Store
// or Engine built without it behaves identically, just silently.
package telemetry
