// Package observability provides OpenTelemetry integration for bootkit.
//
// It initializes meter and tracer providers with OTLP HTTP export, and
// exposes BootMetrics, a recorder that subscribes to readiness-barrier
// events and publishes task registration, completion, timeout, and
// time-to-ready metrics.
package observability
