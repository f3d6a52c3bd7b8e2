// Package probe exposes HTTP observation endpoints for a lifecycle
// coordinator: a readiness probe that gates traffic until the
// coordinator reaches ready, a liveness probe, and a status endpoint
// reporting the current state and pending task ids.
//
// It hosts no application traffic; the outer process mounts these
// handlers on whatever server it runs.
package probe
