package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/kbukum/bootkit/barrier"
)

// BootMetrics records readiness-barrier activity as OpenTelemetry
// metrics: task registrations, completions, advisory timeouts, and the
// time from observation start to the ready signal.
type BootMetrics struct {
	registered  metric.Int64Counter
	completed   metric.Int64Counter
	timeouts    metric.Int64Counter
	timeToReady metric.Float64Histogram

	start time.Time
}

// NewBootMetrics creates the boot metric instruments on the given meter.
func NewBootMetrics(meter metric.Meter) (*BootMetrics, error) {
	registered, err := meter.Int64Counter("bootkit.tasks.registered",
		metric.WithDescription("Asynchronous tasks registered with the readiness barrier"))
	if err != nil {
		return nil, fmt.Errorf("creating registered counter: %w", err)
	}
	completed, err := meter.Int64Counter("bootkit.tasks.completed",
		metric.WithDescription("Asynchronous tasks completed"))
	if err != nil {
		return nil, fmt.Errorf("creating completed counter: %w", err)
	}
	timeouts, err := meter.Int64Counter("bootkit.tasks.timeouts",
		metric.WithDescription("Advisory watchdog timeouts emitted for slow tasks"))
	if err != nil {
		return nil, fmt.Errorf("creating timeouts counter: %w", err)
	}
	timeToReady, err := meter.Float64Histogram("bootkit.time_to_ready",
		metric.WithDescription("Seconds from observation start to the ready signal"),
		metric.WithUnit("s"))
	if err != nil {
		return nil, fmt.Errorf("creating time_to_ready histogram: %w", err)
	}

	return &BootMetrics{
		registered:  registered,
		completed:   completed,
		timeouts:    timeouts,
		timeToReady: timeToReady,
	}, nil
}

// Observe subscribes the recorder to a barrier's events. Call it before
// loading starts so the time-to-ready measurement covers the whole
// bootstrap.
func (m *BootMetrics) Observe(b *barrier.Barrier) {
	m.start = time.Now()
	ctx := context.Background()

	b.OnRegister(func(string) {
		m.registered.Add(ctx, 1)
	})
	b.OnTaskDone(func(string, []string) {
		m.completed.Add(ctx, 1)
	})
	b.OnTimeout(func(string, time.Duration) {
		m.timeouts.Add(ctx, 1)
	})
	b.OnReady(func() {
		m.timeToReady.Record(ctx, time.Since(m.start).Seconds())
	})
}
