package lifecycle

import (
	"sync"
	"time"

	"github.com/kbukum/bootkit/barrier"
	"github.com/kbukum/bootkit/config"
	"github.com/kbukum/bootkit/errors"
	"github.com/kbukum/bootkit/logger"
	"github.com/kbukum/bootkit/unit"
)

// Coordinator owns the readiness barrier and the extension loader and
// drives the lifecycle state machine.
type Coordinator struct {
	name     string
	kind     unit.Kind
	log      *logger.Logger
	barrier  *barrier.Barrier
	resolver unit.Resolver
	loader   *Loader

	mu    sync.Mutex
	state State
}

// Option configures the Coordinator during creation.
type Option func(*options)

type options struct {
	logger *logger.Logger
}

// WithLogger sets a custom logger for the coordinator. If not set, the
// logger is initialized from the config's Logging field.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.logger = l }
}

// New creates a coordinator from a validated config, an ordered unit
// resolver and a hook source. A nil resolver derives a static resolver
// from the config's unit list. Invalid construction arguments fail
// with a CONFIGURATION_INVALID error and the bootstrap never starts.
func New(cfg *config.Config, resolver unit.Resolver, source unit.Source, opts ...Option) (*Coordinator, error) {
	if cfg == nil {
		return nil, errors.Configuration("config is required")
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if source == nil {
		return nil, errors.Configuration("hook source is required")
	}
	if resolver == nil {
		resolver = unit.NewStaticResolver(cfg.BaseDir, cfg.Units...)
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger
	if log == nil {
		log = logger.New(&cfg.Logging, cfg.Name)
	}
	log = log.WithComponent("lifecycle")

	c := &Coordinator{
		name:     cfg.Name,
		kind:     unit.Kind(cfg.Kind),
		log:      log,
		resolver: resolver,
		state:    StateInit,
	}
	c.barrier = barrier.New(
		barrier.WithDelay(cfg.WatchdogDelay),
		barrier.WithLogger(log.WithComponent("barrier")),
	)
	c.loader = NewLoader(source, log.WithComponent("loader"))

	c.barrier.OnTaskDone(func(id string, remaining []string) {
		c.log.Info("task done", logger.Fields(
			logger.FieldTaskID, id,
			logger.FieldRemaining, remaining,
		))
	})
	c.barrier.OnTimeout(func(id string, delay time.Duration) {
		c.log.Warn("task timeout", logger.Fields(
			logger.FieldTaskID, id,
			logger.FieldDelay, delay.Milliseconds(),
		))
	})
	c.barrier.OnReady(func() {
		c.advance(StateReady)
		c.log.Info("ready", logger.Fields(logger.FieldState, string(StateReady)))
	})

	installHandler(c)
	return c, nil
}

// Load drives the extension loader over the resolved units, in order.
// It returns a LOAD_FAILED error as soon as any hook fails; remaining
// units are not processed and the coordinator never reaches ready.
func (c *Coordinator) Load() error {
	c.mu.Lock()
	if c.state != StateInit {
		state := c.state
		c.mu.Unlock()
		return errors.New(errors.ErrCodeInternal, "load already driven (state "+string(state)+")")
	}
	c.state = StateLoading
	c.mu.Unlock()

	units := c.resolver.Units()
	c.log.Info("loading units", logger.Fields(
		logger.FieldKind, string(c.kind),
		"count", len(units),
	))

	if err := c.loader.LoadHooks(c.kind, units, &hookContext{c: c}); err != nil {
		c.log.Error("bootstrap failed", logger.ErrorFields("load", err))
		return err
	}

	c.barrier.FinishLoading()
	// No-op when the barrier was already empty and ready fired above.
	c.advance(StateWaiting)

	c.log.Info("units loaded", logger.Fields(
		logger.FieldState, string(c.State()),
		logger.FieldRemaining, c.barrier.Status(),
	))
	return nil
}

// Register exposes the barrier's registration capability. Hooks reach
// it through their context; external collaborators may use it directly.
func (c *Coordinator) Register(id ...string) (*barrier.Token, error) {
	return c.barrier.Register(id...)
}

// OnReady registers a callback invoked exactly once when the state
// reaches ready. Callbacks registered after that point run immediately.
func (c *Coordinator) OnReady(fn func()) {
	c.barrier.OnReady(fn)
}

// Ready returns a channel closed when the coordinator reaches ready.
func (c *Coordinator) Ready() <-chan struct{} {
	return c.barrier.Ready()
}

// Status returns the pending task ids, ordered by registration time
// with ties broken by id. Read-only, no side effects.
func (c *Coordinator) Status() []string {
	return c.barrier.Status()
}

// State returns the current lifecycle state.
func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Name returns the configured service name.
func (c *Coordinator) Name() string { return c.name }

// Barrier returns the owned readiness barrier, for observers that
// subscribe to its events directly.
func (c *Coordinator) Barrier() *barrier.Barrier { return c.barrier }

// Logger returns the coordinator's logger.
func (c *Coordinator) Logger() *logger.Logger { return c.log }

// Close tears the coordinator down: the async failure handler is
// uninstalled (only if this instance still owns it) and outstanding
// watchdog timers are stopped.
func (c *Coordinator) Close() {
	uninstallHandler(c)
	c.barrier.Close()
}

// advance moves the state machine forward. Regressions are ignored so
// a waiting transition racing the ready observer cannot downgrade.
func (c *Coordinator) advance(s State) {
	c.mu.Lock()
	if stateRank[s] > stateRank[c.state] {
		c.state = s
	}
	c.mu.Unlock()
}
