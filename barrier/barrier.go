package barrier

import (
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kbukum/bootkit/errors"
	"github.com/kbukum/bootkit/logger"
)

// DefaultDelay is the watchdog delay applied when no option overrides it.
const DefaultDelay = 10 * time.Second

// task is one outstanding asynchronous obligation. Never mutated after
// removal from the pending set.
type task struct {
	id           string
	registeredAt time.Time
	timedOut     bool
	timer        *time.Timer
}

// Barrier is the readiness barrier. All state is guarded by mu;
// listeners are always invoked outside the lock.
type Barrier struct {
	delay time.Duration
	log   *logger.Logger

	mu         sync.Mutex
	pending    map[string]*task
	finished   bool
	readyFired bool
	readyCh    chan struct{}

	onRegister []func(id string)
	onTaskDone []func(id string, remaining []string)
	onTimeout  []func(id string, delay time.Duration)
	onReady    []func()
}

// Option configures a Barrier during creation.
type Option func(*Barrier)

// WithDelay sets the per-task watchdog delay.
func WithDelay(d time.Duration) Option {
	return func(b *Barrier) {
		if d > 0 {
			b.delay = d
		}
	}
}

// WithLogger sets the barrier's logger.
func WithLogger(l *logger.Logger) Option {
	return func(b *Barrier) { b.log = l }
}

// New creates a readiness barrier.
func New(opts ...Option) *Barrier {
	b := &Barrier{
		delay:   DefaultDelay,
		pending: make(map[string]*task),
		readyCh: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.log == nil {
		b.log = logger.GetGlobalLogger().WithComponent("barrier")
	}
	return b
}

// Register stores a new pending task and returns its completion token.
// An explicit id may be passed; registering an id that is already
// pending fails with DUPLICATE_REGISTRATION. When omitted, a generated
// id unique for the life of this barrier is used. Registration after
// the barrier has reached ready fails with BARRIER_CLOSED.
func (b *Barrier) Register(id ...string) (*Token, error) {
	var taskID string
	if len(id) > 0 {
		taskID = id[0]
	}

	b.mu.Lock()
	if b.readyFired {
		b.mu.Unlock()
		return nil, errors.BarrierClosed(taskID)
	}
	if taskID == "" {
		for {
			taskID = uuid.NewString()
			if _, exists := b.pending[taskID]; !exists {
				break
			}
		}
	} else if _, exists := b.pending[taskID]; exists {
		b.mu.Unlock()
		return nil, errors.DuplicateRegistration(taskID)
	}

	t := &task{id: taskID, registeredAt: time.Now()}
	t.timer = time.AfterFunc(b.delay, func() { b.watchdogFire(taskID) })
	b.pending[taskID] = t
	listeners := slices.Clone(b.onRegister)
	b.mu.Unlock()

	b.log.Debug("task registered", logger.Fields(logger.FieldTaskID, taskID))
	for _, fn := range listeners {
		fn(taskID)
	}
	return &Token{id: taskID, done: func() { b.complete(taskID) }}, nil
}

// complete removes the task from the pending set. Silent no-op when the
// task was already removed or never existed. On removal it emits a
// task-done notification with the remaining pending ids and, once the
// pending set is empty and loading has finished, fires ready exactly
// once.
func (b *Barrier) complete(id string) {
	b.mu.Lock()
	t, ok := b.pending[id]
	if !ok {
		b.mu.Unlock()
		return
	}
	t.timer.Stop()
	delete(b.pending, id)
	remaining := b.remainingLocked()
	doneListeners := slices.Clone(b.onTaskDone)
	fire, observers := b.maybeReadyLocked()
	b.mu.Unlock()

	for _, fn := range doneListeners {
		fn(id, remaining)
	}
	b.fireReady(fire, observers)
}

// FinishLoading marks the loading phase complete. If nothing is
// pending, ready fires immediately.
func (b *Barrier) FinishLoading() {
	b.mu.Lock()
	b.finished = true
	fire, observers := b.maybeReadyLocked()
	b.mu.Unlock()

	b.fireReady(fire, observers)
}

// maybeReadyLocked claims the ready transition when both conditions
// hold. The readyFired flag guards the once semantics; the caller fires
// observers after releasing the lock.
func (b *Barrier) maybeReadyLocked() (bool, []func()) {
	if !b.finished || len(b.pending) != 0 || b.readyFired {
		return false, nil
	}
	b.readyFired = true
	observers := b.onReady
	b.onReady = nil
	return true, observers
}

func (b *Barrier) fireReady(fire bool, observers []func()) {
	if !fire {
		return
	}
	close(b.readyCh)
	for _, fn := range observers {
		fn()
	}
}

// watchdogFire emits the advisory timeout for a task that is still
// pending after the configured delay. The task stays pending and can
// complete normally afterward.
func (b *Barrier) watchdogFire(id string) {
	b.mu.Lock()
	t, ok := b.pending[id]
	if !ok || t.timedOut {
		b.mu.Unlock()
		return
	}
	t.timedOut = true
	listeners := slices.Clone(b.onTimeout)
	delay := b.delay
	b.mu.Unlock()

	for _, fn := range listeners {
		fn(id, delay)
	}
}

// OnRegister adds a listener invoked with each newly registered task id.
func (b *Barrier) OnRegister(fn func(id string)) {
	b.mu.Lock()
	b.onRegister = append(b.onRegister, fn)
	b.mu.Unlock()
}

// OnTaskDone adds a listener invoked with each completed task id and
// the deterministic snapshot of remaining pending ids.
func (b *Barrier) OnTaskDone(fn func(id string, remaining []string)) {
	b.mu.Lock()
	b.onTaskDone = append(b.onTaskDone, fn)
	b.mu.Unlock()
}

// OnTimeout adds a listener invoked when a task's watchdog fires.
func (b *Barrier) OnTimeout(fn func(id string, delay time.Duration)) {
	b.mu.Lock()
	b.onTimeout = append(b.onTimeout, fn)
	b.mu.Unlock()
}

// OnReady adds an observer invoked exactly once when the barrier
// reaches ready. Observers added after that point run immediately.
func (b *Barrier) OnReady(fn func()) {
	b.mu.Lock()
	if b.readyFired {
		b.mu.Unlock()
		fn()
		return
	}
	b.onReady = append(b.onReady, fn)
	b.mu.Unlock()
}

// Status returns a read-only snapshot of pending task ids, ordered by
// registration time with ties broken by id.
func (b *Barrier) Status() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.remainingLocked()
}

// IsReady reports whether ready has fired.
func (b *Barrier) IsReady() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.readyFired
}

// Ready returns a channel closed when the barrier reaches ready.
func (b *Barrier) Ready() <-chan struct{} {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.readyCh
}

// Reset reopens a barrier that reached ready, restoring it to its
// pre-finish state so new registrations are accepted again. Observers
// that already ran are not re-armed; pending tasks are untouched.
func (b *Barrier) Reset() {
	b.mu.Lock()
	b.finished = false
	b.readyFired = false
	b.readyCh = make(chan struct{})
	b.mu.Unlock()
}

// Close stops all outstanding watchdog timers. Pending tasks are
// abandoned silently.
func (b *Barrier) Close() {
	b.mu.Lock()
	for _, t := range b.pending {
		t.timer.Stop()
	}
	b.mu.Unlock()
}

// remainingLocked builds the deterministic pending-id snapshot.
func (b *Barrier) remainingLocked() []string {
	tasks := make([]*task, 0, len(b.pending))
	for _, t := range b.pending {
		tasks = append(tasks, t)
	}
	sort.Slice(tasks, func(i, j int) bool {
		if !tasks[i].registeredAt.Equal(tasks[j].registeredAt) {
			return tasks[i].registeredAt.Before(tasks[j].registeredAt)
		}
		return tasks[i].id < tasks[j].id
	})
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.id
	}
	return ids
}
