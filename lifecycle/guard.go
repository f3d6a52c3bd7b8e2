package lifecycle

import (
	"sync"

	"github.com/kbukum/bootkit/errors"
	"github.com/kbukum/bootkit/logger"
)

// The async failure handler is owned by a coordinator instance:
// installed once at construction and removed at teardown, so repeated
// instantiation (e.g. in tests) never accumulates handlers.
var (
	handlerMu     sync.Mutex
	activeHandler *Coordinator
)

func installHandler(c *Coordinator) {
	handlerMu.Lock()
	activeHandler = c
	handlerMu.Unlock()
}

// uninstallHandler removes c as the active handler only if it still
// owns the slot; a newer coordinator's handler stays installed.
func uninstallHandler(c *Coordinator) {
	handlerMu.Lock()
	if activeHandler == c {
		activeHandler = nil
	}
	handlerMu.Unlock()
}

// ReportAsyncFailure routes an asynchronous failure that escaped all
// other handling to the active coordinator's handler. With no
// coordinator installed it falls back to the global logger. Never
// panics, never crashes the process.
func ReportAsyncFailure(v any) {
	handlerMu.Lock()
	c := activeHandler
	handlerMu.Unlock()

	if c != nil {
		c.HandleAsyncFailure(v)
		return
	}
	if err := errors.Normalize(v); err != nil {
		logger.Error("unhandled async failure", logger.ErrorFields("async", errors.AsyncFailure(err)))
	}
}

// HandleAsyncFailure normalizes v into a uniform error representation
// and logs it at error level. Background failures are visible but
// non-fatal: they do not crash the process and do not block the
// readiness barrier.
func (c *Coordinator) HandleAsyncFailure(v any) {
	err := errors.Normalize(v)
	if err == nil {
		return
	}
	var app *errors.AppError
	if !errors.As(err, &app) {
		app = errors.AsyncFailure(err)
	}
	c.log.Error("unhandled async failure", logger.Fields(
		logger.FieldError, app.Error(),
		"code", string(app.Code),
	))
}

// Go runs fn in a guarded goroutine. A panic or returned error is
// routed to the coordinator's async failure handler.
func (c *Coordinator) Go(fn func() error) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				c.HandleAsyncFailure(r)
			}
		}()
		if err := fn(); err != nil {
			c.HandleAsyncFailure(err)
		}
	}()
}
