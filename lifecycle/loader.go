package lifecycle

import (
	"github.com/kbukum/bootkit/errors"
	"github.com/kbukum/bootkit/logger"
	"github.com/kbukum/bootkit/unit"
)

// Loader iterates an ordered unit sequence, invoking each unit's hook
// synchronously. It performs no I/O of its own.
type Loader struct {
	source unit.Source
	log    *logger.Logger
}

// NewLoader creates a loader resolving hooks from source.
func NewLoader(source unit.Source, log *logger.Logger) *Loader {
	if log == nil {
		log = logger.GetGlobalLogger().WithComponent("loader")
	}
	return &Loader{source: source, log: log}
}

// resolvedHook pairs a unit with its resolved hook.
type resolvedHook struct {
	unit unit.Unit
	hook unit.Hook
}

// LoadHooks invokes the hook of each unit, in the given order, with ctx
// as its sole argument. All hooks are resolved ahead of invocation; a
// unit without a hook for kind is skipped. Hook i+1 begins only after
// hook i's synchronous body returns; work a hook schedules through
// ctx.Register outlives its call without blocking subsequent hooks.
// The first failure aborts the remaining units and is returned as a
// LOAD_FAILED error.
func (l *Loader) LoadHooks(kind unit.Kind, units []unit.Unit, ctx unit.Context) error {
	resolved := make([]resolvedHook, 0, len(units))
	for _, u := range units {
		hook, ok := l.source.Resolve(u, kind)
		if !ok {
			l.log.Debug("unit has no hook", logger.Fields(
				logger.FieldUnit, u.Path,
				logger.FieldKind, string(kind),
			))
			continue
		}
		resolved = append(resolved, resolvedHook{unit: u, hook: hook})
	}

	for _, r := range resolved {
		if err := invoke(r.hook, ctx); err != nil {
			return errors.LoadFailed(r.unit.Path, string(kind), err)
		}
		l.log.Debug("hook finished", logger.Fields(
			logger.FieldUnit, r.unit.Path,
			logger.FieldKind, string(kind),
		))
	}
	return nil
}

// invoke runs a hook, converting a panic in its synchronous body into
// an error so the loader can fail fast.
func invoke(hook unit.Hook, ctx unit.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Normalize(r)
		}
	}()
	return hook(ctx)
}
