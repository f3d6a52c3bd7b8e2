package unit

import (
	"path/filepath"

	"github.com/kbukum/bootkit/barrier"
	"github.com/kbukum/bootkit/logger"
)

// Kind selects which hook a unit contributes.
type Kind string

const (
	// KindApp selects the application hook.
	KindApp Kind = "app"
	// KindAgent selects the agent hook.
	KindAgent Kind = "agent"
)

// Valid reports whether k is a known context kind.
func (k Kind) Valid() bool {
	return k == KindApp || k == KindAgent
}

// Unit is a discrete extension directory. Immutable once resolved.
type Unit struct {
	// Path is the unit's directory reference.
	Path string
}

// Context is the capability surface passed to every hook. It exposes
// exactly what a hook may do during loading: obtain a completion token
// for asynchronous work, and log.
type Context interface {
	// Register obtains a completion token for asynchronous work the hook
	// schedules. An explicit id may be passed; when omitted a unique one
	// is generated.
	Register(id ...string) (*barrier.Token, error)

	// Logger returns the lifecycle logger.
	Logger() *logger.Logger
}

// Hook is a unit's initialization routine for one context kind. It runs
// synchronously during loading; work it schedules may outlive the call
// by holding a token from ctx.Register. A non-nil error aborts the
// entire bootstrap.
type Hook func(ctx Context) error

// Resolver supplies the ordered unit sequence. Order is authoritative;
// callers perform no reordering.
type Resolver interface {
	Units() []Unit
}

// StaticResolver is a fixed, ordered unit sequence.
type StaticResolver []Unit

// NewStaticResolver builds a StaticResolver from unit paths, preserving
// their order. Paths are joined onto baseDir when it is non-empty.
func NewStaticResolver(baseDir string, paths ...string) StaticResolver {
	units := make([]Unit, 0, len(paths))
	for _, p := range paths {
		if baseDir != "" {
			p = filepath.Join(baseDir, p)
		}
		units = append(units, Unit{Path: p})
	}
	return units
}

// Units returns the resolver's units in order.
func (r StaticResolver) Units() []Unit {
	out := make([]Unit, len(r))
	copy(out, r)
	return out
}

// Source resolves the hook a unit contributes for a context kind.
type Source interface {
	// Resolve returns the hook for u and kind. The second return is
	// false when the unit contributes no hook for that kind; absence is
	// not an error.
	Resolve(u Unit, kind Kind) (Hook, bool)
}
