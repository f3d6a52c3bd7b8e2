package lifecycle

import (
	"fmt"
	"testing"

	"github.com/kbukum/bootkit/barrier"
	"github.com/kbukum/bootkit/errors"
	"github.com/kbukum/bootkit/logger"
	"github.com/kbukum/bootkit/unit"
)

// nopContext satisfies unit.Context for loader-only tests.
type nopContext struct{}

func (nopContext) Register(id ...string) (*barrier.Token, error) { return nil, nil }
func (nopContext) Logger() *logger.Logger                        { return logger.GetGlobalLogger() }

func TestLoadHooksInvocationOrder(t *testing.T) {
	// The resolver's order is authoritative, whatever permutation it is.
	permutations := [][]string{
		{"units/a", "units/b", "units/c", "units/d"},
		{"units/d", "units/c", "units/b", "units/a"},
		{"units/c", "units/a", "units/d", "units/b"},
	}

	for _, paths := range permutations {
		reg := unit.NewRegistry()
		var invoked []string
		for _, p := range paths {
			p := p
			if err := reg.Register(p, unit.KindApp, func(unit.Context) error {
				invoked = append(invoked, p)
				return nil
			}); err != nil {
				t.Fatal(err)
			}
		}

		l := NewLoader(reg, nil)
		if err := l.LoadHooks(unit.KindApp, unit.NewStaticResolver("", paths...).Units(), nopContext{}); err != nil {
			t.Fatalf("LoadHooks failed: %v", err)
		}

		if len(invoked) != len(paths) {
			t.Fatalf("expected %d invocations, got %d", len(paths), len(invoked))
		}
		for i, p := range paths {
			if invoked[i] != p {
				t.Errorf("permutation %v, position %d: expected %q, got %q", paths, i, p, invoked[i])
			}
		}
	}
}

func TestLoadHooksSkipsAbsentHooks(t *testing.T) {
	reg := unit.NewRegistry()
	var invoked []string
	for _, p := range []string{"units/first", "units/third"} {
		p := p
		_ = reg.Register(p, unit.KindAgent, func(unit.Context) error {
			invoked = append(invoked, p)
			return nil
		})
	}

	units := unit.NewStaticResolver("", "units/first", "units/second", "units/third").Units()
	l := NewLoader(reg, nil)
	if err := l.LoadHooks(unit.KindAgent, units, nopContext{}); err != nil {
		t.Fatalf("expected absent hook to be skipped, got %v", err)
	}
	if len(invoked) != 2 {
		t.Errorf("expected 2 invocations, got %v", invoked)
	}
}

func TestLoadHooksFailFast(t *testing.T) {
	reg := unit.NewRegistry()
	var invoked []string
	_ = reg.Register("units/one", unit.KindApp, func(unit.Context) error {
		invoked = append(invoked, "one")
		return nil
	})
	_ = reg.Register("units/two", unit.KindApp, func(unit.Context) error {
		invoked = append(invoked, "two")
		return fmt.Errorf("hook blew up")
	})
	_ = reg.Register("units/three", unit.KindApp, func(unit.Context) error {
		invoked = append(invoked, "three")
		return nil
	})

	units := unit.NewStaticResolver("", "units/one", "units/two", "units/three").Units()
	err := NewLoader(reg, nil).LoadHooks(unit.KindApp, units, nopContext{})
	if !errors.IsCode(err, errors.ErrCodeLoadFailed) {
		t.Fatalf("expected LOAD_FAILED, got %v", err)
	}
	if len(invoked) != 2 || invoked[1] != "two" {
		t.Errorf("expected unit three never invoked, got %v", invoked)
	}
}

func TestLoadHooksPanicBecomesLoadError(t *testing.T) {
	reg := unit.NewRegistry()
	_ = reg.Register("units/bad", unit.KindApp, func(unit.Context) error {
		panic("synchronous panic")
	})

	units := unit.NewStaticResolver("", "units/bad").Units()
	err := NewLoader(reg, nil).LoadHooks(unit.KindApp, units, nopContext{})
	if !errors.IsCode(err, errors.ErrCodeLoadFailed) {
		t.Fatalf("expected LOAD_FAILED, got %v", err)
	}

	var app *errors.AppError
	if !errors.As(err, &app) {
		t.Fatal("expected AppError")
	}
	if app.Details["unit"] != "units/bad" {
		t.Errorf("expected failing unit in details, got %v", app.Details)
	}
}
