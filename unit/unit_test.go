package unit

import (
	"path/filepath"
	"testing"
)

func TestKindValid(t *testing.T) {
	if !KindApp.Valid() || !KindAgent.Valid() {
		t.Error("expected app and agent kinds to be valid")
	}
	if Kind("worker").Valid() {
		t.Error("expected unknown kind to be invalid")
	}
}

func TestStaticResolverOrder(t *testing.T) {
	r := NewStaticResolver("", "c", "a", "b")
	units := r.Units()
	want := []string{"c", "a", "b"}
	if len(units) != len(want) {
		t.Fatalf("expected %d units, got %d", len(want), len(units))
	}
	for i, u := range units {
		if u.Path != want[i] {
			t.Errorf("unit %d: expected %q, got %q", i, want[i], u.Path)
		}
	}
}

func TestStaticResolverBaseDir(t *testing.T) {
	r := NewStaticResolver("base", "db")
	if got := r.Units()[0].Path; got != filepath.Join("base", "db") {
		t.Errorf("expected joined path, got %q", got)
	}
}

func TestStaticResolverCopies(t *testing.T) {
	r := NewStaticResolver("", "a", "b")
	units := r.Units()
	units[0].Path = "mutated"
	if r.Units()[0].Path != "a" {
		t.Error("expected Units to return a copy")
	}
}

func TestRegistryRegisterAndResolve(t *testing.T) {
	reg := NewRegistry()
	called := false
	hook := func(ctx Context) error { called = true; return nil }

	if err := reg.Register("units/db", KindApp, hook); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	h, ok := reg.Resolve(Unit{Path: "units/db"}, KindApp)
	if !ok {
		t.Fatal("expected hook to resolve")
	}
	if err := h(nil); err != nil || !called {
		t.Error("expected registered hook to be invoked")
	}
}

func TestRegistryAbsenceIsNotError(t *testing.T) {
	reg := NewRegistry()
	if _, ok := reg.Resolve(Unit{Path: "units/db"}, KindAgent); ok {
		t.Error("expected no hook for unregistered unit")
	}

	// A hook for one kind does not leak into the other.
	_ = reg.Register("units/db", KindApp, func(Context) error { return nil })
	if _, ok := reg.Resolve(Unit{Path: "units/db"}, KindAgent); ok {
		t.Error("expected no agent hook when only app hook registered")
	}
}

func TestRegistryDuplicate(t *testing.T) {
	reg := NewRegistry()
	hook := func(Context) error { return nil }
	if err := reg.Register("units/db", KindApp, hook); err != nil {
		t.Fatal(err)
	}
	if err := reg.Register("units/db", KindApp, hook); err == nil {
		t.Error("expected error for duplicate registration")
	}
	if reg.Len() != 1 {
		t.Errorf("expected 1 hook, got %d", reg.Len())
	}
}

func TestRegistryRejectsNilAndUnknownKind(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register("units/db", KindApp, nil); err == nil {
		t.Error("expected error for nil hook")
	}
	if err := reg.Register("units/db", Kind("worker"), func(Context) error { return nil }); err == nil {
		t.Error("expected error for unknown kind")
	}
}
