package unit

import (
	"fmt"
	"sync"
)

// hookKey identifies a hook by unit path and context kind.
type hookKey struct {
	path string
	kind Kind
}

// Registry is the standard Source. Units register their hooks by path
// and kind ahead of loading; resolution is a map lookup.
type Registry struct {
	hooks map[hookKey]Hook
	mu    sync.RWMutex
}

// NewRegistry creates an empty hook registry.
func NewRegistry() *Registry {
	return &Registry{
		hooks: make(map[hookKey]Hook),
	}
}

// Register adds a hook for a unit path and kind. Registering the same
// (path, kind) pair twice is rejected.
func (r *Registry) Register(path string, kind Kind, h Hook) error {
	if h == nil {
		return fmt.Errorf("hook for unit %s (kind %s) is nil", path, kind)
	}
	if !kind.Valid() {
		return fmt.Errorf("unknown hook kind %q for unit %s", kind, path)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := hookKey{path: path, kind: kind}
	if _, exists := r.hooks[key]; exists {
		return fmt.Errorf("hook for unit %s (kind %s) already registered", path, kind)
	}
	r.hooks[key] = h
	return nil
}

// Resolve returns the hook registered for u and kind, if any.
func (r *Registry) Resolve(u Unit, kind Kind) (Hook, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.hooks[hookKey{path: u.Path, kind: kind}]
	return h, ok
}

// Len returns the number of registered hooks.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.hooks)
}
