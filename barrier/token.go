package barrier

import "sync"

// Token is an opaque, single-use completion handle bound to exactly one
// task id. Calling Done more than once is a no-op on the second and
// subsequent calls; it can never cause a duplicate ready emission.
type Token struct {
	id   string
	done func()
	once sync.Once
}

// ID returns the task id the token is bound to.
func (t *Token) ID() string { return t.id }

// Done completes the bound task. Idempotent.
func (t *Token) Done() {
	t.once.Do(t.done)
}
