package lifecycle

import (
	"github.com/kbukum/bootkit/barrier"
	"github.com/kbukum/bootkit/logger"
)

// hookContext is the capability surface handed to every hook. It
// exposes exactly what a hook may do during loading.
type hookContext struct {
	c *Coordinator
}

func (h *hookContext) Register(id ...string) (*barrier.Token, error) {
	return h.c.Register(id...)
}

func (h *hookContext) Logger() *logger.Logger {
	return h.c.log
}
