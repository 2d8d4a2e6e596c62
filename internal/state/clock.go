package state

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// Clock hands out increasing sequence numbers, one per produced drag
// update, so log lines from different goroutines can be ordered.
type Clock struct {
	counter atomic.Uint64
}

func (c *Clock) Tick() uint64 {
	return c.counter.Add(1)
}

func (c *Clock) Now() uint64 {
	return c.counter.Load()
}

func newSessionID() string {
	return uuid.NewString()
}
