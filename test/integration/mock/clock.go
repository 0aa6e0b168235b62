package mock

import (
	"sync"
	"time"
)

// Clock implements adapter.Clock for tests. It tracks the wall clock by
// default and can be frozen at a fixed instant for time-sensitive scenarios.
type Clock struct {
	mu     sync.Mutex
	frozen *time.Time
}

func NewClock() *Clock {
	return &Clock{}
}

// Freeze pins Now to the given instant until Thaw is called.
func (c *Clock) Freeze(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.frozen = &t
}

// Thaw resumes wall-clock time.
func (c *Clock) Thaw() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.frozen = nil
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.frozen != nil {
		return *c.frozen
	}
	return time.Now().UTC()
}
