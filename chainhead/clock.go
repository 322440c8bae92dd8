package chainhead

import (
	"sync"
	"time"

	ctypes "github.com/heliosprotocol/go-helios/core/types"
)

// Clock abstracts "now, in seconds since the UNIX epoch" so the historical
// ring and chronological window logic can be driven deterministically in
// tests, the way mive's handler takes an injected backend rather than
// reaching for global state.
type Clock interface {
	Now() ctypes.Timestamp
}

// SystemClock reports the real wall clock.
type SystemClock struct{}

func (SystemClock) Now() ctypes.Timestamp {
	return ctypes.Timestamp(time.Now().Unix())
}

// FakeClock is a manually-advanced clock for tests, matching the
// scenarios in the testable-properties section: the suite freezes it at a
// literal timestamp and steps it forward explicitly.
type FakeClock struct {
	mu  sync.Mutex
	now ctypes.Timestamp
}

// NewFakeClock returns a FakeClock frozen at t.
func NewFakeClock(t ctypes.Timestamp) *FakeClock {
	return &FakeClock{now: t}
}

func (c *FakeClock) Now() ctypes.Timestamp {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Set moves the clock to t directly, including backwards.
func (c *FakeClock) Set(t ctypes.Timestamp) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// Advance moves the clock forward by d seconds.
func (c *FakeClock) Advance(d ctypes.Timestamp) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now += d
}
