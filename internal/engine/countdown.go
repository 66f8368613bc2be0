package engine

import (
	"sync"
	"time"
)

// Countdown is a single-fire timer with a race-free Stop: once Stop returns,
// the callback either already ran or never will.
type Countdown struct {
	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
}

// NewCountdown arms a countdown that invokes fn after d.
func NewCountdown(d time.Duration, fn func()) *Countdown {
	c := &Countdown{}
	c.timer = time.AfterFunc(d, func() {
		c.mu.Lock()
		if c.stopped {
			c.mu.Unlock()
			return
		}
		c.stopped = true
		c.mu.Unlock()
		fn()
	})
	return c
}

// Stop cancels the countdown. Safe to call more than once.
func (c *Countdown) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopped {
		return
	}
	c.stopped = true
	c.timer.Stop()
}
