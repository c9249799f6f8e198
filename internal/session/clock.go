package session

import (
	"sync"
	"time"
)

// Clock is a cancellable one-second countdown bound to a session. The tick
// interval is injected so tests can run at millisecond speed.
type Clock struct {
	mu        sync.Mutex
	remaining int
	stopCh    chan struct{}
	running   bool
	stopped   bool
	expired   bool
}

func NewClock(durationSec int) *Clock {
	return &Clock{remaining: durationSec}
}

// Start begins ticking. onTick receives the new remaining value after each
// decrement; onExpire fires exactly once when remaining hits zero, after which
// the clock stops itself. Start on a running or stopped clock is a no-op.
func (c *Clock) Start(interval time.Duration, onTick func(remaining int), onExpire func()) {
	c.mu.Lock()
	if c.running || c.stopped {
		c.mu.Unlock()
		return
	}
	c.running = true
	c.stopCh = make(chan struct{})
	stopCh := c.stopCh
	c.mu.Unlock()

	go c.run(interval, stopCh, onTick, onExpire)
}

func (c *Clock) run(interval time.Duration, stopCh chan struct{}, onTick func(int), onExpire func()) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-stopCh:
			return
		case <-t.C:
			c.mu.Lock()
			if c.stopped || c.expired {
				c.mu.Unlock()
				return
			}
			if c.remaining > 0 {
				c.remaining--
			}
			rem := c.remaining
			expire := rem == 0
			if expire {
				c.expired = true
			}
			c.mu.Unlock()

			// Callbacks run outside the lock: they commonly take the runner
			// lock, and runner ops call Stop.
			if onTick != nil {
				onTick(rem)
			}
			if expire {
				if onExpire != nil {
					onExpire()
				}
				return
			}
		}
	}
}

// Stop halts ticking. Safe to call repeatedly and after expiry; adapters call
// it on finish and on unmount so no ticker fires into a discarded session.
func (c *Clock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopped {
		return
	}
	c.stopped = true
	if c.stopCh != nil {
		close(c.stopCh)
	}
}

// Remaining reports the current countdown value.
func (c *Clock) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}
