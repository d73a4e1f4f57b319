package sim

import (
	"sync"
	"time"
)

// Clock invokes a callback at a fixed cadence from its own goroutine. It is
// a scoped resource: the engine starts one on entering Running and stops it
// on leaving Running, so nothing keeps ticking after a run ends.
type Clock struct {
	interval time.Duration
	fn       func()

	once sync.Once
	stop chan struct{}
	done chan struct{}
}

// NewClock creates a clock firing fn every interval once started.
func NewClock(interval time.Duration, fn func()) *Clock {
	return &Clock{
		interval: interval,
		fn:       fn,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the tick goroutine.
func (c *Clock) Start() {
	go c.run()
}

// Stop signals the clock to stop. Idempotent and non-blocking, so it is
// safe to call from inside the callback itself (the engine does exactly
// that when a collision ends the run). A callback already dispatched when
// Stop is issued may still complete; callers that need a hard cutoff must
// guard inside the callback, which the engine does via its phase check.
func (c *Clock) Stop() {
	c.once.Do(func() { close(c.stop) })
}

// Done returns a channel closed once the tick goroutine has fully exited.
func (c *Clock) Done() <-chan struct{} {
	return c.done
}

func (c *Clock) run() {
	defer close(c.done)

	t := time.NewTicker(c.interval)
	defer t.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-t.C:
			// Re-check stop so a tick racing the stop signal is dropped.
			select {
			case <-c.stop:
				return
			default:
			}
			c.fn()
		}
	}
}
