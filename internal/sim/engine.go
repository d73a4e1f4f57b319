package sim

import (
	"sync"
	"time"

	"github.com/pr-poehali-dev/capyrun/internal/config"
	"github.com/pr-poehali-dev/capyrun/internal/core"
)

// Engine wraps the Machine with the concurrency and clock model: one mutex
// serializes ticks and commands (no tick and no command ever interleave
// mid-mutation), and the clock is started on entering Running and
// unconditionally stopped on leaving it.
//
// Commands are fire-and-forget and always succeed; when the current phase
// disallows one, it is a defined no-op, not an error.
type Engine struct {
	mu     sync.Mutex
	m      *Machine
	tick   time.Duration
	clock  *Clock
	closed bool
}

// NewEngine creates an engine for the given tunables and runtime.
func NewEngine(cfg config.Config, rt core.RuntimeConfig) *Engine {
	rate := rt.TickRate
	if rate <= 0 {
		rate = core.DefaultRuntimeConfig().TickRate
	}
	return &Engine{
		m:    NewMachine(cfg, float64(rt.ScreenW)),
		tick: time.Second / time.Duration(rate),
	}
}

// Start begins a run and starts the clock. No-op unless Idle.
func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}
	if !e.m.Start() {
		return
	}
	e.clock = NewClock(e.tick, e.onTick)
	e.clock.Start()
}

// Jump forwards the jump command. No-op outside Running or while airborne.
func (e *Engine) Jump() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.m.Jump()
}

// Reset returns to Idle with initial values and releases the clock.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopClockLocked()
	e.m.Reset()
}

// Snapshot returns a consistent copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.m.Snapshot()
}

// Close tears the engine down, releasing the clock. The final state stays
// readable through Snapshot, but no further run can be started.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopClockLocked()
	e.closed = true
}

// onTick is the clock callback. The phase check inside Machine.Tick makes a
// tick that raced the clock stop a no-op, so no tick can mutate state after
// the engine left Running.
func (e *Engine) onTick() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.m.Tick() {
		return
	}
	if e.m.Phase() == PhaseGameOver {
		e.stopClockLocked()
	}
}

// stopClockLocked releases the clock if one is running. Callers hold e.mu;
// Clock.Stop is non-blocking, so this is safe from inside onTick.
func (e *Engine) stopClockLocked() {
	if e.clock != nil {
		e.clock.Stop()
		e.clock = nil
	}
}
