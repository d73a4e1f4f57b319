package sim

import (
	"github.com/pr-poehali-dev/capyrun/internal/config"
)

// Machine is the game state machine: it owns the authoritative simulation
// state and orchestrates physics, obstacles, and collision each tick.
//
// Phases: Idle -> Running (Start) -> GameOver (collision) -> Idle (Reset).
// Commands issued in a phase that does not accept them are silent no-ops;
// the transition table is total, so the machine cannot reach an
// inconsistent state.
//
// Machine is not safe for concurrent use; the Engine serializes access.
type Machine struct {
	cfg   config.Config
	phase Phase

	y, v      float64        // Character height above ground, vertical velocity
	field     *obstacleField
	score     float64        // Exact accumulator; display shows the floor
	milestone bool
	ticks     int
}

// NewMachine creates a machine in the Idle phase for a world of the given
// width (obstacles spawn just past it).
func NewMachine(cfg config.Config, worldW float64) *Machine {
	return &Machine{
		cfg:   cfg,
		field: newObstacleField(cfg.Obstacles, worldW),
	}
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase {
	return m.phase
}

// Start resets all state to initial values and begins a run. Only valid in
// Idle; otherwise a no-op. Returns whether the transition happened.
func (m *Machine) Start() bool {
	if m.phase != PhaseIdle {
		return false
	}
	m.clear()
	m.phase = PhaseRunning
	return true
}

// Jump applies the jump impulse if the character is at rest on the ground.
// Outside Running, or while airborne, it is a no-op. There are no side
// effects beyond the velocity change.
func (m *Machine) Jump() {
	if m.phase != PhaseRunning {
		return
	}
	m.v = applyJump(m.y, m.v, m.cfg.Physics.JumpImpulse)
}

// Reset unconditionally returns to Idle with initial values, clearing the
// milestone latch.
func (m *Machine) Reset() {
	m.clear()
	m.phase = PhaseIdle
}

// clear restores all simulation fields to their initial values.
func (m *Machine) clear() {
	m.y = 0
	m.v = 0
	m.field.reset()
	m.score = 0
	m.milestone = false
	m.ticks = 0
}

// Tick advances the simulation by one fixed step: physics, then obstacles,
// then collision, in that order. Only processed in Running; returns whether
// the tick was processed. On collision the machine transitions to GameOver
// and freezes: score, position, and obstacles are retained for display and
// no longer change.
func (m *Machine) Tick() bool {
	if m.phase != PhaseRunning {
		return false
	}
	m.ticks++

	m.y, m.v = integrate(m.y, m.v, m.cfg.Physics.Gravity)
	m.field.step()

	if collides(characterBox(m.cfg.Player, m.y), m.field.items) {
		m.phase = PhaseGameOver
		return true
	}

	m.score += m.cfg.Score.Rate
	if !m.milestone && int(m.score) >= m.cfg.Score.Milestone {
		m.milestone = true
	}
	return true
}

// Snapshot returns a consistent copy of the current state. The obstacle
// slice is copied, so the caller may hold the snapshot across ticks.
func (m *Machine) Snapshot() Snapshot {
	return Snapshot{
		Running:           m.phase == PhaseRunning,
		GameOver:          m.phase == PhaseGameOver,
		Score:             int(m.score),
		CharacterY:        m.y,
		CharacterVelocity: m.v,
		Obstacles:         m.field.snapshot(),
		MilestoneReached:  m.milestone,
		Ticks:             m.ticks,
	}
}
