// Package sim implements the runner's fixed-timestep simulation: physics
// integration, obstacle scrolling, collision detection, and the game state
// machine that orchestrates them. The package is pure game logic with no
// rendering or terminal dependencies.
package sim

// Phase is the state machine's current phase.
type Phase int

const (
	// PhaseIdle is the initial phase: no physics, no spawns, no score.
	PhaseIdle Phase = iota
	// PhaseRunning means the simulation is actively ticking.
	PhaseRunning
	// PhaseGameOver is terminal until an explicit reset; all state is frozen
	// so the final frame stays on screen.
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseRunning:
		return "Running"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Obstacle is a ground-anchored box scrolling in from the right. Width and
// height are fixed at spawn; only X changes, decreasing every tick.
type Obstacle struct {
	X      float64
	Width  float64
	Height float64
}

// Snapshot is a consistent copy of the simulation state, replaced wholesale
// each tick or command. The renderer only ever sees complete snapshots.
type Snapshot struct {
	Running           bool
	GameOver          bool
	Score             int     // Displayed score: the floored accumulator
	CharacterY        float64 // Height above the ground; 0 = grounded
	CharacterVelocity float64 // Positive = upward
	Obstacles         []Obstacle
	MilestoneReached  bool // Latched once Score first reaches the milestone
	Ticks             int
}
