// Package config provides YAML-based game configuration loading for the
// runner.
package config

// Config contains all tunables for a run.
type Config struct {
	Physics   Physics   `yaml:"physics"`
	Obstacles Obstacles `yaml:"obstacles"`
	Player    Player    `yaml:"player"`
	Score     Score     `yaml:"score"`
}

// Physics defines per-tick kinematics. The vertical axis points up: the
// ground is 0, airborne positions are positive, gravity is negative.
type Physics struct {
	Gravity     float64 `yaml:"gravity"`      // Per-tick velocity change, negative (downward)
	JumpImpulse float64 `yaml:"jump_impulse"` // Velocity set on jump, positive (upward)
}

// Obstacles defines obstacle geometry and scroll behavior. All obstacles
// share one fixed shape and one fixed scroll speed.
type Obstacles struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Speed       float64 `yaml:"speed"`        // Cells scrolled left per tick
	MinGap      float64 `yaml:"min_gap"`      // Minimum horizontal gap between spawns
	SpawnMargin float64 `yaml:"spawn_margin"` // How far past the right edge new obstacles appear
}

// Player defines the character's fixed footprint.
type Player struct {
	X            float64 `yaml:"x"`      // Fixed left edge of the character
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundOffset int     `yaml:"ground_offset"` // Rows between screen bottom and the ground line
}

// Score defines score accrual and the milestone latch.
type Score struct {
	Rate      float64 `yaml:"rate"`      // Points accrued per tick (fractional, floored for display)
	Milestone int     `yaml:"milestone"` // Displayed score at which the milestone latches
}
