package core

// Action represents a semantic game action, abstracted from physical key
// presses. The platform maps keys (or an SSH client's keys) to actions; the
// simulation only ever sees commands derived from them. A single jump key
// event maps to exactly one jump command.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, W, Up - jump (also starts a run from the title)
	ActionStart          // Enter - start a run
	ActionRestart        // R - reset and start again after game over
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionStart:
		return "Start"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
