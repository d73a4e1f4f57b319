// Package tui provides the Bubble Tea integration for the runner. It
// handles the terminal loop, key-to-command mapping, and rendering; the
// simulation itself ticks on its own clock inside sim.Engine.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg asks the model to redraw from the latest engine snapshot. The
// redraw cadence is independent of the simulation clock: the renderer only
// ever reads complete snapshots, never partial state.
type FrameMsg time.Time

// frameCmd returns a command that sends frame messages at the given rate.
func frameCmd(rate int) tea.Cmd {
	if rate <= 0 {
		rate = 60
	}
	interval := time.Second / time.Duration(rate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
