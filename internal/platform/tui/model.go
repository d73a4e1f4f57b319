package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pr-poehali-dev/capyrun/internal/config"
	"github.com/pr-poehali-dev/capyrun/internal/core"
	"github.com/pr-poehali-dev/capyrun/internal/sim"
	"github.com/pr-poehali-dev/capyrun/internal/storage"
)

// Model is the Bubble Tea model for the runner. It owns no simulation
// state: every frame it asks the engine for a snapshot and key presses
// are forwarded as commands. The engine ticks on its own clock.
type Model struct {
	engine   *sim.Engine
	screen   *core.Screen
	store    *storage.Store
	gameCfg  config.Config
	runtime  core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	runSaved bool // Whether the finished run has been written to storage
	quitting bool
}

// NewModel creates a new Bubble Tea model around an existing engine.
func NewModel(engine *sim.Engine, store *storage.Store, gameCfg config.Config, rt core.RuntimeConfig) Model {
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultRuntimeConfig().TickRate
	}
	return Model{
		engine:  engine,
		screen:  core.NewScreen(rt.ScreenW, rt.ScreenH),
		store:   store,
		gameCfg: gameCfg,
		runtime: rt,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
}

// Init starts the redraw loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame()
	}

	return m, nil
}

// handleKey maps key presses to engine commands. The engine decides
// whether a command applies in the current phase; the model never
// second-guesses it except to gate restart on the visible game-over.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	snap := m.engine.Snapshot()

	switch m.keys.ActionFor(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionJump:
		if !snap.Running && !snap.GameOver {
			m.engine.Start()
		} else {
			m.engine.Jump()
		}

	case core.ActionStart:
		m.engine.Start()

	case core.ActionRestart:
		if snap.GameOver {
			m.engine.Reset()
			m.engine.Start()
			m.runSaved = false
		}
	}

	return m, nil
}

// handleResize adapts the screen buffer to the terminal size. The
// simulation world keeps its original width so obstacle spacing stays
// stable mid-run.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleFrame saves a finished run once, then schedules the next redraw.
func (m Model) handleFrame() (tea.Model, tea.Cmd) {
	snap := m.engine.Snapshot()

	if snap.GameOver && !m.runSaved {
		if m.store != nil {
			tick := time.Second / time.Duration(m.runtime.TickRate)
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveRun(storage.RunEntry{
				Score:     snap.Score,
				Ticks:     snap.Ticks,
				Duration:  time.Duration(snap.Ticks) * tick,
				Milestone: snap.MilestoneReached,
			})
		}
		m.runSaved = true
	}

	return m, frameCmd(m.runtime.TickRate)
}

// View renders the latest snapshot to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawFrame(m.screen, m.engine.Snapshot(), m.gameCfg)

	helpView := m.help.ShortHelpView(m.keys.ShortHelp())
	return RenderScreen(m.screen) + "\n" + helpView
}

// Run creates an engine for the given config and runs the Bubble Tea
// program until the player quits. The engine's clock goroutine is
// released on return.
func Run(gameCfg config.Config, store *storage.Store, rt core.RuntimeConfig) error {
	engine := sim.NewEngine(gameCfg, rt)
	defer engine.Close()

	model := NewModel(engine, store, gameCfg, rt)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
