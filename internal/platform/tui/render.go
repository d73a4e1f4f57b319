package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pr-poehali-dev/capyrun/internal/config"
	"github.com/pr-poehali-dev/capyrun/internal/core"
	"github.com/pr-poehali-dev/capyrun/internal/sim"
)

// Visual characters for rendering
const (
	capyBody     = '█'
	capyHead     = '◆'
	capyLeg      = '╱'
	obstacleChar = '▓'
	groundChar   = '═'
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorBrown:        lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
}

// DrawFrame renders a simulation snapshot into the screen buffer.
// The snapshot's vertical axis points up from the ground; the screen's
// points down from the top row, so rows are computed relative to the
// ground line.
func DrawFrame(dst *core.Screen, snap sim.Snapshot, cfg config.Config) {
	dst.Clear()

	groundY := dst.Height() - cfg.Player.GroundOffset

	// Ground
	dst.DrawHLine(0, groundY, dst.Width(), groundChar, core.ColorGray)

	for _, o := range snap.Obstacles {
		drawObstacle(dst, o, groundY)
	}

	drawCapy(dst, snap, cfg, groundY)

	// HUD
	dst.DrawTextColor(2, 0, fmt.Sprintf(" Score: %d ", snap.Score), core.ColorBrightWhite)
	if snap.MilestoneReached {
		banner := fmt.Sprintf(" ★ %d! ", cfg.Score.Milestone)
		dst.DrawTextColor(dst.Width()-len(banner)-2, 0, banner, core.ColorBrightYellow)
	}

	switch {
	case snap.GameOver:
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score))
	case !snap.Running:
		drawCenteredMessage(dst, "CAPY RUN", "Press Enter to start")
	}
}

// drawCapy renders the capybara sprite at its current height.
//
//	◆█
//	███
//	╱ ╱
func drawCapy(dst *core.Screen, snap sim.Snapshot, cfg config.Config, groundY int) {
	x := int(math.Round(cfg.Player.X))
	h := int(math.Round(cfg.Player.Height))
	lift := int(math.Round(snap.CharacterY))
	baseY := groundY - h - lift

	dst.SetCell(x+1, baseY, capyHead, core.ColorBrown)
	dst.SetCell(x+2, baseY, capyBody, core.ColorBrown)

	dst.SetCell(x, baseY+1, capyBody, core.ColorBrown)
	dst.SetCell(x+1, baseY+1, capyBody, core.ColorBrown)
	dst.SetCell(x+2, baseY+1, capyBody, core.ColorBrown)

	if snap.CharacterY > 0 {
		// Airborne, legs tucked
		dst.SetCell(x+1, baseY+2, capyLeg, core.ColorBrown)
	} else {
		dst.SetCell(x, baseY+2, capyLeg, core.ColorBrown)
		dst.SetCell(x+2, baseY+2, capyLeg, core.ColorBrown)
	}
}

// drawObstacle renders a single ground-anchored obstacle.
func drawObstacle(dst *core.Screen, o sim.Obstacle, groundY int) {
	x := int(math.Round(o.X))
	w := int(math.Round(o.Width))
	h := int(math.Round(o.Height))
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			dst.SetCell(x+dx, groundY-h+dy, obstacleChar, core.ColorGreen)
		}
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColor(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
