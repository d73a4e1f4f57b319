package sim

import (
	"github.com/pr-poehali-dev/capyrun/internal/config"
	"github.com/pr-poehali-dev/capyrun/internal/core"
)

// characterBox returns the character's bounding box for the given height
// above the ground. The horizontal footprint is fixed.
func characterBox(p config.Player, y float64) core.RectF {
	return core.NewRectF(p.X, y, p.Width, p.Height)
}

// box returns the obstacle's bounding box. Obstacles are anchored to the
// ground: their vertical span is [0, height] regardless of X.
func (o Obstacle) box() core.RectF {
	return core.NewRectF(o.X, 0, o.Width, o.Height)
}

// collides reports whether the character box overlaps any obstacle.
// Overlap is strict: boxes that merely touch along an edge do not collide.
// Short-circuits on the first hit; the result is order-independent.
func collides(character core.RectF, obstacles []Obstacle) bool {
	for _, o := range obstacles {
		if character.Overlaps(o.box()) {
			return true
		}
	}
	return false
}
