package sim

import "github.com/pr-poehali-dev/capyrun/internal/config"

// obstacleField advances, recycles, and spawns obstacles. All obstacles
// share one fixed shape and scroll left at one fixed speed, so the slice
// stays ordered by X ascending (spawn order) without ever sorting.
type obstacleField struct {
	cfg    config.Obstacles
	spawnX float64 // Fixed spawn position, past the right screen edge
	items  []Obstacle
}

func newObstacleField(cfg config.Obstacles, screenW float64) *obstacleField {
	return &obstacleField{
		cfg:    cfg,
		spawnX: screenW + cfg.SpawnMargin,
		items:  make([]Obstacle, 0, 8),
	}
}

// reset clears all obstacles, keeping the allocation.
func (f *obstacleField) reset() {
	f.items = f.items[:0]
}

// step runs one tick of the obstacle pipeline: shift left, cull off-screen,
// then spawn at most one new obstacle. Culling and spawning run every tick;
// the collision check that may end the run happens afterwards, on the
// post-spawn set.
func (f *obstacleField) step() {
	for i := range f.items {
		f.items[i].X -= f.cfg.Speed
	}

	// Cull obstacles fully past the left edge (x + width <= 0)
	live := f.items[:0]
	for _, o := range f.items {
		if o.X+o.Width > 0 {
			live = append(live, o)
		}
	}
	f.items = live

	if f.shouldSpawn() {
		f.items = append(f.items, Obstacle{
			X:      f.spawnX,
			Width:  f.cfg.Width,
			Height: f.cfg.Height,
		})
	}
}

// shouldSpawn reports whether a new obstacle is due: the field is empty, or
// the rightmost obstacle has traveled past the trigger threshold. One spawn
// per tick plus the threshold guarantees at least MinGap between
// consecutive obstacles.
func (f *obstacleField) shouldSpawn() bool {
	if len(f.items) == 0 {
		return true
	}
	rightmost := f.items[len(f.items)-1]
	return rightmost.X < f.spawnX-f.cfg.MinGap
}

// snapshot returns a copy of the current obstacle slice.
func (f *obstacleField) snapshot() []Obstacle {
	out := make([]Obstacle, len(f.items))
	copy(out, f.items)
	return out
}
