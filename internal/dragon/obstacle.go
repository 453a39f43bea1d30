package dragon

import (
	"github.com/vovakirdan/flappy-dragon/internal/config"
)

// Source is the random draw used for gap placement. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Obstacle is a wall with a gap, anchored at a world column.
// Obstacles are immutable once created.
type Obstacle struct {
	WorldX    int // World column of the wall
	GapCenter int // Row at the middle of the gap
	GapSize   int // Rows open, before halving
}

// GapBounds returns the first and last open rows of the gap (inclusive).
func (o Obstacle) GapBounds() (top, bottom int) {
	half := o.GapSize / 2
	return o.GapCenter - half, o.GapCenter + half
}

// Blocks reports whether row y is wall rather than gap.
func (o Obstacle) Blocks(y int) bool {
	top, bottom := o.GapBounds()
	return y < top || y > bottom
}

// Collides reports whether the entity hits this obstacle. Collision is only
// possible on the exact step the entity's world column equals WorldX.
func (o Obstacle) Collides(e Entity) bool {
	return e.WorldColumn() == o.WorldX && o.Blocks(e.ScreenY)
}

// Generator creates obstacles from an injected random source.
type Generator struct {
	src Source
	cfg config.Obstacles
}

// NewGenerator creates a generator drawing gap centers from src.
func NewGenerator(src Source, cfg config.Obstacles) *Generator {
	return &Generator{src: src, cfg: cfg}
}

// Create returns a new obstacle at worldX. The gap center is drawn uniformly
// from [GapCenterMin, GapCenterMax) and the gap shrinks with difficulty.
func (g *Generator) Create(worldX, difficulty int) Obstacle {
	span := g.cfg.GapCenterMax - g.cfg.GapCenterMin
	return Obstacle{
		WorldX:    worldX,
		GapCenter: g.cfg.GapCenterMin + g.src.Intn(span),
		GapSize:   g.cfg.GapSize(difficulty),
	}
}
