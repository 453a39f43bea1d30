package dragon

import (
	"math"

	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// Entity is the dragon the player steers.
type Entity struct {
	WorldX     int     // Distance traveled, one per simulation step
	ScreenY    int     // Row on screen, never negative; past the bottom is a crash
	LaneOffset int     // Column the entity is drawn in
	Velocity   float64 // Vertical velocity, positive is down
}

// NewEntity returns an entity at the spawn position in the given lane.
func NewEntity(lane int) Entity {
	return Entity{LaneOffset: lane}
}

// WorldColumn is the world coordinate of the column the entity occupies.
// Obstacles are drawn relative to WorldX, so the entity sits at
// WorldX + LaneOffset in world space.
func (e Entity) WorldColumn() int {
	return e.WorldX + e.LaneOffset
}

// Step applies one simulation step of gravity and forward motion.
func (e *Entity) Step(p config.Physics) {
	if e.Velocity < p.MaxFallSpeed {
		e.Velocity = math.Min(e.Velocity+p.Gravity, p.MaxFallSpeed)
	}
	e.ScreenY += int(math.Round(e.Velocity))
	if e.ScreenY < 0 {
		e.ScreenY = 0
	}
	e.WorldX++
}

// Boost flaps: velocity is replaced by the boost velocity.
func (e *Entity) Boost(p config.Physics) {
	e.Velocity = p.BoostVelocity
}

// ShiftLane moves the entity delta columns, kept within [0, width-1].
func (e *Entity) ShiftLane(delta, width int) {
	e.LaneOffset = core.Clamp(e.LaneOffset+delta, 0, width-1)
}
