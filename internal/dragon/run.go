package dragon

import (
	"github.com/google/uuid"

	"github.com/vovakirdan/flappy-dragon/internal/config"
)

// ObstacleCount is the number of obstacles in flight. Initial spacing is a
// quarter screen and replacements land one screen ahead, so with four the
// queue stays in world order.
const ObstacleCount = 4

// Run is the state of one attempt: the entity, the obstacles in flight
// (oldest first), the score and the sub-step time budget.
type Run struct {
	ID        string
	Entity    Entity
	Obstacles []Obstacle
	Score     int

	accumulator float64 // Milliseconds banked toward the next step
	cfg         config.DragonConfig
	gen         *Generator
}

// NewRun starts a fresh run: score and timer at zero, entity at spawn and
// the obstacle queue filled at quarter-screen spacing starting one screen ahead.
func NewRun(cfg config.DragonConfig, gen *Generator) *Run {
	r := &Run{
		ID:        uuid.NewString(),
		Entity:    NewEntity(0),
		Obstacles: make([]Obstacle, ObstacleCount),
		cfg:       cfg,
		gen:       gen,
	}

	w := cfg.Screen.Width
	for i := range r.Obstacles {
		r.Obstacles[i] = gen.Create(w+i*w/4, i)
	}
	return r
}

// Accumulate banks frame time and reports whether a simulation step is due.
// When the threshold is crossed the bank is emptied; excess time is dropped,
// so at most one step runs per frame.
func (r *Run) Accumulate(elapsedMs float64) bool {
	r.accumulator += elapsedMs
	if r.accumulator > r.cfg.Timing.StepMs {
		r.accumulator = 0
		return true
	}
	return false
}

// Advance performs one simulation step: physics, scoring and the failure
// check. It returns true when the run has crashed.
func (r *Run) Advance() bool {
	r.Entity.Step(r.cfg.Physics)

	// Passing the head obstacle scores it and queues a replacement one
	// screen ahead, keeping the queue length constant.
	if r.Entity.WorldX > r.Obstacles[0].WorldX {
		r.Score++
		n := copy(r.Obstacles, r.Obstacles[1:])
		r.Obstacles[n] = r.gen.Create(
			r.Entity.WorldX+r.cfg.Screen.Width,
			r.Score+r.cfg.Obstacles.Lookahead,
		)
	}

	return r.Crashed()
}

// Crashed reports whether the entity fell past the bottom of the screen or
// hit any obstacle in flight.
func (r *Run) Crashed() bool {
	if r.Entity.ScreenY > r.cfg.Screen.Height {
		return true
	}
	for _, o := range r.Obstacles {
		if o.Collides(r.Entity) {
			return true
		}
	}
	return false
}
