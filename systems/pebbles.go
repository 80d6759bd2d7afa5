package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/chisel/components"
)

// PebbleParams holds the falling-motion constants.
type PebbleParams struct {
	Gravity  float32 // vertical velocity lost per tick
	Friction float32 // per-tick multiplicative damping
}

// PebbleSystem owns every dislodged pebble and advances them under
// gravity at a fixed tick rate. Pebbles fall independently and never
// interact with each other.
type PebbleSystem struct {
	world  *ecs.World
	mapper *ecs.Map3[components.Position, components.Velocity, components.Tint]
	filter *ecs.Filter3[components.Position, components.Velocity, components.Tint]
	params PebbleParams

	alive   int
	spawned int
	landed  int
}

// NewPebbleSystem creates a pebble system backed by the given ECS world.
func NewPebbleSystem(world *ecs.World, params PebbleParams) *PebbleSystem {
	return &PebbleSystem{
		world:  world,
		mapper: ecs.NewMap3[components.Position, components.Velocity, components.Tint](world),
		filter: ecs.NewFilter3[components.Position, components.Velocity, components.Tint](world),
		params: params,
	}
}

// Spawn creates a pebble at a widget-space position with an already gated
// velocity and the color it carried out of the boulder.
func (s *PebbleSystem) Spawn(x, y, vx, vy float32, tint components.Tint) ecs.Entity {
	pos := components.Position{X: x, Y: y}
	vel := components.Velocity{X: vx, Y: vy}
	entity := s.mapper.NewEntity(&pos, &vel, &tint)
	s.alive++
	s.spawned++
	return entity
}

// Step advances every pebble by one simulation tick and returns how many
// landed. Friction damps both velocity components, gravity pulls vy down,
// and vx reflects when the updated x would exit [0,1]. A pebble whose
// post-step y reaches the floor is collected during the query and removed
// only after iteration completes, so the collection is never mutated
// mid-iteration.
func (s *PebbleSystem) Step() int {
	var landed []ecs.Entity

	query := s.filter.Query()
	for query.Next() {
		pos, vel, _ := query.Get()

		vel.X *= s.params.Friction
		vel.Y *= s.params.Friction
		vel.Y -= s.params.Gravity

		// Wall bounce on the position check, not continuous collision.
		if next := pos.X + vel.X; next < 0 || next > 1 {
			vel.X = -vel.X
		}

		pos.X += vel.X
		pos.Y += vel.Y
		if pos.Y <= 0 {
			pos.Y = 0
			landed = append(landed, query.Entity())
		}
	}

	for _, entity := range landed {
		s.mapper.Remove(entity)
	}
	s.alive -= len(landed)
	s.landed += len(landed)
	return len(landed)
}

// Each calls fn for every live pebble. Iteration order is unspecified.
func (s *PebbleSystem) Each(fn func(pos components.Position, tint components.Tint)) {
	query := s.filter.Query()
	for query.Next() {
		pos, _, tint := query.Get()
		fn(*pos, *tint)
	}
}

// Count returns the number of pebbles currently in flight.
func (s *PebbleSystem) Count() int { return s.alive }

// Spawned returns the total number of pebbles ever dislodged.
func (s *PebbleSystem) Spawned() int { return s.spawned }

// Landed returns the total number of pebbles that reached the floor.
func (s *PebbleSystem) Landed() int { return s.landed }
