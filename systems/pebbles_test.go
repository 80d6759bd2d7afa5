package systems

import (
	"math"
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/chisel/components"
)

// singlePebblePos returns the position of the only live pebble.
func singlePebblePos(t *testing.T, s *PebbleSystem) components.Position {
	t.Helper()
	var got components.Position
	found := 0
	s.Each(func(pos components.Position, _ components.Tint) {
		got = pos
		found++
	})
	if found != 1 {
		t.Fatalf("live pebbles = %d, want 1", found)
	}
	return got
}

func TestPebbleFallsAndLands(t *testing.T) {
	world := ecs.NewWorld()
	s := NewPebbleSystem(world, PebbleParams{Gravity: 0.02, Friction: 0.9})

	s.Spawn(0.5, 0.5, 0, 0, components.Tint{A: 255})

	prevY := float32(0.5)
	for i := 0; i < 200; i++ {
		s.Step()
		if s.Count() == 0 {
			break
		}
		pos := singlePebblePos(t, s)
		if pos.Y >= prevY {
			t.Fatalf("tick %d: y = %v did not decrease from %v", i, pos.Y, prevY)
		}
		if pos.Y < 0 {
			t.Fatalf("tick %d: y = %v went negative", i, pos.Y)
		}
		prevY = pos.Y
	}

	if s.Count() != 0 {
		t.Fatalf("pebble never landed, count = %d", s.Count())
	}
	if s.Landed() != 1 || s.Spawned() != 1 {
		t.Errorf("landed = %d, spawned = %d, want 1 and 1", s.Landed(), s.Spawned())
	}
}

func TestPebbleLandsOnTickReachingFloor(t *testing.T) {
	world := ecs.NewWorld()
	s := NewPebbleSystem(world, PebbleParams{Gravity: 0.02, Friction: 0.9})

	// One tick of gravity overshoots the floor; y clamps to 0 and the
	// pebble is removed within the same tick.
	s.Spawn(0.5, 0.01, 0, 0, components.Tint{A: 255})

	landed := s.Step()
	if landed != 1 {
		t.Fatalf("landed = %d, want 1", landed)
	}
	if s.Count() != 0 {
		t.Fatalf("count = %d after landing, want 0", s.Count())
	}
}

func TestPebbleBouncesOffRightWall(t *testing.T) {
	world := ecs.NewWorld()
	// Friction 1 and zero gravity keep the numbers exact.
	s := NewPebbleSystem(world, PebbleParams{Gravity: 0, Friction: 1})

	s.Spawn(0.99, 0.5, 0.02, 0.01, components.Tint{A: 255})

	s.Step()
	pos := singlePebblePos(t, s)
	if math.Abs(float64(pos.X-0.97)) > 1e-6 {
		t.Errorf("x after bounce = %v, want 0.97", pos.X)
	}

	// Velocity stays reflected: the next step moves further left.
	s.Step()
	pos = singlePebblePos(t, s)
	if math.Abs(float64(pos.X-0.95)) > 1e-6 {
		t.Errorf("x after second step = %v, want 0.95", pos.X)
	}
}

func TestPebbleBounceScalesByFriction(t *testing.T) {
	world := ecs.NewWorld()
	s := NewPebbleSystem(world, PebbleParams{Gravity: 0, Friction: 0.9})

	// Friction applies before the wall check: vx becomes 0.018, the
	// updated x would be 1.008, so the reflected step lands at 0.972.
	s.Spawn(0.99, 0.5, 0.02, 0.01, components.Tint{A: 255})

	s.Step()
	pos := singlePebblePos(t, s)
	if math.Abs(float64(pos.X-0.972)) > 1e-6 {
		t.Errorf("x after bounce = %v, want 0.972", pos.X)
	}
}

func TestPebbleBouncesOffLeftWall(t *testing.T) {
	world := ecs.NewWorld()
	s := NewPebbleSystem(world, PebbleParams{Gravity: 0, Friction: 1})

	s.Spawn(0.01, 0.5, -0.02, 0.01, components.Tint{A: 255})

	s.Step()
	pos := singlePebblePos(t, s)
	if math.Abs(float64(pos.X-0.03)) > 1e-6 {
		t.Errorf("x after bounce = %v, want 0.03", pos.X)
	}
}

func TestPebblesAreIndependent(t *testing.T) {
	world := ecs.NewWorld()
	s := NewPebbleSystem(world, PebbleParams{Gravity: 0.02, Friction: 0.9})

	// A pebble about to land must not disturb one still falling.
	s.Spawn(0.2, 0.01, 0, 0, components.Tint{A: 255})
	s.Spawn(0.8, 0.9, 0, 0, components.Tint{A: 255})

	s.Step()
	if s.Count() != 1 {
		t.Fatalf("count = %d, want 1 (one landed, one aloft)", s.Count())
	}
	pos := singlePebblePos(t, s)
	if pos.X != 0.8 {
		t.Errorf("surviving pebble x = %v, want 0.8", pos.X)
	}
	if pos.Y <= 0 || pos.Y >= 0.9 {
		t.Errorf("surviving pebble y = %v, want between 0 and 0.9", pos.Y)
	}
}
