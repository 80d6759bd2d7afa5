// Package components defines the data attached to pebble entities.
package components

// Position is a pebble's position in normalized widget space.
// X spans [0,1] between the side walls; Y is 0 at the floor, growing upward.
type Position struct {
	X, Y float32
}

// Velocity is a pebble's velocity in normalized widget units per tick.
type Velocity struct {
	X, Y float32
}

// Tint is the RGBA color a pebble carried out of the boulder. It is
// sampled once at dislodge time and never changes.
type Tint struct {
	R, G, B, A uint8
}
