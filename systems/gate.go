// Package systems contains the erosion and pebble simulation logic.
package systems

import "math"

// Gate decides whether a poke force is strong enough to dislodge a texel,
// and caps the resulting pebble speed.
type Gate struct {
	MinVelocity float32 // magnitudes below this do not dislodge
	MaxVelocity float32 // faster vectors are scaled down to this
}

// Evaluate returns the clamped velocity and whether the input dislodges
// anything. Vectors above MaxVelocity keep their direction but have their
// magnitude scaled down to exactly MaxVelocity.
func (g Gate) Evaluate(vx, vy float32) (float32, float32, bool) {
	mag := float32(math.Hypot(float64(vx), float64(vy)))
	if mag < g.MinVelocity {
		return 0, 0, false
	}
	if mag > g.MaxVelocity {
		scale := g.MaxVelocity / mag
		vx *= scale
		vy *= scale
	}
	return vx, vy, true
}
