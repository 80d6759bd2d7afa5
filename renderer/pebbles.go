package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/chisel/components"
	"github.com/pthm-cable/chisel/systems"
)

// PebbleRenderer draws falling pebbles as texel-sized squares.
type PebbleRenderer struct{}

// NewPebbleRenderer creates a pebble renderer.
func NewPebbleRenderer() *PebbleRenderer {
	return &PebbleRenderer{}
}

// Draw renders every live pebble. Positions are widget-normalized with y
// growing up from the floor; the screen has y growing down, so the
// vertical axis flips here.
func (r *PebbleRenderer) Draw(pebbles *systems.PebbleSystem, screenW, screenH, size float32) {
	pebbles.Each(func(pos components.Position, tint components.Tint) {
		sx := pos.X * screenW
		sy := (1 - pos.Y) * screenH
		rl.DrawRectangleV(
			rl.Vector2{X: sx, Y: sy - size},
			rl.Vector2{X: size, Y: size},
			rl.Color{R: tint.R, G: tint.G, B: tint.B, A: tint.A},
		)
	})
}
