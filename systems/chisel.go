package systems

import "github.com/pthm-cable/chisel/components"

// NumTools is the number of selectable chisel tools.
const NumTools = 3

// ChiselParams holds the erosion constants.
type ChiselParams struct {
	KernelRadius      int     // window radius in texels (1 = 3x3)
	DarkenFactor      float32 // RGB multiplier per poke
	DarknessThreshold int     // RGB sum below this erodes the texel away
	Power             float32 // scales touch speed into poke force
	MinPower          float32 // force floor for slow pokes
	RadiusSq          float32 // squared interaction radius in widget units
	Epsilon           float32 // zero-distance guard in the falloff
}

// Chisel maps pokes onto the pixel buffer, applies the erosion kernel and
// spawns pebbles for texels knocked loose. It owns the buffer exclusively;
// all mutation goes through Poke.
type Chisel struct {
	buffer  *PixelBuffer
	pebbles *PebbleSystem
	view    Viewport
	gate    Gate
	params  ChiselParams

	tool         int
	lastX, lastY int // last poked texel
}

// NewChisel wires the erosion engine to its buffer and pebble sink.
func NewChisel(buffer *PixelBuffer, pebbles *PebbleSystem, view Viewport, gate Gate, params ChiselParams) *Chisel {
	return &Chisel{
		buffer:  buffer,
		pebbles: pebbles,
		view:    view,
		gate:    gate,
		params:  params,
	}
}

// SetTool records the active tool index. The index is stored only; every
// tool erodes with the same kernel.
func (c *Chisel) SetTool(i int) {
	if i >= 0 && i < NumTools {
		c.tool = i
	}
}

// Tool returns the active tool index.
func (c *Chisel) Tool() int { return c.tool }

// LastPoke returns the buffer coordinate of the most recent poke that hit.
func (c *Chisel) LastPoke() (int, int) { return c.lastX, c.lastY }

// Buffer returns the pixel buffer the chisel erodes.
func (c *Chisel) Buffer() *PixelBuffer { return c.buffer }

// PokeResult reports what a single poke did.
type PokeResult struct {
	Hit     bool // poke landed on the boulder rect
	Eroded  int  // texels whose alpha dropped to zero this poke
	Spawned int  // pebbles dislodged
}

// Poke applies one erosion event. tx, ty are the pointer position in
// widget-normalized coordinates; dx, dy are the pointer deltas since the
// previous event in the same space. A position that maps outside the
// boulder image is a no-op, not an error.
func (c *Chisel) Poke(tx, ty, dx, dy float32) PokeResult {
	ix, iy := c.view.ToImage(tx, ty)
	if ix < 0 || ix > 1 || iy < 0 || iy > 1 {
		return PokeResult{}
	}

	w, h := c.buffer.w, c.buffer.h
	px := min(int(ix*float32(w)), w-1)
	py := min(int(iy*float32(h)), h-1)
	c.lastX, c.lastY = px, py

	speed := dx*dx + dy*dy
	res := PokeResult{Hit: true}

	x0, y0, x1, y1 := c.buffer.Window(px, py, c.params.KernelRadius)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			pr, pg, pb, pa := c.buffer.At(x, y)
			c.buffer.Darken(x, y, c.params.DarkenFactor)
			if c.buffer.RGBSum(x, y) >= c.params.DarknessThreshold {
				continue
			}
			if !c.buffer.EraseAlpha(x, y) {
				continue // already eroded away
			}
			res.Eroded++

			// The pebble takes off from the texel's widget-space center,
			// carrying the color it had before this poke darkened it.
			wx, wy := c.view.ToWidget(
				(float32(x)+0.5)/float32(w),
				(float32(y)+0.5)/float32(h),
			)
			fx, fy := c.PokePower(tx, ty, wx, wy, speed)
			if vx, vy, ok := c.gate.Evaluate(fx, fy); ok {
				c.pebbles.Spawn(wx, wy, vx, vy, components.Tint{R: pr, G: pg, B: pb, A: pa})
				res.Spawned++
			}
		}
	}
	return res
}

// PokePower returns the force a poke at the tool tip (tx, ty) exerts on a
// texel at (x, y), all in widget space. The force points away from the
// tip, weighted by inverse squared distance, floored at MinPower and zero
// beyond the interaction radius.
func (c *Chisel) PokePower(tx, ty, x, y, speed float32) (float32, float32) {
	dx, dy := x-tx, y-ty
	d := dx*dx + dy*dy
	if d > c.params.RadiusSq {
		return 0, 0
	}
	if d < c.params.Epsilon {
		d = c.params.Epsilon
	}
	power := c.params.Power * speed
	if power < c.params.MinPower {
		power = c.params.MinPower
	}
	power /= d
	return power * dx, power * dy
}
