// Package renderer draws the toy with raylib.
package renderer

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/chisel/systems"
)

// BoulderRenderer owns the GPU texture mirroring the pixel buffer.
type BoulderRenderer struct {
	tex     rl.Texture2D
	staging []color.RGBA
	w, h    int
}

// NewBoulderRenderer creates the texture for a buffer and uploads its
// initial contents. Nearest-neighbor filtering keeps the texels chunky.
func NewBoulderRenderer(buf *systems.PixelBuffer) *BoulderRenderer {
	w, h := buf.Width(), buf.Height()

	img := rl.GenImageColor(w, h, rl.Blank)
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	rl.SetTextureFilter(tex, rl.FilterPoint)

	r := &BoulderRenderer{
		tex:     tex,
		staging: make([]color.RGBA, w*h),
		w:       w,
		h:       h,
	}
	r.upload(buf)
	return r
}

// Upload pushes the buffer to the GPU if it changed since the last frame.
func (r *BoulderRenderer) Upload(buf *systems.PixelBuffer) {
	if !buf.Dirty() {
		return
	}
	r.upload(buf)
}

// upload flips the bottom-up buffer into raylib's top-down texture rows.
func (r *BoulderRenderer) upload(buf *systems.PixelBuffer) {
	pix := buf.Pixels()
	for y := 0; y < r.h; y++ {
		src := (r.h - 1 - y) * r.w * 4
		dst := y * r.w
		for x := 0; x < r.w; x++ {
			i := src + x*4
			r.staging[dst+x] = color.RGBA{R: pix[i], G: pix[i+1], B: pix[i+2], A: pix[i+3]}
		}
	}
	rl.UpdateTexture(r.tex, r.staging)
	buf.MarkClean()
}

// Draw renders the boulder into its screen rectangle.
func (r *BoulderRenderer) Draw(rect systems.Rect) {
	src := rl.Rectangle{Width: float32(r.w), Height: float32(r.h)}
	dst := rl.Rectangle{X: rect.X, Y: rect.Y, Width: rect.W, Height: rect.H}
	rl.DrawTexturePro(r.tex, src, dst, rl.Vector2{}, 0, rl.White)
}

// Unload releases the GPU texture.
func (r *BoulderRenderer) Unload() {
	rl.UnloadTexture(r.tex)
}
