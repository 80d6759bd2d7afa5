package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Background draws the backdrop behind the boulder: a configured image,
// or a sky-to-ground gradient when none is set.
type Background struct {
	tex    rl.Texture2D
	hasTex bool
}

// NewBackground loads the backdrop texture. An empty path selects the
// gradient fallback; a path that fails to load falls back the same way.
func NewBackground(path string) *Background {
	b := &Background{}
	if path == "" {
		return b
	}
	tex := rl.LoadTexture(path)
	if tex.ID != 0 {
		b.tex = tex
		b.hasTex = true
	}
	return b
}

// Draw fills the whole widget.
func (b *Background) Draw(screenW, screenH int32) {
	if b.hasTex {
		src := rl.Rectangle{Width: float32(b.tex.Width), Height: float32(b.tex.Height)}
		dst := rl.Rectangle{Width: float32(screenW), Height: float32(screenH)}
		rl.DrawTexturePro(b.tex, src, dst, rl.Vector2{}, 0, rl.White)
		return
	}

	sky := rl.Color{R: 38, G: 44, B: 66, A: 255}
	ground := rl.Color{R: 70, G: 58, B: 48, A: 255}
	rl.DrawRectangleGradientV(0, 0, screenW, screenH, sky, ground)

	// A thin floor strip where pebbles disappear.
	floor := rl.Color{R: 30, G: 26, B: 22, A: 255}
	rl.DrawRectangle(0, screenH-6, screenW, 6, floor)
}

// Unload releases the backdrop texture if one was loaded.
func (b *Background) Unload() {
	if b.hasTex {
		rl.UnloadTexture(b.tex)
	}
}
