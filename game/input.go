package game

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// handleInput processes one frame of mouse and keyboard input. Mouse
// coordinates arrive in screen space with y growing down; the simulation
// works in widget-normalized space with y growing up, so both the
// position and the drag delta flip vertically here.
func (g *Game) handleInput() {
	press := rl.IsMouseButtonPressed(rl.MouseButtonLeft)
	down := rl.IsMouseButtonDown(rl.MouseButtonLeft)

	if press || down {
		pos := rl.GetMousePosition()
		delta := rl.GetMouseDelta()

		tx := pos.X / g.screenW
		ty := 1 - pos.Y/g.screenH
		dx := delta.X / g.screenW
		dy := -delta.Y / g.screenH

		// A fresh press has no meaningful delta; treat it as a still tap.
		if press {
			dx, dy = 0, 0
		}
		g.PokeAt(tx, ty, dx, dy, press)
	}

	switch {
	case rl.IsKeyPressed(rl.KeyOne):
		g.chisel.SetTool(0)
	case rl.IsKeyPressed(rl.KeyTwo):
		g.chisel.SetTool(1)
	case rl.IsKeyPressed(rl.KeyThree):
		g.chisel.SetTool(2)
	case rl.IsKeyPressed(rl.KeyM):
		g.muted = !g.muted
	}

	if rl.IsWindowResized() {
		g.resizePending = true
		g.resizeDeadline = time.Now().Add(g.debounce)
	}
	if g.resizePending && time.Now().After(g.resizeDeadline) {
		g.applyResize()
	}
}

// applyResize recomputes the viewport after the resize debounce expires.
// The erosion buffer is untouched; only screen-space placement changes.
func (g *Game) applyResize() {
	g.resizePending = false
	g.screenW = float32(rl.GetScreenWidth())
	g.screenH = float32(rl.GetScreenHeight())
	g.boulderRect = g.view.ScreenRect(g.screenW, g.screenH)
}
