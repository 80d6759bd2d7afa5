package game

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Draw renders one frame: backdrop, boulder, pebbles, HUD, toolbar.
func (g *Game) Draw() {
	rl.BeginDrawing()
	defer rl.EndDrawing()

	g.background.Draw(int32(g.screenW), int32(g.screenH))

	g.boulderRenderer.Upload(g.buffer)
	g.boulderRenderer.Draw(g.boulderRect)

	// Pebbles are texel-sized squares at the boulder's on-screen scale.
	cell := g.boulderRect.W / float32(g.buffer.Width())
	g.pebbleRenderer.Draw(g.pebbles, g.screenW, g.screenH, cell)

	g.drawHUD()

	tool, muted := g.toolbar.Draw(g.screenW, g.chisel.Tool(), g.muted)
	g.chisel.SetTool(tool)
	g.muted = muted
}

func (g *Game) drawHUD() {
	remaining := g.buffer.AlphaRemaining() * 100
	text := fmt.Sprintf("boulder %.0f%%  pebbles %d", remaining, g.pebbles.Count())
	rl.DrawText(text, 10, 10, 20, rl.RayWhite)
}
