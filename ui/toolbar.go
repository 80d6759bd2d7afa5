// Package ui renders the raygui control strip.
package ui

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// toolNames label the selectable chisel tools.
var toolNames = [...]string{"POINT", "FLAT", "CLAW"}

const (
	buttonW = 70
	buttonH = 26
	pad     = 8
)

// Toolbar draws the tool selector and mute toggle in the top-right
// corner. It is immediate-mode: Draw returns the possibly updated
// selection each frame.
type Toolbar struct{}

// NewToolbar creates a toolbar.
func NewToolbar() *Toolbar {
	return &Toolbar{}
}

// Draw renders the strip and returns the new tool index and mute state.
func (t *Toolbar) Draw(screenW float32, activeTool int, muted bool) (int, bool) {
	x := screenW - float32(len(toolNames))*(buttonW+pad)
	y := float32(pad)

	for i, name := range toolNames {
		bounds := rl.Rectangle{X: x + float32(i)*(buttonW+pad), Y: y, Width: buttonW, Height: buttonH}
		if gui.Button(bounds, name) {
			activeTool = i
		}
		if i == activeTool {
			rl.DrawRectangleLinesEx(bounds, 2, rl.Yellow)
		}
	}

	label := "SOUND"
	if muted {
		label = "MUTED"
	}
	muteBounds := rl.Rectangle{
		X:      screenW - buttonW - pad,
		Y:      y + buttonH + pad,
		Width:  buttonW,
		Height: buttonH,
	}
	if gui.Button(muteBounds, label) {
		muted = !muted
	}

	return activeTool, muted
}
