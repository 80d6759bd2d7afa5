package systems

// Viewport maps between widget-normalized coordinates and the boulder
// image's own normalized coordinates. Both spaces run 0..1 with y growing
// upward from the floor; the boulder rect occupies Scale of the widget,
// horizontally centered and lifted VOffset off the bottom.
type Viewport struct {
	Scale   float32
	VOffset float32
}

// ToImage converts a widget-normalized position to image-normalized
// coordinates. Results outside [0,1] mean the position missed the boulder.
func (v Viewport) ToImage(wx, wy float32) (float32, float32) {
	return (wx - (1-v.Scale)/2) / v.Scale, (wy - v.VOffset) / v.Scale
}

// ToWidget is the inverse of ToImage.
func (v Viewport) ToWidget(ix, iy float32) (float32, float32) {
	return ix*v.Scale + (1-v.Scale)/2, iy*v.Scale + v.VOffset
}

// Rect is a screen-space rectangle in pixels, y-down from the top left.
type Rect struct {
	X, Y, W, H float32
}

// ScreenRect returns the boulder rectangle for a widget of the given
// pixel size.
func (v Viewport) ScreenRect(screenW, screenH float32) Rect {
	w := v.Scale * screenW
	h := v.Scale * screenH
	return Rect{
		X: (screenW - w) / 2,
		Y: screenH - v.VOffset*screenH - h,
		W: w,
		H: h,
	}
}
