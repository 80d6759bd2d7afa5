package systems

import (
	"math"
	"testing"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func TestViewportToImage(t *testing.T) {
	v := Viewport{Scale: 0.75, VOffset: 0.1}

	tests := []struct {
		name   string
		wx, wy float32
		ix, iy float32
	}{
		{"bottom-left corner", 0.125, 0.1, 0, 0},
		{"top-right corner", 0.875, 0.85, 1, 1},
		{"center", 0.5, 0.475, 0.5, 0.5},
		{"left of boulder", 0.05, 0.5, -0.1, 0.5333333},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ix, iy := v.ToImage(tt.wx, tt.wy)
			if !approx(ix, tt.ix) || !approx(iy, tt.iy) {
				t.Errorf("ToImage(%v, %v) = (%v, %v), want (%v, %v)",
					tt.wx, tt.wy, ix, iy, tt.ix, tt.iy)
			}
		})
	}
}

func TestViewportRoundtrip(t *testing.T) {
	v := Viewport{Scale: 0.75, VOffset: 0.1}

	for _, p := range [][2]float32{{0, 0}, {0.3, 0.7}, {1, 1}, {0.5, 0.5}} {
		wx, wy := v.ToWidget(p[0], p[1])
		ix, iy := v.ToImage(wx, wy)
		if !approx(ix, p[0]) || !approx(iy, p[1]) {
			t.Errorf("roundtrip of (%v, %v) gave (%v, %v)", p[0], p[1], ix, iy)
		}
	}
}

func TestViewportScreenRect(t *testing.T) {
	v := Viewport{Scale: 0.75, VOffset: 0.1}

	rect := v.ScreenRect(800, 600)
	if !approx(rect.W, 600) || !approx(rect.H, 450) {
		t.Errorf("size = (%v, %v), want (600, 450)", rect.W, rect.H)
	}
	if !approx(rect.X, 100) {
		t.Errorf("x = %v, want 100 (centered)", rect.X)
	}
	// Bottom sits 10% above the floor: 600 - 60 - 450 = 90 from the top.
	if !approx(rect.Y, 90) {
		t.Errorf("y = %v, want 90", rect.Y)
	}
}
