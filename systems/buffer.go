package systems

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// PixelBuffer is the boulder's mutable RGBA texel grid. Row 0 is the
// bottom row. The buffer is created once from a source image and never
// resized; erosion mutates it in place.
type PixelBuffer struct {
	w, h  int
	pix   []byte // w*h*4 bytes, RGBA
	dirty bool
}

// NewPixelBuffer builds a buffer from a source image. The image is
// downscaled with nearest-neighbor sampling so that neither dimension
// exceeds maxDim, then flipped vertically so row 0 is the bottom.
func NewPixelBuffer(src image.Image, maxDim int) *PixelBuffer {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > maxDim || h > maxDim {
		scale := float64(maxDim) / float64(w)
		if h > w {
			scale = float64(maxDim) / float64(h)
		}
		w = max(int(float64(w)*scale), 1)
		h = max(int(float64(h)*scale), 1)
	}

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.NearestNeighbor.Scale(rgba, rgba.Bounds(), src, bounds, xdraw.Src, nil)

	b := &PixelBuffer{w: w, h: h, pix: make([]byte, w*h*4)}
	for y := 0; y < h; y++ {
		src := rgba.Pix[y*rgba.Stride : y*rgba.Stride+w*4]
		copy(b.pix[(h-1-y)*w*4:(h-y)*w*4], src)
	}
	return b
}

// Width returns the buffer width in texels.
func (b *PixelBuffer) Width() int { return b.w }

// Height returns the buffer height in texels.
func (b *PixelBuffer) Height() int { return b.h }

// InBounds reports whether (x, y) indexes a texel.
func (b *PixelBuffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.w && y >= 0 && y < b.h
}

// At returns the RGBA channels of the texel at (x, y).
func (b *PixelBuffer) At(x, y int) (r, g, bl, a byte) {
	i := (y*b.w + x) * 4
	return b.pix[i], b.pix[i+1], b.pix[i+2], b.pix[i+3]
}

// RGBSum returns the sum of the RGB channels at (x, y).
func (b *PixelBuffer) RGBSum(x, y int) int {
	i := (y*b.w + x) * 4
	return int(b.pix[i]) + int(b.pix[i+1]) + int(b.pix[i+2])
}

// Alpha returns the alpha channel at (x, y).
func (b *PixelBuffer) Alpha(x, y int) byte {
	return b.pix[(y*b.w+x)*4+3]
}

// Darken multiplies the RGB channels at (x, y) by factor, truncating
// toward zero. Alpha is untouched.
func (b *PixelBuffer) Darken(x, y int, factor float32) {
	i := (y*b.w + x) * 4
	b.pix[i] = byte(float32(b.pix[i]) * factor)
	b.pix[i+1] = byte(float32(b.pix[i+1]) * factor)
	b.pix[i+2] = byte(float32(b.pix[i+2]) * factor)
	b.dirty = true
}

// EraseAlpha zeroes the alpha channel at (x, y) and reports whether the
// texel was still visible. Alpha never increases again, so a second call
// for the same texel returns false.
func (b *PixelBuffer) EraseAlpha(x, y int) bool {
	i := (y*b.w+x)*4 + 3
	if b.pix[i] == 0 {
		return false
	}
	b.pix[i] = 0
	b.dirty = true
	return true
}

// Window returns the inclusive bounds of the radius-r square around
// (cx, cy), clipped to the buffer.
func (b *PixelBuffer) Window(cx, cy, r int) (x0, y0, x1, y1 int) {
	x0 = max(cx-r, 0)
	y0 = max(cy-r, 0)
	x1 = min(cx+r, b.w-1)
	y1 = min(cy+r, b.h-1)
	return x0, y0, x1, y1
}

// AlphaRemaining returns the fraction of texels that are still visible.
func (b *PixelBuffer) AlphaRemaining() float64 {
	visible := 0
	for i := 3; i < len(b.pix); i += 4 {
		if b.pix[i] > 0 {
			visible++
		}
	}
	return float64(visible) / float64(b.w*b.h)
}

// Pixels exposes the raw RGBA bytes, bottom row first.
func (b *PixelBuffer) Pixels() []byte { return b.pix }

// Dirty reports whether the buffer changed since the last MarkClean.
func (b *PixelBuffer) Dirty() bool { return b.dirty }

// MarkClean clears the dirty flag after a texture upload.
func (b *PixelBuffer) MarkClean() { b.dirty = false }
