// Package assets provides boulder imagery for the erosion buffer.
package assets

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"math/rand"
	"os"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// LoadBoulder decodes one of the configured boulder images, chosen
// uniformly at random. An empty path list falls back to a procedural
// boulder so the toy runs without bundled assets. A configured path that
// cannot be opened or decoded is fatal: the buffer cannot be built
// without it.
func LoadBoulder(paths []string, dim int, rng *rand.Rand) (image.Image, error) {
	if len(paths) == 0 {
		return ProceduralBoulder(rng.Int63(), dim), nil
	}

	path := paths[rng.Intn(len(paths))]
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening boulder image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding boulder image %s: %w", path, err)
	}
	return img, nil
}

// ProceduralBoulder synthesizes a rocky blob: a noise-displaced disc of
// noise-shaded grey texels, opaque inside the rim and transparent outside.
func ProceduralBoulder(seed int64, dim int) *image.RGBA {
	noise := opensimplex.New(seed)
	img := image.NewRGBA(image.Rect(0, 0, dim, dim))
	c := float64(dim) / 2

	for y := 0; y < dim; y++ {
		for x := 0; x < dim; x++ {
			nx := (float64(x) - c) / c
			ny := (float64(y) - c) / c
			r := math.Sqrt(nx*nx + ny*ny)

			// A lumpy rim keeps the silhouette from being a perfect circle.
			rim := 0.8 + 0.14*noise.Eval2(nx*2.1, ny*2.1)
			if r > rim {
				continue // transparent
			}

			shade := noise.Eval2(float64(x)*0.13, float64(y)*0.13)
			v := 130 + shade*55
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(v),
				G: uint8(v * 0.94),
				B: uint8(v * 0.85),
				A: 255,
			})
		}
	}
	return img
}
