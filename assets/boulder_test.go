package assets

import (
	"math/rand"
	"testing"
)

func TestProceduralBoulderShape(t *testing.T) {
	img := ProceduralBoulder(42, 64)

	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 64 {
		t.Fatalf("bounds = %v, want 64x64", b)
	}

	// Center is rock, corners are air.
	if _, _, _, a := img.At(32, 32).RGBA(); a == 0 {
		t.Error("center texel is transparent")
	}
	for _, p := range [][2]int{{0, 0}, {63, 0}, {0, 63}, {63, 63}} {
		if _, _, _, a := img.At(p[0], p[1]).RGBA(); a != 0 {
			t.Errorf("corner (%d, %d) is opaque", p[0], p[1])
		}
	}
}

func TestProceduralBoulderDeterministic(t *testing.T) {
	a := ProceduralBoulder(7, 32)
	b := ProceduralBoulder(7, 32)

	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatalf("same seed diverged at byte %d", i)
		}
	}
}

func TestLoadBoulderFallsBackToProcedural(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	img, err := LoadBoulder(nil, 48, rng)
	if err != nil {
		t.Fatalf("fallback errored: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 48 || b.Dy() != 48 {
		t.Errorf("fallback bounds = %v, want 48x48", b)
	}
}

func TestLoadBoulderMissingFileIsFatal(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	if _, err := LoadBoulder([]string{"does/not/exist.png"}, 48, rng); err == nil {
		t.Fatal("missing asset must surface an error")
	}
}
