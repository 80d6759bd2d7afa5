package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load defaults: %v", err)
	}

	if cfg.Physics.Gravity != 0.02 {
		t.Errorf("gravity = %v, want 0.02", cfg.Physics.Gravity)
	}
	if cfg.Physics.Friction != 0.9 {
		t.Errorf("friction = %v, want 0.9", cfg.Physics.Friction)
	}
	if cfg.Chisel.KernelRadius != 1 {
		t.Errorf("kernel radius = %d, want 1", cfg.Chisel.KernelRadius)
	}
	if cfg.Image.MaxDim != 100 {
		t.Errorf("max dim = %d, want 100", cfg.Image.MaxDim)
	}
	if cfg.Resize.DebounceMS != 300 {
		t.Errorf("debounce = %d, want 300", cfg.Resize.DebounceMS)
	}
}

func TestDerivedTickDT(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load defaults: %v", err)
	}
	want := float32(1.0) / float32(cfg.Physics.TickRate)
	if cfg.Derived.TickDT != want {
		t.Errorf("TickDT = %v, want %v", cfg.Derived.TickDT, want)
	}
}

func TestLoadOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "override.yaml")
	data := []byte("physics:\n  gravity: 0.05\n  tick_rate: 60\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load override: %v", err)
	}

	if cfg.Physics.Gravity != 0.05 {
		t.Errorf("gravity = %v, want 0.05", cfg.Physics.Gravity)
	}
	// Untouched sections keep their defaults.
	if cfg.Chisel.DarkenFactor != 0.8 {
		t.Errorf("darken factor = %v, want 0.8", cfg.Chisel.DarkenFactor)
	}
	if cfg.Derived.TickDT != float32(1.0)/60 {
		t.Errorf("TickDT = %v, want %v", cfg.Derived.TickDT, float32(1.0)/60)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
