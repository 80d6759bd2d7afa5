// Package config provides configuration loading and access for the toy.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all tunable parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Chisel    ChiselConfig    `yaml:"chisel"`
	Image     ImageConfig     `yaml:"image"`
	Resize    ResizeConfig    `yaml:"resize"`
	Audio     AudioConfig     `yaml:"audio"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// PhysicsConfig holds pebble motion parameters.
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`           // vertical velocity lost per tick
	Friction         float64 `yaml:"friction"`          // per-tick multiplicative damping
	DislodgeVelocity float64 `yaml:"dislodge_velocity"` // minimum speed for a texel to detach
	MaxVelocity      float64 `yaml:"max_velocity"`      // pebble speed cap after clamping
	TickRate         int     `yaml:"tick_rate"`         // simulation ticks per second
}

// ChiselConfig holds erosion kernel and poke force parameters.
type ChiselConfig struct {
	KernelRadius      int     `yaml:"kernel_radius"`      // window radius in texels (1 = 3x3)
	DarkenFactor      float64 `yaml:"darken_factor"`      // RGB multiplier per poke
	DarknessThreshold int     `yaml:"darkness_threshold"` // RGB sum below this erodes the texel
	Power             float64 `yaml:"power"`              // scales touch speed into poke force
	MinPower          float64 `yaml:"min_power"`          // force floor for slow pokes
	RadiusSq          float64 `yaml:"radius_sq"`          // squared interaction radius, widget units
	Epsilon           float64 `yaml:"epsilon"`            // zero-distance guard in the falloff
}

// ImageConfig holds boulder imagery settings.
type ImageConfig struct {
	MaxDim        int      `yaml:"max_dim"`        // thumbnail cap for the erosion buffer
	Scale         float64  `yaml:"scale"`          // fraction of the widget the boulder occupies
	VOffset       float64  `yaml:"v_offset"`       // bottom offset as a fraction of widget height
	Paths         []string `yaml:"paths"`          // boulder images; one is picked at random
	Background    string   `yaml:"background"`     // backdrop image (empty = gradient)
	ProceduralDim int      `yaml:"procedural_dim"` // size of the generated boulder fallback
}

// ResizeConfig holds window resize handling parameters.
type ResizeConfig struct {
	DebounceMS int `yaml:"debounce_ms"` // quiet period before the viewport recomputes
}

// AudioConfig holds strike sound settings.
type AudioConfig struct {
	Enabled    bool `yaml:"enabled"`
	SampleRate int  `yaml:"sample_rate"`
}

// TelemetryConfig holds session stats parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // window size in seconds
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	TickDT float32 // seconds per simulation tick
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	if c.Physics.TickRate <= 0 {
		c.Physics.TickRate = 30
	}
	c.Derived.TickDT = 1.0 / float32(c.Physics.TickRate)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
