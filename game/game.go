// Package game wires input, simulation and rendering together.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/chisel/assets"
	"github.com/pthm-cable/chisel/audio"
	"github.com/pthm-cable/chisel/config"
	"github.com/pthm-cable/chisel/renderer"
	"github.com/pthm-cable/chisel/systems"
	"github.com/pthm-cable/chisel/telemetry"
	"github.com/pthm-cable/chisel/ui"
)

// Options configures game construction.
type Options struct {
	Seed      int64
	Headless  bool
	OutputDir string
	Muted     bool
}

// Game holds the complete toy state. All mutation happens on the single
// loop that calls Update and Draw, so no locking is needed.
type Game struct {
	rng   *rand.Rand
	world *ecs.World

	buffer  *systems.PixelBuffer
	pebbles *systems.PebbleSystem
	chisel  *systems.Chisel
	view    systems.Viewport

	boulderRenderer *renderer.BoulderRenderer
	background      *renderer.Background
	pebbleRenderer  *renderer.PebbleRenderer
	toolbar         *ui.Toolbar
	sounds          *audio.Bank
	muted           bool

	collector *telemetry.Collector
	output    *telemetry.OutputManager

	headless    bool
	tick        int32
	dt          float32
	accumulator float32

	screenW, screenH float32
	boulderRect      systems.Rect
	resizePending    bool
	resizeDeadline   time.Time
	debounce         time.Duration
}

// NewGame builds the toy from the loaded config. Graphics resources are
// only created in windowed mode; headless games run the same simulation
// without raylib.
func NewGame(opts Options) (*Game, error) {
	cfg := config.Cfg()
	rng := rand.New(rand.NewSource(opts.Seed))

	img, err := assets.LoadBoulder(cfg.Image.Paths, cfg.Image.ProceduralDim, rng)
	if err != nil {
		return nil, fmt.Errorf("loading boulder: %w", err)
	}
	buffer := systems.NewPixelBuffer(img, cfg.Image.MaxDim)

	world := ecs.NewWorld()
	pebbles := systems.NewPebbleSystem(world, systems.PebbleParams{
		Gravity:  float32(cfg.Physics.Gravity),
		Friction: float32(cfg.Physics.Friction),
	})

	view := systems.Viewport{
		Scale:   float32(cfg.Image.Scale),
		VOffset: float32(cfg.Image.VOffset),
	}
	gate := systems.Gate{
		MinVelocity: float32(cfg.Physics.DislodgeVelocity),
		MaxVelocity: float32(cfg.Physics.MaxVelocity),
	}
	chisel := systems.NewChisel(buffer, pebbles, view, gate, systems.ChiselParams{
		KernelRadius:      cfg.Chisel.KernelRadius,
		DarkenFactor:      float32(cfg.Chisel.DarkenFactor),
		DarknessThreshold: cfg.Chisel.DarknessThreshold,
		Power:             float32(cfg.Chisel.Power),
		MinPower:          float32(cfg.Chisel.MinPower),
		RadiusSq:          float32(cfg.Chisel.RadiusSq),
		Epsilon:           float32(cfg.Chisel.Epsilon),
	})

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := output.WriteConfig(cfg); err != nil {
		slog.Warn("failed to snapshot config", "error", err)
	}

	g := &Game{
		rng:       rng,
		world:     world,
		buffer:    buffer,
		pebbles:   pebbles,
		chisel:    chisel,
		view:      view,
		collector: telemetry.NewCollector(cfg.Telemetry.StatsWindow, cfg.Physics.TickRate),
		output:    output,
		headless:  opts.Headless,
		muted:     opts.Muted,
		dt:        cfg.Derived.TickDT,
		debounce:  time.Duration(cfg.Resize.DebounceMS) * time.Millisecond,
	}

	if opts.Headless {
		return g, nil
	}

	g.screenW = float32(rl.GetScreenWidth())
	g.screenH = float32(rl.GetScreenHeight())
	g.boulderRect = view.ScreenRect(g.screenW, g.screenH)

	g.boulderRenderer = renderer.NewBoulderRenderer(buffer)
	g.background = renderer.NewBackground(cfg.Image.Background)
	g.pebbleRenderer = renderer.NewPebbleRenderer()
	g.toolbar = ui.NewToolbar()

	if cfg.Audio.Enabled {
		g.sounds = audio.NewBank(cfg.Audio.SampleRate, rng)
		if err := g.sounds.Initialize(); err != nil {
			// The toy stays playable without sound.
			slog.Warn("audio unavailable", "error", err)
			g.sounds = nil
		}
	}

	return g, nil
}

// PokeAt drives one poke through the chisel and telemetry. strike plays
// the hit sound, used for press events but not drags.
func (g *Game) PokeAt(tx, ty, dx, dy float32, strike bool) systems.PokeResult {
	res := g.chisel.Poke(tx, ty, dx, dy)
	if res.Hit {
		g.collector.RecordPoke(res.Eroded, res.Spawned)
		if strike && g.sounds != nil && !g.muted {
			g.sounds.PlayStrike()
		}
	}
	return res
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int32 { return g.tick }

// Buffer returns the erosion buffer.
func (g *Game) Buffer() *systems.PixelBuffer { return g.buffer }

// Pebbles returns the pebble system.
func (g *Game) Pebbles() *systems.PebbleSystem { return g.pebbles }

// Unload releases all resources.
func (g *Game) Unload() {
	if g.boulderRenderer != nil {
		g.boulderRenderer.Unload()
	}
	if g.background != nil {
		g.background.Unload()
	}
	if g.sounds != nil {
		g.sounds.Cleanup()
	}
	if err := g.output.Close(); err != nil {
		slog.Error("closing output", "error", err)
	}
}
