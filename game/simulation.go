package game

import (
	"log/slog"
)

// Update advances the windowed game by one frame: input, then as many
// fixed simulation ticks as the frame time covers. The accumulator keeps
// pebble physics at the configured tick rate regardless of FPS.
func (g *Game) Update(frameDT float32) {
	g.handleInput()

	g.accumulator += frameDT
	for g.accumulator >= g.dt {
		g.stepSimulation()
		g.accumulator -= g.dt
	}
}

// UpdateHeadless advances one tick and occasionally pokes the boulder
// with a synthetic drag, exercising the full erosion path without a
// window. Used by -headless runs and the calibrate command.
func (g *Game) UpdateHeadless() {
	if g.tick%3 == 0 {
		// Random strike somewhere on the boulder with a small drag.
		tx := 0.125 + g.rng.Float32()*0.75
		ty := 0.1 + g.rng.Float32()*0.75
		dx := (g.rng.Float32() - 0.5) * 0.06
		dy := (g.rng.Float32() - 0.5) * 0.06
		g.PokeAt(tx, ty, dx, dy, false)
	}
	g.stepSimulation()
}

// stepSimulation runs one fixed tick: pebble physics, then telemetry.
func (g *Game) stepSimulation() {
	landed := g.pebbles.Step()
	if landed > 0 {
		g.collector.RecordLanded(landed)
	}
	g.tick++
	g.flushTelemetry()
}

func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}
	stats := g.collector.Flush(g.tick, g.pebbles.Count(), g.buffer.AlphaRemaining())
	if err := g.output.WriteStats(stats); err != nil {
		slog.Error("writing stats", "error", err)
	}
	slog.Debug("window stats",
		"tick", stats.Tick,
		"pokes", stats.Pokes,
		"eroded", stats.TexelsEroded,
		"active_pebbles", stats.ActivePebbles,
		"alpha_remaining", stats.AlphaRemaining,
	)
}
