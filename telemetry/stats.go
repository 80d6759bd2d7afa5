// Package telemetry aggregates interaction stats over fixed windows.
package telemetry

// WindowStats is one window's worth of interaction counts.
type WindowStats struct {
	Tick           int32   `csv:"tick"`
	Pokes          int     `csv:"pokes"`
	TexelsEroded   int     `csv:"texels_eroded"`
	PebblesSpawned int     `csv:"pebbles_spawned"`
	PebblesLanded  int     `csv:"pebbles_landed"`
	ActivePebbles  int     `csv:"active_pebbles"`
	AlphaRemaining float64 `csv:"alpha_remaining"`
}

// Collector accumulates counts between window flushes. It is driven from
// the single simulation loop and needs no locking.
type Collector struct {
	windowTicks int32
	lastFlush   int32

	pokes   int
	eroded  int
	spawned int
	landed  int
}

// NewCollector creates a collector flushing every windowSec seconds of
// simulation time at the given tick rate.
func NewCollector(windowSec float64, tickRate int) *Collector {
	ticks := int32(windowSec * float64(tickRate))
	if ticks < 1 {
		ticks = 1
	}
	return &Collector{windowTicks: ticks}
}

// RecordPoke counts one poke that hit the boulder.
func (c *Collector) RecordPoke(eroded, spawned int) {
	c.pokes++
	c.eroded += eroded
	c.spawned += spawned
}

// RecordLanded counts pebbles that reached the floor this tick.
func (c *Collector) RecordLanded(n int) {
	c.landed += n
}

// ShouldFlush reports whether a window boundary has passed.
func (c *Collector) ShouldFlush(tick int32) bool {
	return tick-c.lastFlush >= c.windowTicks
}

// Flush returns the finished window and resets the counters. The caller
// supplies the instantaneous values that are not accumulated.
func (c *Collector) Flush(tick int32, activePebbles int, alphaRemaining float64) WindowStats {
	stats := WindowStats{
		Tick:           tick,
		Pokes:          c.pokes,
		TexelsEroded:   c.eroded,
		PebblesSpawned: c.spawned,
		PebblesLanded:  c.landed,
		ActivePebbles:  activePebbles,
		AlphaRemaining: alphaRemaining,
	}
	c.pokes, c.eroded, c.spawned, c.landed = 0, 0, 0, 0
	c.lastFlush = tick
	return stats
}
