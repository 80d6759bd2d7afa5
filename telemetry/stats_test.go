package telemetry

import "testing"

func TestCollectorAccumulatesAndResets(t *testing.T) {
	c := NewCollector(5.0, 30)

	c.RecordPoke(9, 4)
	c.RecordPoke(0, 0)
	c.RecordLanded(2)

	stats := c.Flush(150, 7, 0.83)
	if stats.Tick != 150 {
		t.Errorf("tick = %d, want 150", stats.Tick)
	}
	if stats.Pokes != 2 || stats.TexelsEroded != 9 || stats.PebblesSpawned != 4 || stats.PebblesLanded != 2 {
		t.Errorf("counts = %+v", stats)
	}
	if stats.ActivePebbles != 7 || stats.AlphaRemaining != 0.83 {
		t.Errorf("instantaneous values = %+v", stats)
	}

	// Flush resets the accumulators.
	empty := c.Flush(300, 0, 0.83)
	if empty.Pokes != 0 || empty.TexelsEroded != 0 || empty.PebblesSpawned != 0 || empty.PebblesLanded != 0 {
		t.Errorf("counters survived a flush: %+v", empty)
	}
}

func TestCollectorFlushCadence(t *testing.T) {
	// 5 second window at 30 Hz = every 150 ticks.
	c := NewCollector(5.0, 30)

	if c.ShouldFlush(149) {
		t.Error("flushed before the window elapsed")
	}
	if !c.ShouldFlush(150) {
		t.Error("did not flush at the window boundary")
	}

	c.Flush(150, 0, 1)
	if c.ShouldFlush(299) {
		t.Error("flushed early in the second window")
	}
	if !c.ShouldFlush(300) {
		t.Error("did not flush the second window")
	}
}

func TestCollectorMinimumWindow(t *testing.T) {
	// Degenerate settings still flush every tick instead of never.
	c := NewCollector(0, 30)
	if !c.ShouldFlush(1) {
		t.Error("zero-width window never flushes")
	}
}
