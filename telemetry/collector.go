package telemetry

import "log/slog"

// Collector accumulates placement events and emits WindowStats once per
// window. The game records one event per tick.
type Collector struct {
	window int32

	attempts int
	placed   int
	rejected int
	biased   int

	windowStart int32
}

// NewCollector creates a collector with the given window size in ticks.
func NewCollector(windowTicks int) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{window: int32(windowTicks)}
}

// RecordAttempt registers one placement attempt and its outcome.
func (c *Collector) RecordAttempt(placed, biased bool) {
	c.attempts++
	if placed {
		c.placed++
	} else {
		c.rejected++
	}
	if biased {
		c.biased++
	}
}

// Tick advances the collector. When a window boundary is crossed it
// returns the flushed stats and true; collection-state fields are left
// for the caller to fill in.
func (c *Collector) Tick(tick int32) (WindowStats, bool) {
	if tick-c.windowStart < c.window {
		return WindowStats{}, false
	}

	stats := WindowStats{
		WindowEndTick: tick,
		Attempts:      c.attempts,
		Placed:        c.placed,
		Rejected:      c.rejected,
		Biased:        c.biased,
	}
	if c.attempts > 0 {
		stats.Accept = float64(c.placed) / float64(c.attempts)
	}

	c.attempts = 0
	c.placed = 0
	c.rejected = 0
	c.biased = 0
	c.windowStart = tick

	return stats, true
}

// Log emits the window stats via slog.
func (c *Collector) Log(stats WindowStats) {
	slog.Info("packing window",
		"window_end", stats.WindowEndTick,
		"circles", stats.Circles,
		"attempts", stats.Attempts,
		"placed", stats.Placed,
		"accept_rate", stats.Accept,
		"fill_ratio", stats.FillRatio,
	)
}
