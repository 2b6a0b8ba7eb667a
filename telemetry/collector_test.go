package telemetry

import (
	"math"
	"testing"
)

func TestCollectorFlushesAtWindowBoundary(t *testing.T) {
	c := NewCollector(10)

	for tick := int32(1); tick <= 9; tick++ {
		c.RecordAttempt(tick%3 == 0, false)
		if _, flushed := c.Tick(tick); flushed {
			t.Fatalf("flushed before window boundary at tick %d", tick)
		}
	}

	c.RecordAttempt(true, true)
	stats, flushed := c.Tick(10)
	if !flushed {
		t.Fatal("expected flush at window boundary")
	}

	if stats.Attempts != 10 {
		t.Errorf("expected 10 attempts, got %d", stats.Attempts)
	}
	if stats.Placed != 4 {
		t.Errorf("expected 4 placements, got %d", stats.Placed)
	}
	if stats.Rejected != 6 {
		t.Errorf("expected 6 rejections, got %d", stats.Rejected)
	}
	if stats.Biased != 1 {
		t.Errorf("expected 1 biased attempt, got %d", stats.Biased)
	}
	if math.Abs(stats.Accept-0.4) > 1e-9 {
		t.Errorf("expected accept rate 0.4, got %f", stats.Accept)
	}
}

func TestCollectorResetsBetweenWindows(t *testing.T) {
	c := NewCollector(5)

	for tick := int32(1); tick <= 5; tick++ {
		c.RecordAttempt(true, false)
		c.Tick(tick)
	}

	// Second window: no attempts recorded.
	var stats WindowStats
	flushed := false
	for tick := int32(6); tick <= 10; tick++ {
		if s, ok := c.Tick(tick); ok {
			stats, flushed = s, true
		}
	}

	if !flushed {
		t.Fatal("expected a second window flush")
	}
	if stats.Attempts != 0 || stats.Placed != 0 {
		t.Errorf("counters leaked across windows: %+v", stats)
	}
	if stats.Accept != 0 {
		t.Errorf("expected zero accept rate with no attempts, got %f", stats.Accept)
	}
}
