package noise

import (
	"math"
	"testing"
)

func TestCursorAdvance(t *testing.T) {
	c := Cursor{Position: 1.5, Step: 0.02}

	c.Advance()
	c.Advance()

	if math.Abs(c.Position-1.54) > 1e-12 {
		t.Errorf("expected position 1.54, got %f", c.Position)
	}
	if c.Step != 0.02 {
		t.Errorf("step changed during advance: %f", c.Step)
	}
}

func TestCursorStepFloor(t *testing.T) {
	c := Cursor{Position: 0, Step: 0.02}

	// Repeated decrements larger than the step must clamp to zero, never negative.
	for i := 0; i < 5; i++ {
		c.AdjustStep(-0.05)
		if c.Step != 0 {
			t.Fatalf("step not floored at zero: %f", c.Step)
		}
	}

	c.AdjustStep(0.05)
	if c.Step != 0.05 {
		t.Errorf("expected step 0.05 after increment, got %f", c.Step)
	}
}

func TestCursorNudge(t *testing.T) {
	c := Cursor{Position: 0.3, Step: 0.02}

	c.Nudge(-0.5)
	if math.Abs(c.Position-(-0.2)) > 1e-12 {
		t.Errorf("expected position -0.2, got %f", c.Position)
	}
}

func TestCursorValueCopyIsolation(t *testing.T) {
	proc := Cursor{Position: 2.0, Step: 0.1}

	frame := proc
	for i := 0; i < 10; i++ {
		frame.Advance()
	}

	if proc.Position != 2.0 || proc.Step != 0.1 {
		t.Errorf("process-wide cursor mutated by frame copy: %+v", proc)
	}
	if math.Abs(frame.Position-3.0) > 1e-9 {
		t.Errorf("expected frame position 3.0, got %f", frame.Position)
	}
}
