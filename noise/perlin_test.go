package noise

import (
	"math"
	"testing"
)

func TestNoiseDeterministic(t *testing.T) {
	a := NewField(42)
	b := NewField(42)

	for x := -5.0; x < 5.0; x += 0.173 {
		if a.Noise1D(x) != b.Noise1D(x) {
			t.Fatalf("same seed diverged at x=%f", x)
		}
	}
}

func TestNoiseSeedsDiffer(t *testing.T) {
	a := NewField(1)
	b := NewField(2)

	same := 0
	n := 0
	for x := 0.05; x < 20.0; x += 0.31 {
		n++
		if a.Noise1D(x) == b.Noise1D(x) {
			same++
		}
	}
	if same == n {
		t.Error("different seeds produced identical noise")
	}
}

func TestNoiseRange(t *testing.T) {
	f := NewField(7)

	for x := -100.0; x < 100.0; x += 0.0917 {
		v := f.Noise1D(x)
		if v < 0 || v >= 1 {
			t.Fatalf("noise out of [0,1) at x=%f: %f", x, v)
		}
	}
}

func TestNoiseContinuity(t *testing.T) {
	f := NewField(99)

	const delta = 1e-3
	for x := -10.0; x < 10.0; x += 0.0531 {
		d := math.Abs(f.Noise1D(x+delta) - f.Noise1D(x))
		if d > 0.05 {
			t.Fatalf("noise jump %f at x=%f", d, x)
		}
	}
}

func TestNoiseLatticeMidpoint(t *testing.T) {
	f := NewField(3)

	// Gradient noise is zero at integer lattice points, which maps to 0.5.
	for x := -4.0; x <= 4.0; x++ {
		if math.Abs(f.Noise1D(x)-0.5) > 1e-9 {
			t.Errorf("expected 0.5 at lattice point %f, got %f", x, f.Noise1D(x))
		}
	}
}

func TestRangeMapping(t *testing.T) {
	f := NewField(11)

	for x := 0.1; x < 5.0; x += 0.7 {
		v := f.Range(x, 0, 2*math.Pi)
		want := f.Noise1D(x) * 2 * math.Pi
		if math.Abs(v-want) > 1e-12 {
			t.Errorf("Range mismatch at x=%f: got %f want %f", x, v, want)
		}
		if v < 0 || v >= 2*math.Pi {
			t.Errorf("Range out of bounds at x=%f: %f", x, v)
		}
	}
}
