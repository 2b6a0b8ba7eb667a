package packing

import (
	"math"
	"testing"

	"github.com/pthm-cable/ringpack/scene"
)

func testParams() Params {
	return Params{
		MinRadius:   20,
		MaxRadius:   60,
		PointerRect: 12,
		PointerSeed: 1,
	}
}

func TestEmptyCanvasGrowsToMaxRadius(t *testing.T) {
	e := NewEngine(testParams(), 1)
	col := scene.NewCollection(10)

	c, ok := e.tryAt(250, 250, 20, 500, 500, col)
	if !ok {
		t.Fatal("placement on empty canvas rejected")
	}
	if c.R != 60 {
		t.Errorf("expected radius clamped to max 60, got %f", c.R)
	}
	if col.Len() != 1 {
		t.Errorf("expected 1 circle, got %d", col.Len())
	}
}

func TestGrowthConstrainedByNeighbor(t *testing.T) {
	e := NewEngine(testParams(), 1)
	col := scene.NewCollection(10)
	col.Append(100, 100, 50)

	// Distance 80 from the existing center: no overlap (80 >= 20+50),
	// radius grows to the slack 80-50 = 30.
	c, ok := e.tryAt(100, 180, 20, 500, 500, col)
	if !ok {
		t.Fatal("non-overlapping candidate rejected")
	}
	if math.Abs(c.R-30) > 1e-9 {
		t.Errorf("expected radius 30, got %f", c.R)
	}
}

func TestOverlappingCandidateRejected(t *testing.T) {
	e := NewEngine(testParams(), 1)
	col := scene.NewCollection(10)
	col.Append(100, 100, 20)

	// Distance 5 with seed radius 20: 5 < 20+20, reject.
	_, ok := e.tryAt(100, 105, 20, 500, 500, col)
	if ok {
		t.Error("expected rejection of overlapping candidate")
	}
	if col.Len() != 1 {
		t.Errorf("collection size changed on rejection: %d", col.Len())
	}
}

func TestGrowthConstrainedByEdges(t *testing.T) {
	e := NewEngine(testParams(), 1)
	col := scene.NewCollection(10)

	// Candidate 25 from the left edge: radius limited by that edge.
	c, ok := e.tryAt(25, 250, 20, 500, 500, col)
	if !ok {
		t.Fatal("edge candidate rejected")
	}
	if c.R != 25 {
		t.Errorf("expected radius 25 from edge distance, got %f", c.R)
	}
}

func TestFullCollectionIsNoOp(t *testing.T) {
	e := NewEngine(testParams(), 1)
	col := scene.NewCollection(1)
	col.Append(100, 100, 30)

	_, ok := e.tryAt(400, 400, 20, 500, 500, col)
	if ok {
		t.Error("placement succeeded on a full collection")
	}
	if col.Len() != 1 {
		t.Errorf("collection size changed: %d", col.Len())
	}
}

func TestPointerBiasClampsIntoMargins(t *testing.T) {
	e := NewEngine(testParams(), 7)
	col := scene.NewCollection(1000)

	// Pointer at the corner: the raw sampling square extends outside the
	// canvas margins, so every candidate must be clamped inside.
	for i := 0; i < 500; i++ {
		c, ok := e.Attempt(500, 500, col, Bias{Active: true, X: 10, Y: 10})
		if !ok {
			continue
		}
		if c.X < 20 || c.X > 480 || c.Y < 20 || c.Y > 480 {
			t.Fatalf("biased candidate escaped margins: (%f, %f)", c.X, c.Y)
		}
	}
}

func TestInvariantsOverManyAttempts(t *testing.T) {
	e := NewEngine(testParams(), 42)
	col := scene.NewCollection(200)

	const eps = 1e-9
	w, h := 500.0, 500.0

	prevLen := 0
	var placed []scene.Circle

	for i := 0; i < 3000; i++ {
		bias := Bias{}
		if i%3 == 0 {
			bias = Bias{Active: true, X: 250, Y: 250}
		}
		e.Attempt(w, h, col, bias)

		// Monotonic growth, bounded
		if col.Len() < prevLen {
			t.Fatalf("collection shrank: %d -> %d", prevLen, col.Len())
		}
		if col.Len() > col.Max() {
			t.Fatalf("collection exceeded bound: %d", col.Len())
		}

		// Append-only: earlier circles unchanged
		for j, c := range placed {
			if col.At(j) != c {
				t.Fatalf("circle %d mutated after insertion", j)
			}
		}
		if col.Len() > prevLen {
			placed = append(placed, col.At(col.Len()-1))
		}
		prevLen = col.Len()
	}

	if col.Len() == 0 {
		t.Fatal("no circles placed in 3000 attempts")
	}

	// Pairwise non-overlap
	for i := 0; i < col.Len(); i++ {
		a := col.At(i)
		for j := i + 1; j < col.Len(); j++ {
			b := col.At(j)
			d := math.Hypot(a.X-b.X, a.Y-b.Y)
			if d < a.R+b.R-eps {
				t.Fatalf("circles %d and %d overlap: d=%f r1+r2=%f", i, j, d, a.R+b.R)
			}
		}
	}

	// Boundary containment
	for i := 0; i < col.Len(); i++ {
		c := col.At(i)
		limit := math.Min(math.Min(c.X, w-c.X), math.Min(c.Y, h-c.Y))
		if c.R > limit+eps {
			t.Fatalf("circle %d crosses the canvas edge: r=%f limit=%f", i, c.R, limit)
		}
	}
}
