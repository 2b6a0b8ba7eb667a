// Package packing implements the greedy circle placement heuristic.
package packing

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/pthm-cable/ringpack/scene"
)

// Params holds the placement tuning knobs.
type Params struct {
	MinRadius   float64 // seed radius for unbiased candidates
	MaxRadius   float64 // upper clamp on the grown radius
	PointerRect float64 // side of the sampling square around the pointer
	PointerSeed float64 // seed radius for pointer-biased candidates
}

// Bias selects pointer-biased placement. When inactive, candidates are
// drawn uniformly from the canvas interior.
type Bias struct {
	Active bool
	X, Y   float64
}

// Engine proposes one candidate circle per call and appends it to the
// collection when it fits. Most calls place nothing; that is the
// expected steady state as the canvas fills.
type Engine struct {
	params Params
	rng    *rand.Rand
}

// NewEngine creates a placement engine with a seeded RNG.
func NewEngine(params Params, seed int64) *Engine {
	return &Engine{
		params: params,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Attempt makes one placement attempt on a w-by-h canvas. It returns the
// placed circle and true, or a zero circle and false when the candidate
// was rejected or the collection is full.
func (e *Engine) Attempt(w, h float64, col *scene.Collection, bias Bias) (scene.Circle, bool) {
	var x, y, seedR float64
	if bias.Active {
		// Sample a small square around the pointer, then clamp into the
		// valid margin. The tiny seed radius allows dense placement.
		x = bias.X + (e.rng.Float64()-0.5)*e.params.PointerRect
		y = bias.Y + (e.rng.Float64()-0.5)*e.params.PointerRect
		x = clamp(x, e.params.MinRadius, w-e.params.MinRadius)
		y = clamp(y, e.params.MinRadius, h-e.params.MinRadius)
		seedR = e.params.PointerSeed
	} else {
		// Inset by the maximum radius so edge distance never constrains
		// below the clamp on the unbiased path.
		x = e.params.MaxRadius + e.rng.Float64()*(w-2*e.params.MaxRadius)
		y = e.params.MaxRadius + e.rng.Float64()*(h-2*e.params.MaxRadius)
		seedR = e.params.MinRadius
	}

	return e.tryAt(x, y, seedR, w, h, col)
}

// tryAt runs the overlap test and radius growth for a fixed candidate
// center. Split out from Attempt so placement semantics are testable
// without the RNG.
func (e *Engine) tryAt(x, y, seedR, w, h float64, col *scene.Collection) (scene.Circle, bool) {
	// Overlap test: short-circuit on the first conflict.
	rejected := false
	col.Each(func(c scene.Circle) bool {
		d := math.Hypot(x-c.X, y-c.Y)
		if d < seedR+c.R {
			rejected = true
			return false
		}
		return true
	})
	if rejected || col.Full() {
		return scene.Circle{}, false
	}

	// Grow to the maximal disjoint radius: fold per-circle slack, clamp
	// to the global maximum, then to the four canvas edges.
	r := w
	col.Each(func(c scene.Circle) bool {
		slack := math.Hypot(x-c.X, y-c.Y) - c.R
		if slack < r {
			r = slack
		}
		return true
	})
	if r > e.params.MaxRadius {
		r = e.params.MaxRadius
	}
	for _, edge := range [4]float64{x, w - x, y, h - y} {
		if edge < r {
			r = edge
		}
	}

	if r <= 0 {
		panic(fmt.Sprintf("packing: degenerate radius %f for candidate (%f, %f)", r, x, y))
	}

	col.Append(x, y, r)
	return scene.Circle{X: x, Y: y, R: r}, true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
