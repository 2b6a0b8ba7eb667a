// Package noise provides the 1D gradient noise field and the sampling
// cursor that drives ring rotation.
package noise

import (
	"math"
	"math/rand"
)

// Field generates coherent 1D noise values.
type Field struct {
	perm [512]int
}

// NewField creates a new noise field with a seed-shuffled permutation table.
func NewField(seed int64) *Field {
	f := &Field{}
	rng := rand.New(rand.NewSource(seed))

	// Initialize permutation table
	var perm [256]int
	for i := range perm {
		perm[i] = i
	}

	// Shuffle
	for i := len(perm) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		perm[i], perm[j] = perm[j], perm[i]
	}

	// Duplicate
	for i := 0; i < 256; i++ {
		f.perm[i] = perm[i]
		f.perm[i+256] = perm[i]
	}

	return f
}

// Noise1D returns a noise value in [0, 1) for a position on the real line.
// Values are deterministic per field and vary smoothly with x.
func (f *Field) Noise1D(x float64) float64 {
	// Find unit cell
	X := int(math.Floor(x)) & 255

	// Relative position in cell
	x -= math.Floor(x)

	u := fade(x)

	// Blend gradients at the two cell corners; raw range is [-2, 2]
	n := lerp(u, grad1D(f.perm[X], x), grad1D(f.perm[X+1], x-1))

	// Remap to [0, 1); lattice points sit at 0.5
	v := n/4 + 0.5
	if v >= 1 {
		v = math.Nextafter(1, 0)
	}
	if v < 0 {
		v = 0
	}
	return v
}

// Range maps a noise sample at x into [min, max).
func (f *Field) Range(x, min, max float64) float64 {
	return min + f.Noise1D(x)*(max-min)
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

func grad1D(hash int, x float64) float64 {
	h := hash & 7
	g := 1 + float64(h&3) // gradient magnitude 1..4
	if h&4 != 0 {
		g = -g
	}
	return g * x
}
