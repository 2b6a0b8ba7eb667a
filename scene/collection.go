// Package scene owns the growing collection of placed circles.
package scene

import (
	"fmt"

	"github.com/mlange-42/ark/ecs"
)

// Circle is a read-only snapshot of a placed circle.
type Circle struct {
	X, Y, R float64
}

// Collection is the ordered, append-only set of placed circles, bounded
// at a maximum count. Circles are immutable once appended; insertion
// order determines both overlap constraints for later placements and
// noise-sampling order during rendering.
type Collection struct {
	world  *ecs.World
	mapper *ecs.Map2[Center, Disc]
	center *ecs.Map1[Center]
	disc   *ecs.Map1[Disc]

	// order preserves insertion order for rendering and scans
	order []ecs.Entity
	max   int
}

// NewCollection creates an empty collection bounded at max circles.
func NewCollection(max int) *Collection {
	world := ecs.NewWorld()

	return &Collection{
		world:  world,
		mapper: ecs.NewMap2[Center, Disc](world),
		center: ecs.NewMap1[Center](world),
		disc:   ecs.NewMap1[Disc](world),
		order:  make([]ecs.Entity, 0, max),
		max:    max,
	}
}

// Len returns the number of placed circles.
func (c *Collection) Len() int {
	return len(c.order)
}

// Max returns the collection bound.
func (c *Collection) Max() int {
	return c.max
}

// Full reports whether the collection reached its bound.
func (c *Collection) Full() bool {
	return len(c.order) >= c.max
}

// Append adds a circle. Callers must have validated the placement: a
// non-positive radius or an append past the bound is a broken invariant.
func (c *Collection) Append(x, y, r float64) {
	if r <= 0 {
		panic(fmt.Sprintf("scene: degenerate radius %f at (%f, %f)", r, x, y))
	}
	if c.Full() {
		panic("scene: append to full collection")
	}

	center := Center{X: x, Y: y}
	disc := Disc{R: r}
	entity := c.mapper.NewEntity(&center, &disc)
	c.order = append(c.order, entity)
}

// At returns the i-th circle in insertion order.
func (c *Collection) At(i int) Circle {
	entity := c.order[i]
	center := c.center.Get(entity)
	disc := c.disc.Get(entity)
	return Circle{X: center.X, Y: center.Y, R: disc.R}
}

// Each walks the circles in insertion order. Return false from fn to
// stop early.
func (c *Collection) Each(fn func(Circle) bool) {
	for _, entity := range c.order {
		center := c.center.Get(entity)
		disc := c.disc.Get(entity)
		if !fn(Circle{X: center.X, Y: center.Y, R: disc.R}) {
			return
		}
	}
}

// Radii returns the radii of all circles in insertion order.
func (c *Collection) Radii() []float64 {
	out := make([]float64, 0, len(c.order))
	for _, entity := range c.order {
		out = append(out, c.disc.Get(entity).R)
	}
	return out
}
