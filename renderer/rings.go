package renderer

import (
	"math"

	"github.com/pthm-cable/ringpack/noise"
	"github.com/pthm-cable/ringpack/scene"
)

// Rings renders each placed circle as concentric rings whose rotation is
// sampled from the noise field.
type Rings struct {
	gap   float64
	field *noise.Field
}

// NewRings creates a ring renderer with the given inter-ring gap.
func NewRings(gap float64, field *noise.Field) *Rings {
	return &Rings{gap: gap, field: field}
}

// Draw walks the collection in insertion order and strokes the nested
// rings for every circle. The cursor is taken by value: advancement
// during this pass never reaches the caller's cursor.
func (r *Rings) Draw(canvas Canvas, col *scene.Collection, cur noise.Cursor) {
	col.Each(func(c scene.Circle) bool {
		angle := r.field.Range(cur.Position, 0, 2*math.Pi)
		r.drawNested(canvas, c, angle)
		cur.Advance()
		return true
	})
}

// drawNested strokes rings of decreasing diameter. Each ring center is
// offset from the circle center by (d/2 - R) along the rotated axis, so
// the outermost ring coincides with the circle boundary and inner rings
// slide toward one side, giving the conical look.
func (r *Rings) drawNested(canvas Canvas, c scene.Circle, angle float64) {
	sin, cos := math.Sincos(angle)
	for d := 2 * c.R; d > 0; d -= r.gap {
		off := d/2 - c.R
		canvas.StrokeCircle(c.X+cos*off, c.Y+sin*off, d/2)
	}
}
