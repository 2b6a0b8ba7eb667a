package noise

// Cursor is a position and step size in the 1D noise domain.
//
// The game owns one process-wide cursor mutated by input; each render
// pass works on a value copy, so advancement during drawing never leaks
// into the next frame.
type Cursor struct {
	Position float64
	Step     float64
}

// Advance moves the position forward by one step.
func (c *Cursor) Advance() {
	c.Position += c.Step
}

// Nudge shifts the start position by delta. Negative positions are valid
// noise-space coordinates.
func (c *Cursor) Nudge(delta float64) {
	c.Position += delta
}

// AdjustStep changes the step size by delta, floored at zero.
func (c *Cursor) AdjustStep(delta float64) {
	c.Step += delta
	if c.Step < 0 {
		c.Step = 0
	}
}
