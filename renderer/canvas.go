// Package renderer draws the circle collection as noise-rotated nested
// rings. Drawing goes through the Canvas interface so the same pass can
// target the interactive window or a vector capture backend.
package renderer

// Canvas receives stroke primitives in canvas coordinates.
type Canvas interface {
	StrokeCircle(x, y, r float64)
}
