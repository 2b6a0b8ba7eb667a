package scene

// Center is a placed circle's position on the canvas.
type Center struct {
	X, Y float64
}

// Disc is a placed circle's radius.
type Disc struct {
	R float64
}
