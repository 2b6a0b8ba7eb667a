package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ringpack/camera"
)

// RaylibCanvas strokes onto the interactive window, mapping canvas
// coordinates through the camera viewport.
type RaylibCanvas struct {
	Cam   *camera.Camera
	Color rl.Color
}

// StrokeCircle draws a circle outline, culled against the viewport.
func (rc *RaylibCanvas) StrokeCircle(x, y, r float64) {
	if rc.Cam == nil {
		rl.DrawCircleLines(int32(x), int32(y), float32(r), rc.Color)
		return
	}
	if !rc.Cam.IsVisible(float32(x), float32(y), float32(r)) {
		return
	}
	sx, sy := rc.Cam.WorldToScreen(float32(x), float32(y))
	rl.DrawCircleLines(int32(sx), int32(sy), float32(r)*rc.Cam.Zoom, rc.Color)
}
