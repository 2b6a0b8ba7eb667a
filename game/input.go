package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ringpack/packing"
)

// handleInput processes keyboard input and camera controls. All four
// cursor adjustments mutate the process-wide cursor only; the per-frame
// copy is made in Draw.
func (g *Game) handleInput() {
	g.handleResize()

	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}

	if rl.IsKeyPressed(rl.KeyTab) {
		g.panel.Toggle()
	}

	// Capture trigger, consumed once after the next render pass
	if rl.IsKeyPressed(rl.KeyC) {
		g.captureRequested = true
	}

	// Noise cursor: start position up/down, step up/down (floored at 0)
	if rl.IsKeyPressed(rl.KeyW) {
		g.cursor.Nudge(g.cfg.Noise.PositionAdjust)
	}
	if rl.IsKeyPressed(rl.KeyS) {
		g.cursor.Nudge(-g.cfg.Noise.PositionAdjust)
	}
	if rl.IsKeyPressed(rl.KeyD) {
		g.cursor.AdjustStep(g.cfg.Noise.StepAdjust)
	}
	if rl.IsKeyPressed(rl.KeyA) {
		g.cursor.AdjustStep(-g.cfg.Noise.StepAdjust)
	}

	g.handleCameraInput()
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h

	if g.cam != nil {
		g.cam.Resize(w, h)
	}
}

// handleCameraInput processes camera pan/zoom controls.
func (g *Game) handleCameraInput() {
	if g.cam == nil {
		return
	}

	// Pan speed scales inversely with zoom for natural feel
	panSpeed := float32(8.0) / g.cam.Zoom

	if rl.IsKeyDown(rl.KeyRight) {
		g.cam.Pan(panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyLeft) {
		g.cam.Pan(-panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyDown) {
		g.cam.Pan(0, panSpeed)
	}
	if rl.IsKeyDown(rl.KeyUp) {
		g.cam.Pan(0, -panSpeed)
	}

	// Zoom controls: mouse wheel or +/- keys
	wheelMove := rl.GetMouseWheelMove()
	if wheelMove != 0 {
		zoomFactor := float32(1.0) + wheelMove*0.1
		g.cam.ZoomBy(zoomFactor)
	}
	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		g.cam.ZoomBy(1.25)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		g.cam.ZoomBy(0.8)
	}

	if rl.IsKeyPressed(rl.KeyHome) {
		g.cam.Reset()
	}
}

// pointerBias reads the mouse and returns the placement bias for this
// tick. Clicks on the control panel never place circles.
func (g *Game) pointerBias() packing.Bias {
	if !rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		return packing.Bias{}
	}

	m := rl.GetMousePosition()
	if g.panel.Contains(m.X, m.Y) {
		return packing.Bias{}
	}

	wx, wy := g.cam.ScreenToWorld(m.X, m.Y)
	return packing.Bias{Active: true, X: float64(wx), Y: float64(wy)}
}
