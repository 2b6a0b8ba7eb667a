package game

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ringpack/renderer"
	"github.com/pthm-cable/ringpack/telemetry"
	"github.com/pthm-cable/ringpack/ui"
)

// Draw renders one full frame and consumes a pending capture request.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.RayWhite)

	// Per-frame cursor copy: advancement during this pass never reaches
	// g.cursor, so the next frame starts from the same position.
	frame := g.cursor
	canvas := &renderer.RaylibCanvas{Cam: g.cam, Color: rl.DarkGray}
	g.rings.Draw(canvas, g.collection, frame)

	radii := g.collection.Radii()
	ui.DrawHUD(ui.HUDData{
		Tick:       g.tick,
		Circles:    g.collection.Len(),
		MaxCircles: g.collection.Max(),
		FillRatio:  telemetry.FillRatio(radii, g.cfg.Derived.CanvasW, g.cfg.Derived.CanvasH),
		Position:   g.cursor.Position,
		Step:       g.cursor.Step,
		FPS:        rl.GetFPS(),
		Paused:     g.paused,
		Biasing:    g.biasing,
	})

	act := g.panel.Draw(&g.cursor)
	if act.CaptureRequested {
		g.captureRequested = true
	}
	if act.ResetView {
		g.cam.Reset()
	}

	rl.EndDrawing()

	g.consumeCapture()
}

// consumeCapture writes the current frame as SVG when a capture was
// requested, then clears the flag.
func (g *Game) consumeCapture() {
	if !g.captureRequested {
		return
	}
	g.captureRequested = false

	path, err := g.writer.Save(g.cfg.Screen.Width, g.cfg.Screen.Height, func(c renderer.Canvas) {
		// Same pass, same cursor copy semantics as the interactive frame.
		g.rings.Draw(c, g.collection, g.cursor)
	})
	if err != nil {
		slog.Error("capture failed", "error", err)
		return
	}

	slog.Info("capture written", "path", path, "circles", g.collection.Len())
}
