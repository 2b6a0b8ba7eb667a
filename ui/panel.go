package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ringpack/noise"
)

// PanelAction reports one-shot requests made through the control panel.
type PanelAction struct {
	CaptureRequested bool
	ResetView        bool
}

// Panel is the toggleable control panel exposing the noise cursor
// adjustments as sliders.
type Panel struct {
	x, y    int32
	width   int32
	visible bool

	// Slider ranges
	maxPosition float32
	maxStep     float32
}

// NewPanel creates a hidden control panel.
func NewPanel(x, y, width int32) *Panel {
	return &Panel{
		x:           x,
		y:           y,
		width:       width,
		maxPosition: 10,
		maxStep:     0.2,
	}
}

// Toggle switches panel visibility.
func (p *Panel) Toggle() bool {
	p.visible = !p.visible
	return p.visible
}

// IsVisible returns whether the panel is shown.
func (p *Panel) IsVisible() bool {
	return p.visible
}

// Contains reports whether a screen point lies on the panel, so pointer
// clicks over it do not place circles.
func (p *Panel) Contains(sx, sy float32) bool {
	if !p.visible {
		return false
	}
	return sx >= float32(p.x) && sx <= float32(p.x+p.width) &&
		sy >= float32(p.y) && sy <= float32(p.y+p.height())
}

func (p *Panel) height() int32 {
	return 170
}

// Draw renders the panel and applies slider edits directly to the
// process-wide cursor. Returned actions are valid for this frame only.
func (p *Panel) Draw(cur *noise.Cursor) PanelAction {
	if !p.visible {
		return PanelAction{}
	}

	var act PanelAction

	pad := int32(10)
	rl.DrawRectangle(p.x, p.y, p.width, p.height(), rl.Color{R: 245, G: 245, B: 245, A: 235})
	rl.DrawRectangleLines(p.x, p.y, p.width, p.height(), rl.LightGray)

	y := p.y + pad
	rl.DrawText("Noise cursor", p.x+pad, y, 16, rl.DarkGray)
	y += 26

	sliderW := float32(p.width - pad*2 - 50)

	rl.DrawText("start position", p.x+pad, y, 12, rl.Gray)
	y += 16
	newPos := gui.SliderBar(
		rl.Rectangle{X: float32(p.x + pad), Y: float32(y), Width: sliderW, Height: 18},
		"", "",
		float32(cur.Position), -p.maxPosition, p.maxPosition,
	)
	rl.DrawText(fmt.Sprintf("%.2f", cur.Position), p.x+pad+int32(sliderW)+6, y+2, 14, rl.DarkGray)
	if newPos != float32(cur.Position) {
		cur.Position = float64(newPos)
	}
	y += 28

	rl.DrawText("step", p.x+pad, y, 12, rl.Gray)
	y += 16
	newStep := gui.SliderBar(
		rl.Rectangle{X: float32(p.x + pad), Y: float32(y), Width: sliderW, Height: 18},
		"", "",
		float32(cur.Step), 0, p.maxStep,
	)
	rl.DrawText(fmt.Sprintf("%.3f", cur.Step), p.x+pad+int32(sliderW)+6, y+2, 14, rl.DarkGray)
	if newStep != float32(cur.Step) {
		cur.Step = float64(newStep)
		if cur.Step < 0 {
			cur.Step = 0
		}
	}
	y += 30

	if gui.Button(rl.Rectangle{X: float32(p.x + pad), Y: float32(y), Width: 110, Height: 26}, "Capture SVG") {
		act.CaptureRequested = true
	}
	if gui.Button(rl.Rectangle{X: float32(p.x+pad) + 120, Y: float32(y), Width: 110, Height: 26}, "Reset view") {
		act.ResetView = true
	}

	return act
}
