// Package ui renders the heads-up display and the control panel.
package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Tick       int32
	Circles    int
	MaxCircles int
	FillRatio  float64
	Position   float64
	Step       float64
	FPS        int32
	Paused     bool
	Biasing    bool
}

// DrawHUD renders the heads-up display in the top-left corner.
func DrawHUD(data HUDData) {
	rl.DrawText("ringpack", 10, 10, 20, rl.DarkGray)

	rl.DrawText(
		fmt.Sprintf("Circles: %d / %d | Fill: %.1f%%", data.Circles, data.MaxCircles, data.FillRatio*100),
		10, 35, 16, rl.Gray,
	)
	rl.DrawText(
		fmt.Sprintf("Tick: %d | FPS: %d | Noise pos: %.2f step: %.3f", data.Tick, data.FPS, data.Position, data.Step),
		10, 55, 16, rl.Gray,
	)

	status := "Running"
	if data.Paused {
		status = "PAUSED"
	}
	if data.Biasing {
		status += " | pointer bias"
	}
	rl.DrawText(status, 10, 75, 16, rl.DarkGray)

	rl.DrawText("[W/S] position  [A/D] step  [C] capture  [Tab] panel  [Space] pause", 10, 95, 14, rl.LightGray)
}
