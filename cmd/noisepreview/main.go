// Noise field preview tool - plots the 1D field with seed and step sliders.
//
// Usage: go run ./cmd/noisepreview
package main

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ringpack/noise"
)

const (
	windowWidth  = 900
	windowHeight = 520
	plotWidth    = 860
	plotHeight   = 320
	plotX        = 20
	plotY        = 20
)

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Noise Field Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	seed := float32(42)
	step := float32(0.02)
	span := float32(10) // noise-space units across the plot

	field := noise.NewField(int64(seed))

	for !rl.WindowShouldClose() {
		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		// Plot frame
		rl.DrawRectangleLines(plotX, plotY, plotWidth, plotHeight, rl.DarkGray)

		// Noise curve across [0, span]
		prevY := int32(0)
		for px := int32(0); px < plotWidth; px++ {
			x := float64(px) / plotWidth * float64(span)
			v := field.Noise1D(x)
			py := plotY + plotHeight - int32(v*float64(plotHeight))
			if px > 0 {
				rl.DrawLine(plotX+px-1, prevY, plotX+px, py, rl.Blue)
			}
			prevY = py
		}

		// Cursor sample markers every step along the domain
		if step > 0 {
			for x := float64(0); x < float64(span); x += float64(step) * 25 {
				px := plotX + int32(x/float64(span)*plotWidth)
				rl.DrawLine(px, plotY, px, plotY+plotHeight, rl.Color{R: 200, G: 200, B: 200, A: 120})
			}
		}

		// Controls
		y := float32(plotY + plotHeight + 30)

		rl.DrawText("Seed", plotX, int32(y), 14, rl.Gray)
		newSeed := gui.SliderBar(
			rl.Rectangle{X: plotX + 60, Y: y, Width: 300, Height: 20},
			"0", "99999",
			seed, 0, 99999,
		)
		rl.DrawText(fmt.Sprintf("%d", int(seed)), plotX+370, int32(y)+2, 16, rl.DarkGray)
		if int64(newSeed) != int64(seed) {
			seed = newSeed
			field = noise.NewField(int64(seed))
		}
		y += 35

		rl.DrawText("Step", plotX, int32(y), 14, rl.Gray)
		step = gui.SliderBar(
			rl.Rectangle{X: plotX + 60, Y: y, Width: 300, Height: 20},
			"0", "0.2",
			step, 0, 0.2,
		)
		rl.DrawText(fmt.Sprintf("%.3f", step), plotX+370, int32(y)+2, 16, rl.DarkGray)
		y += 35

		rl.DrawText("Span", plotX, int32(y), 14, rl.Gray)
		span = gui.SliderBar(
			rl.Rectangle{X: plotX + 60, Y: y, Width: 300, Height: 20},
			"1", "50",
			span, 1, 50,
		)
		rl.DrawText(fmt.Sprintf("%.0f", span), plotX+370, int32(y)+2, 16, rl.DarkGray)

		if gui.Button(rl.Rectangle{X: plotX + 500, Y: y - 70, Width: 140, Height: 28}, "Random Seed") {
			seed = float32(rl.GetRandomValue(0, 99999))
			field = noise.NewField(int64(seed))
		}

		rl.EndDrawing()
	}
}
