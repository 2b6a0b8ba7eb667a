// Package game wires the packing engine, noise field and renderer into
// the per-frame tick.
package game

import (
	"log/slog"

	"github.com/pthm-cable/ringpack/camera"
	"github.com/pthm-cable/ringpack/capture"
	"github.com/pthm-cable/ringpack/config"
	"github.com/pthm-cable/ringpack/noise"
	"github.com/pthm-cable/ringpack/packing"
	"github.com/pthm-cable/ringpack/renderer"
	"github.com/pthm-cable/ringpack/scene"
	"github.com/pthm-cable/ringpack/telemetry"
	"github.com/pthm-cable/ringpack/ui"
)

// Options configures a new Game.
type Options struct {
	Seed       int64
	LogStats   bool
	OutputDir  string
	CaptureDir string
	Headless   bool
}

// Game holds the complete application state. One Update plus one Draw is
// a tick: control input, at most one placement attempt, one render pass.
type Game struct {
	cfg *config.Config

	// Core state
	collection *scene.Collection
	engine     *packing.Engine
	field      *noise.Field

	// Process-wide cursor; render passes work on value copies
	cursor noise.Cursor

	// Rendering and host surface
	rings  *renderer.Rings
	cam    *camera.Camera
	panel  *ui.Panel
	writer *capture.Writer

	// Telemetry
	collector *telemetry.Collector
	output    *telemetry.OutputManager

	// State
	tick             int32
	paused           bool
	biasing          bool
	captureRequested bool
	logStats         bool
	headless         bool

	screenWidth, screenHeight float32
}

// NewGameWithOptions creates a game instance. Config must be initialized.
func NewGameWithOptions(opts Options) *Game {
	cfg := config.Cfg()

	captureDir := opts.CaptureDir
	if captureDir == "" {
		captureDir = cfg.Capture.Dir
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		slog.Error("failed to create output manager", "error", err)
		output = nil
	}
	if err := output.WriteConfig(cfg); err != nil {
		slog.Error("failed to snapshot config", "error", err)
	}

	field := noise.NewField(opts.Seed)

	g := &Game{
		cfg:        cfg,
		collection: scene.NewCollection(cfg.Packing.MaxCircles),
		engine: packing.NewEngine(packing.Params{
			MinRadius:   cfg.Packing.MinRadius,
			MaxRadius:   cfg.Packing.MaxRadius,
			PointerRect: cfg.Packing.PointerRect,
			PointerSeed: cfg.Packing.PointerSeed,
		}, opts.Seed),
		field: field,
		cursor: noise.Cursor{
			Position: cfg.Noise.Position,
			Step:     cfg.Noise.Step,
		},
		rings:        renderer.NewRings(cfg.Rings.Gap, field),
		writer:       capture.NewWriter(captureDir),
		collector:    telemetry.NewCollector(cfg.Telemetry.StatsWindow),
		output:       output,
		logStats:     opts.LogStats,
		headless:     opts.Headless,
		screenWidth:  float32(cfg.Screen.Width),
		screenHeight: float32(cfg.Screen.Height),
	}

	if !opts.Headless {
		g.cam = camera.New(g.screenWidth, g.screenHeight,
			float32(cfg.Derived.CanvasW), float32(cfg.Derived.CanvasH))
		g.panel = ui.NewPanel(int32(cfg.Screen.Width)-270, 10, 260)
	}

	return g
}

// Update runs input handling and one simulation tick.
func (g *Game) Update() {
	g.handleInput()

	if g.paused {
		return
	}

	bias := g.pointerBias()
	g.biasing = bias.Active
	g.step(bias)
}

// UpdateHeadless runs one tick without any input or drawing.
func (g *Game) UpdateHeadless() {
	g.step(packing.Bias{})
}

// step performs one placement attempt and advances telemetry.
func (g *Game) step(bias packing.Bias) {
	_, placed := g.engine.Attempt(g.cfg.Derived.CanvasW, g.cfg.Derived.CanvasH, g.collection, bias)
	g.collector.RecordAttempt(placed, bias.Active)

	g.tick++
	g.flushTelemetry()
}

// flushTelemetry emits window stats at window boundaries.
func (g *Game) flushTelemetry() {
	stats, ok := g.collector.Tick(g.tick)
	if !ok {
		return
	}

	radii := g.collection.Radii()
	stats.Circles = g.collection.Len()
	stats.RadiusMean, stats.RadiusStd = telemetry.ComputeRadiusStats(radii)
	stats.FillRatio = telemetry.FillRatio(radii, g.cfg.Derived.CanvasW, g.cfg.Derived.CanvasH)

	if g.logStats {
		g.collector.Log(stats)
	}
	if err := g.output.WriteWindow(stats); err != nil {
		slog.Error("writing telemetry", "error", err)
	}
}

// RequestCapture marks the next frame for vector export.
func (g *Game) RequestCapture() {
	g.captureRequested = true
}

// Tick returns the current tick.
func (g *Game) Tick() int32 {
	return g.tick
}

// Circles returns the number of placed circles.
func (g *Game) Circles() int {
	return g.collection.Len()
}

// Unload releases all resources.
func (g *Game) Unload() {
	if err := g.output.Close(); err != nil {
		slog.Error("closing telemetry output", "error", err)
	}
}
