// Package telemetry aggregates packing statistics over tick windows and
// writes them to CSV.
package telemetry

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a tick window.
type WindowStats struct {
	WindowEndTick int32 `csv:"window_end"`

	// Collection state at window end
	Circles int `csv:"circles"`

	// Placement events during the window
	Attempts int     `csv:"attempts"`
	Placed   int     `csv:"placed"`
	Rejected int     `csv:"rejected"`
	Biased   int     `csv:"biased"`
	Accept   float64 `csv:"accept_rate"`

	// Radius distribution at window end
	RadiusMean float64 `csv:"radius_mean"`
	RadiusStd  float64 `csv:"radius_std"`

	// Fraction of canvas area covered by circles
	FillRatio float64 `csv:"fill_ratio"`
}

// ComputeRadiusStats calculates the mean and standard deviation of the
// placed radii. Returns zeros for an empty collection.
func ComputeRadiusStats(radii []float64) (mean, std float64) {
	if len(radii) == 0 {
		return 0, 0
	}
	mean = stat.Mean(radii, nil)
	if len(radii) < 2 {
		return mean, 0
	}
	std = stat.StdDev(radii, nil)
	return mean, std
}

// FillRatio returns the fraction of a w-by-h canvas covered by circles
// with the given radii. Circles never overlap, so areas sum directly.
func FillRatio(radii []float64, w, h float64) float64 {
	if w <= 0 || h <= 0 {
		return 0
	}
	var area float64
	for _, r := range radii {
		area += math.Pi * r * r
	}
	return area / (w * h)
}
