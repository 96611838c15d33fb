package profile_test

import (
	"fmt"
	"log"

	"github.com/bob-anderson-ok/LGpropagation/profile"
)

// Example demonstrates how to use the profile package to:
// 1. Define a cut across the observation window by angle and offset
// 2. Compute the window-boundary intersections and sample points
// 3. Extract an intensity profile along the cut
func Example() {
	// Define a vertical cut through the window center. Angles are measured
	// counter-clockwise from the +y axis, offsets perpendicular to the cut.
	cut := &profile.Cut{
		AngleDegrees:     0,
		OffsetFromCenter: 0,
		WindowSize:       10e-3, // 10 mm observation window
		GridPoints:       100,
	}

	// Locate where the cut enters and leaves the window.
	if err := cut.Compute(); err != nil {
		log.Fatalf("Failed to compute cut: %v", err)
	}
	fmt.Printf("Cut start: (%.1f, %.1f)\n", cut.StartX, cut.StartY)
	fmt.Printf("Cut end: (%.1f, %.1f)\n", cut.EndX, cut.EndY)

	// Generate sample points at one-pixel intervals along the cut.
	cut.ComputeSamplePoints()
	fmt.Printf("Generated %d sample points along the cut\n", len(cut.SamplePoints))

	// Extract the profile from a synthetic intensity matrix. A real caller
	// would pass the observation-plane intensity from a propagation run.
	intensity := make([][]float64, cut.GridPoints)
	for i := range intensity {
		intensity[i] = make([]float64, cut.GridPoints)
		for j := range intensity[i] {
			intensity[i][j] = 1.0
		}
	}
	points := profile.Extract(intensity, cut)
	fmt.Printf("Extracted %d profile samples\n", len(points))
	fmt.Printf("First sample: distance %.4f, intensity %.1f\n", points[0].Distance, points[0].Intensity)

	// Output:
	// Cut start: (50.0, 0.5)
	// Cut end: (50.0, 99.5)
	// Generated 99 sample points along the cut
	// Extracted 99 profile samples
	// First sample: distance 0.0000, intensity 1.0
}
