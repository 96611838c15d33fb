// Package profile extracts intensity cross-sections from a square
// observation-plane intensity matrix and renders them as line plots. A cut is
// a chord across the observation window given by an angle and a perpendicular
// offset from the window center; intensity is sampled along it at one-pixel
// steps with bilinear interpolation.
package profile

import (
	"errors"
	"fmt"
	"math"
)

// SamplePoint is a point along the cut with pixel coordinates and distance
// from the cut start.
type SamplePoint struct {
	X                 float64 // X coordinate in grid pixels
	Y                 float64 // Y coordinate in grid pixels
	DistanceFromStart float64 // distance from the cut start in pixels
}

// Point is a single sample of the extracted profile.
type Point struct {
	Distance  float64 // distance from the cut start, in window units
	Intensity float64 // interpolated intensity value
}

// Cut defines a chord across the observation window.
type Cut struct {
	// Input parameters
	AngleDegrees     float64 // chord direction, counter-clockwise from the +y axis
	OffsetFromCenter float64 // perpendicular offset from the window center, window units
	WindowSize       float64 // observation window side length, window units
	GridPoints       int     // samples across the window

	// Computed values
	StartX, StartY float64 // cut start in fractional pixel coordinates
	EndX, EndY     float64 // cut end in fractional pixel coordinates
	SamplePoints   []SamplePoint
}

// boundaryPoint is used internally for the window-boundary intersection math.
type boundaryPoint struct {
	X, Y     float64
	Position string // "top", "bottom", "left", or "right"
}

// ErrNoIntersection is returned when the cut misses the observation window.
var ErrNoIntersection = errors.New("cut does not intersect the observation window")

// Compute locates where the chord enters and leaves the window and fixes the
// cut's start and end points. The start is the intersection with the smaller
// y (then smaller x), so extraction order is deterministic.
func (c *Cut) Compute() error {
	if c.GridPoints < 2 {
		return fmt.Errorf("grid must have at least 2 points, got %d", c.GridPoints)
	}
	if c.WindowSize <= 0 {
		return fmt.Errorf("window size must be positive, got %g", c.WindowSize)
	}

	w := float64(c.GridPoints - 1)
	theta := c.AngleDegrees * math.Pi / 180.0

	// Offset from window units to pixels.
	d := (c.OffsetFromCenter / c.WindowSize) * float64(c.GridPoints)

	p1, p2, err := chordSquareIntersections(w, theta, d)
	if err != nil {
		return fmt.Errorf("cut misses window: %w", err)
	}

	// Move the origin from the window center to the upper-left corner.
	delta := float64(c.GridPoints) / 2.0
	p1.X += delta
	p1.Y += delta
	p2.X += delta
	p2.Y += delta

	if p2.Y < p1.Y || (p2.Y == p1.Y && p2.X < p1.X) {
		p1, p2 = p2, p1
	}
	c.StartX, c.StartY = p1.X, p1.Y
	c.EndX, c.EndY = p2.X, p2.Y
	return nil
}

// chordSquareIntersections finds where a line intersects a square of width w
// centered at the origin. theta is the line direction measured
// counter-clockwise from the y axis; d is the perpendicular distance from the
// origin to the line.
func chordSquareIntersections(w, theta, d float64) (boundaryPoint, boundaryPoint, error) {
	halfW := w / 2.0

	// Direction vector of the line and its normal (rotated 90 degrees CW).
	dx := math.Sin(theta)
	dy := math.Cos(theta)
	nx := dy
	ny := -dx

	// A point on the line: offset from the origin along the normal.
	x0 := d * nx
	y0 := d * ny

	var hits []boundaryPoint

	// Vertical edges: x = +/- halfW.
	if math.Abs(dx) > 1e-12 {
		for _, edge := range []struct {
			x    float64
			name string
		}{{halfW, "right"}, {-halfW, "left"}} {
			t := (edge.x - x0) / dx
			y := y0 + t*dy
			if y >= -halfW && y <= halfW {
				hits = append(hits, boundaryPoint{edge.x, y, edge.name})
			}
		}
	}

	// Horizontal edges: y = +/- halfW.
	if math.Abs(dy) > 1e-12 {
		for _, edge := range []struct {
			y    float64
			name string
		}{{halfW, "bottom"}, {-halfW, "top"}} {
			t := (edge.y - y0) / dy
			x := x0 + t*dx
			if x >= -halfW && x <= halfW {
				hits = append(hits, boundaryPoint{x, edge.y, edge.name})
			}
		}
	}

	hits = removeDuplicatePoints(hits, 1e-9)
	if len(hits) < 2 {
		return boundaryPoint{}, boundaryPoint{}, ErrNoIntersection
	}
	return hits[0], hits[1], nil
}

func removeDuplicatePoints(pts []boundaryPoint, tol float64) []boundaryPoint {
	var result []boundaryPoint
	for _, p := range pts {
		duplicate := false
		for _, r := range result {
			if math.Abs(p.X-r.X) < tol && math.Abs(p.Y-r.Y) < tol {
				duplicate = true
				break
			}
		}
		if !duplicate {
			result = append(result, p)
		}
	}
	return result
}

// ComputeSamplePoints generates sample points along the cut at one-pixel
// intervals.
func (c *Cut) ComputeSamplePoints() {
	xLength := c.EndX - c.StartX
	yLength := c.EndY - c.StartY
	cutLength := math.Hypot(xLength, yLength)

	dXPerStep := xLength / cutLength
	dYPerStep := yLength / cutLength

	c.SamplePoints = nil
	for i := 0; i < int(math.Round(cutLength)); i++ {
		k := float64(i)
		c.SamplePoints = append(c.SamplePoints, SamplePoint{
			X:                 c.StartX + k*dXPerStep,
			Y:                 c.StartY + k*dYPerStep,
			DistanceFromStart: k,
		})
	}
}

// interpolate performs bilinear interpolation on a square matrix at the given
// fractional (x, y) coordinates, clamped to the valid range.
func interpolate(matrix [][]float64, x, y float64) float64 {
	n := len(matrix)
	if n == 0 {
		return 0
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	if x >= float64(n-1) {
		x = float64(n-1) - 1e-9
	}
	if y >= float64(n-1) {
		y = float64(n-1) - 1e-9
	}

	x0 := int(x)
	y0 := int(y)
	xFrac := x - float64(x0)
	yFrac := y - float64(y0)

	v00 := matrix[y0][x0]
	v01 := matrix[y0][x0+1]
	v10 := matrix[y0+1][x0]
	v11 := matrix[y0+1][x0+1]

	v0 := v00*(1-xFrac) + v01*xFrac
	v1 := v10*(1-xFrac) + v11*xFrac
	return v0*(1-yFrac) + v1*yFrac
}

// Extract samples the intensity matrix along the cut and returns the profile
// with distances converted to window units.
func Extract(intensity [][]float64, c *Cut) []Point {
	if len(c.SamplePoints) == 0 {
		c.ComputeSamplePoints()
	}
	unitsPerPixel := c.WindowSize / float64(c.GridPoints)

	points := make([]Point, len(c.SamplePoints))
	for i, sp := range c.SamplePoints {
		points[i] = Point{
			Distance:  sp.DistanceFromStart * unitsPerPixel,
			Intensity: interpolate(intensity, sp.X, sp.Y),
		}
	}
	return points
}
