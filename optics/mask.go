package optics

import "fmt"

// DrawDisk returns a size x size binary mask holding a centered disk of the
// given pixel diameter. The disk is built on a local odd-sided grid of
// radius ceil(diameter/2) about the origin, thresholded by x^2+y^2 <= r^2,
// then center-placed into the full array.
func DrawDisk(size, diameter int) ([][]float64, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: mask size must be positive, got %d", ErrInvalidDimension, size)
	}
	if diameter < 0 {
		return nil, fmt.Errorf("%w: disk diameter must be non-negative, got %d", ErrInvalidDimension, diameter)
	}
	r := (diameter + 1) / 2 // ceil(diameter/2)
	n := 2*r + 1
	disk := make([][]float64, n)
	for i := 0; i < n; i++ {
		disk[i] = make([]float64, n)
		y := i - r
		for j := 0; j < n; j++ {
			x := j - r
			if x*x+y*y <= r*r {
				disk[i][j] = 1.0
			}
		}
	}
	return CenterPlace(size, size, disk)
}

// DrawRing returns a size x size binary annulus: 1 inside the outer disk but
// outside the inner disk, 0 elsewhere. An inner diameter at or above the
// outer diameter yields an all-zero mask.
func DrawRing(size, innerDiameter, outerDiameter int) ([][]float64, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: mask size must be positive, got %d", ErrInvalidDimension, size)
	}
	if innerDiameter < 0 || outerDiameter < 0 {
		return nil, fmt.Errorf("%w: ring diameters must be non-negative, got %d and %d",
			ErrInvalidDimension, innerDiameter, outerDiameter)
	}
	ring := make([][]float64, size)
	for i := range ring {
		ring[i] = make([]float64, size)
	}
	if innerDiameter >= outerDiameter {
		return ring, nil // degenerate annulus
	}
	outer, err := DrawDisk(size, outerDiameter)
	if err != nil {
		return nil, err
	}
	inner, err := DrawDisk(size, innerDiameter)
	if err != nil {
		return nil, err
	}
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			ring[i][j] = outer[i][j] * (1.0 - inner[i][j])
		}
	}
	return ring, nil
}

// CenterPlace places small into a zero background of bgH rows by bgW columns,
// anchored at row floor((bgH-h)/2), column floor((bgW-w)/2). For odd content
// in an even background the content center lands one sample below/left of the
// array midpoint, matching the 1-based floor(n/2)+1 placement of the original
// formulation.
func CenterPlace(bgW, bgH int, small [][]float64) ([][]float64, error) {
	if bgW <= 0 || bgH <= 0 {
		return nil, fmt.Errorf("%w: background size must be positive, got %dx%d", ErrInvalidDimension, bgW, bgH)
	}
	h := len(small)
	w := 0
	if h > 0 {
		w = len(small[0])
		for i := 1; i < h; i++ {
			if len(small[i]) != w {
				return nil, fmt.Errorf("%w: ragged array at row %d", ErrInconsistentGrid, i)
			}
		}
	}
	if h > bgH || w > bgW {
		return nil, fmt.Errorf("%w: %dx%d content does not fit %dx%d background",
			ErrInconsistentGrid, h, w, bgH, bgW)
	}
	out := make([][]float64, bgH)
	for i := range out {
		out[i] = make([]float64, bgW)
	}
	row0 := (bgH - h) / 2
	col0 := (bgW - w) / 2
	for i := 0; i < h; i++ {
		copy(out[row0+i][col0:col0+w], small[i])
	}
	return out, nil
}
