// Package optics implements grid-sampled construction and free-space
// propagation of scalar coherent optical fields: Laguerre–Gaussian mode
// generation, circular and annular aperture masks, a thin-lens phase
// operator, an exact angular-spectrum propagator, a scaled two-step Fresnel
// propagator, and sampling validity diagnostics.
//
// Fields are square [][]complex128 matrices of amplitude samples on a uniform
// grid; they carry no coordinate metadata and are paired with axes built by
// BuildAxis. All functions treat their inputs as read-only and return fresh
// arrays.
package optics

import (
	"errors"
	"fmt"
	"math/cmplx"
)

var (
	// ErrInvalidDimension reports a non-positive window, sample count,
	// radius, or a mismatched array shape.
	ErrInvalidDimension = errors.New("invalid dimension")

	// ErrDegenerateParameter reports a parameter that would divide by zero,
	// such as a zero propagation distance or zero focal length.
	ErrDegenerateParameter = errors.New("degenerate parameter")

	// ErrInconsistentGrid reports a mask or field whose size is incompatible
	// with the requested placement or target size.
	ErrInconsistentGrid = errors.New("inconsistent grid")
)

// squareSize returns M for an MxM field.
func squareSize(field [][]complex128) (int, error) {
	m := len(field)
	if m == 0 {
		return 0, fmt.Errorf("%w: empty field", ErrInvalidDimension)
	}
	for i := range field {
		if len(field[i]) != m {
			return 0, fmt.Errorf("%w: row %d has %d samples, want %d", ErrInvalidDimension, i, len(field[i]), m)
		}
	}
	return m, nil
}

// Intensity returns |u|^2 at every grid point.
func Intensity(field [][]complex128) [][]float64 {
	out := make([][]float64, len(field))
	parallelRange(0, len(field), func(i int) {
		row := make([]float64, len(field[i]))
		for j, u := range field[i] {
			row[j] = real(u)*real(u) + imag(u)*imag(u)
		}
		out[i] = row
	})
	return out
}

// Phase returns the wrapped argument of the field in (-pi, pi].
func Phase(field [][]complex128) [][]float64 {
	out := make([][]float64, len(field))
	parallelRange(0, len(field), func(i int) {
		row := make([]float64, len(field[i]))
		for j, u := range field[i] {
			row[j] = cmplx.Phase(u)
		}
		out[i] = row
	})
	return out
}

// TotalEnergy returns the sum of |u|^2 over the whole grid.
func TotalEnergy(field [][]complex128) float64 {
	total := 0.0
	for i := range field {
		for _, u := range field[i] {
			total += real(u)*real(u) + imag(u)*imag(u)
		}
	}
	return total
}

// ApplyMask multiplies the field elementwise by a binary (or apodizing) mask
// of the same shape.
func ApplyMask(field [][]complex128, mask [][]float64) ([][]complex128, error) {
	m, err := squareSize(field)
	if err != nil {
		return nil, err
	}
	if len(mask) != m {
		return nil, fmt.Errorf("%w: mask is %dx, field is %dx%d", ErrInconsistentGrid, len(mask), m, m)
	}
	for i := range mask {
		if len(mask[i]) != m {
			return nil, fmt.Errorf("%w: mask row %d has %d samples, want %d", ErrInconsistentGrid, i, len(mask[i]), m)
		}
	}
	out := make([][]complex128, m)
	parallelRange(0, m, func(i int) {
		row := make([]complex128, m)
		for j := range row {
			row[j] = field[i][j] * complex(mask[i][j], 0)
		}
		out[i] = row
	})
	return out, nil
}

func copyField(field [][]complex128) [][]complex128 {
	out := make([][]complex128, len(field))
	for i := range field {
		out[i] = make([]complex128, len(field[i]))
		copy(out[i], field[i])
	}
	return out
}
