package optics

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// BuildAxis returns M sample coordinates for a window of side length L,
// evenly spaced by dx = L/M from -L/2 to L/2-dx. The endpoint is excluded so
// the Nyquist sample is not duplicated (numpy linspace endpoint=False
// convention).
func BuildAxis(L float64, M int) ([]float64, error) {
	if L <= 0 {
		return nil, fmt.Errorf("%w: window size L must be positive, got %g", ErrInvalidDimension, L)
	}
	if M <= 0 {
		return nil, fmt.Errorf("%w: sample count M must be positive, got %d", ErrInvalidDimension, M)
	}
	ax := make([]float64, M)
	if M == 1 {
		ax[0] = -L / 2.0
		return ax, nil
	}
	floats.Span(ax, -L/2.0, L/2.0-L/float64(M))
	return ax, nil
}

// BuildFrequencyAxis returns the spatial-frequency coordinates matching
// BuildAxis(L, M): M values spaced by 1/L from -1/(2dx) to 1/(2dx)-1/L,
// where dx = L/M.
func BuildFrequencyAxis(L float64, M int) ([]float64, error) {
	if L <= 0 {
		return nil, fmt.Errorf("%w: window size L must be positive, got %g", ErrInvalidDimension, L)
	}
	if M <= 0 {
		return nil, fmt.Errorf("%w: sample count M must be positive, got %d", ErrInvalidDimension, M)
	}
	dx := L / float64(M)
	f := make([]float64, M)
	if M == 1 {
		f[0] = -1.0 / (2.0 * dx)
		return f, nil
	}
	floats.Span(f, -1.0/(2.0*dx), 1.0/(2.0*dx)-1.0/L)
	return f, nil
}

// Meshgrid expands two 1D axes into 2D coordinate matrices: X varies along
// columns and Y along rows, so X[i][j] = xs[j] and Y[i][j] = ys[i].
func Meshgrid(xs, ys []float64) (X, Y [][]float64) {
	X = make([][]float64, len(ys))
	Y = make([][]float64, len(ys))
	for i := range ys {
		X[i] = make([]float64, len(xs))
		Y[i] = make([]float64, len(xs))
		copy(X[i], xs)
		for j := range xs {
			Y[i][j] = ys[i]
		}
	}
	return X, Y
}
