package optics

import (
	"fmt"
	"math"
	"math/cmplx"
)

// ThinLens applies an ideal thin lens of focal length zf and circular pupil
// radius to the field sampled on a window of side L. Inside the pupil the
// field is multiplied by the quadratic lens phase exp(-i*k*r^2/(2*zf));
// outside it is zeroed. zf > 0 converges, zf < 0 diverges.
func ThinLens(field [][]complex128, L, lambda, zf, radius float64) ([][]complex128, error) {
	M, err := squareSize(field)
	if err != nil {
		return nil, err
	}
	if L <= 0 {
		return nil, fmt.Errorf("%w: window size L must be positive, got %g", ErrInvalidDimension, L)
	}
	if lambda <= 0 {
		return nil, fmt.Errorf("%w: wavelength must be positive, got %g", ErrInvalidDimension, lambda)
	}
	if radius <= 0 {
		return nil, fmt.Errorf("%w: pupil radius must be positive, got %g", ErrInvalidDimension, radius)
	}
	if zf == 0 {
		return nil, fmt.Errorf("%w: zero focal length", ErrDegenerateParameter)
	}

	ax, err := BuildAxis(L, M)
	if err != nil {
		return nil, err
	}
	k := 2.0 * math.Pi / lambda
	r2Max := radius * radius

	out := make([][]complex128, M)
	parallelRange(0, M, func(i int) {
		y := ax[i]
		row := make([]complex128, M)
		for j, x := range ax {
			r2 := x*x + y*y
			if r2 <= r2Max {
				row[j] = field[i][j] * cmplx.Exp(complex(0, -k*r2/(2.0*zf)))
			}
		}
		out[i] = row
	})
	return out, nil
}
