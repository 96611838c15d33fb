package optics

import (
	"fmt"
	"math"
	"math/cmplx"
)

// AngularSpectrum propagates the field over a distance z through free space
// using the exact transfer-function (angular spectrum) method. The source and
// observation planes share the same window of side L and the same sampling
// grid; there is no magnification. Runs on the Host backend.
func AngularSpectrum(field [][]complex128, L, lambda, z float64) ([][]complex128, error) {
	return AngularSpectrumOn(Host, field, L, lambda, z)
}

// AngularSpectrumOn is AngularSpectrum on an explicit execution backend.
//
// The transfer function is H = exp(i*kz*z) with
//
//	kz = sqrt((2*pi)^2 * (1/lambda^2 - fx^2 - fy^2))
//
// for propagating spatial frequencies. Frequencies beyond 1/lambda are
// evanescent: there kz is imaginary and H decays as exp(-sqrt(|delta|)*z).
// The branch is taken explicitly on the sign of the radicand rather than
// through a complex square root, whose branch cut would silently turn the
// decay into growth.
func AngularSpectrumOn(b Backend, field [][]complex128, L, lambda, z float64) ([][]complex128, error) {
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
	freq, err := BuildFrequencyAxis(L, M)
	if err != nil {
		return nil, err
	}

	spectrum := cfft2(b.ToDevice(field))

	fourPiSq := 4.0 * math.Pi * math.Pi
	invLambdaSq := 1.0 / (lambda * lambda)
	parallelRange(0, M, func(i int) {
		fy := freq[i]
		for j, fx := range freq {
			delta := fourPiSq * (invLambdaSq - fx*fx - fy*fy)
			if delta >= 0 {
				spectrum[i][j] *= cmplx.Exp(complex(0, math.Sqrt(delta)*z))
			} else {
				spectrum[i][j] *= complex(math.Exp(-math.Sqrt(-delta)*z), 0)
			}
		}
	})

	return b.ToHost(cifft2(spectrum)), nil
}
