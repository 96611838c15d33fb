package optics

import (
	"fmt"
	"math"
)

// PaddingMode selects how samples outside the intensity matrix are supplied
// when the FFT grid is padded for linear convolution.
type PaddingMode int

const (
	PadZeros PaddingMode = iota
	PadReflect
	PadReplicate
	PadCircular
)

// sourceBrightness returns the limb-darkened brightness of an extended
// circular source at distance r from its center, in [0, 1]. r and radius are
// in pixels.
func sourceBrightness(r, radius, limbDarkening float64) float64 {
	x := r / radius
	if x >= 1.0 {
		return 0.0
	}
	return 1.0 - limbDarkening*(1.0-math.Sqrt(1.0-x*x))
}

// BuildSourcePSF builds the point-spread function of an extended circular
// source of the given pixel diameter with a limb-darkening coefficient in
// [0, 1]. It returns the kernel and the sum of its weights, which
// ConvolveIntensity uses to normalize the blur.
func BuildSourcePSF(diameterPx int, limbDarkening float64) ([][]float64, float64, error) {
	if diameterPx <= 0 {
		return nil, 0, fmt.Errorf("%w: source diameter must be positive, got %d px", ErrInvalidDimension, diameterPx)
	}
	n := diameterPx
	if n%2 != 0 {
		n++
	}
	n += 4 // border so the kernel edge is fully dark
	center := n / 2
	radius := float64(diameterPx) / 2.0

	psf := make([][]float64, n)
	sum := 0.0
	for row := 0; row < n; row++ {
		psf[row] = make([]float64, n)
		for col := 0; col < n; col++ {
			r := math.Hypot(float64(row-center), float64(col-center))
			b := sourceBrightness(r, radius, limbDarkening)
			psf[row][col] = b
			sum += b
		}
	}
	return psf, sum, nil
}

// ConvolveIntensity blurs an intensity matrix with a PSF using linear FFT
// convolution on a next-power-of-two grid, returning a result of the same
// size as the input. psfSum normalizes the kernel so a uniform input stays
// uniform; pad chooses the boundary handling.
func ConvolveIntensity(intensity, psf [][]float64, psfSum float64, pad PaddingMode) ([][]float64, error) {
	h, w, err := rectSize(intensity)
	if err != nil {
		return nil, err
	}
	ph, pw, err := rectSize(psf)
	if err != nil {
		return nil, err
	}
	if h == 0 || w == 0 || ph == 0 || pw == 0 {
		return nil, fmt.Errorf("%w: empty intensity or psf", ErrInvalidDimension)
	}
	if ph > h || pw > w {
		return nil, fmt.Errorf("%w: %dx%d psf larger than %dx%d intensity", ErrInconsistentGrid, ph, pw, h, w)
	}
	if psfSum <= 0 {
		return nil, fmt.Errorf("%w: psf weight sum must be positive, got %g", ErrDegenerateParameter, psfSum)
	}

	// FFT grid large enough for the full linear convolution.
	fh := nextPow2(h + ph - 1)
	fw := nextPow2(w + pw - 1)

	a := makeComplex2D(fh, fw)
	kernel := makeComplex2D(fh, fw)
	for y := 0; y < fh; y++ {
		for x := 0; x < fw; x++ {
			a[y][x] = complex(sample2D(intensity, y, x, pad), 0)
		}
	}
	for y := 0; y < ph; y++ {
		for x := 0; x < pw; x++ {
			kernel[y][x] = complex(psf[y][x], 0)
		}
	}

	fft2InPlace(a, true)
	fft2InPlace(kernel, true)
	for y := 0; y < fh; y++ {
		for x := 0; x < fw; x++ {
			a[y][x] *= kernel[y][x]
		}
	}
	fft2InPlace(a, false) // includes the 1/N scaling

	// Centered crop of the full result back to h x w.
	offY := ph / 2
	offX := pw / 2
	out := make([][]float64, h)
	for y := 0; y < h; y++ {
		out[y] = make([]float64, w)
		for x := 0; x < w; x++ {
			out[y][x] = real(a[y+offY][x+offX]) / psfSum
		}
	}
	return out, nil
}

// sample2D reads img[y][x], filling out-of-range indices per the padding mode.
func sample2D(img [][]float64, y, x int, mode PaddingMode) float64 {
	h := len(img)
	w := len(img[0])
	if 0 <= y && y < h && 0 <= x && x < w {
		return img[y][x]
	}
	switch mode {
	case PadReplicate:
		return img[clamp(y, 0, h-1)][clamp(x, 0, w-1)]
	case PadReflect:
		return img[reflectIndex(y, h)][reflectIndex(x, w)]
	case PadCircular:
		return img[mod(y, h)][mod(x, w)]
	}
	return 0
}

func rectSize(m [][]float64) (h, w int, err error) {
	h = len(m)
	if h == 0 {
		return 0, 0, nil
	}
	w = len(m[0])
	for i := 1; i < h; i++ {
		if len(m[i]) != w {
			return 0, 0, fmt.Errorf("%w: ragged matrix at row %d", ErrInconsistentGrid, i)
		}
	}
	return h, w, nil
}

func makeComplex2D(h, w int) [][]complex128 {
	m := make([][]complex128, h)
	for i := range m {
		m[i] = make([]complex128, w)
	}
	return m
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func mod(i, n int) int {
	r := i % n
	if r < 0 {
		r += n
	}
	return r
}

// reflectIndex implements "reflect" padding without repeating edge samples.
// For n=5 the index sequence is ... 2 1 0 1 2 3 4 3 2 1 0 1 ...
func reflectIndex(i, n int) int {
	if n <= 1 {
		return 0
	}
	period := 2*n - 2
	i = mod(i, period)
	if i >= n {
		i = period - i
	}
	return i
}
