package optics

import "gonum.org/v1/gonum/dsp/fourier"

// fft2InPlace transforms a 2D complex matrix, rows then columns, using
// Gonum's CmplxFFT. Gonum transforms are unnormalized, so the inverse pass
// applies the 1/(rows*cols) factor here; a forward/inverse round trip is then
// the identity.
func fft2InPlace(a [][]complex128, forward bool) {
	h := len(a)
	w := len(a[0])

	rowFFT := fourier.NewCmplxFFT(w)
	colFFT := fourier.NewCmplxFFT(h)

	tmp := make([]complex128, w)
	for y := 0; y < h; y++ {
		copy(tmp, a[y])
		if forward {
			rowFFT.Coefficients(tmp, tmp)
		} else {
			rowFFT.Sequence(tmp, tmp)
		}
		copy(a[y], tmp)
	}

	col := make([]complex128, h)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			col[y] = a[y][x]
		}
		if forward {
			colFFT.Coefficients(col, col)
		} else {
			colFFT.Sequence(col, col)
		}
		for y := 0; y < h; y++ {
			a[y][x] = col[y]
		}
	}

	if !forward {
		scale := complex(1.0/float64(h*w), 0)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				a[y][x] *= scale
			}
		}
	}
}

// shift2 returns a circularly shifted copy: out[i][j] = a[(i+sy)%h][(j+sx)%w].
func shift2(a [][]complex128, sy, sx int) [][]complex128 {
	h := len(a)
	w := len(a[0])
	out := make([][]complex128, h)
	for i := 0; i < h; i++ {
		out[i] = make([]complex128, w)
		ii := (i + sy) % h
		for j := 0; j < w; j++ {
			out[i][j] = a[ii][(j+sx)%w]
		}
	}
	return out
}

// fftShift2 moves the zero-frequency sample to the array center. ifftShift2
// is its inverse; the two differ only for odd sizes.
func fftShift2(a [][]complex128) [][]complex128 {
	return shift2(a, (len(a)+1)/2, (len(a[0])+1)/2)
}

func ifftShift2(a [][]complex128) [][]complex128 {
	return shift2(a, len(a)/2, len(a[0])/2)
}

// cfft2 computes the centered forward transform fftshift(fft2(ifftshift(u))).
// The input is not modified.
func cfft2(u [][]complex128) [][]complex128 {
	a := ifftShift2(u)
	fft2InPlace(a, true)
	return fftShift2(a)
}

// cifft2 computes the centered inverse transform, including the 1/N scaling.
// The input is not modified.
func cifft2(u [][]complex128) [][]complex128 {
	a := ifftShift2(u)
	fft2InPlace(a, false)
	return fftShift2(a)
}
