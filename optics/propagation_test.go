package optics

import (
	"errors"
	"math"
	"testing"
)

// gaussianField builds exp(-r^2/w0^2) on an M-point grid over a window L.
func gaussianField(t *testing.T, L, w0 float64, m int) [][]complex128 {
	t.Helper()
	ax, err := BuildAxis(L, m)
	if err != nil {
		t.Fatalf("BuildAxis() error = %v", err)
	}
	f := make([][]complex128, m)
	for i, y := range ax {
		f[i] = make([]complex128, m)
		for j, x := range ax {
			f[i][j] = complex(math.Exp(-(x*x+y*y)/(w0*w0)), 0)
		}
	}
	return f
}

func maxFieldDiff(a, b [][]complex128) float64 {
	worst := 0.0
	for i := range a {
		for j := range a[i] {
			d := a[i][j] - b[i][j]
			if m := math.Hypot(real(d), imag(d)); m > worst {
				worst = m
			}
		}
	}
	return worst
}

// Zero distance must reproduce the input exactly: the transfer function is
// unity everywhere, so only FFT round-off remains.
func TestAngularSpectrumZeroDistanceIsIdentity(t *testing.T) {
	u := gaussianField(t, 5e-3, 0.5e-3, 32)
	got, err := AngularSpectrum(u, 5e-3, 0.5e-6, 0)
	if err != nil {
		t.Fatalf("AngularSpectrum() error = %v", err)
	}
	if d := maxFieldDiff(got, u); d > 1e-12 {
		t.Errorf("zero-distance propagation changed the field by %g", d)
	}
}

// With every grid frequency inside the propagating circle |f| < 1/lambda the
// transfer function is a pure phase, so the total energy is conserved.
func TestAngularSpectrumConservesEnergy(t *testing.T) {
	const (
		L      = 5e-3
		lambda = 0.5e-6
		z      = 0.1
		m      = 64
	)
	u := gaussianField(t, L, 0.5e-3, m)
	before := TotalEnergy(u)
	got, err := AngularSpectrum(u, L, lambda, z)
	if err != nil {
		t.Fatalf("AngularSpectrum() error = %v", err)
	}
	after := TotalEnergy(got)
	if rel := math.Abs(after-before) / before; rel > 1e-9 {
		t.Errorf("energy changed by a relative %g (before %g, after %g)", rel, before, after)
	}
}

// When the grid reaches beyond the propagating circle, the evanescent branch
// may only remove energy, never add it.
func TestAngularSpectrumEvanescentDecay(t *testing.T) {
	const (
		L      = 10e-6 // 64 points over 10 um puts fmax at 3.2e6 > 1/lambda
		lambda = 0.5e-6
		z      = 1e-5
		m      = 64
	)
	u := gaussianField(t, L, 1e-6, m)
	before := TotalEnergy(u)
	got, err := AngularSpectrum(u, L, lambda, z)
	if err != nil {
		t.Fatalf("AngularSpectrum() error = %v", err)
	}
	after := TotalEnergy(got)
	if after > before*(1+1e-9) {
		t.Errorf("energy grew across an evanescent propagation: before %g, after %g", before, after)
	}
	if after <= 0 {
		t.Errorf("propagated energy = %g, want > 0", after)
	}
}

func TestAngularSpectrumRejectsBadInputs(t *testing.T) {
	u := gaussianField(t, 1e-3, 0.2e-3, 8)
	if _, err := AngularSpectrum(u, 0, 0.5e-6, 0.1); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("zero window: error = %v, want ErrInvalidDimension", err)
	}
	if _, err := AngularSpectrum(u, 1e-3, 0, 0.1); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("zero wavelength: error = %v, want ErrInvalidDimension", err)
	}
	ragged := [][]complex128{{1, 2}, {3}}
	if _, err := AngularSpectrum(ragged, 1e-3, 0.5e-6, 0.1); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("ragged field: error = %v, want ErrInvalidDimension", err)
	}
}

// On a shared window the two-step Fresnel result must agree with the exact
// angular-spectrum result for a paraxial, well-sampled beam.
func TestTwoStepMatchesAngularSpectrum(t *testing.T) {
	const (
		L      = 4e-3
		lambda = 0.5e-6
		w0     = 0.3e-3
		z      = 0.05
		m      = 128
	)
	u := gaussianField(t, L, w0, m)

	asm, err := AngularSpectrum(u, L, lambda, z)
	if err != nil {
		t.Fatalf("AngularSpectrum() error = %v", err)
	}
	ts, err := TwoStepFresnel(u, L, L, lambda, z)
	if err != nil {
		t.Fatalf("TwoStepFresnel() error = %v", err)
	}

	num, den := 0.0, 0.0
	ia := Intensity(asm)
	it := Intensity(ts)
	for i := range ia {
		for j := range ia[i] {
			num += math.Abs(ia[i][j] - it[i][j])
			den += ia[i][j]
		}
	}
	if rel := num / den; rel > 0.05 {
		t.Errorf("methods disagree by a relative %g in intensity, want <= 0.05", rel)
	}
}

// Magnifying the observation window rescales the samples but keeps the
// energy; compare total intensity against the unit-magnification run.
func TestTwoStepMagnificationKeepsEnergy(t *testing.T) {
	const (
		L      = 4e-3
		lambda = 0.5e-6
		w0     = 0.3e-3
		z      = 0.05
		m      = 128
	)
	u := gaussianField(t, L, w0, m)

	same, err := TwoStepFresnel(u, L, L, lambda, z)
	if err != nil {
		t.Fatalf("TwoStepFresnel(L, L) error = %v", err)
	}
	wide, err := TwoStepFresnel(u, L, 2*L, lambda, z)
	if err != nil {
		t.Fatalf("TwoStepFresnel(L, 2L) error = %v", err)
	}

	// Energy is intensity times sample area; the wide grid's samples are
	// twice as coarse in each direction.
	dx1 := L / float64(m)
	dx2 := 2 * L / float64(m)
	eSame := TotalEnergy(same) * dx1 * dx1
	eWide := TotalEnergy(wide) * dx2 * dx2
	if rel := math.Abs(eWide-eSame) / eSame; rel > 0.01 {
		t.Errorf("energy mismatch across magnification: relative %g (same %g, wide %g)", rel, eSame, eWide)
	}
}

func TestTwoStepRejectsZeroDistance(t *testing.T) {
	u := gaussianField(t, 1e-3, 0.2e-3, 8)
	if _, err := TwoStepFresnel(u, 1e-3, 1e-3, 0.5e-6, 0); !errors.Is(err, ErrDegenerateParameter) {
		t.Errorf("zero distance: error = %v, want ErrDegenerateParameter", err)
	}
}

func TestTwoStepRejectsBadWindows(t *testing.T) {
	u := gaussianField(t, 1e-3, 0.2e-3, 8)
	if _, err := TwoStepFresnel(u, 0, 1e-3, 0.5e-6, 0.1); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("zero source window: error = %v, want ErrInvalidDimension", err)
	}
	if _, err := TwoStepFresnel(u, 1e-3, -1e-3, 0.5e-6, 0.1); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("negative observation window: error = %v, want ErrInvalidDimension", err)
	}
}
