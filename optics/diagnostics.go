package optics

import "math"

// The diagnostics below are advisory: they classify a propagation setup and
// suggest corrections, but they never fail and are never applied
// automatically.

// FresnelRegime classifies a Fresnel number against the validity thresholds
// of the FFT propagators.
type FresnelRegime int

const (
	FresnelGood       FresnelRegime = iota // Nf <= 1
	FresnelBorderline                      // 1 < Nf <= 30
	FresnelUnreliable                      // Nf > 30 or not finite
)

func (r FresnelRegime) String() string {
	switch r {
	case FresnelGood:
		return "good regime"
	case FresnelBorderline:
		return "borderline acceptable"
	default:
		return "outside reliable regime"
	}
}

// FresnelReport carries the Fresnel number and its classification.
type FresnelReport struct {
	Number float64
	Regime FresnelRegime
}

// FresnelNumber computes Nf = a^2/(lambda*z) for an aperture of radius a and
// classifies it. Non-finite results (zero distance or wavelength) classify as
// unreliable.
func FresnelNumber(lambda, z, apertureRadius float64) FresnelReport {
	nf := apertureRadius * apertureRadius / (lambda * z)
	regime := FresnelUnreliable
	switch {
	case math.IsNaN(nf) || math.IsInf(nf, 0):
		// leave unreliable
	case nf <= 1:
		regime = FresnelGood
	case nf <= 30:
		regime = FresnelBorderline
	}
	return FresnelReport{Number: nf, Regime: regime}
}

// SamplingStatus compares the actual sample spacing against the critical
// spacing of a propagation geometry.
type SamplingStatus int

const (
	SamplingInvalid SamplingStatus = iota
	Undersampled
	Critical
	Oversampled
)

func (s SamplingStatus) String() string {
	switch s {
	case Undersampled:
		return "UNDERSAMPLED"
	case Critical:
		return "CRITICAL"
	case Oversampled:
		return "OVERSAMPLED"
	default:
		return "INVALID"
	}
}

// SamplingReport carries the sampling classification together with advisory
// corrective parameters: an alternate distance, window, or sample count that
// would bring the setup to critical sampling. None of them is applied.
type SamplingReport struct {
	Status     SamplingStatus
	DxCritical float64 // lambda*z/L
	SuggestedZ float64 // L^2/(M*lambda)
	SuggestedL float64 // lambda*z/(dx*M)
	SuggestedM float64 // L/DxCritical
}

// CheckSampling classifies the sample spacing dx of an M-point grid over a
// window L against the critical spacing lambda*z/L. Non-positive inputs
// yield SamplingInvalid; no error is ever returned.
func CheckSampling(lambda, z, L, dx float64, M int) SamplingReport {
	if lambda <= 0 || z <= 0 || L <= 0 || dx <= 0 || M <= 0 {
		return SamplingReport{Status: SamplingInvalid}
	}
	dxCrit := lambda * z / L
	status := Undersampled
	switch {
	case dx == dxCrit:
		status = Critical
	case dx > dxCrit:
		status = Oversampled
	}
	return SamplingReport{
		Status:     status,
		DxCritical: dxCrit,
		SuggestedZ: L * L / (float64(M) * lambda),
		SuggestedL: lambda * z / (dx * float64(M)),
		SuggestedM: L / dxCrit,
	}
}
