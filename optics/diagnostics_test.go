package optics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFresnelNumberRegimes(t *testing.T) {
	cases := []struct {
		name       string
		lambda, z  float64
		radius     float64
		wantNumber float64
		wantRegime FresnelRegime
	}{
		{"good", 500e-9, 0.3, 0.0003, 0.6, FresnelGood},
		{"borderline", 500e-9, 0.3, 0.001, 20.0 / 3.0, FresnelBorderline},
		{"unreliable", 500e-9, 0.3, 0.003, 60.0, FresnelUnreliable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FresnelNumber(tc.lambda, tc.z, tc.radius)
			assert.InDelta(t, tc.wantNumber, got.Number, 1e-9)
			assert.Equal(t, tc.wantRegime, got.Regime)
		})
	}
}

func TestFresnelNumberNonFinite(t *testing.T) {
	got := FresnelNumber(500e-9, 0, 0.001)
	assert.True(t, math.IsInf(got.Number, 1))
	assert.Equal(t, FresnelUnreliable, got.Regime)

	got = FresnelNumber(0, 0, 0)
	assert.True(t, math.IsNaN(got.Number))
	assert.Equal(t, FresnelUnreliable, got.Regime)
}

func TestCheckSamplingUndersampled(t *testing.T) {
	// dx below the critical spacing lambda*z/L.
	const (
		lambda = 500e-9
		z      = 0.3
		L      = 0.0128
		dx     = 6.25e-6
		m      = 2048
	)
	got := CheckSampling(lambda, z, L, dx, m)
	assert.Equal(t, Undersampled, got.Status)
	assert.InDelta(t, 1.171875e-5, got.DxCritical, 1e-12)
	assert.InDelta(t, 0.16, got.SuggestedZ, 1e-9)
	assert.InDelta(t, lambda*z/(dx*m), got.SuggestedL, 1e-15)
	assert.InDelta(t, L/got.DxCritical, got.SuggestedM, 1e-6)
}

func TestCheckSamplingCritical(t *testing.T) {
	// Powers of two make dx == lambda*z/L exact in floating point.
	lambda := math.Exp2(-20)
	z := math.Exp2(-2)
	L := math.Exp2(-10)
	dx := math.Exp2(-12)
	got := CheckSampling(lambda, z, L, dx, 256)
	assert.Equal(t, Critical, got.Status)
}

func TestCheckSamplingOversampled(t *testing.T) {
	got := CheckSampling(500e-9, 0.3, 0.0128, 2e-5, 640)
	assert.Equal(t, Oversampled, got.Status)
}

func TestCheckSamplingInvalid(t *testing.T) {
	cases := []struct {
		name   string
		report SamplingReport
	}{
		{"zero wavelength", CheckSampling(0, 0.3, 0.0128, 6.25e-6, 2048)},
		{"negative distance", CheckSampling(500e-9, -0.3, 0.0128, 6.25e-6, 2048)},
		{"zero window", CheckSampling(500e-9, 0.3, 0, 6.25e-6, 2048)},
		{"zero spacing", CheckSampling(500e-9, 0.3, 0.0128, 0, 2048)},
		{"zero samples", CheckSampling(500e-9, 0.3, 0.0128, 6.25e-6, 0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, SamplingInvalid, tc.report.Status)
			assert.Equal(t, 0.0, tc.report.DxCritical)
		})
	}
}

func TestStatusStrings(t *testing.T) {
	assert.Equal(t, "UNDERSAMPLED", Undersampled.String())
	assert.Equal(t, "CRITICAL", Critical.String())
	assert.Equal(t, "OVERSAMPLED", Oversampled.String())
	assert.Equal(t, "INVALID", SamplingInvalid.String())
	assert.Equal(t, "good regime", FresnelGood.String())
	assert.Equal(t, "borderline acceptable", FresnelBorderline.String())
	assert.Equal(t, "outside reliable regime", FresnelUnreliable.String())
}
