package main

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/bob-anderson-ok/LGpropagation/optics"
	"github.com/bob-anderson-ok/LGpropagation/profile"
)

const version = "1_0_0"

// Unit conversion constants for the parameter file fields.
const (
	nmToM = 1e-9
	mmToM = 1e-3
)

func main() {

	programStart := time.Now()

	args := os.Args
	if len(args) != 2 {
		fmt.Println("\n\tWrong number of arguments.\n\tUsage: LGpropagation <parameter-file>")
		os.Exit(1)
	}
	path := args[1]

	// Read the Json5 (or Json) parameter file
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Println(fmt.Errorf("\n\tAttempt to read input file %q failed: %w\n", path, err))
		os.Exit(2)
	}

	jsonTable, err := parseJson5(data)
	if err != nil {
		fmt.Println(fmt.Errorf("\n\tFormat error in file %q: %w\n", path, err))
		os.Exit(3)
	}

	var run SimulationRun
	msg, ok := validateJsonFileAndFillRun(jsonTable, &run)
	if !ok {
		fmt.Println(msg)
		os.Exit(4)
	}

	fmt.Printf("\nVersion %s\n\n", version)
	if run.Title != "" {
		fmt.Println(run.Title)
	}

	// Sanity check on the number of grid points
	M := run.NumPoints
	if M < 10 {
		fmt.Println(fmt.Errorf("\n\tThe grid must be at least 10 points wide."))
		os.Exit(5)
	}

	lambda := run.WavelengthNm * nmToM
	L := run.WindowSizeMm * mmToM
	Lout := run.ObservationWindowMm * mmToM
	z := run.DistanceM
	w0 := run.WaistMm * mmToM
	k := 2.0 * math.Pi / lambda
	dx := L / float64(M)

	fmt.Printf("Grid resolution in the source plane is %.4g m/sample\n", dx)

	// Sampling diagnostics are advisory only; they never stop the run.
	apertureRadius := w0 // beam waist acts as the effective aperture unless a mask is given
	if run.ApertureGiven {
		apertureRadius = run.ApertureOuterMm * mmToM / 2.0
	}
	fr := optics.FresnelNumber(lambda, z, apertureRadius)
	fmt.Printf("Fresnel number is %.4g (%s)\n", fr.Number, fr.Regime)

	sr := optics.CheckSampling(lambda, z, L, dx, M)
	fmt.Printf("Sampling status: %s (dx=%.4g m, critical dx=%.4g m)\n", sr.Status, dx, sr.DxCritical)
	if sr.Status == optics.Undersampled || sr.Status == optics.Oversampled {
		fmt.Printf("For critical sampling use z=%.4g m, or L=%.4g m, or M=%.0f\n\n",
			sr.SuggestedZ, sr.SuggestedL, sr.SuggestedM)
	}

	// Build the source field
	start := time.Now()
	axis, err := optics.BuildAxis(L, M)
	if err != nil {
		fmt.Println(fmt.Errorf("\n\tGrid construction failed: %w", err))
		os.Exit(6)
	}
	_, _, field, err := optics.LGMode(run.BeamP, run.BeamL, k, w0, axis, axis)
	if err != nil {
		fmt.Println(fmt.Errorf("\n\tGeneration of the source field failed: %w", err))
		os.Exit(6)
	}
	fmt.Printf("Generation of the LG(p=%d, l=%d) source field took %s\n", run.BeamP, run.BeamL, time.Since(start))

	// Apply the aperture mask, if one was given
	if run.ApertureGiven {
		outerPx := int(math.Round(run.ApertureOuterMm * mmToM / dx))
		var mask [][]float64
		if run.ApertureType == "ring" {
			innerPx := int(math.Round(run.ApertureInnerMm * mmToM / dx))
			mask, err = optics.DrawRing(M, innerPx, outerPx)
		} else {
			mask, err = optics.DrawDisk(M, outerPx)
		}
		if err != nil {
			fmt.Println(fmt.Errorf("\n\tAperture mask construction failed: %w", err))
			os.Exit(7)
		}
		field, err = optics.ApplyMask(field, mask)
		if err != nil {
			fmt.Println(fmt.Errorf("\n\tAperture mask application failed: %w", err))
			os.Exit(7)
		}
	}

	// Apply the thin lens, if one was given
	if run.LensGiven {
		field, err = optics.ThinLens(field, L, lambda, run.LensFocalLengthM, run.LensRadiusMm*mmToM)
		if err != nil {
			fmt.Println(fmt.Errorf("\n\tThin lens application failed: %w", err))
			os.Exit(8)
		}
	}

	// Propagate with the requested method(s)
	var outField [][]complex128
	displayWindow := L

	runASM := run.Propagator == "asm" || run.Propagator == "both"
	runTwoStep := run.Propagator == "two-step" || run.Propagator == "both"

	var asmField, twoStepField [][]complex128
	if runASM {
		start = time.Now()
		asmField, err = optics.AngularSpectrum(field, L, lambda, z)
		if err != nil {
			fmt.Println(fmt.Errorf("\n\tAngular-spectrum propagation failed: %w", err))
			os.Exit(9)
		}
		fmt.Printf("Angular-spectrum propagation took %s\n", time.Since(start))
		outField = asmField
	}
	if runTwoStep {
		start = time.Now()
		twoStepField, err = optics.TwoStepFresnel(field, L, Lout, lambda, z)
		if err != nil {
			fmt.Println(fmt.Errorf("\n\tTwo-step Fresnel propagation failed: %w", err))
			os.Exit(9)
		}
		fmt.Printf("Two-step Fresnel propagation took %s\n", time.Since(start))
		outField = twoStepField
		displayWindow = Lout
	}

	// When both methods ran on the same window, report how well they agree.
	if runASM && runTwoStep && Lout == L {
		rel := relativeIntensityDisagreement(optics.Intensity(asmField), optics.Intensity(twoStepField))
		fmt.Printf("The two propagation methods disagree by %.3g%% in total intensity\n", rel*100.0)
	}

	intensity := optics.Intensity(outField)
	phase := optics.Phase(outField)

	// Optional extended-source blur of the intensity pattern
	if run.BlurGiven {
		start = time.Now()
		psf, psfSum, err := optics.BuildSourcePSF(run.BlurDiameterPx, run.BlurLimbDarkening)
		if err != nil {
			fmt.Println(fmt.Errorf("\n\tSource PSF construction failed: %w", err))
			os.Exit(10)
		}
		intensity, err = optics.ConvolveIntensity(intensity, psf, psfSum, optics.PadReplicate)
		if err != nil {
			fmt.Println(fmt.Errorf("\n\tConvolution with the source PSF failed: %w", err))
			os.Exit(10)
		}
		fmt.Printf("Convolution with the source PSF took %s\n", time.Since(start))
	}

	// Make the user-friendly views and the fixed-scale data image
	imgForDisplay, err := MatrixToGrayViewPercentile(intensity, 0.0, 100)
	if err != nil {
		fmt.Println(fmt.Errorf("creation of the intensity display image failed: %w", err))
		os.Exit(11)
	}
	if err = SaveGrayPNG("intensity8bit.png", imgForDisplay); err != nil {
		fmt.Println(fmt.Errorf("writing of %q failed: %w", "intensity8bit.png", err))
		os.Exit(11)
	}

	dataImage, err := MatrixToGray16Data(intensity, 4000)
	if err != nil {
		fmt.Println(fmt.Errorf("creation of the intensity data image failed: %w", err))
		os.Exit(12)
	}
	if err = SaveGray16PNG("intensity16bit.png", dataImage); err != nil {
		fmt.Println(fmt.Errorf("writing of %q failed: %w", "intensity16bit.png", err))
		os.Exit(12)
	}

	phaseImage, err := MatrixToGrayViewPercentile(phase, 0.0, 100)
	if err != nil {
		fmt.Println(fmt.Errorf("creation of the phase display image failed: %w", err))
		os.Exit(12)
	}
	if err = SaveGrayPNG("phase8bit.png", phaseImage); err != nil {
		fmt.Println(fmt.Errorf("writing of %q failed: %w", "phase8bit.png", err))
		os.Exit(12)
	}

	// Optional intensity profile along a chord through the observation plane
	if run.ProfileGiven {
		cut := &profile.Cut{
			AngleDegrees:     run.ProfileAngleDegrees,
			OffsetFromCenter: run.ProfileOffsetMm * mmToM,
			WindowSize:       displayWindow,
			GridPoints:       M,
		}
		if err = cut.Compute(); err != nil {
			fmt.Println(fmt.Errorf("\n\tProfile cut computation failed: %w", err))
			os.Exit(13)
		}
		points := profile.Extract(intensity, cut)
		if err = profile.SaveProfilePlot("profile_plot.png", points, cut, 1200, 500); err != nil {
			fmt.Println(fmt.Errorf("writing of %q failed: %w", "profile_plot.png", err))
			os.Exit(14)
		}
		fmt.Println("Saved the intensity profile plot to profile_plot.png")
	}

	fmt.Printf("\nTotal program run time is %s\n", time.Since(programStart))
}

// relativeIntensityDisagreement returns sum|a-b| / sum|a| over the grid.
func relativeIntensityDisagreement(a, b [][]float64) float64 {
	num := 0.0
	den := 0.0
	for i := range a {
		for j := range a[i] {
			num += math.Abs(a[i][j] - b[i][j])
			den += math.Abs(a[i][j])
		}
	}
	if den == 0 {
		return 0
	}
	return num / den
}
