package main

import json "github.com/KevinWang15/go-json5"

// SimulationRun holds everything read from the JSON5 parameter file, after
// validation, in the file's own units (nm, mm, m). Conversion to SI meters
// happens in main.
type SimulationRun struct {
	Title               string
	NumPoints           int
	WavelengthNm        float64
	WindowSizeMm        float64
	ObservationWindowMm float64 // defaults to WindowSizeMm
	DistanceM           float64
	Propagator          string // "asm", "two-step", or "both"

	BeamP   int
	BeamL   int
	WaistMm float64

	ApertureGiven    bool
	ApertureType     string // "disk" or "ring"
	ApertureOuterMm  float64
	ApertureInnerMm  float64

	LensGiven        bool
	LensFocalLengthM float64
	LensRadiusMm     float64

	BlurGiven         bool
	BlurDiameterPx    int
	BlurLimbDarkening float64

	ProfileGiven        bool
	ProfileAngleDegrees float64
	ProfileOffsetMm     float64
}

func parseJson5(data []byte) (map[string]interface{}, error) {
	var jsonTable map[string]interface{}
	err := json.Unmarshal(data, &jsonTable)
	return jsonTable, err
}

func getLeafValue(jsonTable map[string]interface{}, path ...string) (interface{}, bool) {
	var cur interface{} = jsonTable
	for _, p := range path {
		m, ok := cur.(map[string]interface{})
		if !ok {
			return nil, false
		}
		cur, ok = m[p]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// requireFloat extracts a mandatory float64 leaf. The returned message is
// empty on success.
func requireFloat(jsonTable map[string]interface{}, dst *float64, path ...string) string {
	v, ok := getLeafValue(jsonTable, path...)
	if !ok {
		return joinPath(path) + ": not found"
	}
	value, ok := v.(float64)
	if !ok {
		return joinPath(path) + ": is not a float64"
	}
	*dst = value
	return ""
}

// optionalFloat extracts a float64 leaf if present, leaving dst untouched
// otherwise.
func optionalFloat(jsonTable map[string]interface{}, dst *float64, path ...string) string {
	v, ok := getLeafValue(jsonTable, path...)
	if !ok {
		return ""
	}
	value, ok := v.(float64)
	if !ok {
		return joinPath(path) + ": is not a float64"
	}
	*dst = value
	return ""
}

func optionalString(jsonTable map[string]interface{}, dst *string, path ...string) string {
	v, ok := getLeafValue(jsonTable, path...)
	if !ok {
		return ""
	}
	value, ok := v.(string)
	if !ok {
		return joinPath(path) + ": is not a string"
	}
	*dst = value
	return ""
}

func joinPath(path []string) string {
	out := ""
	for i, p := range path {
		if i > 0 {
			out += "."
		}
		out += p
	}
	return out
}

// validateJsonFileAndFillRun walks the generic JSON5 table, validates every
// field it understands, and fills the run description. The returned message
// names the first offending field; ok is false when the file is unusable.
func validateJsonFileAndFillRun(jsonTable map[string]interface{}, run *SimulationRun) (string, bool) {
	msg := "No problem found in json file"

	if m := optionalString(jsonTable, &run.Title, "title"); m != "" {
		return m, false
	}

	numPts, ok := getLeafValue(jsonTable, "num_points")
	if !ok {
		return "num_points: not found", false
	}
	n, ok := numPts.(float64)
	if !ok {
		return "num_points: is not a float64", false
	}
	run.NumPoints = int(n)

	if m := requireFloat(jsonTable, &run.WavelengthNm, "wavelength_nm"); m != "" {
		return m, false
	}
	if m := requireFloat(jsonTable, &run.WindowSizeMm, "window_size_mm"); m != "" {
		return m, false
	}
	run.ObservationWindowMm = run.WindowSizeMm
	if m := optionalFloat(jsonTable, &run.ObservationWindowMm, "observation_window_mm"); m != "" {
		return m, false
	}
	if m := requireFloat(jsonTable, &run.DistanceM, "distance_m"); m != "" {
		return m, false
	}

	run.Propagator = "both"
	if m := optionalString(jsonTable, &run.Propagator, "propagator"); m != "" {
		return m, false
	}
	switch run.Propagator {
	case "asm", "two-step", "both":
	default:
		return "propagator: must be \"asm\", \"two-step\", or \"both\"", false
	}

	// Beam group is required.
	if _, ok = getLeafValue(jsonTable, "beam"); !ok {
		return "beam group not found and is required.", false
	}
	var pVal, lVal float64
	if m := requireFloat(jsonTable, &pVal, "beam", "p"); m != "" {
		return m, false
	}
	if m := requireFloat(jsonTable, &lVal, "beam", "l"); m != "" {
		return m, false
	}
	run.BeamP = int(pVal)
	run.BeamL = int(lVal)
	if m := requireFloat(jsonTable, &run.WaistMm, "beam", "waist_mm"); m != "" {
		return m, false
	}

	// Aperture group is optional.
	if _, ok = getLeafValue(jsonTable, "aperture"); ok {
		run.ApertureGiven = true
		run.ApertureType = "disk"
		if m := optionalString(jsonTable, &run.ApertureType, "aperture", "type"); m != "" {
			return m, false
		}
		switch run.ApertureType {
		case "disk":
			if m := requireFloat(jsonTable, &run.ApertureOuterMm, "aperture", "diameter_mm"); m != "" {
				return m, false
			}
		case "ring":
			if m := requireFloat(jsonTable, &run.ApertureInnerMm, "aperture", "inner_diameter_mm"); m != "" {
				return m, false
			}
			if m := requireFloat(jsonTable, &run.ApertureOuterMm, "aperture", "outer_diameter_mm"); m != "" {
				return m, false
			}
		default:
			return "aperture.type: must be \"disk\" or \"ring\"", false
		}
	}

	// Lens group is optional.
	if _, ok = getLeafValue(jsonTable, "lens"); ok {
		run.LensGiven = true
		if m := requireFloat(jsonTable, &run.LensFocalLengthM, "lens", "focal_length_m"); m != "" {
			return m, false
		}
		if m := requireFloat(jsonTable, &run.LensRadiusMm, "lens", "radius_mm"); m != "" {
			return m, false
		}
	}

	// Source-blur group is optional.
	if _, ok = getLeafValue(jsonTable, "source_blur"); ok {
		run.BlurGiven = true
		var diamPx float64
		if m := requireFloat(jsonTable, &diamPx, "source_blur", "diameter_px"); m != "" {
			return m, false
		}
		run.BlurDiameterPx = int(diamPx)
		if m := optionalFloat(jsonTable, &run.BlurLimbDarkening, "source_blur", "limb_darkening"); m != "" {
			return m, false
		}
	}

	// Profile group is optional.
	if _, ok = getLeafValue(jsonTable, "profile"); ok {
		run.ProfileGiven = true
		if m := optionalFloat(jsonTable, &run.ProfileAngleDegrees, "profile", "angle_degrees"); m != "" {
			return m, false
		}
		if m := optionalFloat(jsonTable, &run.ProfileOffsetMm, "profile", "offset_mm"); m != "" {
			return m, false
		}
	}

	return msg, true
}
