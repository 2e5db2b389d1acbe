package services

import (
	"encoding/base64"
	"strings"

	"github.com/vidheexx/Nutrimate/models"
)

// MacroEstimate is one meal's macro breakdown.
type MacroEstimate struct {
	Calories int
	Protein  float64
	Carbs    float64
	Fats     float64
}

// MacroHints carries the client-supplied fields an estimator works from.
// Nil pointers mean "not supplied".
type MacroHints struct {
	Calories    *int
	Protein     *float64
	Carbs       *float64
	Fats        *float64
	ImageBase64 string
	BowlSize    string
	Portion     float64 // percent of a full bowl; 0 means 100
}

func (h MacroHints) HasMacros() bool {
	return h.Calories != nil || h.Protein != nil || h.Carbs != nil || h.Fats != nil
}

// MacroEstimator turns an analyze request into a macro breakdown. None of
// the built-in estimators do real nutrition inference; the interface exists
// so a real one can be dropped in without touching the routes.
type MacroEstimator interface {
	Estimate(hints MacroHints, calib *models.BowlCalibration) (MacroEstimate, error)
}

// Stock estimate used when the client supplies nothing to go on.
const (
	defaultCalories = 250
	defaultProtein  = 12.0
	defaultCarbs    = 30.0
	defaultFats     = 8.0
)

// SelectEstimator picks the policy the request can support: an image gets
// the byte-length heuristic, macro hints with a bowl size get calibrated
// scaling, anything else falls back to the fixed defaults.
func SelectEstimator(hints MacroHints) MacroEstimator {
	switch {
	case hints.ImageBase64 != "":
		return ImageHeuristicEstimator{}
	case hints.HasMacros() && hints.BowlSize != "":
		return CalibratedScaleEstimator{}
	default:
		return FixedDefaultEstimator{}
	}
}

// FixedDefaultEstimator fills each missing macro with its stock value and
// passes supplied hints through untouched.
type FixedDefaultEstimator struct{}

func (FixedDefaultEstimator) Estimate(hints MacroHints, _ *models.BowlCalibration) (MacroEstimate, error) {
	est := MacroEstimate{
		Calories: defaultCalories,
		Protein:  defaultProtein,
		Carbs:    defaultCarbs,
		Fats:     defaultFats,
	}
	if hints.Calories != nil {
		est.Calories = *hints.Calories
	}
	if hints.Protein != nil {
		est.Protein = *hints.Protein
	}
	if hints.Carbs != nil {
		est.Carbs = *hints.Carbs
	}
	if hints.Fats != nil {
		est.Fats = *hints.Fats
	}
	return est, nil
}

// CalibratedScaleEstimator scales the hints by calibration[bowl_size] *
// portion / 100. Accounts without a calibration get factor 1.
type CalibratedScaleEstimator struct{}

func (CalibratedScaleEstimator) Estimate(hints MacroHints, calib *models.BowlCalibration) (MacroEstimate, error) {
	base, _ := FixedDefaultEstimator{}.Estimate(hints, nil)

	factor, err := bowlFactor(calib, hints.BowlSize)
	if err != nil {
		return MacroEstimate{}, err
	}
	portion := hints.Portion
	if portion <= 0 {
		portion = 100
	}
	factor *= portion / 100

	return scale(base, factor), nil
}

// ImageHeuristicEstimator derives pseudo-macros from the decoded image's
// byte length, scaled by the bowl factor. Deliberately not real inference.
type ImageHeuristicEstimator struct{}

func (ImageHeuristicEstimator) Estimate(hints MacroHints, calib *models.BowlCalibration) (MacroEstimate, error) {
	data := hints.ImageBase64
	if i := strings.IndexByte(data, ','); i >= 0 {
		data = data[i+1:] // strip a data-URL prefix
	}
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return MacroEstimate{}, ErrInvalidImage
	}
	n := len(raw)

	factor, err := bowlFactor(calib, hints.BowlSize)
	if err != nil {
		return MacroEstimate{}, err
	}

	est := MacroEstimate{
		Calories: 180 + n%420,
		Protein:  float64(5 + n%30),
		Carbs:    float64(10 + n%60),
		Fats:     float64(3 + n%20),
	}
	return scale(est, factor), nil
}

func bowlFactor(calib *models.BowlCalibration, bowlSize string) (float64, error) {
	if bowlSize == "" {
		return 1, nil
	}
	var factor float64
	switch strings.ToLower(bowlSize) {
	case "small":
		factor = calibOr(calib, func(c *models.BowlCalibration) float64 { return c.Small })
	case "medium":
		factor = calibOr(calib, func(c *models.BowlCalibration) float64 { return c.Medium })
	case "large":
		factor = calibOr(calib, func(c *models.BowlCalibration) float64 { return c.Large })
	default:
		return 0, ErrUnknownBowlSize
	}
	if factor <= 0 {
		factor = 1
	}
	return factor, nil
}

func calibOr(calib *models.BowlCalibration, pick func(*models.BowlCalibration) float64) float64 {
	if calib == nil {
		return 1
	}
	return pick(calib)
}

func scale(est MacroEstimate, factor float64) MacroEstimate {
	return MacroEstimate{
		Calories: int(float64(est.Calories) * factor),
		Protein:  est.Protein * factor,
		Carbs:    est.Carbs * factor,
		Fats:     est.Fats * factor,
	}
}
