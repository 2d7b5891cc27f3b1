package matching

import (
	"fmt"
	"math"
)

// weightSumTolerance allows for float rounding when checking that the
// weight vector sums to 1.0.
const weightSumTolerance = 0.001

// Weights is the contribution of each sub-score to the total match score.
// Weights must be non-negative and sum to 1.0.
type Weights struct {
	Location     float64
	Skills       float64
	Availability float64
	Preferences  float64
	Reliability  float64
}

// DefaultWeights returns the documented default weighting. Skills and
// location dominate; reliability is a light thumb on the scale.
func DefaultWeights() Weights {
	return Weights{
		Location:     0.25,
		Skills:       0.30,
		Availability: 0.20,
		Preferences:  0.15,
		Reliability:  0.10,
	}
}

// Validate checks that all weights are non-negative and sum to 1.0
// within tolerance.
func (w Weights) Validate() error {
	for name, v := range map[string]float64{
		"location":     w.Location,
		"skills":       w.Skills,
		"availability": w.Availability,
		"preferences":  w.Preferences,
		"reliability":  w.Reliability,
	} {
		if v < 0 {
			return fmt.Errorf("%s weight must be non-negative, got %v", name, v)
		}
	}
	sum := w.Location + w.Skills + w.Availability + w.Preferences + w.Reliability
	if math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("weights must sum to 1.0, got %v", sum)
	}
	return nil
}

// Breakdown holds the five sub-scores behind a total match score, each in
// the 0-100 range. Returned alongside every result so callers can audit
// how a score came about.
type Breakdown struct {
	Location     float64
	Skills       float64
	Availability float64
	Preferences  float64
	Reliability  float64
}
