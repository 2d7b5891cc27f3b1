package matching

import (
	"fmt"
	"math"

	"github.com/communityroots/volunteer-match/pkg/core/model"
)

// Result is one scored volunteer/event pair. Results are computed on
// demand and never cached here; freshness is the caller's problem.
type Result struct {
	VolunteerID string
	EventID     string
	// Score is the weighted total, rounded to an integer in 0-100.
	Score     int
	Breakdown Breakdown
	Weights   Weights
}

// Scorer combines the five sub-scores into a total match score. It is
// stateless and safe for concurrent use.
type Scorer struct {
	weights         Weights
	defaultMaxMiles float64
}

// NewScorer creates a Scorer with the given weight vector.
// defaultMaxMiles is the travel distance assumed for volunteers who
// recorded no preference.
func NewScorer(weights Weights, defaultMaxMiles float64) (*Scorer, error) {
	if err := weights.Validate(); err != nil {
		return nil, fmt.Errorf("invalid weights: %w", err)
	}
	if defaultMaxMiles <= 0 {
		return nil, fmt.Errorf("default max distance must be positive, got %v", defaultMaxMiles)
	}
	return &Scorer{weights: weights, defaultMaxMiles: defaultMaxMiles}, nil
}

// Weights returns the weight vector the scorer was built with.
func (s *Scorer) Weights() Weights {
	return s.weights
}

// Score computes the match score for one volunteer/event pair. It fails
// only on structurally invalid records (missing identifiers); every
// business-level situation maps to some score.
func (s *Scorer) Score(v *model.Volunteer, e *model.Event) (*Result, error) {
	if v == nil || v.ID == "" {
		return nil, fmt.Errorf("volunteer record has no identifier")
	}
	if e == nil || e.ID == "" {
		return nil, fmt.Errorf("event record has no identifier")
	}

	breakdown := Breakdown{
		Location:     LocationScore(v, e, s.defaultMaxMiles),
		Skills:       SkillsScore(v, e),
		Availability: AvailabilityScore(v, e),
		Preferences:  PreferencesScore(v, e),
		Reliability:  ReliabilityScore(v),
	}

	total := s.weights.Location*breakdown.Location +
		s.weights.Skills*breakdown.Skills +
		s.weights.Availability*breakdown.Availability +
		s.weights.Preferences*breakdown.Preferences +
		s.weights.Reliability*breakdown.Reliability

	return &Result{
		VolunteerID: v.ID,
		EventID:     e.ID,
		Score:       int(math.Round(total)),
		Breakdown:   breakdown,
		Weights:     s.weights,
	}, nil
}
