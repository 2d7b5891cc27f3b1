package matching

import "github.com/communityroots/volunteer-match/pkg/core/model"

// Reliability sub-score.
//
// Policy:
//   - Experience saturates at 10 completed events: a handful of past
//     participations already earns near-maximum credit, so long-tenured
//     volunteers don't crowd out everyone else forever.
//   - The 1-5 average rating maps linearly onto 0-100. Unrated volunteers
//     get a moderate 60 so newcomers stay matchable.
//   - Profile completeness is already 0-100 and is used directly.
//   - The three terms combine at fixed internal weights 0.40/0.35/0.25.
const (
	experienceSaturation = 10
	unratedDefaultScore  = 60

	experienceWeight   = 0.40
	ratingWeight       = 0.35
	completenessWeight = 0.25
)

// ReliabilityScore scores the volunteer's track record.
func ReliabilityScore(v *model.Volunteer) float64 {
	completed := v.History.CompletedCount
	if completed > experienceSaturation {
		completed = experienceSaturation
	}
	if completed < 0 {
		completed = 0
	}
	experience := 100 * float64(completed) / experienceSaturation

	rating := float64(unratedDefaultScore)
	if v.History.AvgRating != nil {
		r := *v.History.AvgRating
		if r < 1 {
			r = 1
		}
		if r > 5 {
			r = 5
		}
		rating = 25 * (r - 1)
	}

	completeness := v.History.ProfileCompleteness
	if completeness < 0 {
		completeness = 0
	}
	if completeness > 100 {
		completeness = 100
	}

	return experienceWeight*experience + ratingWeight*rating + completenessWeight*completeness
}
