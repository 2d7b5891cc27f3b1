package matching

import "github.com/communityroots/volunteer-match/pkg/core/model"

// Location sub-score.
//
// Policy:
//   - If either position is unknown, return a neutral 50. Absent data must
//     not read as poor fit, or volunteers without a recorded address would
//     sink to the bottom of every ranking.
//   - Within the volunteer's preferred travel distance the score decays
//     linearly from 100 at the doorstep to 60 at the preference limit.
//   - Beyond the limit it keeps decaying with a steeper slope, reaching 0
//     at twice the limit. Exceeding a stated preference is a soft
//     disqualifier, not a hard one.
const (
	locationNeutralScore = 50
	locationFloorAtMax   = 60
)

// LocationScore scores how far the volunteer would have to travel.
// defaultMaxMiles is used when the volunteer recorded no distance preference.
func LocationScore(v *model.Volunteer, e *model.Event, defaultMaxMiles float64) float64 {
	distance, ok := DistanceMiles(v.Location, e.Location)
	if !ok {
		return locationNeutralScore
	}

	maxMiles := v.Preferences.MaxDistanceMiles
	if maxMiles <= 0 {
		maxMiles = defaultMaxMiles
	}
	if maxMiles <= 0 {
		return locationNeutralScore
	}

	if distance <= maxMiles {
		return 100 - (100-locationFloorAtMax)*(distance/maxMiles)
	}

	score := locationFloorAtMax - locationFloorAtMax*((distance-maxMiles)/maxMiles)
	if score < 0 {
		return 0
	}
	return score
}
