package matching

import "github.com/communityroots/volunteer-match/pkg/core/model"

// Preferences sub-score.
//
// Policy:
//   - Cause match is the base: 90 when the event's cause is among the
//     volunteer's preferred causes, 40 when it isn't, 70 when the
//     volunteer recorded no preferences at all (neutral, not punished).
//   - The weekdays-only flag adjusts the base: a weekend event conflicts
//     with it (-25), a weekday event aligns with it (+10). The result is
//     clamped to [0,100].
const (
	preferredCauseScore    = 90
	otherCauseScore        = 40
	noPreferencesScore     = 70
	weekendConflictPenalty = 25
	weekdayAlignmentBonus  = 10
)

// PreferencesScore scores the event against the volunteer's cause and
// scheduling preferences.
func PreferencesScore(v *model.Volunteer, e *model.Event) float64 {
	score := float64(noPreferencesScore)
	if len(v.Preferences.PreferredCauses) > 0 {
		score = otherCauseScore
		for _, cause := range v.Preferences.PreferredCauses {
			if cause == e.Cause {
				score = preferredCauseScore
				break
			}
		}
	}

	if v.Preferences.WeekdaysOnly {
		if model.WeekdayOf(e.StartTime).IsWeekend() {
			score -= weekendConflictPenalty
		} else {
			score += weekdayAlignmentBonus
		}
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
