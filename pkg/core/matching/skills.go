package matching

import "github.com/communityroots/volunteer-match/pkg/core/model"

// Skills sub-score.
//
// Policy:
//   - A requirement is satisfied when the volunteer holds the skill at or
//     above the required minimum proficiency.
//   - Required requirements carry twice the weight of optional ones, so a
//     missing required skill costs more than a missing nice-to-have.
//   - An event with no requirements scores 75 for everyone: "anyone
//     qualifies" is a good-but-not-perfect fit by policy, deliberately
//     neither 0 nor 100.
const (
	skillsNoRequirementsScore = 75
	requiredSkillWeight       = 2.0
	optionalSkillWeight       = 1.0
)

// SkillsScore scores how well the volunteer's skills cover the event's
// requirements.
func SkillsScore(v *model.Volunteer, e *model.Event) float64 {
	if len(e.Requirements) == 0 {
		return skillsNoRequirementsScore
	}

	// Keep the best proficiency per skill in case of duplicate ratings.
	best := make(map[string]model.Proficiency, len(v.Skills))
	for _, s := range v.Skills {
		if s.Proficiency > best[s.SkillID] {
			best[s.SkillID] = s.Proficiency
		}
	}

	var totalWeight, satisfiedWeight float64
	for _, req := range e.Requirements {
		weight := optionalSkillWeight
		if req.Required {
			weight = requiredSkillWeight
		}
		totalWeight += weight

		if p, ok := best[req.SkillID]; ok && p >= req.MinProficiency {
			satisfiedWeight += weight
		}
	}

	return 100 * satisfiedWeight / totalWeight
}
