package matching

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/communityroots/volunteer-match/pkg/core/model"
)

func testVolunteer() *model.Volunteer {
	return &model.Volunteer{
		ID:       "v1",
		Role:     model.RoleVolunteer,
		Location: &model.GeoPoint{Latitude: 40.7128, Longitude: -74.0060},
		Skills: []model.SkillRating{
			{SkillID: "first-aid", Proficiency: model.ProficiencyAdvanced},
		},
		Availability: []model.AvailabilityWindow{
			{Day: model.Monday, StartMinute: 9 * 60, EndMinute: 17 * 60},
		},
		Preferences: model.Preferences{
			MaxDistanceMiles: 25,
			PreferredCauses:  []string{"food-security"},
		},
		History: model.History{
			CompletedCount:      5,
			ProfileCompleteness: 90,
		},
	}
}

func testEvent() *model.Event {
	return &model.Event{
		ID:        "e1",
		Location:  &model.GeoPoint{Latitude: 40.7306, Longitude: -73.9352},
		StartTime: time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 8, 31, 14, 0, 0, 0, time.UTC),
		Requirements: []model.SkillRequirement{
			{SkillID: "first-aid", MinProficiency: model.ProficiencyIntermediate, Required: true},
		},
		Cause:         "food-security",
		Urgency:       model.UrgencyMedium,
		MaxVolunteers: 10,
		Status:        model.EventPublished,
	}
}

func TestNewScorer_RejectsInvalidWeights(t *testing.T) {
	_, err := NewScorer(Weights{Location: 0.5, Skills: 0.6}, 25)
	assert.Error(t, err)

	_, err = NewScorer(Weights{Location: -0.1, Skills: 0.5, Availability: 0.3, Preferences: 0.2, Reliability: 0.1}, 25)
	assert.Error(t, err)

	_, err = NewScorer(DefaultWeights(), 0)
	assert.Error(t, err)
}

func TestDefaultWeights_SumToOne(t *testing.T) {
	require.NoError(t, DefaultWeights().Validate())

	w := DefaultWeights()
	sum := w.Location + w.Skills + w.Availability + w.Preferences + w.Reliability
	assert.InDelta(t, 1.0, sum, 0.001)
}

func TestScore_TotalEqualsWeightedSum(t *testing.T) {
	scorer, err := NewScorer(DefaultWeights(), 25)
	require.NoError(t, err)

	result, err := scorer.Score(testVolunteer(), testEvent())
	require.NoError(t, err)

	b := result.Breakdown
	w := result.Weights
	expected := w.Location*b.Location + w.Skills*b.Skills +
		w.Availability*b.Availability + w.Preferences*b.Preferences +
		w.Reliability*b.Reliability
	assert.Equal(t, int(math.Round(expected)), result.Score)
}

func TestScore_InRange(t *testing.T) {
	scorer, err := NewScorer(DefaultWeights(), 25)
	require.NoError(t, err)

	// A pair with everything missing still lands inside 0-100
	result, err := scorer.Score(&model.Volunteer{ID: "v1", Role: model.RoleVolunteer}, &model.Event{ID: "e1"})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, result.Score, 0)
	assert.LessOrEqual(t, result.Score, 100)

	result, err = scorer.Score(testVolunteer(), testEvent())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, result.Score, 0)
	assert.LessOrEqual(t, result.Score, 100)
}

func TestScore_BreakdownInRange(t *testing.T) {
	scorer, err := NewScorer(DefaultWeights(), 25)
	require.NoError(t, err)

	result, err := scorer.Score(testVolunteer(), testEvent())
	require.NoError(t, err)

	for name, sub := range map[string]float64{
		"location":     result.Breakdown.Location,
		"skills":       result.Breakdown.Skills,
		"availability": result.Breakdown.Availability,
		"preferences":  result.Breakdown.Preferences,
		"reliability":  result.Breakdown.Reliability,
	} {
		assert.GreaterOrEqualf(t, sub, 0.0, "%s sub-score below 0", name)
		assert.LessOrEqualf(t, sub, 100.0, "%s sub-score above 100", name)
	}
}

func TestScore_MissingIdentifiers(t *testing.T) {
	scorer, err := NewScorer(DefaultWeights(), 25)
	require.NoError(t, err)

	_, err = scorer.Score(&model.Volunteer{}, testEvent())
	assert.Error(t, err)

	_, err = scorer.Score(testVolunteer(), &model.Event{})
	assert.Error(t, err)

	_, err = scorer.Score(nil, testEvent())
	assert.Error(t, err)
}

func TestScore_CustomWeights(t *testing.T) {
	// All weight on skills isolates that component
	scorer, err := NewScorer(Weights{Skills: 1.0}, 25)
	require.NoError(t, err)

	result, err := scorer.Score(testVolunteer(), testEvent())
	require.NoError(t, err)
	assert.Equal(t, 100, result.Score)
}
