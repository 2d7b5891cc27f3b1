package matching

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/communityroots/volunteer-match/pkg/core/model"
)

func weekdayFoodEvent() *model.Event {
	return &model.Event{
		ID:        "e1",
		Cause:     "food-security",
		StartTime: time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC), // Monday
	}
}

func weekendFoodEvent() *model.Event {
	return &model.Event{
		ID:        "e2",
		Cause:     "food-security",
		StartTime: time.Date(2026, 9, 5, 10, 0, 0, 0, time.UTC), // Saturday
	}
}

func TestPreferencesScore_CauseMatch(t *testing.T) {
	v := &model.Volunteer{
		ID:          "v1",
		Preferences: model.Preferences{PreferredCauses: []string{"education", "food-security"}},
	}

	assert.Equal(t, 90.0, PreferencesScore(v, weekdayFoodEvent()))
}

func TestPreferencesScore_CauseMismatch(t *testing.T) {
	v := &model.Volunteer{
		ID:          "v1",
		Preferences: model.Preferences{PreferredCauses: []string{"education"}},
	}

	assert.Equal(t, 40.0, PreferencesScore(v, weekdayFoodEvent()))
}

func TestPreferencesScore_NoPreferredCauses(t *testing.T) {
	v := &model.Volunteer{ID: "v1"}

	assert.Equal(t, 70.0, PreferencesScore(v, weekdayFoodEvent()))
}

func TestPreferencesScore_WeekdaysOnlyAlignment(t *testing.T) {
	v := &model.Volunteer{
		ID: "v1",
		Preferences: model.Preferences{
			PreferredCauses: []string{"food-security"},
			WeekdaysOnly:    true,
		},
	}

	// Weekday event aligns with the flag, weekend event conflicts
	assert.Equal(t, 100.0, PreferencesScore(v, weekdayFoodEvent()))
	assert.Equal(t, 65.0, PreferencesScore(v, weekendFoodEvent()))
}

func TestPreferencesScore_ClampedToHundred(t *testing.T) {
	v := &model.Volunteer{
		ID: "v1",
		Preferences: model.Preferences{
			PreferredCauses: []string{"food-security"},
			WeekdaysOnly:    true,
		},
	}

	assert.LessOrEqual(t, PreferencesScore(v, weekdayFoodEvent()), 100.0)
}
