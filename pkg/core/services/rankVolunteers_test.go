package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/communityroots/volunteer-match/pkg/core/model"
	"github.com/communityroots/volunteer-match/pkg/core/ranking"
)

func TestRankVolunteers_Success(t *testing.T) {
	store := &mockStore{
		volunteers: []model.Volunteer{sampleVolunteer("v1"), sampleVolunteer("v2")},
		events:     []model.Event{sampleEvent("e1", model.EventPublished)},
	}

	results, err := RankVolunteers(context.Background(), store, testConfig(), zap.NewNop(), "e1", ranking.Options{})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "v1", results[0].VolunteerID)
}

func TestRankVolunteers_ExcludesActivelyAssigned(t *testing.T) {
	store := &mockStore{
		volunteers: []model.Volunteer{sampleVolunteer("v1"), sampleVolunteer("v2")},
		events:     []model.Event{sampleEvent("e1", model.EventPublished)},
		assignments: map[string][]model.Assignment{
			"e1": {
				{EventID: "e1", VolunteerID: "v1", Status: model.AssignmentConfirmed},
			},
		},
	}

	results, err := RankVolunteers(context.Background(), store, testConfig(), zap.NewNop(), "e1", ranking.Options{})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "v2", results[0].VolunteerID)
}

func TestRankVolunteers_EventNotFound(t *testing.T) {
	store := &mockStore{
		volunteers: []model.Volunteer{sampleVolunteer("v1")},
	}

	_, err := RankVolunteers(context.Background(), store, testConfig(), zap.NewNop(), "e-missing", ranking.Options{})
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestRankEvents_Success(t *testing.T) {
	store := &mockStore{
		volunteers: []model.Volunteer{sampleVolunteer("v1")},
		events: []model.Event{
			sampleEvent("e1", model.EventPublished),
			sampleEvent("e2", model.EventDraft),
		},
	}

	results, err := RankEvents(context.Background(), store, testConfig(), zap.NewNop(), "v1", ranking.Options{})
	require.NoError(t, err)

	// Draft events are not offered by default
	require.Len(t, results, 1)
	assert.Equal(t, "e1", results[0].EventID)
}

func TestRankEvents_VolunteerNotFound(t *testing.T) {
	store := &mockStore{}

	_, err := RankEvents(context.Background(), store, testConfig(), zap.NewNop(), "v-missing", ranking.Options{})
	assert.ErrorIs(t, err, ErrVolunteerNotFound)
}

func TestRankEvents_NotAVolunteer(t *testing.T) {
	organizer := sampleVolunteer("org1")
	organizer.Role = model.RoleOrganizer
	store := &mockStore{volunteers: []model.Volunteer{organizer}}

	_, err := RankEvents(context.Background(), store, testConfig(), zap.NewNop(), "org1", ranking.Options{})
	assert.ErrorIs(t, err, ErrNotAVolunteer)
}
