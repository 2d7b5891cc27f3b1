package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/communityroots/volunteer-match/pkg/core/model"
	"github.com/communityroots/volunteer-match/pkg/db"
)

func TestBulkAssign_AllSucceed(t *testing.T) {
	store := &mockStore{
		volunteers: []model.Volunteer{sampleVolunteer("v1"), sampleVolunteer("v2")},
		events:     []model.Event{sampleEvent("e1", model.EventPublished)},
	}

	result, err := BulkAssign(context.Background(), store, testConfig(), zap.NewNop(), "e1", []BulkAssignItem{
		{VolunteerID: "v1", Score: 85},
		{VolunteerID: "v2", Score: 70},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Total)
	assert.Equal(t, 2, result.Succeeded)
	assert.Equal(t, 0, result.Failed)
	assert.Equal(t, 1.0, result.SuccessRate)
	require.Len(t, store.createdAssignments, 2)

	// Score 85 crosses the auto-confirm threshold, 70 stays pending
	assert.Equal(t, model.AssignmentConfirmed, store.createdAssignments[0].Status)
	assert.Equal(t, model.AssignmentPending, store.createdAssignments[1].Status)
}

func TestBulkAssign_PartialFailure(t *testing.T) {
	store := &mockStore{
		volunteers: []model.Volunteer{sampleVolunteer("v1"), sampleVolunteer("v2"), sampleVolunteer("v3"), sampleVolunteer("v4")},
		events:     []model.Event{sampleEvent("e1", model.EventPublished)},
		createErrs: map[string]error{
			"v2": db.ErrAlreadyAssigned,
			"v3": db.ErrCapacityReached,
		},
	}

	result, err := BulkAssign(context.Background(), store, testConfig(), zap.NewNop(), "e1", []BulkAssignItem{
		{VolunteerID: "v1", Score: 90},
		{VolunteerID: "v2", Score: 80},
		{VolunteerID: "v3", Score: 75},
		{VolunteerID: "v-missing", Score: 60},
	})
	require.NoError(t, err)

	// One bad item never aborts the batch; every item gets a result
	assert.Equal(t, 4, result.Total)
	assert.Equal(t, 1, result.Succeeded)
	assert.Equal(t, 3, result.Failed)
	assert.InDelta(t, 0.25, result.SuccessRate, 0.001)
	require.Len(t, result.Items, 4)

	assert.True(t, result.Items[0].Succeeded)
	assert.Equal(t, "already assigned", result.Items[1].FailureReason)
	assert.Equal(t, "capacity reached", result.Items[2].FailureReason)
	assert.Equal(t, "volunteer not found", result.Items[3].FailureReason)
}

func TestBulkAssign_EventNotAccepting(t *testing.T) {
	store := &mockStore{
		volunteers: []model.Volunteer{sampleVolunteer("v1")},
		events:     []model.Event{sampleEvent("e1", model.EventDraft)},
		createErrs: map[string]error{"v1": db.ErrEventNotAccepting},
	}

	result, err := BulkAssign(context.Background(), store, testConfig(), zap.NewNop(), "e1", []BulkAssignItem{
		{VolunteerID: "v1", Score: 90},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, "event not accepting assignments", result.Items[0].FailureReason)
}

func TestBulkAssign_EventNotFound(t *testing.T) {
	store := &mockStore{volunteers: []model.Volunteer{sampleVolunteer("v1")}}

	_, err := BulkAssign(context.Background(), store, testConfig(), zap.NewNop(), "e-missing", []BulkAssignItem{
		{VolunteerID: "v1", Score: 90},
	})
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestBulkAssign_EmptyRequest(t *testing.T) {
	store := &mockStore{events: []model.Event{sampleEvent("e1", model.EventPublished)}}

	// A structurally invalid request is the one thing that errors
	_, err := BulkAssign(context.Background(), store, testConfig(), zap.NewNop(), "e1", nil)
	assert.Error(t, err)
}

func TestBulkAssign_NonVolunteerItemFails(t *testing.T) {
	organizer := sampleVolunteer("org1")
	organizer.Role = model.RoleOrganizer
	store := &mockStore{
		volunteers: []model.Volunteer{organizer},
		events:     []model.Event{sampleEvent("e1", model.EventPublished)},
	}

	result, err := BulkAssign(context.Background(), store, testConfig(), zap.NewNop(), "e1", []BulkAssignItem{
		{VolunteerID: "org1", Score: 90},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, "record is not a volunteer", result.Items[0].FailureReason)
}
