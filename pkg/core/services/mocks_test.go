package services

import (
	"context"

	"github.com/communityroots/volunteer-match/internal/config"
	"github.com/communityroots/volunteer-match/pkg/core/model"
)

// mockStore implements the per-service store interfaces for testing
type mockStore struct {
	volunteers  []model.Volunteer
	events      []model.Event
	assignments map[string][]model.Assignment

	createdAssignments []model.Assignment
	insertedEvents     []model.Event

	// createErrs fails CreateAssignment for specific volunteer IDs
	createErrs map[string]error

	getVolunteerErr error
	getEventErr     error
	listEventsErr   error
}

func (m *mockStore) GetVolunteer(ctx context.Context, id string) (*model.Volunteer, error) {
	if m.getVolunteerErr != nil {
		return nil, m.getVolunteerErr
	}
	for i := range m.volunteers {
		if m.volunteers[i].ID == id {
			return &m.volunteers[i], nil
		}
	}
	return nil, nil
}

func (m *mockStore) ListVolunteers(ctx context.Context) ([]model.Volunteer, error) {
	return m.volunteers, nil
}

func (m *mockStore) GetEvent(ctx context.Context, id string) (*model.Event, error) {
	if m.getEventErr != nil {
		return nil, m.getEventErr
	}
	for i := range m.events {
		if m.events[i].ID == id {
			return &m.events[i], nil
		}
	}
	return nil, nil
}

func (m *mockStore) ListEvents(ctx context.Context, statuses ...model.EventStatus) ([]model.Event, error) {
	if m.listEventsErr != nil {
		return nil, m.listEventsErr
	}
	if len(statuses) == 0 {
		return m.events, nil
	}
	allowed := make(map[model.EventStatus]bool, len(statuses))
	for _, s := range statuses {
		allowed[s] = true
	}
	var filtered []model.Event
	for _, e := range m.events {
		if allowed[e.Status] {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

func (m *mockStore) InsertEvents(ctx context.Context, events []model.Event) error {
	m.insertedEvents = append(m.insertedEvents, events...)
	m.events = append(m.events, events...)
	return nil
}

func (m *mockStore) GetAssignmentsForEvent(ctx context.Context, eventID string) ([]model.Assignment, error) {
	return m.assignments[eventID], nil
}

func (m *mockStore) CreateAssignment(ctx context.Context, a *model.Assignment) error {
	if err, ok := m.createErrs[a.VolunteerID]; ok {
		return err
	}
	m.createdAssignments = append(m.createdAssignments, *a)
	if m.assignments == nil {
		m.assignments = make(map[string][]model.Assignment)
	}
	m.assignments[a.EventID] = append(m.assignments[a.EventID], *a)
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		DatabaseURL: "postgres://test",
		Matching: config.MatchingConfig{
			DefaultMaxDistanceMiles: 25,
			MinSuggestionScore:      0,
			MaxSuggestionsPerEvent:  10,
			AutoConfirmScore:        80,
		},
	}
}
