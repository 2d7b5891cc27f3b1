package db

import (
	"context"

	"github.com/communityroots/volunteer-match/pkg/core/model"
)

// VolunteerStore defines the interface for volunteer database operations.
// Get operations return (nil, nil) when the record does not exist; the
// service layer turns that into its not-found errors.
type VolunteerStore interface {
	GetVolunteer(ctx context.Context, id string) (*model.Volunteer, error)
	ListVolunteers(ctx context.Context) ([]model.Volunteer, error)
}

// EventStore defines the interface for event database operations.
type EventStore interface {
	GetEvent(ctx context.Context, id string) (*model.Event, error)
	ListEvents(ctx context.Context, statuses ...model.EventStatus) ([]model.Event, error)
	InsertEvents(ctx context.Context, events []model.Event) error
}

// AssignmentStore defines the interface for assignment database operations.
//
// CreateAssignment must re-validate capacity atomically: the engine's plan
// is advisory, and two callers working from the same snapshot may both be
// told there is room. Implementations serialize the check with the insert
// and return ErrEventNotAccepting, ErrAlreadyAssigned or
// ErrCapacityReached when the invariant would be violated.
type AssignmentStore interface {
	GetAssignmentsForEvent(ctx context.Context, eventID string) ([]model.Assignment, error)
	CreateAssignment(ctx context.Context, a *model.Assignment) error
}

// Store combines all database operations.
type Store interface {
	VolunteerStore
	EventStore
	AssignmentStore
}
