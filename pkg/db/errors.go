package db

import "errors"

// Errors returned by AssignmentStore implementations when the atomic
// commit-time checks fail. Bulk operations map these onto per-item
// failure reasons rather than aborting the batch.
var (
	// ErrEventNotAccepting means the event is not in a status that
	// accepts new assignments.
	ErrEventNotAccepting = errors.New("event is not accepting assignments")

	// ErrAlreadyAssigned means the volunteer already holds an active
	// assignment for the event.
	ErrAlreadyAssigned = errors.New("volunteer is already assigned to event")

	// ErrCapacityReached means the event's confirmed count has reached
	// its capacity.
	ErrCapacityReached = errors.New("event capacity reached")
)
