package services

import "errors"

// Sentinel errors for single-record operations. Not-found and
// precondition failures are definite errors at this level, never empty
// results.
var (
	ErrVolunteerNotFound = errors.New("volunteer not found")
	ErrEventNotFound     = errors.New("event not found")
	ErrNotAVolunteer     = errors.New("record is not a volunteer")
)
