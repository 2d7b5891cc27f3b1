package model

import "time"

// GeoPoint is a latitude/longitude pair. Records without a known position
// carry a nil *GeoPoint rather than a zero value, so "no data" is never
// mistaken for a point off the coast of Africa.
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// SkillRating is one skill a volunteer holds, at a given proficiency.
type SkillRating struct {
	SkillID     string
	Proficiency Proficiency
}

// SkillRequirement is one skill an event asks for. Required requirements
// weigh heavier in scoring than optional ones.
type SkillRequirement struct {
	SkillID        string
	MinProficiency Proficiency
	Required       bool
}

// AvailabilityWindow is a weekly recurring slot a volunteer can serve in.
// Times are minutes from midnight (see ParseClock).
type AvailabilityWindow struct {
	Day         Weekday
	StartMinute int
	EndMinute   int
}

// Preferences holds a volunteer's matching preferences.
type Preferences struct {
	// MaxDistanceMiles is the furthest the volunteer wants to travel.
	// Zero means no preference was recorded.
	MaxDistanceMiles float64
	PreferredCauses  []string
	WeekdaysOnly     bool
}

// History holds a volunteer's aggregated participation record.
type History struct {
	CompletedCount int
	// AvgRating is the 1-5 average across rated participations,
	// nil when the volunteer has never been rated.
	AvgRating *float64
	// ProfileCompleteness is 0-100.
	ProfileCompleteness float64
}

// Volunteer is a candidate record as supplied by the caller. The engine
// treats it as a read-only snapshot.
type Volunteer struct {
	ID           string
	Role         Role
	Location     *GeoPoint
	Skills       []SkillRating
	Availability []AvailabilityWindow
	Preferences  Preferences
	History      History
}

// Event is a service event record as supplied by the caller.
type Event struct {
	ID                string
	Location          *GeoPoint
	StartTime         time.Time
	EndTime           time.Time
	Requirements      []SkillRequirement
	Cause             string
	Urgency           Urgency
	MaxVolunteers     int
	CurrentVolunteers int
	Status            EventStatus
	// SeriesID links events materialized from a recurring series,
	// empty for standalone events.
	SeriesID string
}

// Assignment links a volunteer to an event.
type Assignment struct {
	ID          string
	EventID     string
	VolunteerID string
	Status      AssignmentStatus
	Score       int
	CreatedAt   time.Time
}

// DurationMinutes returns the event's scheduled length in minutes.
func (e *Event) DurationMinutes() float64 {
	return e.EndTime.Sub(e.StartTime).Minutes()
}

// RemainingCapacity returns how many confirmed spots the event has left.
func (e *Event) RemainingCapacity() int {
	remaining := e.MaxVolunteers - e.CurrentVolunteers
	if remaining < 0 {
		return 0
	}
	return remaining
}
