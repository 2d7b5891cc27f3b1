package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Proficiency is a volunteer's level in a skill. Levels form a total order
// so requirement checks can compare them directly.
type Proficiency int

const (
	ProficiencyBeginner Proficiency = iota + 1
	ProficiencyIntermediate
	ProficiencyAdvanced
	ProficiencyExpert
)

func (p Proficiency) String() string {
	switch p {
	case ProficiencyBeginner:
		return "beginner"
	case ProficiencyIntermediate:
		return "intermediate"
	case ProficiencyAdvanced:
		return "advanced"
	case ProficiencyExpert:
		return "expert"
	}
	return "unknown"
}

func (p Proficiency) IsValid() bool {
	return p >= ProficiencyBeginner && p <= ProficiencyExpert
}

// ParseProficiency resolves a proficiency name to its level.
// Resolution happens once at the ingestion boundary; scoring code only
// ever sees the ordered values.
func ParseProficiency(s string) (Proficiency, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "beginner":
		return ProficiencyBeginner, nil
	case "intermediate":
		return ProficiencyIntermediate, nil
	case "advanced":
		return ProficiencyAdvanced, nil
	case "expert":
		return ProficiencyExpert, nil
	}
	return 0, fmt.Errorf("unknown proficiency %q", s)
}

// Weekday uses a fixed Monday=0 .. Sunday=6 mapping.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [7]string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

func (d Weekday) String() string {
	if d < Monday || d > Sunday {
		return "unknown"
	}
	return weekdayNames[d]
}

func (d Weekday) IsValid() bool {
	return d >= Monday && d <= Sunday
}

// IsWeekend reports whether the day is Saturday or Sunday.
func (d Weekday) IsWeekend() bool {
	return d == Saturday || d == Sunday
}

// ParseWeekday resolves a day name to the Monday=0 mapping.
func ParseWeekday(s string) (Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range weekdayNames {
		if n == name {
			return Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", s)
}

// WeekdayOf converts a timestamp's day to the Monday=0 mapping
// (time.Weekday counts from Sunday).
func WeekdayOf(t time.Time) Weekday {
	return Weekday((int(t.Weekday()) + 6) % 7)
}

// ParseClock parses an "HH:MM" time of day into minutes from midnight.
func ParseClock(s string) (int, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("clock time %q out of range", s)
	}
	return hour*60 + minute, nil
}

// EventStatus is an event's lifecycle state.
type EventStatus string

const (
	EventDraft     EventStatus = "draft"
	EventPublished EventStatus = "published"
	EventCompleted EventStatus = "completed"
	EventCancelled EventStatus = "cancelled"
)

func (s EventStatus) IsValid() bool {
	return s == EventDraft || s == EventPublished || s == EventCompleted || s == EventCancelled
}

// AssignmentStatus is the state of a volunteer's assignment to an event.
type AssignmentStatus string

const (
	AssignmentPending   AssignmentStatus = "pending"
	AssignmentConfirmed AssignmentStatus = "confirmed"
	AssignmentDeclined  AssignmentStatus = "declined"
	AssignmentCancelled AssignmentStatus = "cancelled"
	AssignmentCompleted AssignmentStatus = "completed"
)

func (s AssignmentStatus) IsValid() bool {
	switch s {
	case AssignmentPending, AssignmentConfirmed, AssignmentDeclined, AssignmentCancelled, AssignmentCompleted:
		return true
	}
	return false
}

// IsActive reports whether the assignment still occupies the volunteer.
// Declined, cancelled and completed assignments free the pair up again.
func (s AssignmentStatus) IsActive() bool {
	return s == AssignmentPending || s == AssignmentConfirmed
}

// Urgency is an event's priority level.
type Urgency string

const (
	UrgencyLow      Urgency = "low"
	UrgencyMedium   Urgency = "medium"
	UrgencyHigh     Urgency = "high"
	UrgencyCritical Urgency = "critical"
)

func (u Urgency) IsValid() bool {
	return u == UrgencyLow || u == UrgencyMedium || u == UrgencyHigh || u == UrgencyCritical
}

// Role distinguishes volunteer records from other account types.
type Role string

const (
	RoleVolunteer Role = "volunteer"
	RoleOrganizer Role = "organizer"
)

func (r Role) IsValid() bool {
	return r == RoleVolunteer || r == RoleOrganizer
}
