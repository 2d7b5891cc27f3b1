package matching

import "github.com/communityroots/volunteer-match/pkg/core/model"

// Availability sub-score.
//
// Policy:
//   - The event's full time window inside one of the volunteer's windows
//     for that day scores 100.
//   - Partial overlap scores proportionally: overlap minutes divided by
//     event minutes, across the best-matching window.
//   - No window recorded for the event's day scores a floor of 25, not 0.
//     Recorded availability is often incomplete; silence is weaker
//     evidence than a window at the wrong time.
const availabilityFloorScore = 25

// AvailabilityScore scores how well the event's schedule fits the
// volunteer's weekly availability windows.
func AvailabilityScore(v *model.Volunteer, e *model.Event) float64 {
	day := model.WeekdayOf(e.StartTime)
	eventStart := e.StartTime.Hour()*60 + e.StartTime.Minute()
	duration := e.DurationMinutes()

	var sameDay bool
	var bestRatio float64
	for _, w := range v.Availability {
		if w.Day != day {
			continue
		}
		sameDay = true

		if duration <= 0 {
			// Zero-length schedule: containment of the start is all
			// that can be checked.
			if eventStart >= w.StartMinute && eventStart <= w.EndMinute {
				bestRatio = 1
			}
			continue
		}

		overlap := overlapMinutes(eventStart, eventStart+int(duration), w.StartMinute, w.EndMinute)
		if ratio := float64(overlap) / duration; ratio > bestRatio {
			bestRatio = ratio
		}
	}

	if !sameDay {
		return availabilityFloorScore
	}
	if bestRatio > 1 {
		bestRatio = 1
	}
	return 100 * bestRatio
}

func overlapMinutes(aStart, aEnd, bStart, bEnd int) int {
	start := max(aStart, bStart)
	end := min(aEnd, bEnd)
	if end <= start {
		return 0
	}
	return end - start
}
