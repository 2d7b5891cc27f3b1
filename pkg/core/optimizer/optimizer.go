// Package optimizer plans capacity-constrained assignments for a single
// event. It is a planner, not a committer: the plan it produces is
// advisory, and capacity must be re-validated atomically by whatever
// applies it (see pkg/postgres.CreateAssignment).
package optimizer

import (
	"fmt"

	"github.com/communityroots/volunteer-match/pkg/core/matching"
	"github.com/communityroots/volunteer-match/pkg/core/model"
)

// Options controls how the plan is built.
type Options struct {
	// PreserveConfirmed keeps currently-confirmed assignments untouched
	// and counts them against capacity first.
	PreserveConfirmed bool

	// AutoConfirmThreshold proposes candidates at or above this score as
	// confirmed instead of pending. Zero disables auto-confirmation.
	AutoConfirmThreshold int
}

// DefaultOptions returns the standard policy: confirmed assignments are
// never displaced and nothing is auto-confirmed.
func DefaultOptions() Options {
	return Options{PreserveConfirmed: true}
}

// Decision is one proposed assignment.
type Decision struct {
	VolunteerID string
	EventID     string
	Status      model.AssignmentStatus
	Score       int
}

// Plan decides which volunteers from the ranked candidate list should fill
// the event's remaining capacity.
//
// Candidates already holding an active assignment are skipped silently:
// that is an expected filtering outcome, not a fault. The only error is a
// structurally invalid event.
func Plan(
	event *model.Event,
	existing []model.Assignment,
	ranked []*matching.Result,
	opts Options,
) ([]Decision, error) {
	if event == nil || event.ID == "" {
		return nil, fmt.Errorf("event record has no identifier")
	}

	confirmed := 0
	active := make(map[string]bool, len(existing))
	for _, a := range existing {
		if a.Status.IsActive() {
			active[a.VolunteerID] = true
		}
		if a.Status == model.AssignmentConfirmed {
			confirmed++
		}
	}

	remaining := event.MaxVolunteers
	if opts.PreserveConfirmed {
		remaining -= confirmed
	}
	if remaining < 0 {
		remaining = 0
	}

	decisions := make([]Decision, 0, remaining)
	for _, r := range ranked {
		if remaining == 0 {
			break
		}
		if active[r.VolunteerID] {
			continue
		}

		status := model.AssignmentPending
		if opts.AutoConfirmThreshold > 0 && r.Score >= opts.AutoConfirmThreshold {
			status = model.AssignmentConfirmed
		}

		decisions = append(decisions, Decision{
			VolunteerID: r.VolunteerID,
			EventID:     event.ID,
			Status:      status,
			Score:       r.Score,
		})
		// Guard against duplicate candidates in the ranked list.
		active[r.VolunteerID] = true
		remaining--
	}

	return decisions, nil
}
