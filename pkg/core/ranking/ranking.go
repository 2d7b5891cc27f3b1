// Package ranking scores a candidate pool against a fixed volunteer or
// event, then filters, orders and truncates the results. It never touches
// storage; callers supply a point-in-time snapshot of the pool.
package ranking

import (
	"fmt"
	"sort"

	"github.com/communityroots/volunteer-match/pkg/core/matching"
	"github.com/communityroots/volunteer-match/pkg/core/model"
)

// Options controls filtering and truncation of a ranking.
type Options struct {
	// MinScore drops candidates scoring below it.
	MinScore int

	// Limit caps the number of results. Zero or negative means no cap.
	Limit int

	// IncludeAssigned keeps volunteers that already hold an active
	// assignment for the event. Default is to exclude them.
	IncludeAssigned bool

	// Statuses restricts the event side of RankEventsForVolunteer.
	// Empty means published events only.
	Statuses []model.EventStatus
}

// VolunteersForEvent ranks a volunteer pool against one event.
//
// Non-volunteer records, records without identifiers, and (unless
// IncludeAssigned is set) volunteers in activeAssigned are filtered out
// silently; they are expected pool noise, not errors. The result is
// ordered by score descending, volunteer ID ascending on ties, so
// identical inputs always produce identical output.
func VolunteersForEvent(
	scorer *matching.Scorer,
	event *model.Event,
	pool []model.Volunteer,
	activeAssigned map[string]bool,
	opts Options,
) ([]*matching.Result, error) {
	if event == nil || event.ID == "" {
		return nil, fmt.Errorf("event record has no identifier")
	}

	results := make([]*matching.Result, 0, len(pool))
	for i := range pool {
		v := &pool[i]
		if v.ID == "" || v.Role != model.RoleVolunteer {
			continue
		}
		if !opts.IncludeAssigned && activeAssigned[v.ID] {
			continue
		}

		r, err := scorer.Score(v, event)
		if err != nil {
			return nil, fmt.Errorf("failed to score volunteer %s: %w", v.ID, err)
		}
		if r.Score < opts.MinScore {
			continue
		}
		results = append(results, r)
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].VolunteerID < results[j].VolunteerID
	})

	return truncate(results, opts.Limit), nil
}

// EventsForVolunteer ranks an event pool against one volunteer. By
// default only published events are considered; Options.Statuses widens
// that. The tie-break orders by event ID ascending.
func EventsForVolunteer(
	scorer *matching.Scorer,
	volunteer *model.Volunteer,
	pool []model.Event,
	opts Options,
) ([]*matching.Result, error) {
	if volunteer == nil || volunteer.ID == "" {
		return nil, fmt.Errorf("volunteer record has no identifier")
	}
	if volunteer.Role != model.RoleVolunteer {
		return nil, fmt.Errorf("record %s is not a volunteer", volunteer.ID)
	}

	allowed := make(map[model.EventStatus]bool, len(opts.Statuses))
	for _, s := range opts.Statuses {
		allowed[s] = true
	}
	if len(allowed) == 0 {
		allowed[model.EventPublished] = true
	}

	results := make([]*matching.Result, 0, len(pool))
	for i := range pool {
		e := &pool[i]
		if e.ID == "" || !allowed[e.Status] {
			continue
		}

		r, err := scorer.Score(volunteer, e)
		if err != nil {
			return nil, fmt.Errorf("failed to score event %s: %w", e.ID, err)
		}
		if r.Score < opts.MinScore {
			continue
		}
		results = append(results, r)
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].EventID < results[j].EventID
	})

	return truncate(results, opts.Limit), nil
}

func truncate(results []*matching.Result, limit int) []*matching.Result {
	if limit > 0 && len(results) > limit {
		return results[:limit]
	}
	return results
}
