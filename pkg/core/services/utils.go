package services

import (
	"fmt"

	"github.com/communityroots/volunteer-match/internal/config"
	"github.com/communityroots/volunteer-match/pkg/core/matching"
	"github.com/communityroots/volunteer-match/pkg/core/model"
)

// newScorer builds the match scorer from configuration.
func newScorer(cfg *config.Config) (*matching.Scorer, error) {
	scorer, err := matching.NewScorer(cfg.Matching.Weights(), cfg.Matching.DefaultMaxDistanceMiles)
	if err != nil {
		return nil, fmt.Errorf("failed to build scorer: %w", err)
	}
	return scorer, nil
}

// activeVolunteerSet collects the volunteer IDs holding an active
// assignment among the given records.
func activeVolunteerSet(assignments []model.Assignment) map[string]bool {
	active := make(map[string]bool, len(assignments))
	for _, a := range assignments {
		if a.Status.IsActive() {
			active[a.VolunteerID] = true
		}
	}
	return active
}
