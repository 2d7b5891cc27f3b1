package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/communityroots/volunteer-match/internal/config"
	"github.com/communityroots/volunteer-match/pkg/core/model"
	"github.com/communityroots/volunteer-match/pkg/core/optimizer"
	"github.com/communityroots/volunteer-match/pkg/core/ranking"
)

// PlanAssignmentsStore defines the database operations needed to plan
// assignments for an event
type PlanAssignmentsStore interface {
	GetEvent(ctx context.Context, id string) (*model.Event, error)
	ListVolunteers(ctx context.Context) ([]model.Volunteer, error)
	GetAssignmentsForEvent(ctx context.Context, eventID string) ([]model.Assignment, error)
}

// PlanAssignments ranks the volunteer pool for an event and plans how to
// fill its remaining capacity. The plan is advisory; applying it goes
// through the store's atomic CreateAssignment.
func PlanAssignments(
	ctx context.Context,
	database PlanAssignmentsStore,
	cfg *config.Config,
	logger *zap.Logger,
	eventID string,
	opts optimizer.Options,
) ([]optimizer.Decision, error) {
	logger.Debug("Planning assignments", zap.String("event_id", eventID))

	event, err := database.GetEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch event: %w", err)
	}
	if event == nil {
		return nil, fmt.Errorf("%w: %s", ErrEventNotFound, eventID)
	}

	pool, err := database.ListVolunteers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch volunteers: %w", err)
	}

	existing, err := database.GetAssignmentsForEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assignments: %w", err)
	}

	scorer, err := newScorer(cfg)
	if err != nil {
		return nil, err
	}

	// Already-assigned volunteers are skipped by the optimizer itself, so
	// the ranking includes them for a complete audit trail.
	ranked, err := ranking.VolunteersForEvent(scorer, event, pool, nil, ranking.Options{
		MinScore:        cfg.Matching.MinSuggestionScore,
		IncludeAssigned: true,
	})
	if err != nil {
		return nil, err
	}

	decisions, err := optimizer.Plan(event, existing, ranked, opts)
	if err != nil {
		return nil, err
	}

	logger.Debug("Planned assignments",
		zap.String("event_id", eventID),
		zap.Int("candidates", len(ranked)),
		zap.Int("proposed", len(decisions)))

	return decisions, nil
}
