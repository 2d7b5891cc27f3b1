package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/communityroots/volunteer-match/internal/config"
	"github.com/communityroots/volunteer-match/pkg/core/matching"
	"github.com/communityroots/volunteer-match/pkg/core/model"
	"github.com/communityroots/volunteer-match/pkg/core/ranking"
)

// RankVolunteersStore defines the database operations needed to rank
// volunteers for an event
type RankVolunteersStore interface {
	GetEvent(ctx context.Context, id string) (*model.Event, error)
	ListVolunteers(ctx context.Context) ([]model.Volunteer, error)
	GetAssignmentsForEvent(ctx context.Context, eventID string) ([]model.Assignment, error)
}

// RankVolunteers ranks the volunteer pool against one event. The event
// must exist; an empty result is a valid outcome, a missing event is not.
func RankVolunteers(
	ctx context.Context,
	database RankVolunteersStore,
	cfg *config.Config,
	logger *zap.Logger,
	eventID string,
	opts ranking.Options,
) ([]*matching.Result, error) {
	logger.Debug("Ranking volunteers for event", zap.String("event_id", eventID))

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

	assignments, err := database.GetAssignmentsForEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assignments: %w", err)
	}

	scorer, err := newScorer(cfg)
	if err != nil {
		return nil, err
	}

	results, err := ranking.VolunteersForEvent(scorer, event, pool, activeVolunteerSet(assignments), opts)
	if err != nil {
		return nil, err
	}

	logger.Debug("Ranked volunteers",
		zap.String("event_id", eventID),
		zap.Int("pool_size", len(pool)),
		zap.Int("ranked", len(results)))

	return results, nil
}
