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

// RankEventsStore defines the database operations needed to rank events
// for a volunteer
type RankEventsStore interface {
	GetVolunteer(ctx context.Context, id string) (*model.Volunteer, error)
	ListEvents(ctx context.Context, statuses ...model.EventStatus) ([]model.Event, error)
}

// RankEvents ranks events against one volunteer. Only published events
// are considered unless opts.Statuses says otherwise.
func RankEvents(
	ctx context.Context,
	database RankEventsStore,
	cfg *config.Config,
	logger *zap.Logger,
	volunteerID string,
	opts ranking.Options,
) ([]*matching.Result, error) {
	logger.Debug("Ranking events for volunteer", zap.String("volunteer_id", volunteerID))

	volunteer, err := database.GetVolunteer(ctx, volunteerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch volunteer: %w", err)
	}
	if volunteer == nil {
		return nil, fmt.Errorf("%w: %s", ErrVolunteerNotFound, volunteerID)
	}
	if volunteer.Role != model.RoleVolunteer {
		return nil, fmt.Errorf("%w: %s", ErrNotAVolunteer, volunteerID)
	}

	statuses := opts.Statuses
	if len(statuses) == 0 {
		statuses = []model.EventStatus{model.EventPublished}
	}

	pool, err := database.ListEvents(ctx, statuses...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}

	scorer, err := newScorer(cfg)
	if err != nil {
		return nil, err
	}

	results, err := ranking.EventsForVolunteer(scorer, volunteer, pool, opts)
	if err != nil {
		return nil, err
	}

	logger.Debug("Ranked events",
		zap.String("volunteer_id", volunteerID),
		zap.Int("pool_size", len(pool)),
		zap.Int("ranked", len(results)))

	return results, nil
}
