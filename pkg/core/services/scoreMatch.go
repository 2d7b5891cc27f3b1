package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/communityroots/volunteer-match/internal/config"
	"github.com/communityroots/volunteer-match/pkg/core/matching"
	"github.com/communityroots/volunteer-match/pkg/core/model"
)

// ScoreMatchStore defines the database operations needed to score a pair
type ScoreMatchStore interface {
	GetVolunteer(ctx context.Context, id string) (*model.Volunteer, error)
	GetEvent(ctx context.Context, id string) (*model.Event, error)
}

// ScoreMatch computes the match score for one volunteer/event pair.
// A missing volunteer or event is a definite error, never a silent zero.
func ScoreMatch(
	ctx context.Context,
	database ScoreMatchStore,
	cfg *config.Config,
	logger *zap.Logger,
	volunteerID string,
	eventID string,
) (*matching.Result, error) {
	logger.Debug("Scoring match",
		zap.String("volunteer_id", volunteerID),
		zap.String("event_id", eventID))

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

	event, err := database.GetEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch event: %w", err)
	}
	if event == nil {
		return nil, fmt.Errorf("%w: %s", ErrEventNotFound, eventID)
	}

	scorer, err := newScorer(cfg)
	if err != nil {
		return nil, err
	}

	result, err := scorer.Score(volunteer, event)
	if err != nil {
		return nil, err
	}

	logger.Debug("Match scored",
		zap.String("volunteer_id", volunteerID),
		zap.String("event_id", eventID),
		zap.Int("score", result.Score))

	return result, nil
}
