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

// SuggestStore defines the database operations needed for the suggestion
// sweep
type SuggestStore interface {
	ListEvents(ctx context.Context, statuses ...model.EventStatus) ([]model.Event, error)
	ListVolunteers(ctx context.Context) ([]model.Volunteer, error)
	GetAssignmentsForEvent(ctx context.Context, eventID string) ([]model.Assignment, error)
}

// EventSuggestions is the suggestion list for one event.
type EventSuggestions struct {
	EventID    string
	Cause      string
	Candidates []*matching.Result
}

// SuggestResult is the outcome of a full suggestion sweep.
type SuggestResult struct {
	Events          []EventSuggestions
	TotalCandidates int
}

// SuggestAssignments sweeps every published event and ranks volunteers
// for each, applying the configured minimum score and per-event cap.
// Purely advisory: nothing is written.
func SuggestAssignments(
	ctx context.Context,
	database SuggestStore,
	cfg *config.Config,
	logger *zap.Logger,
) (*SuggestResult, error) {
	logger.Debug("Starting suggestion sweep",
		zap.Int("min_score", cfg.Matching.MinSuggestionScore),
		zap.Int("per_event_cap", cfg.Matching.MaxSuggestionsPerEvent))

	events, err := database.ListEvents(ctx, model.EventPublished)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}

	pool, err := database.ListVolunteers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch volunteers: %w", err)
	}

	scorer, err := newScorer(cfg)
	if err != nil {
		return nil, err
	}

	result := &SuggestResult{Events: make([]EventSuggestions, 0, len(events))}
	for i := range events {
		event := &events[i]

		assignments, err := database.GetAssignmentsForEvent(ctx, event.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch assignments for event %s: %w", event.ID, err)
		}

		candidates, err := ranking.VolunteersForEvent(scorer, event, pool, activeVolunteerSet(assignments), ranking.Options{
			MinScore: cfg.Matching.MinSuggestionScore,
			Limit:    cfg.Matching.MaxSuggestionsPerEvent,
		})
		if err != nil {
			return nil, err
		}

		result.Events = append(result.Events, EventSuggestions{
			EventID:    event.ID,
			Cause:      event.Cause,
			Candidates: candidates,
		})
		result.TotalCandidates += len(candidates)
	}

	logger.Info("Suggestion sweep complete",
		zap.Int("events", len(result.Events)),
		zap.Int("candidates", result.TotalCandidates))

	return result, nil
}
