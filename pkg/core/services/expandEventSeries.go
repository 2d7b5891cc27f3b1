package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/communityroots/volunteer-match/internal/config"
	"github.com/communityroots/volunteer-match/pkg/core/model"
)

// ExpandEventSeriesStore defines the database operations needed to
// materialize recurring event series
type ExpandEventSeriesStore interface {
	GetEvent(ctx context.Context, id string) (*model.Event, error)
	ListEvents(ctx context.Context, statuses ...model.EventStatus) ([]model.Event, error)
	InsertEvents(ctx context.Context, events []model.Event) error
}

// SeriesExpansion is the per-series outcome of an expansion run.
type SeriesExpansion struct {
	Name            string
	TemplateEventID string
	Created         int
	Skipped         int
}

// ExpandEventSeriesResult summarizes an expansion run.
type ExpandEventSeriesResult struct {
	Series       []SeriesExpansion
	TotalCreated int
}

// ExpandEventSeries materializes concrete events for every configured
// recurring series, cloning each series' template event at the rrule's
// occurrences within (now, now+horizon]. Occurrences that already exist
// for the series are skipped, so the run is idempotent.
func ExpandEventSeries(
	ctx context.Context,
	database ExpandEventSeriesStore,
	cfg *config.Config,
	logger *zap.Logger,
	horizon time.Duration,
) (*ExpandEventSeriesResult, error) {
	logger.Debug("Expanding event series",
		zap.Int("series", len(cfg.EventSeries)),
		zap.Duration("horizon", horizon))

	existing, err := database.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}

	// Index existing occurrences by series and start time.
	occupied := make(map[string]bool)
	for _, e := range existing {
		if e.SeriesID != "" {
			occupied[occurrenceKey(e.SeriesID, e.StartTime)] = true
		}
	}

	now := time.Now()
	result := &ExpandEventSeriesResult{Series: make([]SeriesExpansion, 0, len(cfg.EventSeries))}

	for _, series := range cfg.EventSeries {
		expansion, events, err := expandOneSeries(ctx, database, series, occupied, now, horizon)
		if err != nil {
			return nil, err
		}

		if len(events) > 0 {
			if err := database.InsertEvents(ctx, events); err != nil {
				return nil, fmt.Errorf("failed to insert events for series %s: %w", series.Name, err)
			}
		}

		result.Series = append(result.Series, *expansion)
		result.TotalCreated += expansion.Created
	}

	logger.Info("Event series expansion complete", zap.Int("created", result.TotalCreated))

	return result, nil
}

func expandOneSeries(
	ctx context.Context,
	database ExpandEventSeriesStore,
	series config.EventSeries,
	occupied map[string]bool,
	now time.Time,
	horizon time.Duration,
) (*SeriesExpansion, []model.Event, error) {
	expansion := &SeriesExpansion{Name: series.Name, TemplateEventID: series.TemplateEventID}

	template, err := database.GetEvent(ctx, series.TemplateEventID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch template event for series %s: %w", series.Name, err)
	}
	if template == nil {
		return nil, nil, fmt.Errorf("%w: template %s for series %s", ErrEventNotFound, series.TemplateEventID, series.Name)
	}

	rule, err := rrule.StrToRRule(series.RRule)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid rrule for series %s: %w", series.Name, err)
	}
	rule.DTStart(template.StartTime)

	duration := template.EndTime.Sub(template.StartTime)
	occurrences := rule.Between(now, now.Add(horizon), true)

	var events []model.Event
	for _, start := range occurrences {
		key := occurrenceKey(series.Name, start)
		if occupied[key] {
			expansion.Skipped++
			continue
		}
		occupied[key] = true

		clone := *template
		clone.ID = uuid.NewString()
		clone.StartTime = start
		clone.EndTime = start.Add(duration)
		clone.CurrentVolunteers = 0
		clone.Status = model.EventPublished
		clone.SeriesID = series.Name
		clone.Requirements = append([]model.SkillRequirement(nil), template.Requirements...)

		events = append(events, clone)
		expansion.Created++
	}

	return expansion, events, nil
}

func occurrenceKey(seriesID string, start time.Time) string {
	return seriesID + "|" + start.UTC().Format(time.RFC3339)
}
