package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/communityroots/volunteer-match/pkg/core/model"
)

// GetEvent retrieves one event with its requirements.
// Returns (nil, nil) when no such event exists.
func (d *DB) GetEvent(ctx context.Context, id string) (*model.Event, error) {
	row := d.pool.QueryRow(ctx, `
		SELECT id, latitude, longitude, start_time, end_time, cause, urgency,
		       max_volunteers, current_volunteers, status, series_id
		FROM event
		WHERE id = $1
	`, id)

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query event: %w", err)
	}

	reqs, err := d.loadRequirements(ctx, id)
	if err != nil {
		return nil, err
	}
	e.Requirements = reqs[id]

	return e, nil
}

// ListEvents retrieves events, optionally restricted to the given
// statuses.
func (d *DB) ListEvents(ctx context.Context, statuses ...model.EventStatus) ([]model.Event, error) {
	query := `
		SELECT id, latitude, longitude, start_time, end_time, cause, urgency,
		       max_volunteers, current_volunteers, status, series_id
		FROM event
	`
	args := []any{}
	if len(statuses) > 0 {
		statusStrings := make([]string, len(statuses))
		for i, s := range statuses {
			statusStrings[i] = string(s)
		}
		query += ` WHERE status = ANY($1)`
		args = append(args, statusStrings)
	}
	query += ` ORDER BY start_time, id`

	rows, err := d.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	reqs, err := d.loadRequirements(ctx)
	if err != nil {
		return nil, err
	}
	for i := range events {
		events[i].Requirements = reqs[events[i].ID]
	}

	return events, nil
}

// InsertEvents inserts event records with their requirements in one
// transaction.
func (d *DB) InsertEvents(ctx context.Context, events []model.Event) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, e := range events {
		var lat, lng *float64
		if e.Location != nil {
			lat = &e.Location.Latitude
			lng = &e.Location.Longitude
		}

		_, err := tx.Exec(ctx, `
			INSERT INTO event (id, latitude, longitude, start_time, end_time,
			                   cause, urgency, max_volunteers, current_volunteers,
			                   status, series_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`, e.ID, lat, lng, e.StartTime, e.EndTime, e.Cause, string(e.Urgency),
			e.MaxVolunteers, e.CurrentVolunteers, string(e.Status), e.SeriesID)
		if err != nil {
			return fmt.Errorf("failed to insert event %s: %w", e.ID, err)
		}

		for _, req := range e.Requirements {
			_, err := tx.Exec(ctx, `
				INSERT INTO event_requirement (event_id, skill_id, min_proficiency, required)
				VALUES ($1, $2, $3, $4)
			`, e.ID, req.SkillID, req.MinProficiency.String(), req.Required)
			if err != nil {
				return fmt.Errorf("failed to insert requirement for event %s: %w", e.ID, err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func scanEvent(row pgx.Row) (*model.Event, error) {
	var e model.Event
	var lat, lng *float64
	var urgency, status string
	if err := row.Scan(&e.ID, &lat, &lng, &e.StartTime, &e.EndTime, &e.Cause,
		&urgency, &e.MaxVolunteers, &e.CurrentVolunteers, &status, &e.SeriesID); err != nil {
		return nil, err
	}
	e.Urgency = model.Urgency(urgency)
	e.Status = model.EventStatus(status)
	if lat != nil && lng != nil {
		e.Location = &model.GeoPoint{Latitude: *lat, Longitude: *lng}
	}
	return &e, nil
}

// loadRequirements fetches skill requirements grouped by event.
func (d *DB) loadRequirements(ctx context.Context, ids ...string) (map[string][]model.SkillRequirement, error) {
	query := `SELECT event_id, skill_id, min_proficiency, required FROM event_requirement`
	args := []any{}
	if len(ids) > 0 {
		query += ` WHERE event_id = ANY($1)`
		args = append(args, ids)
	}

	rows, err := d.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query event requirements: %w", err)
	}
	defer rows.Close()

	reqs := make(map[string][]model.SkillRequirement)
	for rows.Next() {
		var eventID, skillID, minProficiency string
		var required bool
		if err := rows.Scan(&eventID, &skillID, &minProficiency, &required); err != nil {
			return nil, fmt.Errorf("failed to scan event requirement: %w", err)
		}
		p, err := model.ParseProficiency(minProficiency)
		if err != nil {
			return nil, fmt.Errorf("event %s requirement %s: %w", eventID, skillID, err)
		}
		reqs[eventID] = append(reqs[eventID], model.SkillRequirement{
			SkillID:        skillID,
			MinProficiency: p,
			Required:       required,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event requirements: %w", err)
	}

	return reqs, nil
}
