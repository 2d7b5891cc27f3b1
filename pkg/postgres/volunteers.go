package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/communityroots/volunteer-match/pkg/core/model"
)

// GetVolunteer retrieves one volunteer with skills and availability.
// Returns (nil, nil) when no such volunteer exists.
func (d *DB) GetVolunteer(ctx context.Context, id string) (*model.Volunteer, error) {
	row := d.pool.QueryRow(ctx, `
		SELECT id, role, latitude, longitude, max_distance_miles,
		       preferred_causes, weekdays_only, completed_count, avg_rating,
		       profile_completeness
		FROM volunteer
		WHERE id = $1
	`, id)

	v, err := scanVolunteer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query volunteer: %w", err)
	}

	skills, err := d.loadSkills(ctx, id)
	if err != nil {
		return nil, err
	}
	v.Skills = skills[id]

	windows, err := d.loadAvailability(ctx, id)
	if err != nil {
		return nil, err
	}
	v.Availability = windows[id]

	return v, nil
}

// ListVolunteers retrieves all volunteer records with their skills and
// availability windows.
func (d *DB) ListVolunteers(ctx context.Context) ([]model.Volunteer, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, role, latitude, longitude, max_distance_miles,
		       preferred_causes, weekdays_only, completed_count, avg_rating,
		       profile_completeness
		FROM volunteer
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query volunteers: %w", err)
	}
	defer rows.Close()

	var volunteers []model.Volunteer
	for rows.Next() {
		v, err := scanVolunteer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan volunteer: %w", err)
		}
		volunteers = append(volunteers, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating volunteers: %w", err)
	}

	skills, err := d.loadSkills(ctx)
	if err != nil {
		return nil, err
	}
	windows, err := d.loadAvailability(ctx)
	if err != nil {
		return nil, err
	}
	for i := range volunteers {
		volunteers[i].Skills = skills[volunteers[i].ID]
		volunteers[i].Availability = windows[volunteers[i].ID]
	}

	return volunteers, nil
}

func scanVolunteer(row pgx.Row) (*model.Volunteer, error) {
	var v model.Volunteer
	var role string
	var lat, lng *float64
	if err := row.Scan(&v.ID, &role, &lat, &lng, &v.Preferences.MaxDistanceMiles,
		&v.Preferences.PreferredCauses, &v.Preferences.WeekdaysOnly,
		&v.History.CompletedCount, &v.History.AvgRating,
		&v.History.ProfileCompleteness); err != nil {
		return nil, err
	}
	v.Role = model.Role(role)
	if lat != nil && lng != nil {
		v.Location = &model.GeoPoint{Latitude: *lat, Longitude: *lng}
	}
	return &v, nil
}

// loadSkills fetches skill ratings grouped by volunteer. With no IDs it
// loads every volunteer's skills.
func (d *DB) loadSkills(ctx context.Context, ids ...string) (map[string][]model.SkillRating, error) {
	query := `SELECT volunteer_id, skill_id, proficiency FROM volunteer_skill`
	args := []any{}
	if len(ids) > 0 {
		query += ` WHERE volunteer_id = ANY($1)`
		args = append(args, ids)
	}

	rows, err := d.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query volunteer skills: %w", err)
	}
	defer rows.Close()

	skills := make(map[string][]model.SkillRating)
	for rows.Next() {
		var volunteerID, skillID, proficiency string
		if err := rows.Scan(&volunteerID, &skillID, &proficiency); err != nil {
			return nil, fmt.Errorf("failed to scan volunteer skill: %w", err)
		}
		p, err := model.ParseProficiency(proficiency)
		if err != nil {
			return nil, fmt.Errorf("volunteer %s skill %s: %w", volunteerID, skillID, err)
		}
		skills[volunteerID] = append(skills[volunteerID], model.SkillRating{SkillID: skillID, Proficiency: p})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating volunteer skills: %w", err)
	}

	return skills, nil
}

// loadAvailability fetches availability windows grouped by volunteer.
func (d *DB) loadAvailability(ctx context.Context, ids ...string) (map[string][]model.AvailabilityWindow, error) {
	query := `SELECT volunteer_id, day, start_minute, end_minute FROM availability_window`
	args := []any{}
	if len(ids) > 0 {
		query += ` WHERE volunteer_id = ANY($1)`
		args = append(args, ids)
	}

	rows, err := d.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query availability windows: %w", err)
	}
	defer rows.Close()

	windows := make(map[string][]model.AvailabilityWindow)
	for rows.Next() {
		var volunteerID string
		var w model.AvailabilityWindow
		var day int
		if err := rows.Scan(&volunteerID, &day, &w.StartMinute, &w.EndMinute); err != nil {
			return nil, fmt.Errorf("failed to scan availability window: %w", err)
		}
		w.Day = model.Weekday(day)
		windows[volunteerID] = append(windows[volunteerID], w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating availability windows: %w", err)
	}

	return windows, nil
}
