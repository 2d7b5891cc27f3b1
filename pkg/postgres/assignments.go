package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/communityroots/volunteer-match/pkg/core/model"
	"github.com/communityroots/volunteer-match/pkg/db"
)

// GetAssignmentsForEvent retrieves all assignment records for an event.
func (d *DB) GetAssignmentsForEvent(ctx context.Context, eventID string) ([]model.Assignment, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, event_id, volunteer_id, status, score, created_at
		FROM assignment
		WHERE event_id = $1
		ORDER BY created_at, id
	`, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	defer rows.Close()

	var assignments []model.Assignment
	for rows.Next() {
		var a model.Assignment
		var status string
		if err := rows.Scan(&a.ID, &a.EventID, &a.VolunteerID, &status, &a.Score, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		a.Status = model.AssignmentStatus(status)
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assignments: %w", err)
	}

	return assignments, nil
}

// CreateAssignment inserts an assignment with capacity re-validated at
// commit time. The engine's plan is advisory; this is where the capacity
// invariant is actually enforced. The event row is locked for the
// duration of the transaction so concurrent callers serialize here.
func (d *DB) CreateAssignment(ctx context.Context, a *model.Assignment) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var status string
	var maxVolunteers, currentVolunteers int
	err = tx.QueryRow(ctx, `
		SELECT status, max_volunteers, current_volunteers
		FROM event
		WHERE id = $1
		FOR UPDATE
	`, a.EventID).Scan(&status, &maxVolunteers, &currentVolunteers)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("event %s does not exist", a.EventID)
		}
		return fmt.Errorf("failed to lock event: %w", err)
	}

	if model.EventStatus(status) != model.EventPublished {
		return db.ErrEventNotAccepting
	}

	var alreadyAssigned bool
	err = tx.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM assignment
			WHERE event_id = $1 AND volunteer_id = $2
			  AND status IN ('pending', 'confirmed')
		)
	`, a.EventID, a.VolunteerID).Scan(&alreadyAssigned)
	if err != nil {
		return fmt.Errorf("failed to check existing assignment: %w", err)
	}
	if alreadyAssigned {
		return db.ErrAlreadyAssigned
	}

	if a.Status == model.AssignmentConfirmed && currentVolunteers >= maxVolunteers {
		return db.ErrCapacityReached
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO assignment (id, event_id, volunteer_id, status, score)
		VALUES ($1, $2, $3, $4, $5)
	`, a.ID, a.EventID, a.VolunteerID, string(a.Status), a.Score)
	if err != nil {
		return fmt.Errorf("failed to insert assignment: %w", err)
	}

	// Only confirmed assignments consume capacity.
	if a.Status == model.AssignmentConfirmed {
		_, err = tx.Exec(ctx, `
			UPDATE event SET current_volunteers = current_volunteers + 1
			WHERE id = $1
		`, a.EventID)
		if err != nil {
			return fmt.Errorf("failed to update event counter: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
