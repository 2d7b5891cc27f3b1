package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/communityroots/volunteer-match/internal/config"
	"github.com/communityroots/volunteer-match/pkg/core/model"
	"github.com/communityroots/volunteer-match/pkg/db"
)

// BulkAssignStore defines the database operations needed for bulk
// assignment
type BulkAssignStore interface {
	GetEvent(ctx context.Context, id string) (*model.Event, error)
	GetVolunteer(ctx context.Context, id string) (*model.Volunteer, error)
	CreateAssignment(ctx context.Context, a *model.Assignment) error
}

// BulkAssignItem is one requested assignment in a batch.
type BulkAssignItem struct {
	VolunteerID string
	Score       int
}

// BulkAssignItemResult is the per-item outcome of a batch.
type BulkAssignItemResult struct {
	VolunteerID   string
	Status        model.AssignmentStatus
	Succeeded     bool
	FailureReason string
}

// BulkAssignResult summarizes a batch. Failed items are recorded, not
// raised; one bad item never aborts its siblings.
type BulkAssignResult struct {
	EventID     string
	Total       int
	Succeeded   int
	Failed      int
	SuccessRate float64
	Items       []BulkAssignItemResult
}

// BulkAssign creates the requested assignments one by one. The operation
// errors only for a structurally invalid request (no items) or a missing
// event; everything per-item lands in that item's result. Items at or
// above the configured auto-confirm score are created confirmed, the rest
// pending. Capacity is re-validated by the store at commit time.
func BulkAssign(
	ctx context.Context,
	database BulkAssignStore,
	cfg *config.Config,
	logger *zap.Logger,
	eventID string,
	items []BulkAssignItem,
) (*BulkAssignResult, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("no assignment items provided")
	}

	logger.Debug("Starting bulk assignment",
		zap.String("event_id", eventID),
		zap.Int("items", len(items)))

	event, err := database.GetEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch event: %w", err)
	}
	if event == nil {
		return nil, fmt.Errorf("%w: %s", ErrEventNotFound, eventID)
	}

	result := &BulkAssignResult{
		EventID: eventID,
		Total:   len(items),
		Items:   make([]BulkAssignItemResult, 0, len(items)),
	}

	for _, item := range items {
		itemResult := processBulkItem(ctx, database, cfg, eventID, item)
		if itemResult.Succeeded {
			result.Succeeded++
		} else {
			result.Failed++
			logger.Warn("Bulk assignment item failed",
				zap.String("event_id", eventID),
				zap.String("volunteer_id", item.VolunteerID),
				zap.String("reason", itemResult.FailureReason))
		}
		result.Items = append(result.Items, itemResult)
	}

	result.SuccessRate = float64(result.Succeeded) / float64(result.Total)

	logger.Info("Bulk assignment complete",
		zap.String("event_id", eventID),
		zap.Int("succeeded", result.Succeeded),
		zap.Int("failed", result.Failed),
		zap.Float64("success_rate", result.SuccessRate))

	return result, nil
}

func processBulkItem(
	ctx context.Context,
	database BulkAssignStore,
	cfg *config.Config,
	eventID string,
	item BulkAssignItem,
) BulkAssignItemResult {
	itemResult := BulkAssignItemResult{VolunteerID: item.VolunteerID}

	if item.VolunteerID == "" {
		itemResult.FailureReason = "volunteer id missing"
		return itemResult
	}

	volunteer, err := database.GetVolunteer(ctx, item.VolunteerID)
	if err != nil {
		itemResult.FailureReason = fmt.Sprintf("failed to fetch volunteer: %v", err)
		return itemResult
	}
	if volunteer == nil {
		itemResult.FailureReason = "volunteer not found"
		return itemResult
	}
	if volunteer.Role != model.RoleVolunteer {
		itemResult.FailureReason = "record is not a volunteer"
		return itemResult
	}

	status := model.AssignmentPending
	if cfg.Matching.AutoConfirmScore > 0 && item.Score >= cfg.Matching.AutoConfirmScore {
		status = model.AssignmentConfirmed
	}

	assignment := &model.Assignment{
		ID:          uuid.NewString(),
		EventID:     eventID,
		VolunteerID: item.VolunteerID,
		Status:      status,
		Score:       item.Score,
	}

	if err := database.CreateAssignment(ctx, assignment); err != nil {
		switch {
		case errors.Is(err, db.ErrAlreadyAssigned):
			itemResult.FailureReason = "already assigned"
		case errors.Is(err, db.ErrCapacityReached):
			itemResult.FailureReason = "capacity reached"
		case errors.Is(err, db.ErrEventNotAccepting):
			itemResult.FailureReason = "event not accepting assignments"
		default:
			itemResult.FailureReason = fmt.Sprintf("failed to create assignment: %v", err)
		}
		return itemResult
	}

	itemResult.Status = status
	itemResult.Succeeded = true
	return itemResult
}
