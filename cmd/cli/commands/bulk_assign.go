package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/communityroots/volunteer-match/pkg/core/services"
)

// BulkAssignCmd creates the bulkAssign command
func BulkAssignCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bulkAssign <event-id>",
		Short: "Create assignments for an event in bulk",
		Long:  "Attempt each requested assignment independently; per-item failures are reported but never abort the batch. Items are given as volunteer-id:score",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rawItems, _ := cmd.Flags().GetStringSlice("item")

			items, err := parseBulkItems(rawItems)
			if err != nil {
				return err
			}

			result, err := services.BulkAssign(app.Ctx, app.Database, app.Cfg, app.Logger, args[0], items)
			if err != nil {
				return fmt.Errorf("bulk assignment failed: %w", err)
			}

			fmt.Printf("\n📦 Bulk Assignment Results for Event %s\n\n", result.EventID)
			fmt.Printf("Succeeded: %d/%d (%.0f%%)\n\n", result.Succeeded, result.Total, result.SuccessRate*100)
			for _, item := range result.Items {
				if item.Succeeded {
					fmt.Printf("  ✅ %-36s %s\n", item.VolunteerID, item.Status)
				} else {
					fmt.Printf("  ❌ %-36s %s\n", item.VolunteerID, item.FailureReason)
				}
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().StringSlice("item", nil, "Assignment item as volunteer-id:score (repeatable)")
	cmd.MarkFlagRequired("item")

	return cmd
}

func parseBulkItems(raw []string) ([]services.BulkAssignItem, error) {
	items := make([]services.BulkAssignItem, 0, len(raw))
	for _, r := range raw {
		id, scoreStr, found := strings.Cut(r, ":")
		if !found {
			return nil, fmt.Errorf("invalid item %q, expected volunteer-id:score", r)
		}
		score, err := strconv.Atoi(scoreStr)
		if err != nil {
			return nil, fmt.Errorf("invalid score in item %q: %w", r, err)
		}
		items = append(items, services.BulkAssignItem{VolunteerID: id, Score: score})
	}
	return items, nil
}
