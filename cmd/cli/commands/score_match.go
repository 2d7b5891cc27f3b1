package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/communityroots/volunteer-match/pkg/core/services"
)

// ScoreMatchCmd creates the scoreMatch command
func ScoreMatchCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scoreMatch <volunteer-id> <event-id>",
		Short: "Score one volunteer/event pair",
		Long:  "Compute the match score for a single volunteer and event, with the per-component breakdown",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := services.ScoreMatch(app.Ctx, app.Database, app.Cfg, app.Logger, args[0], args[1])
			if err != nil {
				return fmt.Errorf("scoring failed: %w", err)
			}

			fmt.Printf("\n🎯 Match Score: %d/100\n\n", result.Score)
			fmt.Printf("Volunteer: %s\n", result.VolunteerID)
			fmt.Printf("Event:     %s\n\n", result.EventID)
			fmt.Printf("Breakdown (score × weight):\n")
			fmt.Printf("  Location:     %6.1f × %.2f\n", result.Breakdown.Location, result.Weights.Location)
			fmt.Printf("  Skills:       %6.1f × %.2f\n", result.Breakdown.Skills, result.Weights.Skills)
			fmt.Printf("  Availability: %6.1f × %.2f\n", result.Breakdown.Availability, result.Weights.Availability)
			fmt.Printf("  Preferences:  %6.1f × %.2f\n", result.Breakdown.Preferences, result.Weights.Preferences)
			fmt.Printf("  Reliability:  %6.1f × %.2f\n", result.Breakdown.Reliability, result.Weights.Reliability)
			fmt.Println()

			return nil
		},
	}

	return cmd
}
