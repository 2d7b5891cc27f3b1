package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/communityroots/volunteer-match/pkg/core/model"
	"github.com/communityroots/volunteer-match/pkg/core/ranking"
	"github.com/communityroots/volunteer-match/pkg/core/services"
)

// RankEventsCmd creates the rankEvents command
func RankEventsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rankEvents <volunteer-id>",
		Short: "Rank events for a volunteer",
		Long:  "Score published events against a volunteer and list the best fits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			minScore, _ := cmd.Flags().GetInt("min-score")
			limit, _ := cmd.Flags().GetInt("limit")
			statusNames, _ := cmd.Flags().GetStringSlice("status")

			var statuses []model.EventStatus
			for _, name := range statusNames {
				status := model.EventStatus(name)
				if !status.IsValid() {
					return fmt.Errorf("invalid event status %q", name)
				}
				statuses = append(statuses, status)
			}

			results, err := services.RankEvents(app.Ctx, app.Database, app.Cfg, app.Logger, args[0], ranking.Options{
				MinScore: minScore,
				Limit:    limit,
				Statuses: statuses,
			})
			if err != nil {
				return fmt.Errorf("ranking failed: %w", err)
			}

			fmt.Printf("\n📋 Ranked Events for Volunteer %s\n\n", args[0])
			if len(results) == 0 {
				fmt.Println("No qualifying events.")
				return nil
			}

			for i, r := range results {
				fmt.Printf("%3d. %-36s %3d/100\n", i+1, r.EventID, r.Score)
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().Int("min-score", 0, "Minimum match score")
	cmd.Flags().Int("limit", 20, "Maximum number of events to list")
	cmd.Flags().StringSlice("status", nil, "Event statuses to consider (default: published)")

	return cmd
}
