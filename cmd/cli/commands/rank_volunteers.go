package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/communityroots/volunteer-match/pkg/core/ranking"
	"github.com/communityroots/volunteer-match/pkg/core/services"
)

// RankVolunteersCmd creates the rankVolunteers command
func RankVolunteersCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rankVolunteers <event-id>",
		Short: "Rank volunteers for an event",
		Long:  "Score every volunteer in the pool against an event and list the best candidates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			minScore, _ := cmd.Flags().GetInt("min-score")
			limit, _ := cmd.Flags().GetInt("limit")
			includeAssigned, _ := cmd.Flags().GetBool("include-assigned")

			results, err := services.RankVolunteers(app.Ctx, app.Database, app.Cfg, app.Logger, args[0], ranking.Options{
				MinScore:        minScore,
				Limit:           limit,
				IncludeAssigned: includeAssigned,
			})
			if err != nil {
				return fmt.Errorf("ranking failed: %w", err)
			}

			fmt.Printf("\n📋 Ranked Volunteers for Event %s\n\n", args[0])
			if len(results) == 0 {
				fmt.Println("No qualifying candidates.")
				return nil
			}

			for i, r := range results {
				fmt.Printf("%3d. %-36s %3d/100\n", i+1, r.VolunteerID, r.Score)
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().Int("min-score", 0, "Minimum match score")
	cmd.Flags().Int("limit", 20, "Maximum number of candidates to list")
	cmd.Flags().Bool("include-assigned", false, "Include volunteers already assigned to the event")

	return cmd
}
