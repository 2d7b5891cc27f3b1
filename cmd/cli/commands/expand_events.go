package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/communityroots/volunteer-match/pkg/core/services"
)

// ExpandEventsCmd creates the expandEvents command
func ExpandEventsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expandEvents",
		Short: "Materialize recurring event series",
		Long:  "Create concrete events for every configured recurring series within the horizon. Already-materialized occurrences are skipped",
		RunE: func(cmd *cobra.Command, args []string) error {
			horizonDays, _ := cmd.Flags().GetInt("horizon-days")

			result, err := services.ExpandEventSeries(app.Ctx, app.Database, app.Cfg, app.Logger,
				time.Duration(horizonDays)*24*time.Hour)
			if err != nil {
				return fmt.Errorf("series expansion failed: %w", err)
			}

			fmt.Printf("\n🔁 Event Series Expansion\n\n")
			for _, s := range result.Series {
				fmt.Printf("  %-24s created %d, skipped %d\n", s.Name, s.Created, s.Skipped)
			}
			fmt.Printf("\nTotal created: %d\n\n", result.TotalCreated)

			return nil
		},
	}

	cmd.Flags().Int("horizon-days", 28, "How many days ahead to materialize")

	return cmd
}
