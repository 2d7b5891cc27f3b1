package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/communityroots/volunteer-match/pkg/core/services"
)

// SuggestCmd creates the suggest command
func SuggestCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Run the automatic suggestion sweep",
		Long:  "Rank volunteers for every published event and print per-event suggestion lists. Purely advisory; nothing is written",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := services.SuggestAssignments(app.Ctx, app.Database, app.Cfg, app.Logger)
			if err != nil {
				return fmt.Errorf("suggestion sweep failed: %w", err)
			}

			fmt.Printf("\n💡 Suggestions (%d events, %d candidates)\n\n", len(result.Events), result.TotalCandidates)
			for _, es := range result.Events {
				fmt.Printf("Event %s (%s):\n", es.EventID, es.Cause)
				if len(es.Candidates) == 0 {
					fmt.Println("  no qualifying candidates")
					continue
				}
				for _, c := range es.Candidates {
					fmt.Printf("  %-36s %3d/100\n", c.VolunteerID, c.Score)
				}
			}
			fmt.Println()

			return nil
		},
	}

	return cmd
}
