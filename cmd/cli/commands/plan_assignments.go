package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/communityroots/volunteer-match/pkg/core/optimizer"
	"github.com/communityroots/volunteer-match/pkg/core/services"
)

// PlanAssignmentsCmd creates the planAssignments command
func PlanAssignmentsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "planAssignments <event-id>",
		Short: "Plan assignments to fill an event's remaining capacity",
		Long:  "Rank candidates and plan which volunteers should fill the event's remaining spots. The plan is advisory; apply it with bulkAssign",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			autoConfirm, _ := cmd.Flags().GetInt("auto-confirm")
			displaceConfirmed, _ := cmd.Flags().GetBool("displace-confirmed")

			opts := optimizer.DefaultOptions()
			opts.AutoConfirmThreshold = autoConfirm
			if displaceConfirmed {
				opts.PreserveConfirmed = false
			}

			decisions, err := services.PlanAssignments(app.Ctx, app.Database, app.Cfg, app.Logger, args[0], opts)
			if err != nil {
				return fmt.Errorf("planning failed: %w", err)
			}

			fmt.Printf("\n🗓  Assignment Plan for Event %s\n\n", args[0])
			if len(decisions) == 0 {
				fmt.Println("No new assignments proposed (event full or no eligible candidates).")
				return nil
			}

			for i, d := range decisions {
				fmt.Printf("%3d. %-36s %3d/100  %s\n", i+1, d.VolunteerID, d.Score, d.Status)
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().Int("auto-confirm", 0, "Propose candidates at or above this score as confirmed (0 disables)")
	cmd.Flags().Bool("displace-confirmed", false, "Plan against full capacity instead of preserving confirmed assignments")

	return cmd
}
