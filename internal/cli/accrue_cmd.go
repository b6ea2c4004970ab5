package cli

import (
	"context"
	"fmt"

	"github.com/cbridge/nestegg/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newAccrueCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "accrue HOUSEHOLD",
		Short: "Post one month of contributions to every goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			householdID, err := resolveHouseholdID(ctx, app, args[0])
			if err != nil {
				return err
			}

			result, err := app.Accruals.PostMonthlyContributions(ctx, householdID)
			if err != nil {
				return err
			}
			if len(result.Outcomes) == 0 {
				fmt.Println("No goals with a monthly contribution.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatAccrualResult(result))
			return nil
		},
	}
}
