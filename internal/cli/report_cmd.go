package cli

import (
	"context"
	"fmt"

	"github.com/cbridge/nestegg/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newReportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "report HOUSEHOLD",
		Short: "Show the full projection report for a household",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			householdID, err := resolveHouseholdID(ctx, app, args[0])
			if err != nil {
				return err
			}

			report, err := app.Reports.HouseholdReport(ctx, householdID)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatHouseholdReport(report))
			return nil
		},
	}
}
