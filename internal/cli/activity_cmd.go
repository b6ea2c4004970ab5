package cli

import (
	"context"
	"fmt"

	"github.com/cbridge/nestegg/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newActivityCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "activity HOUSEHOLD",
		Short: "Show a household's recent plan changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			householdID, err := resolveHouseholdID(ctx, app, args[0])
			if err != nil {
				return err
			}

			entries, err := app.Households.RecentActivity(ctx, householdID, limit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("No activity yet.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatActivity(entries))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 5, "Number of entries to show")

	return cmd
}
