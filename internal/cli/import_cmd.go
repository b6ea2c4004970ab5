package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	var household string

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import goals from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			householdID, err := resolveHouseholdID(ctx, app, household)
			if err != nil {
				return err
			}

			result, err := app.Import.ImportGoals(ctx, householdID, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Imported %d goals\n", result.GoalCount)
			return nil
		},
	}

	cmd.Flags().StringVar(&household, "household", "", "Household name or ID")
	_ = cmd.MarkFlagRequired("household")

	return cmd
}
