package cli

import (
	"context"
	"fmt"

	"github.com/cbridge/nestegg/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newAllocateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "allocate HOUSEHOLD",
		Short: "Divide the household's monthly savings capacity across its goals",
		RunE:  allocateRunE(app),
		Args:  cobra.ExactArgs(1),
	}
}

func allocateRunE(app *App) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		householdID, err := resolveHouseholdID(ctx, app, args[0])
		if err != nil {
			return err
		}

		stop := func() {}
		if app.IsInteractive != nil && app.IsInteractive() {
			stop = formatter.StartSpinner("Computing allocation...")
		}
		result, err := app.Allocations.Allocate(ctx, householdID)
		stop()
		if err != nil {
			return err
		}

		fmt.Printf("%s\n", formatter.FormatAllocationResult(result))

		if failed := result.Failed(); len(failed) > 0 {
			return fmt.Errorf("%d of %d goal updates failed", len(failed), len(result.Outcomes))
		}
		return nil
	}
}
