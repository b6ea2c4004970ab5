package cli

import (
	"github.com/cbridge/nestegg/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Goals       service.GoalService
	Households  service.HouseholdService
	Reports     service.ReportService
	Allocations service.AllocationService
	Accruals    service.AccrualService
	Import      service.ImportService

	// IsInteractive reports whether stdin is a terminal; interactive
	// wizards are only offered when it returns true.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "nestegg" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "nestegg",
		Short: "Savings goal planner and contribution allocator",
	}

	root.AddCommand(
		newGoalCmd(app),
		newProfileCmd(app),
		newReportCmd(app),
		newAllocateCmd(app),
		newAccrueCmd(app),
		newActivityCmd(app),
		newImportCmd(app),
	)

	return root
}
