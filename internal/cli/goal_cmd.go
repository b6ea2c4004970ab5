package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/cbridge/nestegg/internal/cli/formatter"
	"github.com/cbridge/nestegg/internal/contract"
	"github.com/cbridge/nestegg/internal/domain"
	"github.com/cbridge/nestegg/internal/projection"
	"github.com/spf13/cobra"
)

func newGoalCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage savings goals",
	}

	cmd.AddCommand(
		newGoalAddCmd(app),
		newGoalListCmd(app),
		newGoalInspectCmd(app),
		newGoalUpdateCmd(app),
		newGoalRemoveCmd(app),
	)

	return cmd
}

func newGoalAddCmd(app *App) *cobra.Command {
	var household, goalType, name, notes string
	var target, savings, monthly, rate float64
	var year, endYear int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new savings goal",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			householdID, err := resolveHouseholdID(ctx, app, household)
			if err != nil {
				return err
			}

			g := &domain.Goal{
				HouseholdID:         householdID,
				Type:                domain.GoalType(goalType),
				Name:                name,
				TargetAmount:        target,
				CurrentSavings:      savings,
				MonthlyContribution: monthly,
				GrowthRate:          rate,
				TargetYear:          year,
				Notes:               notes,
			}
			if cmd.Flags().Changed("end-year") {
				g.EndYear = &endYear
			}

			// With no name given on an interactive terminal, collect the
			// goal through the wizard instead.
			if !cmd.Flags().Changed("name") && app.IsInteractive != nil && app.IsInteractive() {
				if err := runGoalWizard(g); err != nil {
					return err
				}
			}

			if err := app.Goals.Create(ctx, g); err != nil {
				return err
			}

			fmt.Printf("Created %s goal %q [%s]\n", g.Type, g.Name, g.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&household, "household", "", "Household name or ID")
	cmd.Flags().StringVar(&goalType, "type", "EDUCATION", "Goal type (EDUCATION|MARRIAGE|INVESTMENT)")
	cmd.Flags().StringVar(&name, "name", "", "Goal name")
	cmd.Flags().Float64Var(&target, "target", 0, "Target amount")
	cmd.Flags().Float64Var(&savings, "savings", 0, "Current savings")
	cmd.Flags().Float64Var(&monthly, "monthly", 0, "Monthly contribution")
	cmd.Flags().Float64Var(&rate, "rate", 0, "Annualized growth rate percent (default by goal type)")
	cmd.Flags().IntVar(&year, "year", 0, "Target year")
	cmd.Flags().IntVar(&endYear, "end-year", 0, "Final year of a multi-year education goal")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	_ = cmd.MarkFlagRequired("household")

	return cmd
}

func newGoalListCmd(app *App) *cobra.Command {
	var household string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a household's goals with projections",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			householdID, err := resolveHouseholdID(ctx, app, household)
			if err != nil {
				return err
			}

			goals, err := app.Goals.ListByHousehold(ctx, householdID)
			if err != nil {
				return err
			}
			if len(goals) == 0 {
				fmt.Println("No goals found.")
				return nil
			}

			now := time.Now().UTC()
			reports := make([]contract.GoalReport, 0, len(goals))
			for _, g := range goals {
				reports = append(reports, contract.GoalReport{Goal: g, Projection: projection.Project(g, now)})
			}

			fmt.Printf("%s\n", formatter.FormatGoalList(reports))
			return nil
		},
	}

	cmd.Flags().StringVar(&household, "household", "", "Household name or ID")
	_ = cmd.MarkFlagRequired("household")

	return cmd
}

func newGoalInspectCmd(app *App) *cobra.Command {
	var household string

	cmd := &cobra.Command{
		Use:   "inspect ID",
		Short: "Show goal details and projection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			householdID, err := resolveHouseholdID(ctx, app, household)
			if err != nil {
				return err
			}
			goalID, err := resolveGoalID(ctx, app, householdID, args[0])
			if err != nil {
				return err
			}
			g, err := app.Goals.GetByID(ctx, goalID)
			if err != nil {
				return err
			}

			report := contract.GoalReport{Goal: g, Projection: projection.Project(g, time.Now().UTC())}
			fmt.Printf("%s\n", formatter.FormatGoalInspect(report))
			return nil
		},
	}

	cmd.Flags().StringVar(&household, "household", "", "Household name or ID")
	_ = cmd.MarkFlagRequired("household")

	return cmd
}

func newGoalUpdateCmd(app *App) *cobra.Command {
	var household, name, notes string
	var target, savings, monthly, rate float64
	var year, endYear int

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			householdID, err := resolveHouseholdID(ctx, app, household)
			if err != nil {
				return err
			}
			goalID, err := resolveGoalID(ctx, app, householdID, args[0])
			if err != nil {
				return err
			}

			var patch domain.GoalPatch
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("target") {
				patch.TargetAmount = &target
			}
			if cmd.Flags().Changed("savings") {
				patch.CurrentSavings = &savings
			}
			if cmd.Flags().Changed("monthly") {
				patch.MonthlyContribution = &monthly
			}
			if cmd.Flags().Changed("rate") {
				patch.GrowthRate = &rate
			}
			if cmd.Flags().Changed("year") {
				patch.TargetYear = &year
			}
			if cmd.Flags().Changed("end-year") {
				patch.EndYear = &endYear
			}
			if cmd.Flags().Changed("notes") {
				patch.Notes = &notes
			}

			g, err := app.Goals.Update(ctx, goalID, patch)
			if err != nil {
				return err
			}

			fmt.Printf("Updated %s goal %q [%s]\n", g.Type, g.Name, g.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&household, "household", "", "Household name or ID")
	cmd.Flags().StringVar(&name, "name", "", "Goal name")
	cmd.Flags().Float64Var(&target, "target", 0, "Target amount")
	cmd.Flags().Float64Var(&savings, "savings", 0, "Current savings")
	cmd.Flags().Float64Var(&monthly, "monthly", 0, "Monthly contribution")
	cmd.Flags().Float64Var(&rate, "rate", 0, "Annualized growth rate percent")
	cmd.Flags().IntVar(&year, "year", 0, "Target year")
	cmd.Flags().IntVar(&endYear, "end-year", 0, "Final year of a multi-year education goal")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	_ = cmd.MarkFlagRequired("household")

	return cmd
}

func newGoalRemoveCmd(app *App) *cobra.Command {
	var household string

	cmd := &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			householdID, err := resolveHouseholdID(ctx, app, household)
			if err != nil {
				return err
			}
			goalID, err := resolveGoalID(ctx, app, householdID, args[0])
			if err != nil {
				return err
			}
			if err := app.Goals.Delete(ctx, goalID); err != nil {
				return err
			}
			fmt.Printf("Removed goal %s\n", goalID)
			return nil
		},
	}

	cmd.Flags().StringVar(&household, "household", "", "Household name or ID")
	_ = cmd.MarkFlagRequired("household")

	return cmd
}
