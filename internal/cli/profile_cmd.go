package cli

import (
	"context"
	"fmt"

	"github.com/cbridge/nestegg/internal/cli/formatter"
	"github.com/cbridge/nestegg/internal/domain"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage household profiles",
	}

	cmd.AddCommand(
		newProfileSetCmd(app),
		newProfileShowCmd(app),
		newProfileListCmd(app),
	)

	return cmd
}

func newProfileSetCmd(app *App) *cobra.Command {
	var name string
	var income, expenses float64

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Create or update a household profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			h := &domain.HouseholdProfile{
				Name:            name,
				MonthlyIncome:   income,
				MonthlyExpenses: expenses,
			}
			if err := app.Households.Set(context.Background(), h); err != nil {
				return err
			}

			fmt.Printf("Saved household %q, savings capacity %s\n", h.Name, formatter.Money(h.SavingsCapacity()))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Household name")
	cmd.Flags().Float64Var(&income, "income", 0, "Monthly income")
	cmd.Flags().Float64Var(&expenses, "expenses", 0, "Monthly expenses")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("income")
	_ = cmd.MarkFlagRequired("expenses")

	return cmd
}

func newProfileShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show HOUSEHOLD",
		Short: "Show a household profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			householdID, err := resolveHouseholdID(ctx, app, args[0])
			if err != nil {
				return err
			}
			h, err := app.Households.GetByID(ctx, householdID)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatHousehold(h))
			return nil
		},
	}
}

func newProfileListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List household profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			households, err := app.Households.List(context.Background())
			if err != nil {
				return err
			}
			if len(households) == 0 {
				fmt.Println("No households found.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatHouseholdList(households))
			return nil
		},
	}
}
