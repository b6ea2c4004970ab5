package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/cbridge/nestegg/internal/cli/formatter"
	"github.com/cbridge/nestegg/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// nesteggHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func nesteggHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// runGoalWizard collects goal fields interactively and writes them onto g.
// Fields already filled from flags become the wizard's defaults.
func runGoalWizard(g *domain.Goal) error {
	goalType := string(g.Type)
	name := g.Name
	target := wizardFloat(g.TargetAmount)
	savings := wizardFloat(g.CurrentSavings)
	monthly := wizardFloat(g.MonthlyContribution)
	year := wizardInt(g.TargetYear)
	endYear := ""
	notes := g.Notes

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Goal type").
				Options(
					huh.NewOption("Education", string(domain.GoalEducation)),
					huh.NewOption("Marriage", string(domain.GoalMarriage)),
					huh.NewOption("Investment", string(domain.GoalInvestment)),
				).
				Value(&goalType),
			huh.NewInput().
				Title("Goal name").
				Validate(requireNonEmpty("goal name")).
				Value(&name),
			huh.NewInput().
				Title("Target amount").
				Validate(requirePositiveNumber("target amount")).
				Value(&target),
			huh.NewInput().
				Title("Current savings").
				Validate(requireNumber("current savings")).
				Value(&savings),
			huh.NewInput().
				Title("Monthly contribution").
				Validate(requireNumber("monthly contribution")).
				Value(&monthly),
			huh.NewInput().
				Title("Target year").
				Validate(requireYear).
				Value(&year),
			huh.NewInput().
				Title("End year").
				Description("Final year of a multi-year education goal, blank to skip").
				Validate(optionalYear).
				Value(&endYear),
			huh.NewInput().
				Title("Notes").
				Value(&notes),
		),
	).WithTheme(nesteggHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}

	g.Type = domain.GoalType(goalType)
	g.Name = name
	g.TargetAmount, _ = strconv.ParseFloat(target, 64)
	g.CurrentSavings, _ = strconv.ParseFloat(savings, 64)
	g.MonthlyContribution, _ = strconv.ParseFloat(monthly, 64)
	g.TargetYear, _ = strconv.Atoi(year)
	g.Notes = notes
	if endYear != "" {
		ey, _ := strconv.Atoi(endYear)
		g.EndYear = &ey
	}

	return nil
}

func wizardFloat(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func wizardInt(v int) string {
	if v == 0 {
		return ""
	}
	return strconv.Itoa(v)
}

func requireNonEmpty(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func requireNumber(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return nil
		}
		if _, err := strconv.ParseFloat(s, 64); err != nil {
			return fmt.Errorf("%s must be a number", field)
		}
		return nil
	}
}

func requirePositiveNumber(field string) func(string) error {
	return func(s string) error {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || v <= 0 {
			return fmt.Errorf("%s must be a positive number", field)
		}
		return nil
	}
}

func requireYear(s string) error {
	y, err := strconv.Atoi(s)
	if err != nil || y < time.Now().Year() {
		return fmt.Errorf("target year must be this year or later")
	}
	return nil
}

func optionalYear(s string) error {
	if s == "" {
		return nil
	}
	if _, err := strconv.Atoi(s); err != nil {
		return fmt.Errorf("end year must be a year")
	}
	return nil
}
