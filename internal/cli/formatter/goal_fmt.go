package formatter

import (
	"fmt"
	"strings"

	"github.com/cbridge/nestegg/internal/contract"
	"github.com/cbridge/nestegg/internal/domain"
)

const goalProgressBarWidth = 10

// FormatGoalList formats goals with their projections as a table.
func FormatGoalList(goals []contract.GoalReport) string {
	headers := []string{"ID", "NAME", "TYPE", "TARGET", "SAVED", "PROGRESS", "STATUS", "DUE"}
	rows := make([][]string, 0, len(goals))

	for _, gr := range goals {
		g := gr.Goal
		p := gr.Projection

		progress := Dim("--")
		due := Dim("--")
		if p.Status != domain.StatusUnknown {
			progress = RenderProgress(p.ProgressPct, goalProgressBarWidth)
			due = Horizon(p.DaysRemaining)
		}

		rows = append(rows, []string{
			TruncID(g.ID),
			Bold(g.Name),
			TypeBadge(g.Type),
			Money(g.TargetAmount),
			Money(g.CurrentSavings),
			progress,
			StatusPill(p.Status),
			due,
		})
	}

	return RenderTable(headers, rows)
}

// FormatGoalInspect formats the full projection detail for one goal.
func FormatGoalInspect(gr contract.GoalReport) string {
	g := gr.Goal
	p := gr.Projection

	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s  %s\n", Bold(g.Name), TypeBadge(g.Type), StatusPill(p.Status)))
	b.WriteString(Dim(g.ID) + "\n\n")

	year := fmt.Sprintf("%d", g.TargetYear)
	if g.EndYear != nil {
		year = fmt.Sprintf("%d - %d", g.TargetYear, *g.EndYear)
	}

	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Target amount:"), Money(g.TargetAmount)))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Current savings:"), Money(g.CurrentSavings)))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Monthly contribution:"), Money(g.MonthlyContribution)))
	b.WriteString(fmt.Sprintf("%s %.2f%%\n", Dim("Growth rate:"), g.GrowthRate))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Target year:"), year))

	if p.Status != domain.StatusUnknown {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Adjusted cost:"), Money(p.AdjustedCost)))
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Projected value:"), Money(p.ProjectedValue)))
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Shortfall:"), Money(p.Shortfall)))
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Progress:"), RenderProgress(p.ProgressPct, goalProgressBarWidth)))
		b.WriteString(fmt.Sprintf("%s %s (%d days)\n", Dim("Target date:"), p.TargetDate.Format("Jan 2, 2006"), p.DaysRemaining))
		if p.RequiredMonthly != nil {
			b.WriteString(fmt.Sprintf("%s %s\n", Dim("Required monthly:"), Money(*p.RequiredMonthly)))
		}
		if p.TotalContributions != nil && p.ExpectedGains != nil {
			b.WriteString(fmt.Sprintf("%s %s\n", Dim("Total contributions:"), Money(*p.TotalContributions)))
			b.WriteString(fmt.Sprintf("%s %s\n", Dim("Expected gains:"), Money(*p.ExpectedGains)))
		}
	} else {
		b.WriteString("\n")
		b.WriteString(StyleYellow.Render("Projection unavailable: goal is missing required fields.") + "\n")
	}

	if g.Notes != "" {
		b.WriteString("\n")
		b.WriteString(Dim("Notes: ") + g.Notes + "\n")
	}

	return RenderBox("Goal", b.String())
}
