package formatter

import (
	"fmt"
	"strings"

	"github.com/cbridge/nestegg/internal/contract"
	"github.com/cbridge/nestegg/internal/domain"
)

// FormatHouseholdReport formats the full projection report for a household.
func FormatHouseholdReport(report *contract.HouseholdReport) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n", Bold(report.Household.Name), Dim(report.GeneratedAt.Format("Jan 2, 2006"))))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Portfolio value:"), Money(report.TotalPortfolioValue)))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Monthly contributions:"), Money(report.TotalMonthlyContribution)))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Savings capacity:"), Money(report.SavingsCapacity)))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Overall progress:"), RenderProgress(report.OverallProgressPct, goalProgressBarWidth)))

	if line := statusSummary(report.StatusCounts); line != "" {
		b.WriteString("\n" + line + "\n")
	}

	for _, section := range report.Sections {
		if len(section.Goals) == 0 {
			continue
		}
		b.WriteString("\n")
		b.WriteString(Header(fmt.Sprintf("%s goals", section.Type)) + "\n")
		b.WriteString(FormatGoalList(section.Goals))
		b.WriteString(fmt.Sprintf("%s %s saved, %s projected, %s/mo, %.1f%% mean progress\n",
			Dim("Subtotal:"),
			Money(section.TotalCurrentSavings),
			Money(section.TotalProjectedValue),
			Money(section.TotalMonthlyContribution),
			section.MeanProgressPct))
	}

	if len(report.RecentActivity) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Recent activity") + "\n")
		b.WriteString(FormatActivity(report.RecentActivity))
	}

	return RenderBox("Household report", b.String())
}

// statusSummary renders one colored count per status present in the report.
func statusSummary(counts map[domain.GoalStatus]int) string {
	order := []domain.GoalStatus{
		domain.StatusCompleted,
		domain.StatusAhead,
		domain.StatusOnTrack,
		domain.StatusBehind,
		domain.StatusOverdue,
		domain.StatusUnknown,
	}

	var parts []string
	for _, status := range order {
		n := counts[status]
		if n == 0 {
			continue
		}
		parts = append(parts, StatusColor(status).Render(fmt.Sprintf("%d %s", n, status)))
	}
	return strings.Join(parts, ", ")
}
