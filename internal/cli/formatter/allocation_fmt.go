package formatter

import (
	"fmt"
	"strings"

	"github.com/cbridge/nestegg/internal/contract"
	"github.com/cbridge/nestegg/internal/domain"
)

// FormatAllocationResult formats the outcome of one allocation run.
func FormatAllocationResult(result *contract.AllocationResult) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Strategy:"), strategyBadge(result.Strategy)))
	b.WriteString(fmt.Sprintf("%s %s\n\n", Dim("Monthly capacity:"), Money(result.Capacity)))

	headers := []string{"GOAL", "TYPE", "PREVIOUS", "NEW", ""}
	rows := make([][]string, 0, len(result.Outcomes))
	for _, o := range result.Outcomes {
		mark := StyleGreen.Render("✔")
		if !o.Persisted {
			mark = StyleRed.Render("✖")
		}
		rows = append(rows, []string{
			Bold(o.GoalName),
			TypeBadge(o.GoalType),
			Money(o.PreviousAmount),
			Money(o.NewAmount),
			mark,
		})
	}
	b.WriteString(RenderTable(headers, rows))

	if failed := result.Failed(); len(failed) > 0 {
		b.WriteString("\n")
		for _, o := range failed {
			b.WriteString(StyleRed.Render(fmt.Sprintf("  FAILED %s: %v", o.GoalName, o.Err)) + "\n")
		}
	}

	return RenderBox("Allocation", b.String())
}

func strategyBadge(s domain.AllocationStrategy) string {
	switch s {
	case domain.StrategyOptimizer:
		return StyleGreen.Render("optimizer")
	case domain.StrategyEqualSplit:
		return StyleYellow.Render("equal split")
	case domain.StrategyZeroCapacity:
		return StyleRed.Render("zero capacity")
	default:
		return StyleDim.Render(string(s))
	}
}

// FormatAccrualResult formats the outcome of posting a month of
// contributions.
func FormatAccrualResult(result *contract.AccrualResult) string {
	var b strings.Builder

	headers := []string{"GOAL", "POSTED", "NEW BALANCE", ""}
	rows := make([][]string, 0, len(result.Outcomes))
	var posted float64
	for _, o := range result.Outcomes {
		mark := StyleGreen.Render("✔")
		if o.Err != nil {
			mark = StyleRed.Render("✖")
		} else {
			posted += o.Amount
		}
		rows = append(rows, []string{
			Bold(o.GoalName),
			Money(o.Amount),
			Money(o.NewBalance),
			mark,
		})
	}
	b.WriteString(RenderTable(headers, rows))
	b.WriteString(fmt.Sprintf("\n%s %s across %d goals\n", Dim("Posted:"), Money(posted), len(result.Outcomes)))

	for _, o := range result.Outcomes {
		if o.Err != nil {
			b.WriteString(StyleRed.Render(fmt.Sprintf("  FAILED %s: %v", o.GoalName, o.Err)) + "\n")
		}
	}

	return RenderBox("Monthly contributions", b.String())
}
