package formatter

import (
	"fmt"
	"strings"

	"github.com/cbridge/nestegg/internal/domain"
)

// FormatHouseholdList formats household profiles as a table.
func FormatHouseholdList(households []*domain.HouseholdProfile) string {
	headers := []string{"ID", "NAME", "INCOME", "EXPENSES", "CAPACITY"}
	rows := make([][]string, 0, len(households))

	for _, h := range households {
		rows = append(rows, []string{
			TruncID(h.ID),
			Bold(h.Name),
			Money(h.MonthlyIncome),
			Money(h.MonthlyExpenses),
			capacityStyled(h.SavingsCapacity()),
		})
	}

	return RenderTable(headers, rows)
}

// FormatHousehold formats one household profile in a box.
func FormatHousehold(h *domain.HouseholdProfile) string {
	var b strings.Builder

	b.WriteString(Bold(h.Name) + "\n")
	b.WriteString(Dim(h.ID) + "\n\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Monthly income:"), Money(h.MonthlyIncome)))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Monthly expenses:"), Money(h.MonthlyExpenses)))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Savings capacity:"), capacityStyled(h.SavingsCapacity())))

	return RenderBox("Household", b.String())
}

func capacityStyled(capacity float64) string {
	if capacity <= 0 {
		return StyleRed.Render(Money(capacity))
	}
	return StyleGreen.Render(Money(capacity))
}
