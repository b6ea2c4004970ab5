package formatter

import (
	"github.com/cbridge/nestegg/internal/domain"
)

// FormatActivity formats audit log entries newest first.
func FormatActivity(entries []*domain.PlanTransaction) string {
	headers := []string{"WHEN", "ACTION", "TYPE", "AMOUNT", "DESCRIPTION"}
	rows := make([][]string, 0, len(entries))

	for _, e := range entries {
		rows = append(rows, []string{
			Dim(HumanTimestamp(e.OccurredAt)),
			actionPill(e.Action),
			TypeBadge(e.GoalType),
			Money(e.Amount),
			StyleFg.Render(e.Description),
		})
	}

	return RenderTable(headers, rows)
}

func actionPill(action domain.TransactionAction) string {
	switch action {
	case domain.ActionAdded:
		return StyleGreen.Render("+ ADDED")
	case domain.ActionUpdated:
		return StyleBlue.Render("~ UPDATED")
	case domain.ActionDeleted:
		return StyleRed.Render("- DELETED")
	default:
		return StyleDim.Render(string(action))
	}
}
