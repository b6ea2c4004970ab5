package formatter

import (
	"testing"

	"github.com/cbridge/nestegg/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatHouseholdList_ShowsCapacity(t *testing.T) {
	out := FormatHouseholdList([]*domain.HouseholdProfile{
		{ID: "aaaa1111-0000", Name: "Sharma family", MonthlyIncome: 80000, MonthlyExpenses: 50000},
		{ID: "bbbb2222-0000", Name: "Broke household", MonthlyIncome: 40000, MonthlyExpenses: 45000},
	})

	assert.Contains(t, out, "Sharma family")
	assert.Contains(t, out, "₹30,000.00")
	assert.Contains(t, out, "-₹5,000.00")
}
