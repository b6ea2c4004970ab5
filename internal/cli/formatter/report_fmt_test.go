package formatter

import (
	"testing"
	"time"

	"github.com/cbridge/nestegg/internal/contract"
	"github.com/cbridge/nestegg/internal/domain"
	"github.com/cbridge/nestegg/internal/projection"
	"github.com/stretchr/testify/assert"
)

func TestFormatHouseholdReport_SectionsAndActivity(t *testing.T) {
	report := &contract.HouseholdReport{
		Household: &domain.HouseholdProfile{
			ID:              "hh-1",
			Name:            "Sharma family",
			MonthlyIncome:   80000,
			MonthlyExpenses: 50000,
		},
		GeneratedAt: time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC),
		Sections: []contract.TypeSection{
			{
				Type: domain.GoalEducation,
				Goals: []contract.GoalReport{
					{
						Goal: &domain.Goal{ID: "g-1", Name: "College fund", Type: domain.GoalEducation, TargetAmount: 500000},
						Projection: projection.Result{
							Status:      domain.StatusBehind,
							ProgressPct: 40,
						},
					},
				},
				TotalCurrentSavings:      100000,
				TotalProjectedValue:      320000,
				TotalMonthlyContribution: 5000,
				MeanProgressPct:          40,
			},
		},
		StatusCounts:             map[domain.GoalStatus]int{domain.StatusBehind: 1},
		OverallProgressPct:       40,
		TotalPortfolioValue:      320000,
		TotalMonthlyContribution: 5000,
		SavingsCapacity:          30000,
		RecentActivity: []*domain.PlanTransaction{
			{
				GoalType:    domain.GoalEducation,
				Action:      domain.ActionAdded,
				Amount:      500000,
				Description: `Added EDUCATION goal "College fund"`,
				OccurredAt:  time.Now().Add(-2 * time.Hour),
			},
		},
	}

	out := FormatHouseholdReport(report)
	assert.Contains(t, out, "Sharma family")
	assert.Contains(t, out, "EDUCATION GOALS")
	assert.Contains(t, out, "College fund")
	assert.Contains(t, out, "1 BEHIND")
	assert.Contains(t, out, "₹30,000.00")
	assert.Contains(t, out, "RECENT ACTIVITY")
	assert.Contains(t, out, "ADDED")
}

func TestFormatHouseholdReport_SkipsEmptySections(t *testing.T) {
	report := &contract.HouseholdReport{
		Household:   &domain.HouseholdProfile{Name: "Empty household"},
		GeneratedAt: time.Now(),
		Sections: []contract.TypeSection{
			{Type: domain.GoalMarriage},
		},
		StatusCounts: map[domain.GoalStatus]int{},
	}

	out := FormatHouseholdReport(report)
	assert.NotContains(t, out, "MARRIAGE GOALS")
}
