package formatter

import (
	"errors"
	"testing"

	"github.com/cbridge/nestegg/internal/contract"
	"github.com/cbridge/nestegg/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatAllocationResult_ReportsFailures(t *testing.T) {
	result := &contract.AllocationResult{
		HouseholdID: "hh-1",
		Strategy:    domain.StrategyEqualSplit,
		Capacity:    30000,
		Outcomes: []contract.GoalAllocationOutcome{
			{GoalName: "College fund", GoalType: domain.GoalEducation, PreviousAmount: 5000, NewAmount: 15000, Persisted: true},
			{GoalName: "Wedding", GoalType: domain.GoalMarriage, PreviousAmount: 2000, NewAmount: 15000, Persisted: false, Err: errors.New("disk full")},
		},
	}

	out := FormatAllocationResult(result)
	assert.Contains(t, out, "equal split")
	assert.Contains(t, out, "College fund")
	assert.Contains(t, out, "₹15,000.00")
	assert.Contains(t, out, "FAILED Wedding: disk full")
}

func TestFormatAccrualResult_SumsPostedAmounts(t *testing.T) {
	result := &contract.AccrualResult{
		HouseholdID: "hh-1",
		Outcomes: []contract.GoalAccrualOutcome{
			{GoalName: "College fund", Amount: 5000, NewBalance: 105000},
			{GoalName: "Wedding", Amount: 2000, NewBalance: 52000},
		},
	}

	out := FormatAccrualResult(result)
	assert.Contains(t, out, "₹7,000.00 across 2 goals")
	assert.Contains(t, out, "₹1,05,000.00")
}
