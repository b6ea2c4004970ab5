package testutil

import (
	"time"

	"github.com/cbridge/nestegg/internal/domain"
	"github.com/google/uuid"
)

// HouseholdProfile options
type HouseholdOption func(*domain.HouseholdProfile)

func WithMonthlyIncome(v float64) HouseholdOption {
	return func(h *domain.HouseholdProfile) {
		h.MonthlyIncome = v
	}
}

func WithMonthlyExpenses(v float64) HouseholdOption {
	return func(h *domain.HouseholdProfile) {
		h.MonthlyExpenses = v
	}
}

func NewTestHousehold(name string, opts ...HouseholdOption) *domain.HouseholdProfile {
	now := time.Now().UTC()
	h := &domain.HouseholdProfile{
		ID:              uuid.New().String(),
		Name:            name,
		MonthlyIncome:   80000,
		MonthlyExpenses: 50000,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Goal options
type GoalOption func(*domain.Goal)

func WithGoalType(t domain.GoalType) GoalOption {
	return func(g *domain.Goal) {
		g.Type = t
	}
}

func WithTargetAmount(v float64) GoalOption {
	return func(g *domain.Goal) {
		g.TargetAmount = v
	}
}

func WithCurrentSavings(v float64) GoalOption {
	return func(g *domain.Goal) {
		g.CurrentSavings = v
	}
}

func WithMonthlyContribution(v float64) GoalOption {
	return func(g *domain.Goal) {
		g.MonthlyContribution = v
	}
}

func WithGrowthRate(v float64) GoalOption {
	return func(g *domain.Goal) {
		g.GrowthRate = v
	}
}

func WithTargetYear(y int) GoalOption {
	return func(g *domain.Goal) {
		g.TargetYear = y
	}
}

func WithEndYear(y int) GoalOption {
	return func(g *domain.Goal) {
		g.EndYear = &y
	}
}

func WithNotes(notes string) GoalOption {
	return func(g *domain.Goal) {
		g.Notes = notes
	}
}

// NewTestGoal builds a valid education goal five years out, attached to the
// given household. Options override individual fields.
func NewTestGoal(householdID, name string, opts ...GoalOption) *domain.Goal {
	now := time.Now().UTC()
	g := &domain.Goal{
		ID:                  uuid.New().String(),
		HouseholdID:         householdID,
		Type:                domain.GoalEducation,
		Name:                name,
		TargetAmount:        500000,
		CurrentSavings:      100000,
		MonthlyContribution: 5000,
		GrowthRate:          domain.DefaultInflationRate,
		TargetYear:          now.Year() + 5,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NewTestTransaction builds a plan transaction for the given household.
func NewTestTransaction(householdID, goalID string, occurredAt time.Time) *domain.PlanTransaction {
	return &domain.PlanTransaction{
		ID:          uuid.New().String(),
		HouseholdID: householdID,
		GoalType:    domain.GoalEducation,
		GoalID:      goalID,
		Action:      domain.ActionAdded,
		Amount:      500000,
		Description: "Added education goal",
		OccurredAt:  occurredAt,
	}
}
