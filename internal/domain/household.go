package domain

import (
	"fmt"
	"time"
)

// HouseholdProfile holds the income picture for one household. The
// difference between income and expenses is the pool the allocation engine
// divides across goals.
type HouseholdProfile struct {
	ID              string
	Name            string
	MonthlyIncome   float64
	MonthlyExpenses float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// SavingsCapacity returns monthly income minus monthly expenses. The
// result may be zero or negative; callers must treat that as "nothing to
// allocate" rather than an error.
func (h *HouseholdProfile) SavingsCapacity() float64 {
	return h.MonthlyIncome - h.MonthlyExpenses
}

// Validate checks the profile invariants.
func (h *HouseholdProfile) Validate() error {
	if h.Name == "" {
		return fmt.Errorf("household name is required")
	}
	if h.MonthlyIncome < 0 {
		return fmt.Errorf("monthly income cannot be negative, got %.2f", h.MonthlyIncome)
	}
	if h.MonthlyExpenses < 0 {
		return fmt.Errorf("monthly expenses cannot be negative, got %.2f", h.MonthlyExpenses)
	}
	return nil
}
