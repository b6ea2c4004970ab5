package domain

import (
	"fmt"
	"time"
)

// Goal is a household's savings target of a specific type. The same struct
// backs education, marriage and investment goals; EndYear is only
// meaningful for multi-year education goals.
type Goal struct {
	ID          string
	HouseholdID string
	Type        GoalType
	Name        string

	// TargetAmount is the nominal cost at the goal's base year.
	TargetAmount   float64
	CurrentSavings float64

	// MonthlyContribution is the recurring monthly addition. This is the
	// field the allocation engine writes.
	MonthlyContribution float64

	// GrowthRate is an annualized percentage: the inflation rate for
	// education and marriage goals, the expected return for investment
	// goals. 6.0 means 6%.
	GrowthRate float64

	// TargetYear is the calendar year the goal falls due (the start year
	// for education goals).
	TargetYear int

	// EndYear, when set, is the final year of a multi-year education
	// goal. Must be strictly after TargetYear.
	EndYear *int

	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Default annualized rates applied when a goal is created without one.
const (
	DefaultInflationRate  = 6.0
	DefaultExpectedReturn = 8.0
)

// Validate checks the invariants a goal must satisfy at creation time.
// currentYear anchors the horizon check so callers (and tests) control the
// clock.
func (g *Goal) Validate(currentYear int) error {
	if !ValidGoalTypes[string(g.Type)] {
		return fmt.Errorf("invalid goal type %q", g.Type)
	}
	if g.Name == "" {
		return fmt.Errorf("goal name is required")
	}
	if g.TargetAmount <= 0 {
		return fmt.Errorf("target amount must be positive, got %.2f", g.TargetAmount)
	}
	if g.CurrentSavings < 0 {
		return fmt.Errorf("current savings cannot be negative, got %.2f", g.CurrentSavings)
	}
	if g.MonthlyContribution < 0 {
		return fmt.Errorf("monthly contribution cannot be negative, got %.2f", g.MonthlyContribution)
	}
	if g.GrowthRate < 0 {
		return fmt.Errorf("growth rate cannot be negative, got %.2f", g.GrowthRate)
	}
	if g.TargetYear < currentYear {
		return fmt.Errorf("target year %d is in the past", g.TargetYear)
	}
	if g.EndYear != nil && *g.EndYear <= g.TargetYear {
		return fmt.Errorf("end year %d must be after target year %d", *g.EndYear, g.TargetYear)
	}
	return nil
}

// Projectable reports whether the goal carries the fields required for
// projection math. Goals that fail this check are reported with status
// UNKNOWN and excluded from aggregate totals.
func (g *Goal) Projectable() bool {
	return g.TargetAmount > 0 && g.GrowthRate >= 0 && g.TargetYear > 0
}

// DisplayID returns a short identifier for terminal output.
func (g *Goal) DisplayID() string {
	if len(g.ID) >= 8 {
		return g.ID[:8]
	}
	return g.ID
}

// GoalPatch enumerates the fields a household may change on an existing
// goal. Identity and foreign-key fields are deliberately absent.
type GoalPatch struct {
	Name                *string
	TargetAmount        *float64
	CurrentSavings      *float64
	MonthlyContribution *float64
	GrowthRate          *float64
	TargetYear          *int
	EndYear             *int
	Notes               *string
}

// IsZero reports whether the patch changes nothing.
func (p GoalPatch) IsZero() bool {
	return p.Name == nil && p.TargetAmount == nil && p.CurrentSavings == nil &&
		p.MonthlyContribution == nil && p.GrowthRate == nil &&
		p.TargetYear == nil && p.EndYear == nil && p.Notes == nil
}

// Apply copies the patch's set fields onto the goal. The result must be
// re-validated by the caller before persisting.
func (p GoalPatch) Apply(g *Goal) {
	if p.Name != nil {
		g.Name = *p.Name
	}
	if p.TargetAmount != nil {
		g.TargetAmount = *p.TargetAmount
	}
	if p.CurrentSavings != nil {
		g.CurrentSavings = *p.CurrentSavings
	}
	if p.MonthlyContribution != nil {
		g.MonthlyContribution = *p.MonthlyContribution
	}
	if p.GrowthRate != nil {
		g.GrowthRate = *p.GrowthRate
	}
	if p.TargetYear != nil {
		g.TargetYear = *p.TargetYear
	}
	if p.EndYear != nil {
		g.EndYear = p.EndYear
	}
	if p.Notes != nil {
		g.Notes = *p.Notes
	}
}
