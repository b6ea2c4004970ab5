package service

import (
	"context"
	"time"

	"github.com/cbridge/nestegg/internal/domain"
	"github.com/cbridge/nestegg/internal/projection"
)

type GoalService interface {
	Create(ctx context.Context, g *domain.Goal) error
	GetByID(ctx context.Context, id string) (*domain.Goal, error)
	ListByHousehold(ctx context.Context, householdID string) ([]*domain.Goal, error)
	Update(ctx context.Context, id string, patch domain.GoalPatch) (*domain.Goal, error)
	Delete(ctx context.Context, id string) error
}

type HouseholdService interface {
	Set(ctx context.Context, h *domain.HouseholdProfile) error
	GetByID(ctx context.Context, id string) (*domain.HouseholdProfile, error)
	GetByName(ctx context.Context, name string) (*domain.HouseholdProfile, error)
	List(ctx context.Context) ([]*domain.HouseholdProfile, error)
	RecentActivity(ctx context.Context, householdID string, limit int) ([]*domain.PlanTransaction, error)
}

// GoalReport pairs a goal with its projection.
type GoalReport struct {
	Goal       *domain.Goal
	Projection projection.Result
}

// TypeSection aggregates one goal type within a household report. Goals
// with UNKNOWN status appear in Goals but are excluded from the totals and
// the mean.
type TypeSection struct {
	Type                     domain.GoalType
	Goals                    []GoalReport
	TotalCurrentSavings      float64
	TotalProjectedValue      float64
	TotalMonthlyContribution float64
	MeanProgressPct          float64
}

// HouseholdReport is the full projection report for one household.
type HouseholdReport struct {
	Household   *domain.HouseholdProfile
	GeneratedAt time.Time

	Sections     []TypeSection
	StatusCounts map[domain.GoalStatus]int

	// OverallProgressPct is the unweighted mean of the per-type means,
	// so a type with one small goal counts as much as a type with many
	// large ones.
	OverallProgressPct float64

	TotalPortfolioValue      float64
	TotalMonthlyContribution float64
	SavingsCapacity          float64

	RecentActivity []*domain.PlanTransaction
}

type ReportService interface {
	HouseholdReport(ctx context.Context, householdID string) (*HouseholdReport, error)
}

// GoalAllocationOutcome records what the allocation run did to one goal.
type GoalAllocationOutcome struct {
	GoalID         string
	GoalName       string
	GoalType       domain.GoalType
	PreviousAmount float64
	NewAmount      float64
	Persisted      bool
	Err            error
}

// AllocationResult is the outcome of one allocation run. Persistence
// failures are reported per goal rather than failing the run.
type AllocationResult struct {
	HouseholdID string
	Strategy    domain.AllocationStrategy
	Capacity    float64
	Outcomes    []GoalAllocationOutcome
}

// Failed returns the outcomes whose persistence failed.
func (r *AllocationResult) Failed() []GoalAllocationOutcome {
	var failed []GoalAllocationOutcome
	for _, o := range r.Outcomes {
		if !o.Persisted {
			failed = append(failed, o)
		}
	}
	return failed
}

type AllocationService interface {
	Allocate(ctx context.Context, householdID string) (*AllocationResult, error)
}

// GoalAccrualOutcome records one goal's monthly posting.
type GoalAccrualOutcome struct {
	GoalID     string
	GoalName   string
	Amount     float64
	NewBalance float64
	Err        error
}

// AccrualResult is the outcome of posting one month of contributions.
type AccrualResult struct {
	HouseholdID string
	Outcomes    []GoalAccrualOutcome
}

type AccrualService interface {
	// PostMonthlyContributions adds each goal's monthly contribution to
	// its current savings, one independent update per goal.
	PostMonthlyContributions(ctx context.Context, householdID string) (*AccrualResult, error)
}

// ImportResult holds the outcome of a goal import.
type ImportResult struct {
	HouseholdID string
	GoalCount   int
}

type ImportService interface {
	ImportGoals(ctx context.Context, householdID, filePath string) (*ImportResult, error)
}
