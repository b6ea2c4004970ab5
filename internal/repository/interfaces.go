package repository

import (
	"context"

	"github.com/cbridge/nestegg/internal/domain"
)

type GoalRepo interface {
	Create(ctx context.Context, g *domain.Goal) error
	GetByID(ctx context.Context, id string) (*domain.Goal, error)
	ListByHousehold(ctx context.Context, householdID string) ([]*domain.Goal, error)
	ListByType(ctx context.Context, householdID string, goalType domain.GoalType) ([]*domain.Goal, error)
	Update(ctx context.Context, g *domain.Goal) error

	// UpdateContribution writes only the monthly_contribution column.
	// The allocation engine uses this so concurrent household edits to
	// other fields are not clobbered.
	UpdateContribution(ctx context.Context, id string, amount float64) error

	Delete(ctx context.Context, id string) error
}

type HouseholdRepo interface {
	Upsert(ctx context.Context, h *domain.HouseholdProfile) error
	GetByID(ctx context.Context, id string) (*domain.HouseholdProfile, error)
	GetByName(ctx context.Context, name string) (*domain.HouseholdProfile, error)
	List(ctx context.Context) ([]*domain.HouseholdProfile, error)
	Delete(ctx context.Context, id string) error
}

type TransactionLogRepo interface {
	Record(ctx context.Context, tx *domain.PlanTransaction) error

	// ListRecent returns the newest entries for a household, most recent
	// first, capped at limit.
	ListRecent(ctx context.Context, householdID string, limit int) ([]*domain.PlanTransaction, error)
}
