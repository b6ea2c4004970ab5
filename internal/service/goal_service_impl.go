package service

import (
	"context"
	"fmt"
	"time"

	"github.com/cbridge/nestegg/internal/db"
	"github.com/cbridge/nestegg/internal/domain"
	"github.com/cbridge/nestegg/internal/repository"
	"github.com/google/uuid"
)

type goalService struct {
	goals    repository.GoalRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewGoalService(goals repository.GoalRepo, uow db.UnitOfWork, observers ...UseCaseObserver) GoalService {
	return &goalService{
		goals:    goals,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *goalService) Create(ctx context.Context, g *domain.Goal) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "create-goal",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"goal_type": string(g.Type), "household": g.HouseholdID},
		})
	}()

	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	g.CreatedAt = now
	g.UpdatedAt = now
	if g.GrowthRate == 0 {
		g.GrowthRate = defaultGrowthRate(g.Type)
	}

	if err = g.Validate(now.Year()); err != nil {
		return err
	}

	// Goal row and audit entry land together or not at all.
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteGoalRepo(tx).Create(ctx, g); err != nil {
			return err
		}
		return repository.NewSQLiteTransactionLogRepo(tx).Record(ctx, &domain.PlanTransaction{
			ID:          uuid.New().String(),
			HouseholdID: g.HouseholdID,
			GoalType:    g.Type,
			GoalID:      g.ID,
			Action:      domain.ActionAdded,
			Amount:      g.TargetAmount,
			Description: fmt.Sprintf("Added %s goal %q", g.Type, g.Name),
			OccurredAt:  now,
		})
	})
}

func (s *goalService) GetByID(ctx context.Context, id string) (*domain.Goal, error) {
	return s.goals.GetByID(ctx, id)
}

func (s *goalService) ListByHousehold(ctx context.Context, householdID string) ([]*domain.Goal, error) {
	return s.goals.ListByHousehold(ctx, householdID)
}

func (s *goalService) Update(ctx context.Context, id string, patch domain.GoalPatch) (*domain.Goal, error) {
	g, err := s.goals.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.IsZero() {
		return g, nil
	}

	patch.Apply(g)
	now := time.Now().UTC()
	g.UpdatedAt = now

	// Horizon is only checked at creation; an existing goal may keep a
	// target year that has since passed.
	if err := g.Validate(0); err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteGoalRepo(tx).Update(ctx, g); err != nil {
			return err
		}
		return repository.NewSQLiteTransactionLogRepo(tx).Record(ctx, &domain.PlanTransaction{
			ID:          uuid.New().String(),
			HouseholdID: g.HouseholdID,
			GoalType:    g.Type,
			GoalID:      g.ID,
			Action:      domain.ActionUpdated,
			Amount:      g.TargetAmount,
			Description: fmt.Sprintf("Updated %s goal %q", g.Type, g.Name),
			OccurredAt:  now,
		})
	})
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (s *goalService) Delete(ctx context.Context, id string) error {
	g, err := s.goals.GetByID(ctx, id)
	if err != nil {
		return err
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteGoalRepo(tx).Delete(ctx, g.ID); err != nil {
			return err
		}
		return repository.NewSQLiteTransactionLogRepo(tx).Record(ctx, &domain.PlanTransaction{
			ID:          uuid.New().String(),
			HouseholdID: g.HouseholdID,
			GoalType:    g.Type,
			GoalID:      g.ID,
			Action:      domain.ActionDeleted,
			Amount:      g.TargetAmount,
			Description: fmt.Sprintf("Deleted %s goal %q", g.Type, g.Name),
			OccurredAt:  time.Now().UTC(),
		})
	})
}

func defaultGrowthRate(t domain.GoalType) float64 {
	if t == domain.GoalInvestment {
		return domain.DefaultExpectedReturn
	}
	return domain.DefaultInflationRate
}
