package service

import (
	"context"
	"fmt"
	"time"

	"github.com/cbridge/nestegg/internal/db"
	"github.com/cbridge/nestegg/internal/domain"
	"github.com/cbridge/nestegg/internal/projection"
	"github.com/cbridge/nestegg/internal/repository"
	"github.com/google/uuid"
)

type accrualService struct {
	goals      repository.GoalRepo
	households repository.HouseholdRepo
	uow        db.UnitOfWork
	observer   UseCaseObserver
}

func NewAccrualService(
	goals repository.GoalRepo,
	households repository.HouseholdRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) AccrualService {
	return &accrualService{
		goals:      goals,
		households: households,
		uow:        uow,
		observer:   useCaseObserverOrNoop(observers),
	}
}

func (s *accrualService) PostMonthlyContributions(ctx context.Context, householdID string) (result *AccrualResult, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "post-contributions",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"household": householdID},
		})
	}()

	if _, err = s.households.GetByID(ctx, householdID); err != nil {
		return nil, err
	}
	goals, err := s.goals.ListByHousehold(ctx, householdID)
	if err != nil {
		return nil, err
	}

	result = &AccrualResult{HouseholdID: householdID}
	for _, g := range goals {
		if g.MonthlyContribution <= 0 {
			continue
		}
		newBalance := projection.Round2(g.CurrentSavings + g.MonthlyContribution)
		postErr := s.postOne(ctx, g, newBalance)
		result.Outcomes = append(result.Outcomes, GoalAccrualOutcome{
			GoalID:     g.ID,
			GoalName:   g.Name,
			Amount:     g.MonthlyContribution,
			NewBalance: newBalance,
			Err:        postErr,
		})
	}
	return result, nil
}

func (s *accrualService) postOne(ctx context.Context, g *domain.Goal, newBalance float64) error {
	now := time.Now().UTC()
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		updated := *g
		updated.CurrentSavings = newBalance
		updated.UpdatedAt = now
		if err := repository.NewSQLiteGoalRepo(tx).Update(ctx, &updated); err != nil {
			return err
		}
		return repository.NewSQLiteTransactionLogRepo(tx).Record(ctx, &domain.PlanTransaction{
			ID:          uuid.New().String(),
			HouseholdID: g.HouseholdID,
			GoalType:    g.Type,
			GoalID:      g.ID,
			Action:      domain.ActionUpdated,
			Amount:      g.MonthlyContribution,
			Description: fmt.Sprintf("Posted monthly contribution for %q", g.Name),
			OccurredAt:  now,
		})
	})
}
