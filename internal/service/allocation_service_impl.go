package service

import (
	"context"
	"fmt"
	"time"

	"github.com/cbridge/nestegg/internal/allocation"
	"github.com/cbridge/nestegg/internal/db"
	"github.com/cbridge/nestegg/internal/domain"
	"github.com/cbridge/nestegg/internal/optimizer"
	"github.com/cbridge/nestegg/internal/repository"
	"github.com/google/uuid"
)

type allocationService struct {
	goals      repository.GoalRepo
	households repository.HouseholdRepo
	uow        db.UnitOfWork
	client     optimizer.Client
	locks      *allocation.HouseholdLocks
	observer   UseCaseObserver
}

func NewAllocationService(
	goals repository.GoalRepo,
	households repository.HouseholdRepo,
	uow db.UnitOfWork,
	client optimizer.Client,
	observers ...UseCaseObserver,
) AllocationService {
	return &allocationService{
		goals:      goals,
		households: households,
		uow:        uow,
		client:     client,
		locks:      allocation.NewHouseholdLocks(),
		observer:   useCaseObserverOrNoop(observers),
	}
}

func (s *allocationService) Allocate(ctx context.Context, householdID string) (result *AllocationResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"household": householdID}
	defer func() {
		if result != nil {
			fields["strategy"] = string(result.Strategy)
			fields["goal_count"] = len(result.Outcomes)
			fields["failed_count"] = len(result.Failed())
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "allocate",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	// Concurrent runs for one household would race on the
	// read-compute-write cycle.
	unlock := s.locks.Lock(householdID)
	defer unlock()

	household, err := s.households.GetByID(ctx, householdID)
	if err != nil {
		return nil, err
	}
	goals, err := s.goals.ListByHousehold(ctx, householdID)
	if err != nil {
		return nil, err
	}

	capacity := household.SavingsCapacity()
	plan := s.buildPlan(ctx, goals, capacity)

	result = &AllocationResult{
		HouseholdID: householdID,
		Strategy:    plan.Strategy,
		Capacity:    capacity,
	}

	// Once persistence starts, a caller cancel must not leave the
	// household half-written.
	applyCtx := context.WithoutCancel(ctx)
	for _, g := range goals {
		amount, ok := plan.Amounts[g.ID]
		if !ok {
			// Not addressed by the optimizer; keeps its contribution.
			continue
		}
		applyErr := s.applyOne(applyCtx, g, amount)
		result.Outcomes = append(result.Outcomes, GoalAllocationOutcome{
			GoalID:         g.ID,
			GoalName:       g.Name,
			GoalType:       g.Type,
			PreviousAmount: g.MonthlyContribution,
			NewAmount:      amount,
			Persisted:      applyErr == nil,
			Err:            applyErr,
		})
	}
	return result, nil
}

// buildPlan decides the contribution per goal. External failures never
// propagate; the equal split covers them.
func (s *allocationService) buildPlan(ctx context.Context, goals []*domain.Goal, capacity float64) allocation.Plan {
	if capacity <= 0 {
		return allocation.ZeroPlan(goals)
	}

	req := allocation.BuildRequest(goals, capacity, time.Now().UTC())
	if req.GoalCount() > 0 {
		if allocations, err := s.client.Allocate(ctx, req); err == nil {
			if amounts, err := allocation.ParseAllocations(allocations, goals); err == nil {
				return allocation.Plan{Strategy: domain.StrategyOptimizer, Amounts: amounts}
			}
		}
	}
	return allocation.EqualSplit(capacity, goals)
}

// applyOne persists one goal's new contribution and its audit entry in a
// transaction of its own, so one goal's failure cannot block the rest.
func (s *allocationService) applyOne(ctx context.Context, g *domain.Goal, amount float64) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteGoalRepo(tx).UpdateContribution(ctx, g.ID, amount); err != nil {
			return err
		}
		return repository.NewSQLiteTransactionLogRepo(tx).Record(ctx, &domain.PlanTransaction{
			ID:          uuid.New().String(),
			HouseholdID: g.HouseholdID,
			GoalType:    g.Type,
			GoalID:      g.ID,
			Action:      domain.ActionUpdated,
			Amount:      amount,
			Description: fmt.Sprintf("Allocated monthly contribution for %q", g.Name),
			OccurredAt:  time.Now().UTC(),
		})
	})
}
