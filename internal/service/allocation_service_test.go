package service

import (
	"context"
	"errors"
	"testing"

	"github.com/cbridge/nestegg/internal/domain"
	"github.com/cbridge/nestegg/internal/optimizer"
	"github.com/cbridge/nestegg/internal/repository"
	"github.com/cbridge/nestegg/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocationService_OptimizerPlanApplied(t *testing.T) {
	// Capacity 80000 - 50000 = 30000.
	env := newTestEnv(t)
	edu := env.seedGoal(t, "College")
	mar := env.seedGoal(t, "Wedding", testutil.WithGoalType(domain.GoalMarriage))

	client := &stubOptimizer{allocations: map[string]float64{
		"education_" + edu.ID: 18000,
		"marriage_" + mar.ID:  12000,
	}}
	svc := NewAllocationService(env.goals, env.households, testutil.NewTestUoW(env.db), client)

	result, err := svc.Allocate(context.Background(), env.household.ID)
	require.NoError(t, err)

	assert.Equal(t, domain.StrategyOptimizer, result.Strategy)
	assert.Equal(t, 30000.0, result.Capacity)
	require.Len(t, result.Outcomes, 2)
	assert.Empty(t, result.Failed())

	fetched, err := env.goals.GetByID(context.Background(), edu.ID)
	require.NoError(t, err)
	assert.Equal(t, 18000.0, fetched.MonthlyContribution)

	// Each applied goal leaves an audit entry.
	entries, err := env.translog.ListRecent(context.Background(), env.household.ID, 10)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestAllocationService_FallbackOnClientError(t *testing.T) {
	env := newTestEnv(t)
	edu := env.seedGoal(t, "College")
	mar := env.seedGoal(t, "Wedding", testutil.WithGoalType(domain.GoalMarriage))
	inv := env.seedGoal(t, "Fund", testutil.WithGoalType(domain.GoalInvestment))

	client := &stubOptimizer{err: optimizer.ErrUnavailable}
	svc := NewAllocationService(env.goals, env.households, testutil.NewTestUoW(env.db), client)

	result, err := svc.Allocate(context.Background(), env.household.ID)
	require.NoError(t, err)

	// 30000 across three goals; the fallback covers investment too.
	assert.Equal(t, domain.StrategyEqualSplit, result.Strategy)
	require.Len(t, result.Outcomes, 3)
	for _, id := range []string{edu.ID, mar.ID, inv.ID} {
		fetched, err := env.goals.GetByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, 10000.0, fetched.MonthlyContribution)
	}
}

func TestAllocationService_FallbackOnInvalidMapping(t *testing.T) {
	env := newTestEnv(t)
	env.seedGoal(t, "College")

	// References a goal that was never requested.
	client := &stubOptimizer{allocations: map[string]float64{
		"education_someone-else": 30000,
	}}
	svc := NewAllocationService(env.goals, env.households, testutil.NewTestUoW(env.db), client)

	result, err := svc.Allocate(context.Background(), env.household.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StrategyEqualSplit, result.Strategy)
}

func TestAllocationService_ZeroCapacity(t *testing.T) {
	env := newTestEnv(t,
		testutil.WithMonthlyIncome(40000),
		testutil.WithMonthlyExpenses(45000))
	edu := env.seedGoal(t, "College", testutil.WithMonthlyContribution(5000))

	client := &stubOptimizer{allocations: map[string]float64{}}
	svc := NewAllocationService(env.goals, env.households, testutil.NewTestUoW(env.db), client)

	result, err := svc.Allocate(context.Background(), env.household.ID)
	require.NoError(t, err)

	assert.Equal(t, domain.StrategyZeroCapacity, result.Strategy)
	// No external call is made when there is nothing to divide.
	assert.Equal(t, int32(0), client.calls.Load())

	fetched, err := env.goals.GetByID(context.Background(), edu.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, fetched.MonthlyContribution)
}

func TestAllocationService_InvestmentOnlySkipsOptimizer(t *testing.T) {
	env := newTestEnv(t)
	env.seedGoal(t, "Fund", testutil.WithGoalType(domain.GoalInvestment))

	client := &stubOptimizer{allocations: map[string]float64{}}
	svc := NewAllocationService(env.goals, env.households, testutil.NewTestUoW(env.db), client)

	result, err := svc.Allocate(context.Background(), env.household.ID)
	require.NoError(t, err)

	// Nothing to send, straight to the equal split.
	assert.Equal(t, int32(0), client.calls.Load())
	assert.Equal(t, domain.StrategyEqualSplit, result.Strategy)
	require.Len(t, result.Outcomes, 1)
	assert.Equal(t, 30000.0, result.Outcomes[0].NewAmount)
}

func TestAllocationService_HouseholdNotFound(t *testing.T) {
	env := newTestEnv(t)
	svc := NewAllocationService(env.goals, env.households, testutil.NewTestUoW(env.db), &stubOptimizer{})

	_, err := svc.Allocate(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAllocationService_PartialPersistenceFailure(t *testing.T) {
	env := newTestEnv(t)
	env.seedGoal(t, "College")
	env.seedGoal(t, "Wedding", testutil.WithGoalType(domain.GoalMarriage))

	// First goal's transaction fails outright; the second goal's
	// transaction proceeds untouched.
	uow := &testutil.FailOnNthTxUoW{
		DB:     env.db,
		FailOn: 1,
		Err:    errors.New("disk full"),
	}
	client := &stubOptimizer{err: optimizer.ErrUnavailable}
	svc := NewAllocationService(env.goals, env.households, uow, client)

	result, err := svc.Allocate(context.Background(), env.household.ID)
	require.NoError(t, err)

	require.Len(t, result.Outcomes, 2)
	failed := result.Failed()
	require.Len(t, failed, 1)
	assert.ErrorContains(t, failed[0].Err, "disk full")

	// The surviving goal's write went through.
	var persisted int
	for _, o := range result.Outcomes {
		if o.Persisted {
			fetched, err := env.goals.GetByID(context.Background(), o.GoalID)
			require.NoError(t, err)
			assert.Equal(t, o.NewAmount, fetched.MonthlyContribution)
			persisted++
		}
	}
	assert.Equal(t, 1, persisted)
}
