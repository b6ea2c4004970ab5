package service

import (
	"context"
	"database/sql"
	"sync/atomic"
	"testing"

	"github.com/cbridge/nestegg/internal/domain"
	"github.com/cbridge/nestegg/internal/optimizer"
	"github.com/cbridge/nestegg/internal/repository"
	"github.com/cbridge/nestegg/internal/testutil"
	"github.com/stretchr/testify/require"
)

// stubOptimizer is a canned optimizer.Client for service tests.
type stubOptimizer struct {
	allocations map[string]float64
	err         error
	calls       atomic.Int32
}

func (s *stubOptimizer) Allocate(ctx context.Context, req optimizer.Request) (map[string]float64, error) {
	s.calls.Add(1)
	if s.err != nil {
		return nil, s.err
	}
	return s.allocations, nil
}

func (s *stubOptimizer) Available(ctx context.Context) bool {
	return s.err == nil
}

type testEnv struct {
	db         *sql.DB
	goals      *repository.SQLiteGoalRepo
	households *repository.SQLiteHouseholdRepo
	translog   *repository.SQLiteTransactionLogRepo
	household  *domain.HouseholdProfile
}

func newTestEnv(t *testing.T, opts ...testutil.HouseholdOption) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	env := &testEnv{
		db:         database,
		goals:      repository.NewSQLiteGoalRepo(database),
		households: repository.NewSQLiteHouseholdRepo(database),
		translog:   repository.NewSQLiteTransactionLogRepo(database),
		household:  testutil.NewTestHousehold("Sharma Family", opts...),
	}
	require.NoError(t, env.households.Upsert(context.Background(), env.household))
	return env
}

func (e *testEnv) seedGoal(t *testing.T, name string, opts ...testutil.GoalOption) *domain.Goal {
	t.Helper()
	g := testutil.NewTestGoal(e.household.ID, name, opts...)
	require.NoError(t, e.goals.Create(context.Background(), g))
	return g
}
