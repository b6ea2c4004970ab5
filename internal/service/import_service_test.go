package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cbridge/nestegg/internal/repository"
	"github.com/cbridge/nestegg/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeImportFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "goals.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestImportService_ImportsGoals(t *testing.T) {
	env := newTestEnv(t)
	svc := NewImportService(env.households, testutil.NewTestUoW(env.db))
	year := time.Now().UTC().Year()

	path := writeImportFile(t, fmt.Sprintf(`{
		"goals": [
			{"type": "EDUCATION", "name": "College", "target_amount": 500000,
			 "current_savings": 80000, "target_year": %d, "end_year": %d},
			{"type": "MARRIAGE", "name": "Wedding", "target_amount": 800000,
			 "target_year": %d, "growth_rate": 7.5},
			{"type": "INVESTMENT", "name": "Fund", "target_amount": 1000000,
			 "monthly_contribution": 10000, "target_year": %d}
		]
	}`, year+5, year+9, year+4, year+10))

	result, err := svc.ImportGoals(context.Background(), env.household.ID, path)
	require.NoError(t, err)
	assert.Equal(t, 3, result.GoalCount)

	goals, err := env.goals.ListByHousehold(context.Background(), env.household.ID)
	require.NoError(t, err)
	require.Len(t, goals, 3)

	byName := make(map[string]float64)
	rates := make(map[string]float64)
	for _, g := range goals {
		byName[g.Name] = g.TargetAmount
		rates[g.Name] = g.GrowthRate
	}
	assert.Equal(t, 500000.0, byName["College"])
	// Unset rates pick up the per-type default; explicit ones survive.
	assert.Equal(t, 6.0, rates["College"])
	assert.Equal(t, 7.5, rates["Wedding"])
	assert.Equal(t, 8.0, rates["Fund"])

	entries, err := env.translog.ListRecent(context.Background(), env.household.ID, 10)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestImportService_ValidationRejectsBeforeWriting(t *testing.T) {
	env := newTestEnv(t)
	svc := NewImportService(env.households, testutil.NewTestUoW(env.db))
	year := time.Now().UTC().Year()

	path := writeImportFile(t, fmt.Sprintf(`{
		"goals": [
			{"type": "EDUCATION", "name": "Good", "target_amount": 500000, "target_year": %d},
			{"type": "EDUCATION", "name": "Bad", "target_amount": -1, "target_year": %d}
		]
	}`, year+5, year+5))

	_, err := svc.ImportGoals(context.Background(), env.household.ID, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Bad")

	goals, lerr := env.goals.ListByHousehold(context.Background(), env.household.ID)
	require.NoError(t, lerr)
	assert.Empty(t, goals)
}

func TestImportService_RollsBackOnMidBatchFailure(t *testing.T) {
	env := newTestEnv(t)
	year := time.Now().UTC().Year()

	// Fail on the third write: first goal and its log entry land, then
	// the second goal's insert breaks the transaction.
	uow := &testutil.FailOnNthExecUoW{
		DB:     env.db,
		FailOn: 3,
		Err:    assert.AnError,
	}
	svc := NewImportService(env.households, uow)

	path := writeImportFile(t, fmt.Sprintf(`{
		"goals": [
			{"type": "EDUCATION", "name": "First", "target_amount": 500000, "target_year": %d},
			{"type": "EDUCATION", "name": "Second", "target_amount": 600000, "target_year": %d}
		]
	}`, year+5, year+6))

	_, err := svc.ImportGoals(context.Background(), env.household.ID, path)
	require.Error(t, err)

	// Nothing survives, including the first goal.
	goals, lerr := env.goals.ListByHousehold(context.Background(), env.household.ID)
	require.NoError(t, lerr)
	assert.Empty(t, goals)

	entries, lerr := env.translog.ListRecent(context.Background(), env.household.ID, 10)
	require.NoError(t, lerr)
	assert.Empty(t, entries)
}

func TestImportService_MissingFile(t *testing.T) {
	env := newTestEnv(t)
	svc := NewImportService(env.households, testutil.NewTestUoW(env.db))

	_, err := svc.ImportGoals(context.Background(), env.household.ID, "/nonexistent/goals.json")
	assert.Error(t, err)
}

func TestImportService_EmptyFileRejected(t *testing.T) {
	env := newTestEnv(t)
	svc := NewImportService(env.households, testutil.NewTestUoW(env.db))

	path := writeImportFile(t, `{"goals": []}`)
	_, err := svc.ImportGoals(context.Background(), env.household.ID, path)
	assert.ErrorContains(t, err, "no goals")
}

func TestImportService_HouseholdNotFound(t *testing.T) {
	env := newTestEnv(t)
	svc := NewImportService(env.households, testutil.NewTestUoW(env.db))

	path := writeImportFile(t, `{"goals": [{"type": "EDUCATION", "name": "X", "target_amount": 1, "target_year": 2099}]}`)
	_, err := svc.ImportGoals(context.Background(), "nonexistent", path)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
