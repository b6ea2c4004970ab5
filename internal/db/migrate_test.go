package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateIsIdempotent(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	// OpenDB already migrated once; a second pass must be a no-op.
	require.NoError(t, Migrate(database))

	for _, table := range []string{"households", "goals", "plan_transactions"} {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		assert.NoError(t, err, "table %s should exist", table)
	}
}

func TestForeignKeysEnforced(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(`INSERT INTO goals
		(id, household_id, goal_type, name, target_amount, target_year, created_at, updated_at)
		VALUES ('g1', 'missing-household', 'EDUCATION', 'x', 1000, 2030, '2026-01-01T00:00:00Z', '2026-01-01T00:00:00Z')`)
	assert.Error(t, err, "insert with dangling household_id must fail")
}

func TestGoalTypeCheckConstraint(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(`INSERT INTO households
		(id, name, monthly_income, monthly_expenses, created_at, updated_at)
		VALUES ('h1', 'smith', 0, 0, '2026-01-01T00:00:00Z', '2026-01-01T00:00:00Z')`)
	require.NoError(t, err)

	_, err = database.Exec(`INSERT INTO goals
		(id, household_id, goal_type, name, target_amount, target_year, created_at, updated_at)
		VALUES ('g1', 'h1', 'RETIREMENT', 'x', 1000, 2030, '2026-01-01T00:00:00Z', '2026-01-01T00:00:00Z')`)
	assert.Error(t, err, "unknown goal_type must be rejected")
}
