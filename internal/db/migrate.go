package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// migrations are applied in order on every open. Statements must be
// idempotent: CREATE TABLE/INDEX use IF NOT EXISTS, and ALTER TABLE
// duplicate-column errors are tolerated by Migrate.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS households (
		id               TEXT PRIMARY KEY,
		name             TEXT NOT NULL UNIQUE,
		monthly_income   REAL NOT NULL DEFAULT 0,
		monthly_expenses REAL NOT NULL DEFAULT 0,
		created_at       TEXT NOT NULL,
		updated_at       TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS goals (
		id                   TEXT PRIMARY KEY,
		household_id         TEXT NOT NULL REFERENCES households(id) ON DELETE CASCADE,
		goal_type            TEXT NOT NULL
		                     CHECK(goal_type IN ('EDUCATION','MARRIAGE','INVESTMENT')),
		name                 TEXT NOT NULL,
		target_amount        REAL NOT NULL,
		current_savings      REAL NOT NULL DEFAULT 0,
		monthly_contribution REAL NOT NULL DEFAULT 0,
		growth_rate          REAL NOT NULL DEFAULT 0,
		target_year          INTEGER NOT NULL,
		end_year             INTEGER,
		notes                TEXT NOT NULL DEFAULT '',
		created_at           TEXT NOT NULL,
		updated_at           TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_goals_household ON goals(household_id)`,

	`CREATE TABLE IF NOT EXISTS plan_transactions (
		id           TEXT PRIMARY KEY,
		household_id TEXT NOT NULL REFERENCES households(id) ON DELETE CASCADE,
		goal_type    TEXT NOT NULL,
		goal_id      TEXT NOT NULL,
		action       TEXT NOT NULL CHECK(action IN ('ADDED','UPDATED','DELETED')),
		amount       REAL NOT NULL DEFAULT 0,
		description  TEXT NOT NULL DEFAULT '',
		occurred_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_plan_tx_household_time
		ON plan_transactions(household_id, occurred_at DESC)`,
}

// Migrate runs all schema migrations.
func Migrate(database *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := database.Exec(stmt); err != nil {
			// The migration list re-runs in full on every open, so
			// ALTER TABLE statements added later may hit existing columns.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
