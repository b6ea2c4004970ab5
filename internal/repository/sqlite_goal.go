package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cbridge/nestegg/internal/db"
	"github.com/cbridge/nestegg/internal/domain"
)

// SQLiteGoalRepo implements GoalRepo on a SQLite connection or transaction.
type SQLiteGoalRepo struct {
	db db.DBTX
}

// NewSQLiteGoalRepo creates a new SQLiteGoalRepo.
func NewSQLiteGoalRepo(conn db.DBTX) *SQLiteGoalRepo {
	return &SQLiteGoalRepo{db: conn}
}

const goalColumns = `id, household_id, goal_type, name, target_amount, current_savings,
	monthly_contribution, growth_rate, target_year, end_year, notes, created_at, updated_at`

func (r *SQLiteGoalRepo) Create(ctx context.Context, g *domain.Goal) error {
	query := `INSERT INTO goals (` + goalColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		g.ID,
		g.HouseholdID,
		string(g.Type),
		g.Name,
		g.TargetAmount,
		g.CurrentSavings,
		g.MonthlyContribution,
		g.GrowthRate,
		g.TargetYear,
		nullableInt(g.EndYear),
		g.Notes,
		g.CreatedAt.UTC().Format(time.RFC3339),
		g.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting goal: %w", err)
	}
	return nil
}

func (r *SQLiteGoalRepo) GetByID(ctx context.Context, id string) (*domain.Goal, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+goalColumns+` FROM goals WHERE id = ?`, id)
	return scanGoalRow(row.Scan)
}

func (r *SQLiteGoalRepo) ListByHousehold(ctx context.Context, householdID string) ([]*domain.Goal, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+goalColumns+` FROM goals WHERE household_id = ? ORDER BY created_at`, householdID)
	if err != nil {
		return nil, fmt.Errorf("listing goals: %w", err)
	}
	return collectGoals(rows)
}

func (r *SQLiteGoalRepo) ListByType(ctx context.Context, householdID string, goalType domain.GoalType) ([]*domain.Goal, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+goalColumns+` FROM goals WHERE household_id = ? AND goal_type = ? ORDER BY created_at`,
		householdID, string(goalType))
	if err != nil {
		return nil, fmt.Errorf("listing goals by type: %w", err)
	}
	return collectGoals(rows)
}

func (r *SQLiteGoalRepo) Update(ctx context.Context, g *domain.Goal) error {
	query := `UPDATE goals SET name = ?, target_amount = ?, current_savings = ?,
		monthly_contribution = ?, growth_rate = ?, target_year = ?, end_year = ?,
		notes = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		g.Name,
		g.TargetAmount,
		g.CurrentSavings,
		g.MonthlyContribution,
		g.GrowthRate,
		g.TargetYear,
		nullableInt(g.EndYear),
		g.Notes,
		nowUTC(),
		g.ID,
	)
	if err != nil {
		return fmt.Errorf("updating goal: %w", err)
	}
	return requireRowAffected(res, "goal")
}

func (r *SQLiteGoalRepo) UpdateContribution(ctx context.Context, id string, amount float64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE goals SET monthly_contribution = ?, updated_at = ? WHERE id = ?`,
		amount, nowUTC(), id)
	if err != nil {
		return fmt.Errorf("updating goal contribution: %w", err)
	}
	return requireRowAffected(res, "goal")
}

func (r *SQLiteGoalRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM goals WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting goal: %w", err)
	}
	return requireRowAffected(res, "goal")
}

// requireRowAffected maps "zero rows touched" to ErrNotFound so callers can
// distinguish a missing row from a transient failure.
func requireRowAffected(res sql.Result, entity string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", entity, ErrNotFound)
	}
	return nil
}

func collectGoals(rows *sql.Rows) ([]*domain.Goal, error) {
	defer rows.Close()

	var goals []*domain.Goal
	for rows.Next() {
		g, err := scanGoalRow(rows.Scan)
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating goals: %w", err)
	}
	return goals, nil
}

func scanGoalRow(scan func(dest ...any) error) (*domain.Goal, error) {
	var g domain.Goal
	var typeStr, createdAtStr, updatedAtStr string
	var endYear sql.NullInt64

	err := scan(
		&g.ID, &g.HouseholdID, &typeStr, &g.Name,
		&g.TargetAmount, &g.CurrentSavings, &g.MonthlyContribution, &g.GrowthRate,
		&g.TargetYear, &endYear, &g.Notes,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("goal: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning goal: %w", err)
	}

	g.Type = domain.GoalType(typeStr)
	g.EndYear = intPtrFromNull(endYear)

	if g.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if g.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &g, nil
}
