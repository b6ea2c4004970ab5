package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cbridge/nestegg/internal/db"
	"github.com/cbridge/nestegg/internal/domain"
)

// SQLiteHouseholdRepo implements HouseholdRepo using a SQLite database.
type SQLiteHouseholdRepo struct {
	db db.DBTX
}

// NewSQLiteHouseholdRepo creates a new SQLiteHouseholdRepo.
func NewSQLiteHouseholdRepo(conn db.DBTX) *SQLiteHouseholdRepo {
	return &SQLiteHouseholdRepo{db: conn}
}

const householdColumns = `id, name, monthly_income, monthly_expenses, created_at, updated_at`

func (r *SQLiteHouseholdRepo) Upsert(ctx context.Context, h *domain.HouseholdProfile) error {
	query := `INSERT INTO households (` + householdColumns + `)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			monthly_income = excluded.monthly_income,
			monthly_expenses = excluded.monthly_expenses,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		h.ID,
		h.Name,
		h.MonthlyIncome,
		h.MonthlyExpenses,
		h.CreatedAt.UTC().Format(time.RFC3339),
		h.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting household: %w", err)
	}
	return nil
}

func (r *SQLiteHouseholdRepo) GetByID(ctx context.Context, id string) (*domain.HouseholdProfile, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+householdColumns+` FROM households WHERE id = ?`, id)
	return scanHousehold(row.Scan)
}

func (r *SQLiteHouseholdRepo) GetByName(ctx context.Context, name string) (*domain.HouseholdProfile, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+householdColumns+` FROM households WHERE name = ?`, name)
	return scanHousehold(row.Scan)
}

func (r *SQLiteHouseholdRepo) List(ctx context.Context) ([]*domain.HouseholdProfile, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+householdColumns+` FROM households ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing households: %w", err)
	}
	defer rows.Close()

	var households []*domain.HouseholdProfile
	for rows.Next() {
		h, err := scanHousehold(rows.Scan)
		if err != nil {
			return nil, err
		}
		households = append(households, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating households: %w", err)
	}
	return households, nil
}

func (r *SQLiteHouseholdRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM households WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting household: %w", err)
	}
	return requireRowAffected(res, "household")
}

func scanHousehold(scan func(dest ...any) error) (*domain.HouseholdProfile, error) {
	var h domain.HouseholdProfile
	var createdAtStr, updatedAtStr string

	err := scan(&h.ID, &h.Name, &h.MonthlyIncome, &h.MonthlyExpenses, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("household: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning household: %w", err)
	}

	if h.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if h.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &h, nil
}
