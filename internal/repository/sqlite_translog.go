package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/cbridge/nestegg/internal/db"
	"github.com/cbridge/nestegg/internal/domain"
)

// SQLiteTransactionLogRepo implements TransactionLogRepo. The log is
// append-only; entries are never updated or deleted individually.
type SQLiteTransactionLogRepo struct {
	db db.DBTX
}

// NewSQLiteTransactionLogRepo creates a new SQLiteTransactionLogRepo.
func NewSQLiteTransactionLogRepo(conn db.DBTX) *SQLiteTransactionLogRepo {
	return &SQLiteTransactionLogRepo{db: conn}
}

func (r *SQLiteTransactionLogRepo) Record(ctx context.Context, tx *domain.PlanTransaction) error {
	query := `INSERT INTO plan_transactions
		(id, household_id, goal_type, goal_id, action, amount, description, occurred_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		tx.ID,
		tx.HouseholdID,
		string(tx.GoalType),
		tx.GoalID,
		string(tx.Action),
		tx.Amount,
		tx.Description,
		tx.OccurredAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("recording plan transaction: %w", err)
	}
	return nil
}

func (r *SQLiteTransactionLogRepo) ListRecent(ctx context.Context, householdID string, limit int) ([]*domain.PlanTransaction, error) {
	if limit <= 0 {
		limit = 5
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, household_id, goal_type, goal_id, action, amount, description, occurred_at
		FROM plan_transactions WHERE household_id = ?
		ORDER BY occurred_at DESC LIMIT ?`, householdID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent transactions: %w", err)
	}
	defer rows.Close()

	var entries []*domain.PlanTransaction
	for rows.Next() {
		var tx domain.PlanTransaction
		var typeStr, actionStr, occurredAtStr string
		if err := rows.Scan(
			&tx.ID, &tx.HouseholdID, &typeStr, &tx.GoalID,
			&actionStr, &tx.Amount, &tx.Description, &occurredAtStr,
		); err != nil {
			return nil, fmt.Errorf("scanning plan transaction: %w", err)
		}
		tx.GoalType = domain.GoalType(typeStr)
		tx.Action = domain.TransactionAction(actionStr)
		if tx.OccurredAt, err = time.Parse(time.RFC3339, occurredAtStr); err != nil {
			return nil, fmt.Errorf("parsing occurred_at: %w", err)
		}
		entries = append(entries, &tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plan transactions: %w", err)
	}
	return entries, nil
}
