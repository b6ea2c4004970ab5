package domain

import "time"

// PlanTransaction is one entry in the audit log: a goal was added,
// updated or deleted, with the amount involved. Entries are append-only
// and feed the recent-activity view.
type PlanTransaction struct {
	ID          string
	HouseholdID string
	GoalType    GoalType
	GoalID      string
	Action      TransactionAction
	Amount      float64
	Description string
	OccurredAt  time.Time
}
