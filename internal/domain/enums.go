package domain

type GoalType string

const (
	GoalEducation  GoalType = "EDUCATION"
	GoalMarriage   GoalType = "MARRIAGE"
	GoalInvestment GoalType = "INVESTMENT"
)

// ValidGoalTypes is the canonical set of accepted goal type strings.
var ValidGoalTypes = map[string]bool{
	"EDUCATION": true, "MARRIAGE": true, "INVESTMENT": true,
}

type GoalStatus string

const (
	StatusCompleted GoalStatus = "COMPLETED"
	StatusOverdue   GoalStatus = "OVERDUE"
	StatusAhead     GoalStatus = "AHEAD"
	StatusOnTrack   GoalStatus = "ON_TRACK"
	StatusBehind    GoalStatus = "BEHIND"

	// StatusUnknown marks goals whose required fields are missing or
	// invalid. Such goals are reported individually but excluded from
	// aggregate totals.
	StatusUnknown GoalStatus = "UNKNOWN"
)

type TransactionAction string

const (
	ActionAdded   TransactionAction = "ADDED"
	ActionUpdated TransactionAction = "UPDATED"
	ActionDeleted TransactionAction = "DELETED"
)

// AllocationStrategy records how a contribution plan was produced.
type AllocationStrategy string

const (
	// StrategyOptimizer means the external allocation service supplied
	// the per-goal amounts.
	StrategyOptimizer AllocationStrategy = "optimizer"

	// StrategyEqualSplit means the service was unreachable or returned an
	// invalid payload and the capacity was divided evenly instead.
	StrategyEqualSplit AllocationStrategy = "equal-split"

	// StrategyZeroCapacity means the household had no savings capacity
	// and every goal was assigned zero.
	StrategyZeroCapacity AllocationStrategy = "zero-capacity"
)
