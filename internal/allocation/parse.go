package allocation

import (
	"fmt"

	"github.com/cbridge/nestegg/internal/domain"
)

const (
	educationKeyPrefix = "education_"
	marriageKeyPrefix  = "marriage_"
)

// PlanKey composes the prefixed allocation key for a goal.
func PlanKey(t domain.GoalType, id string) string {
	if t == domain.GoalMarriage {
		return marriageKeyPrefix + id
	}
	return educationKeyPrefix + id
}

// ParseAllocations validates an optimizer allocations mapping against the
// goals that were actually requested and resolves the prefixed keys back
// to goal ids. Any unknown key, type mismatch, or negative amount rejects
// the whole mapping; callers treat that as an external failure.
func ParseAllocations(allocations map[string]float64, goals []*domain.Goal) (map[string]float64, error) {
	byKey := make(map[string]*domain.Goal, len(goals))
	for _, g := range goals {
		if g.Type == domain.GoalEducation || g.Type == domain.GoalMarriage {
			byKey[PlanKey(g.Type, g.ID)] = g
		}
	}

	amounts := make(map[string]float64, len(allocations))
	for key, amount := range allocations {
		g, ok := byKey[key]
		if !ok {
			return nil, fmt.Errorf("allocation for unknown goal key %q", key)
		}
		if amount < 0 {
			return nil, fmt.Errorf("negative allocation %.2f for goal %q", amount, g.ID)
		}
		amounts[g.ID] = amount
	}
	return amounts, nil
}
