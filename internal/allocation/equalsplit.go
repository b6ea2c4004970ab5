package allocation

import (
	"github.com/cbridge/nestegg/internal/domain"
	"github.com/cbridge/nestegg/internal/projection"
)

// EqualSplit divides capacity evenly across every goal regardless of type,
// rounding each share to two decimals. Any leftover cent from rounding is
// not redistributed; the sum stays within 0.01 per goal of capacity.
func EqualSplit(capacity float64, goals []*domain.Goal) Plan {
	amounts := make(map[string]float64, len(goals))
	if len(goals) > 0 {
		share := projection.Round2(capacity / float64(len(goals)))
		for _, g := range goals {
			amounts[g.ID] = share
		}
	}
	return Plan{Strategy: domain.StrategyEqualSplit, Amounts: amounts}
}
