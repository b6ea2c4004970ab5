// Package allocation contains the pure pieces of the contribution
// allocation engine: optimizer request assembly, response validation, the
// equal-split fallback, and per-household serialization.
package allocation

import (
	"github.com/cbridge/nestegg/internal/domain"
)

// Plan maps goal ids to their new monthly contribution, tagged with the
// strategy that produced it.
type Plan struct {
	Strategy domain.AllocationStrategy
	Amounts  map[string]float64
}

// ZeroPlan assigns exactly zero to every goal. Used when the household has
// no savings capacity.
func ZeroPlan(goals []*domain.Goal) Plan {
	amounts := make(map[string]float64, len(goals))
	for _, g := range goals {
		amounts[g.ID] = 0
	}
	return Plan{Strategy: domain.StrategyZeroCapacity, Amounts: amounts}
}
