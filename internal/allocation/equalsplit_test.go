package allocation

import (
	"math"
	"math/rand"
	"testing"

	"github.com/cbridge/nestegg/internal/domain"
	"github.com/cbridge/nestegg/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqualSplit_ThreeGoals(t *testing.T) {
	goals := []*domain.Goal{
		testutil.NewTestGoal("hh-1", "College"),
		testutil.NewTestGoal("hh-1", "Wedding A", testutil.WithGoalType(domain.GoalMarriage)),
		testutil.NewTestGoal("hh-1", "Wedding B", testutil.WithGoalType(domain.GoalMarriage)),
	}

	plan := EqualSplit(3000, goals)

	assert.Equal(t, domain.StrategyEqualSplit, plan.Strategy)
	require.Len(t, plan.Amounts, 3)
	for _, g := range goals {
		assert.Equal(t, 1000.00, plan.Amounts[g.ID])
	}
}

func TestEqualSplit_RoundingLeftoverNotRedistributed(t *testing.T) {
	goals := []*domain.Goal{
		testutil.NewTestGoal("hh-1", "A"),
		testutil.NewTestGoal("hh-1", "B"),
		testutil.NewTestGoal("hh-1", "C"),
	}

	plan := EqualSplit(100, goals)

	// 100/3 rounds to 33.33 each; the extra cent stays unallocated.
	for _, g := range goals {
		assert.Equal(t, 33.33, plan.Amounts[g.ID])
	}
}

func TestEqualSplit_NoGoals(t *testing.T) {
	plan := EqualSplit(3000, nil)
	assert.Empty(t, plan.Amounts)
}

func TestZeroPlan(t *testing.T) {
	goals := []*domain.Goal{
		testutil.NewTestGoal("hh-1", "College"),
		testutil.NewTestGoal("hh-1", "Fund", testutil.WithGoalType(domain.GoalInvestment)),
	}

	plan := ZeroPlan(goals)

	assert.Equal(t, domain.StrategyZeroCapacity, plan.Strategy)
	require.Len(t, plan.Amounts, 2)
	for _, g := range goals {
		assert.Equal(t, 0.0, plan.Amounts[g.ID])
	}
}

// TestEqualSplit_Conservation property-tests that the split conserves
// capacity within rounding tolerance and never produces a negative share.
func TestEqualSplit_Conservation(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 200; trial++ {
		capacity := rng.Float64() * 100000
		n := rng.Intn(10) + 1

		goals := make([]*domain.Goal, n)
		for i := range goals {
			goals[i] = testutil.NewTestGoal("hh-1", "Goal")
		}

		plan := EqualSplit(capacity, goals)
		require.Len(t, plan.Amounts, n, "trial %d", trial)

		var sum float64
		for _, amount := range plan.Amounts {
			assert.GreaterOrEqual(t, amount, 0.0, "trial %d", trial)
			sum += amount
		}
		assert.LessOrEqual(t, math.Abs(sum-capacity), 0.01*float64(n),
			"trial %d: sum %.4f must stay within tolerance of capacity %.4f", trial, sum, capacity)
	}
}
