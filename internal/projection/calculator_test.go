package projection

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInflationAdjustedCost(t *testing.T) {
	t.Run("five year compounding", func(t *testing.T) {
		got := InflationAdjustedCost(100000, 6.0, 5)
		assert.InDelta(t, 133822.56, Round2(got), 0.005)
	})

	t.Run("zero horizon returns base cost", func(t *testing.T) {
		assert.Equal(t, 100000.0, InflationAdjustedCost(100000, 6.0, 0))
	})

	t.Run("negative horizon returns base cost", func(t *testing.T) {
		assert.Equal(t, 100000.0, InflationAdjustedCost(100000, 6.0, -3))
	})

	t.Run("zero rate is identity", func(t *testing.T) {
		assert.Equal(t, 100000.0, InflationAdjustedCost(100000, 0, 10))
	})
}

func TestFutureValue(t *testing.T) {
	t.Run("principal plus annuity", func(t *testing.T) {
		// 10000*1.08^3 = 12597.12 plus a 36-month annuity of 500 at
		// 8/12/100 per month.
		got := FutureValue(10000, 500, 8.0, 3)
		assert.InDelta(t, 32864.90, got, 0.5)
	})

	t.Run("zero horizon returns current amount", func(t *testing.T) {
		assert.Equal(t, 10000.0, FutureValue(10000, 500, 8.0, 0))
		assert.Equal(t, 10000.0, FutureValue(10000, 500, 8.0, -1))
	})

	t.Run("zero rate degrades annuity to simple sum", func(t *testing.T) {
		got := FutureValue(10000, 500, 0, 2)
		assert.Equal(t, 10000.0+500*24, got)
	})
}

func TestShortfall(t *testing.T) {
	assert.Equal(t, 2500.0, Shortfall(10000, 7500))
	assert.Equal(t, 0.0, Shortfall(10000, 10000))
	assert.Equal(t, 0.0, Shortfall(10000, 15000))
}

func TestProgressPercentage(t *testing.T) {
	assert.Equal(t, 75.0, ProgressPercentage(7500, 10000))
	assert.Equal(t, 100.0, ProgressPercentage(20000, 10000))
	assert.Equal(t, 0.0, ProgressPercentage(-100, 10000))

	// Zero target must not divide.
	assert.Equal(t, 0.0, ProgressPercentage(50000, 0))
	assert.Equal(t, 0.0, ProgressPercentage(50000, -1))
}

func TestRequiredMonthlyContribution(t *testing.T) {
	got, ok := RequiredMonthlyContribution(12000, 24)
	require.True(t, ok)
	assert.Equal(t, 500.0, got)

	_, ok = RequiredMonthlyContribution(12000, 0)
	assert.False(t, ok)
	_, ok = RequiredMonthlyContribution(12000, -6)
	assert.False(t, ok)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1000.0, Round2(999.995))
	assert.Equal(t, 1.23, Round2(1.234))
	assert.Equal(t, 1.24, Round2(1.235))
	assert.Equal(t, 0.0, Round2(0))
}

// TestFutureValue_Monotonicity property-tests that future value never
// decreases when principal, contribution, or horizon grows.
func TestFutureValue_Monotonicity(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 200; trial++ {
		current := rng.Float64() * 500000
		monthly := rng.Float64() * 20000
		rate := rng.Float64() * 15
		years := rng.Intn(30) + 1

		base := FutureValue(current, monthly, rate, years)

		assert.GreaterOrEqual(t, FutureValue(current+1000, monthly, rate, years), base,
			"trial %d: increasing principal must not shrink future value", trial)
		assert.GreaterOrEqual(t, FutureValue(current, monthly+100, rate, years), base,
			"trial %d: increasing contribution must not shrink future value", trial)
		assert.GreaterOrEqual(t, FutureValue(current, monthly, rate, years+1), base,
			"trial %d: extending horizon must not shrink future value", trial)
	}
}

// TestCalculator_Invariants property-tests the clamp and non-negativity
// guarantees over random inputs.
func TestCalculator_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 200; trial++ {
		target := rng.Float64()*1000000 - 100000 // may be negative
		projected := rng.Float64() * 1500000

		pct := ProgressPercentage(projected, target)
		assert.GreaterOrEqual(t, pct, 0.0, "trial %d", trial)
		assert.LessOrEqual(t, pct, 100.0, "trial %d", trial)

		assert.GreaterOrEqual(t, Shortfall(target, projected), 0.0, "trial %d", trial)
	}
}

// TestInflationAdjustedCost_ZeroHorizonIdentity property-tests that any
// non-positive horizon leaves the cost untouched regardless of rate.
func TestInflationAdjustedCost_ZeroHorizonIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for trial := 0; trial < 200; trial++ {
		cost := rng.Float64() * 1000000
		rate := rng.Float64() * 20
		years := -rng.Intn(10)

		assert.Equal(t, cost, InflationAdjustedCost(cost, rate, years), "trial %d", trial)
	}
}
