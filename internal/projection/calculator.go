// Package projection contains the pure savings-goal math: inflation
// adjustment, compound-growth future value, shortfall, progress, and the
// status classifier. Nothing here touches storage or the network.
package projection

import "math"

// InflationAdjustedCost grows baseCost at the given annual percentage rate
// over years. A non-positive horizon returns baseCost unchanged.
func InflationAdjustedCost(baseCost, rate float64, years int) float64 {
	if years <= 0 {
		return baseCost
	}
	return baseCost * math.Pow(1+rate/100, float64(years))
}

// FutureValue compounds currentAmount over years at annualRate (a
// percentage) and adds the future value of an ordinary annuity of
// monthlyContribution at the equivalent monthly rate. A non-positive
// horizon returns currentAmount unchanged; a zero rate degenerates the
// annuity term to monthlyContribution * months.
func FutureValue(currentAmount, monthlyContribution, annualRate float64, years int) float64 {
	if years <= 0 {
		return currentAmount
	}

	monthlyRate := annualRate / 100 / 12
	months := years * 12

	principal := currentAmount * math.Pow(1+annualRate/100, float64(years))

	var annuity float64
	if monthlyRate == 0 {
		annuity = monthlyContribution * float64(months)
	} else {
		annuity = monthlyContribution * (math.Pow(1+monthlyRate, float64(months)) - 1) / monthlyRate
	}
	return principal + annuity
}

// Shortfall returns how far projectedValue falls short of targetCost,
// never negative.
func Shortfall(targetCost, projectedValue float64) float64 {
	if diff := targetCost - projectedValue; diff > 0 {
		return diff
	}
	return 0
}

// ProgressPercentage returns projectedValue as a percentage of targetCost,
// clamped to [0, 100]. A non-positive target yields 0.
func ProgressPercentage(projectedValue, targetCost float64) float64 {
	if targetCost <= 0 {
		return 0
	}
	pct := projectedValue / targetCost * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// RequiredMonthlyContribution divides the shortfall across the months
// remaining. It reports false when monthsRemaining is not positive, since
// there is no horizon left to contribute over.
func RequiredMonthlyContribution(shortfallAmount, monthsRemaining float64) (float64, bool) {
	if monthsRemaining <= 0 {
		return 0, false
	}
	return shortfallAmount / monthsRemaining, true
}

// Round2 rounds a monetary value half away from zero to two decimals.
// Applied at output boundaries only; intermediate math keeps full
// precision.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
