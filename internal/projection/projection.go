package projection

import (
	"time"

	"github.com/cbridge/nestegg/internal/domain"
)

// Result is the full projection for one goal at a point in time. Computed
// on demand, never persisted.
type Result struct {
	GoalID   string
	GoalType domain.GoalType
	GoalName string

	AdjustedCost   float64
	ProjectedValue float64
	Shortfall      float64
	ProgressPct    float64

	TargetDate    time.Time
	DaysRemaining int

	// RequiredMonthly is nil when the horizon has already passed.
	RequiredMonthly *float64

	// TotalContributions and ExpectedGains are populated for investment
	// goals only.
	TotalContributions *float64
	ExpectedGains      *float64

	Status domain.GoalStatus
}

// Project computes the projection for a goal as of now. Goals missing the
// fields the math needs come back with StatusUnknown and zeroed figures;
// callers exclude those from aggregate totals but still report them.
func Project(g *domain.Goal, now time.Time) Result {
	res := Result{
		GoalID:   g.ID,
		GoalType: g.Type,
		GoalName: g.Name,
		Status:   domain.StatusUnknown,
	}
	if !g.Projectable() {
		return res
	}

	years := g.TargetYear - now.Year()

	targetDate := targetDateFor(g.Type, g.TargetYear)
	rawDays := int(targetDate.Sub(now).Hours() / 24)

	adjusted := g.TargetAmount
	if g.Type != domain.GoalInvestment {
		adjusted = InflationAdjustedCost(g.TargetAmount, g.GrowthRate, years)
	}
	projected := FutureValue(g.CurrentSavings, g.MonthlyContribution, g.GrowthRate, years)
	short := Shortfall(adjusted, projected)
	progress := ProgressPercentage(projected, adjusted)

	res.AdjustedCost = Round2(adjusted)
	res.ProjectedValue = Round2(projected)
	res.Shortfall = Round2(short)
	res.ProgressPct = Round2(progress)
	res.TargetDate = targetDate
	res.Status = Classify(progress, rawDays)

	res.DaysRemaining = rawDays
	if res.DaysRemaining < 0 {
		res.DaysRemaining = 0
	}

	if required, ok := RequiredMonthlyContribution(short, float64(rawDays)/30.0); ok {
		r := Round2(required)
		res.RequiredMonthly = &r
	}

	if g.Type == domain.GoalInvestment {
		contributions := g.CurrentSavings + g.MonthlyContribution*float64(years*12)
		gains := projected - contributions
		tc := Round2(contributions)
		eg := Round2(gains)
		res.TotalContributions = &tc
		res.ExpectedGains = &eg
	}

	return res
}

// targetDateFor returns the conventional completion date for each goal
// type: June 1 for school-year aligned goals, December 31 for investments.
func targetDateFor(t domain.GoalType, year int) time.Time {
	if t == domain.GoalInvestment {
		return time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	}
	return time.Date(year, time.June, 1, 0, 0, 0, 0, time.UTC)
}
