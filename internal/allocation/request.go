package allocation

import (
	"time"

	"github.com/cbridge/nestegg/internal/domain"
	"github.com/cbridge/nestegg/internal/optimizer"
)

const (
	// fallbackMonthsLeft covers goals whose target year has passed.
	fallbackMonthsLeft = 12

	// defaultMonthsLeft covers goals with no target year at all.
	defaultMonthsLeft = 60
)

// BuildRequest assembles the optimizer request from a household's goals.
// Only education and marriage goals are sent; investment goals are not
// optimized externally and keep their contribution unless the fallback
// covers them.
func BuildRequest(goals []*domain.Goal, capacity float64, now time.Time) optimizer.Request {
	req := optimizer.Request{
		TotalMonthlySavings: capacity,
		EducationPlans:      []optimizer.EducationPlan{},
		MarriagePlans:       []optimizer.MarriagePlan{},
	}

	for _, g := range goals {
		switch g.Type {
		case domain.GoalEducation:
			endYear := g.TargetYear
			if g.EndYear != nil {
				endYear = *g.EndYear
			}
			req.EducationPlans = append(req.EducationPlans, optimizer.EducationPlan{
				ID:                 g.ID,
				EstimatedTotalCost: g.TargetAmount,
				CurrentSavings:     g.CurrentSavings,
				EstimatedStartYear: g.TargetYear,
				EstimatedEndYear:   endYear,
				InflationRate:      g.GrowthRate,
				MonthsLeft:         monthsLeft(g.TargetYear, now),
			})
		case domain.GoalMarriage:
			req.MarriagePlans = append(req.MarriagePlans, optimizer.MarriagePlan{
				ID:                 g.ID,
				EstimatedTotalCost: g.TargetAmount,
				CurrentSavings:     g.CurrentSavings,
				EstimatedYear:      g.TargetYear,
				InflationRate:      g.GrowthRate,
				MonthsLeft:         monthsLeft(g.TargetYear, now),
			})
		}
	}
	return req
}

// monthsLeft converts a target year to a month horizon. Past years map to
// a one-year runway rather than zero so the optimizer never divides by a
// dead horizon; a missing year maps to five years.
func monthsLeft(targetYear int, now time.Time) int {
	if targetYear == 0 {
		return defaultMonthsLeft
	}
	months := (targetYear - now.Year()) * 12
	if months <= 0 {
		return fallbackMonthsLeft
	}
	return months
}
