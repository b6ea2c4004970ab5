package projection

import "github.com/cbridge/nestegg/internal/domain"

// Classify maps a goal's progress and remaining horizon to a status.
// Rules are evaluated in order; the first match wins. daysRemaining may be
// negative for overdue goals.
//
// timeProgress measures elapsed share of a nominal one-year horizon, not
// time since the goal was created, so goals more than a year out always
// classify AHEAD.
func Classify(progressPct float64, daysRemaining int) domain.GoalStatus {
	if progressPct >= 100 {
		return domain.StatusCompleted
	}
	if daysRemaining <= 0 {
		return domain.StatusOverdue
	}

	timeProgress := 100 - float64(daysRemaining)/365.0*100
	if timeProgress < 0 {
		timeProgress = 0
	}

	switch {
	case progressPct >= timeProgress*1.1:
		return domain.StatusAhead
	case progressPct >= timeProgress*0.9:
		return domain.StatusOnTrack
	default:
		return domain.StatusBehind
	}
}
