package service

import (
	"context"
	"time"

	"github.com/cbridge/nestegg/internal/domain"
	"github.com/cbridge/nestegg/internal/projection"
	"github.com/cbridge/nestegg/internal/repository"
)

const recentActivityLimit = 5

// sectionOrder fixes the report's section ordering.
var sectionOrder = []domain.GoalType{
	domain.GoalEducation,
	domain.GoalMarriage,
	domain.GoalInvestment,
}

type reportService struct {
	goals      repository.GoalRepo
	households repository.HouseholdRepo
	translog   repository.TransactionLogRepo
	observer   UseCaseObserver
}

func NewReportService(
	goals repository.GoalRepo,
	households repository.HouseholdRepo,
	translog repository.TransactionLogRepo,
	observers ...UseCaseObserver,
) ReportService {
	return &reportService{
		goals:      goals,
		households: households,
		translog:   translog,
		observer:   useCaseObserverOrNoop(observers),
	}
}

func (s *reportService) HouseholdReport(ctx context.Context, householdID string) (report *HouseholdReport, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "household-report",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"household": householdID},
		})
	}()

	household, err := s.households.GetByID(ctx, householdID)
	if err != nil {
		return nil, err
	}
	goals, err := s.goals.ListByHousehold(ctx, householdID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	report = &HouseholdReport{
		Household:       household,
		GeneratedAt:     now,
		StatusCounts:    make(map[domain.GoalStatus]int),
		SavingsCapacity: household.SavingsCapacity(),
	}

	byType := make(map[domain.GoalType][]GoalReport)
	for _, g := range goals {
		gr := GoalReport{Goal: g, Projection: projection.Project(g, now)}
		byType[g.Type] = append(byType[g.Type], gr)
		report.StatusCounts[gr.Projection.Status]++
	}

	var typeMeansSum float64
	var typesWithGoals int
	for _, t := range sectionOrder {
		reports, ok := byType[t]
		if !ok {
			continue
		}
		section := buildSection(t, reports)
		report.Sections = append(report.Sections, section)
		report.TotalPortfolioValue += section.TotalCurrentSavings
		report.TotalMonthlyContribution += section.TotalMonthlyContribution
		typeMeansSum += section.MeanProgressPct
		typesWithGoals++
	}
	if typesWithGoals > 0 {
		report.OverallProgressPct = projection.Round2(typeMeansSum / float64(typesWithGoals))
	}

	report.RecentActivity, err = s.translog.ListRecent(ctx, householdID, recentActivityLimit)
	if err != nil {
		return nil, err
	}
	return report, nil
}

// buildSection totals one goal type. Unprojectable goals stay visible in
// the section but contribute nothing to the figures.
func buildSection(t domain.GoalType, reports []GoalReport) TypeSection {
	section := TypeSection{Type: t, Goals: reports}

	var progressSum float64
	var counted int
	for _, gr := range reports {
		if gr.Projection.Status == domain.StatusUnknown {
			continue
		}
		section.TotalCurrentSavings += gr.Goal.CurrentSavings
		section.TotalProjectedValue += gr.Projection.ProjectedValue
		section.TotalMonthlyContribution += gr.Goal.MonthlyContribution
		progressSum += gr.Projection.ProgressPct
		counted++
	}
	if counted > 0 {
		section.MeanProgressPct = projection.Round2(progressSum / float64(counted))
	}
	return section
}
