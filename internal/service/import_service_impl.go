package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/cbridge/nestegg/internal/db"
	"github.com/cbridge/nestegg/internal/domain"
	"github.com/cbridge/nestegg/internal/repository"
	"github.com/google/uuid"
)

// goalImportFile is the on-disk schema for bulk goal import.
type goalImportFile struct {
	Goals []goalImportEntry `json:"goals"`
}

type goalImportEntry struct {
	Type                string  `json:"type"`
	Name                string  `json:"name"`
	TargetAmount        float64 `json:"target_amount"`
	CurrentSavings      float64 `json:"current_savings"`
	MonthlyContribution float64 `json:"monthly_contribution"`
	GrowthRate          float64 `json:"growth_rate"`
	TargetYear          int     `json:"target_year"`
	EndYear             *int    `json:"end_year,omitempty"`
	Notes               string  `json:"notes,omitempty"`
}

type importService struct {
	households repository.HouseholdRepo
	uow        db.UnitOfWork
	observer   UseCaseObserver
}

func NewImportService(households repository.HouseholdRepo, uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{
		households: households,
		uow:        uow,
		observer:   useCaseObserverOrNoop(observers),
	}
}

func (s *importService) ImportGoals(ctx context.Context, householdID, filePath string) (result *ImportResult, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "import-goals",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"household": householdID, "file": filePath},
		})
	}()

	if _, err = s.households.GetByID(ctx, householdID); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("reading import file: %w", err)
	}
	var file goalImportFile
	if err = json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	if len(file.Goals) == 0 {
		return nil, fmt.Errorf("import file contains no goals")
	}

	now := time.Now().UTC()
	goals := make([]*domain.Goal, 0, len(file.Goals))
	for i, entry := range file.Goals {
		g := &domain.Goal{
			ID:                  uuid.New().String(),
			HouseholdID:         householdID,
			Type:                domain.GoalType(entry.Type),
			Name:                entry.Name,
			TargetAmount:        entry.TargetAmount,
			CurrentSavings:      entry.CurrentSavings,
			MonthlyContribution: entry.MonthlyContribution,
			GrowthRate:          entry.GrowthRate,
			TargetYear:          entry.TargetYear,
			EndYear:             entry.EndYear,
			Notes:               entry.Notes,
			CreatedAt:           now,
			UpdatedAt:           now,
		}
		if g.GrowthRate == 0 {
			g.GrowthRate = defaultGrowthRate(g.Type)
		}
		if err = g.Validate(now.Year()); err != nil {
			return nil, fmt.Errorf("goal %d (%q): %w", i+1, entry.Name, err)
		}
		goals = append(goals, g)
	}

	// All-or-nothing: one bad row rolls back the whole batch.
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txGoals := repository.NewSQLiteGoalRepo(tx)
		txLog := repository.NewSQLiteTransactionLogRepo(tx)
		for _, g := range goals {
			if err := txGoals.Create(ctx, g); err != nil {
				return fmt.Errorf("creating goal %q: %w", g.Name, err)
			}
			entry := &domain.PlanTransaction{
				ID:          uuid.New().String(),
				HouseholdID: householdID,
				GoalType:    g.Type,
				GoalID:      g.ID,
				Action:      domain.ActionAdded,
				Amount:      g.TargetAmount,
				Description: fmt.Sprintf("Imported %s goal %q", g.Type, g.Name),
				OccurredAt:  now,
			}
			if err := txLog.Record(ctx, entry); err != nil {
				return fmt.Errorf("recording import of %q: %w", g.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ImportResult{HouseholdID: householdID, GoalCount: len(goals)}, nil
}
