package service

import (
	"context"
	"time"

	"github.com/cbridge/nestegg/internal/domain"
	"github.com/cbridge/nestegg/internal/repository"
	"github.com/google/uuid"
)

type householdService struct {
	households repository.HouseholdRepo
	translog   repository.TransactionLogRepo
}

func NewHouseholdService(households repository.HouseholdRepo, translog repository.TransactionLogRepo) HouseholdService {
	return &householdService{households: households, translog: translog}
}

func (s *householdService) Set(ctx context.Context, h *domain.HouseholdProfile) error {
	if err := h.Validate(); err != nil {
		return err
	}
	if h.ID == "" {
		h.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if h.CreatedAt.IsZero() {
		h.CreatedAt = now
	}
	h.UpdatedAt = now
	return s.households.Upsert(ctx, h)
}

func (s *householdService) GetByID(ctx context.Context, id string) (*domain.HouseholdProfile, error) {
	return s.households.GetByID(ctx, id)
}

func (s *householdService) GetByName(ctx context.Context, name string) (*domain.HouseholdProfile, error) {
	return s.households.GetByName(ctx, name)
}

func (s *householdService) List(ctx context.Context) ([]*domain.HouseholdProfile, error) {
	return s.households.List(ctx)
}

func (s *householdService) RecentActivity(ctx context.Context, householdID string, limit int) ([]*domain.PlanTransaction, error) {
	// Existence check so an unknown household reads as not-found rather
	// than an empty log.
	if _, err := s.households.GetByID(ctx, householdID); err != nil {
		return nil, err
	}
	return s.translog.ListRecent(ctx, householdID, limit)
}
