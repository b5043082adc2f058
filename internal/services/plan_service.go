package services

import (
	"context"

	"github.com/thiagosrodrigues99/torapp-sub001/internal/metrics"
	"github.com/thiagosrodrigues99/torapp-sub001/internal/models"
	"go.uber.org/zap"
)

type planStore interface {
	List(ctx context.Context) ([]models.WorkoutPlan, error)
}

// PlanService exposes the read-only plan catalog backing the
// plan-assignment picker.
type PlanService struct {
	plans  planStore
	logger *zap.Logger
}

func NewPlanService(plans planStore, logger *zap.Logger) *PlanService {
	return &PlanService{plans: plans, logger: logger}
}

// List returns the catalog ordered by category. A fetch failure degrades to
// an empty catalog instead of blocking the edit view; the picker simply
// offers no choices.
func (s *PlanService) List(ctx context.Context) []models.WorkoutPlan {
	plans, err := s.plans.List(ctx)
	if err != nil {
		metrics.PlanCatalogFailures.Inc()
		s.logger.Warn("plan catalog fetch failed, serving empty catalog", zap.Error(err))
		return []models.WorkoutPlan{}
	}
	return plans
}
