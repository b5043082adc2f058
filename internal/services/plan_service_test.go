package services

import (
	"context"
	"errors"
	"testing"

	"github.com/thiagosrodrigues99/torapp-sub001/internal/models"
	"go.uber.org/zap"
)

type stubPlanStore struct {
	plans []models.WorkoutPlan
	err   error
}

func (s *stubPlanStore) List(_ context.Context) ([]models.WorkoutPlan, error) {
	return s.plans, s.err
}

func TestPlanListPassesCatalogThrough(t *testing.T) {
	catalog := []models.WorkoutPlan{
		{ID: "p1", Name: "Emagrecimento Iniciante", Category: "Emagrecimento"},
		{ID: "p2", Name: "Hipertrofia Masculina", Category: "Hipertrofia"},
	}
	service := NewPlanService(&stubPlanStore{plans: catalog}, zap.NewNop())

	plans := service.List(context.Background())
	if len(plans) != 2 || plans[0].ID != "p1" {
		t.Fatalf("expected catalog passthrough, got %+v", plans)
	}
}

func TestPlanListDegradesToEmptyOnFailure(t *testing.T) {
	service := NewPlanService(&stubPlanStore{err: errors.New("connection refused")}, zap.NewNop())

	plans := service.List(context.Background())
	if plans == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(plans) != 0 {
		t.Fatalf("expected empty catalog on failure, got %+v", plans)
	}
}
