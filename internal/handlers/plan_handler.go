package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/thiagosrodrigues99/torapp-sub001/internal/models"
)

type planCatalog interface {
	List(ctx context.Context) []models.WorkoutPlan
}

type PlanHandler struct {
	plans planCatalog
}

func NewPlanHandler(plans planCatalog) *PlanHandler {
	return &PlanHandler{plans: plans}
}

// ListPlans feeds the plan-assignment picker. The catalog service already
// degrades fetch failures to an empty list, so this never errors.
func (h *PlanHandler) ListPlans(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"plans": h.plans.List(c.Context())})
}
