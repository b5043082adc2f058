package repository

import (
	"context"

	"github.com/thiagosrodrigues99/torapp-sub001/internal/models"
)

type PlanRepository struct {
	db DBTX
}

func NewPlanRepository(db DBTX) *PlanRepository {
	return &PlanRepository{db: db}
}

// List returns the full plan catalog grouped for the picker: category
// ascending, then name.
func (r *PlanRepository) List(ctx context.Context) ([]models.WorkoutPlan, error) {
	query := `
		SELECT id, name, category
		FROM workout_plans
		ORDER BY category ASC, name ASC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plans := make([]models.WorkoutPlan, 0)
	for rows.Next() {
		var plan models.WorkoutPlan
		if err := rows.Scan(&plan.ID, &plan.Name, &plan.Category); err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	return plans, rows.Err()
}
