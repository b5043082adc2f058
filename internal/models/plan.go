package models

// WorkoutPlan is a read-only catalog entry used to populate the
// plan-assignment picker.
type WorkoutPlan struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}
