package models

import (
	"strings"
	"time"
)

// Status labels as stored and rendered by the panel.
const (
	StatusActive = "Ativo"
	StatusTrial  = "Teste Grátis"
)

// Program track options for a profile. Despite the field name this selects
// the training track, not a biographical attribute.
const (
	GenderMasculino     = "masculino"
	GenderFeminino      = "feminino"
	GenderPersonalizado = "personalizado"
)

// StudentProfile is the canonical record of a managed end user. The ID and
// CreatedAt fields are set once at signup and never rewritten.
type StudentProfile struct {
	UserID    string    `json:"id"`
	FullName  string    `json:"full_name"`
	Username  string    `json:"username"`
	Phone     *string   `json:"phone"`
	Gender    string    `json:"gender"`
	Status    string    `json:"status"`
	TrialDays *string   `json:"trial_days"`
	Coupon    *string   `json:"coupon"`
	PlanID    *string   `json:"plan_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsTrialLike reports whether the stored status counts as a trial state for
// filtering. Legacy rows carry suffixed variants ("Teste Grátis - 3"), so
// this matches on the "Teste" marker rather than exact equality.
func (p StudentProfile) IsTrialLike() bool {
	return strings.Contains(p.Status, "Teste")
}

// BadgeStatus returns the label the panel renders for the profile. Anything
// other than the exact trial label falls back to the active badge.
func (p StudentProfile) BadgeStatus() string {
	if p.Status == StatusTrial {
		return StatusTrial
	}
	return StatusActive
}
