package handlers

import (
	"strconv"
	"strings"

	"github.com/thiagosrodrigues99/torapp-sub001/internal/models"
	"github.com/thiagosrodrigues99/torapp-sub001/internal/services"
)

var allowedGenders = map[string]struct{}{
	models.GenderMasculino:     {},
	models.GenderFeminino:      {},
	models.GenderPersonalizado: {},
}

var allowedStatuses = map[string]struct{}{
	models.StatusActive: {},
	models.StatusTrial:  {},
}

// validateStudentForm checks the closed-set fields shared by the create and
// edit forms. Empty values are allowed; the lifecycle service applies the
// defaults.
func validateStudentForm(gender, status, trialDays string) string {
	if gender != "" {
		if _, ok := allowedGenders[strings.TrimSpace(gender)]; !ok {
			return "gender must be one of: masculino, feminino, personalizado"
		}
	}
	if status != "" {
		if _, ok := allowedStatuses[status]; !ok {
			return "status must be one of: Ativo, Teste Grátis"
		}
	}
	if trimmed := strings.TrimSpace(trialDays); trimmed != "" {
		if days, err := strconv.Atoi(trimmed); err != nil || days < 0 {
			return "trial_days must be a non-negative number"
		}
	}
	return ""
}

func validateStatusFilter(statusFilter string) string {
	switch statusFilter {
	case "", services.StatusFilterAll, services.StatusFilterActive, services.StatusFilterTrial:
		return ""
	}
	return "status must be one of: all, active, trial"
}
