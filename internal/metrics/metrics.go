package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	StudentsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "students_created_total",
			Help: "Student accounts created through the panel",
		},
	)
	StudentUpdates = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "student_updates_total",
			Help: "Successful student profile edits",
		},
	)
	PlanCatalogFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "plan_catalog_failures_total",
			Help: "Plan catalog fetches degraded to an empty list",
		},
	)
)

// Handler serves the /metrics endpoint.
var Handler = promhttp.Handler

func Init() {
	prometheus.MustRegister(StudentsCreated)
	prometheus.MustRegister(StudentUpdates)
	prometheus.MustRegister(PlanCatalogFailures)
}
