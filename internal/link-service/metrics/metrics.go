package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "link_checker"

const (
	TierUnchecked      = "unchecked"
	TierStale          = "stale"
	TierExpiredPending = "expired_pending"
)

// Metrics are the link checker's prometheus collectors.
type Metrics struct {
	ResourcesSelected *prometheus.CounterVec
	ResultsRecorded   *prometheus.CounterVec
	TasksPublished    *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ResourcesSelected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "resources_selected_total",
				Help:      "Resources handed out for checking, by scheduler tier",
			},
			[]string{"tier"},
		),
		ResultsRecorded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "results_recorded_total",
				Help:      "Link check results stored, by outcome",
			},
			[]string{"alive"},
		),
		TasksPublished: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "tasks_published_total",
				Help:      "Check tasks published to kafka by the dispatcher, by status",
			},
			[]string{"status"},
		),
	}
	reg.MustRegister(m.ResourcesSelected, m.ResultsRecorded, m.TasksPublished)
	return m
}
