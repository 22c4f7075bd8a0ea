package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for inventory operations
type Metrics struct {
	Operations *prometheus.CounterVec
	Projects   prometheus.Gauge
	Owners     prometheus.Gauge
	ByType     *prometheus.GaugeVec
}

// NewMetrics registers the inventory metrics on reg.
// Pass prometheus.NewRegistry() in tests to avoid duplicate registration.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Operations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "inventory_operations_total",
			Help: "Total number of project store operations by operation and outcome",
		}, []string{"operation", "outcome"}),

		Projects: f.NewGauge(prometheus.GaugeOpts{
			Name: "inventory_projects",
			Help: "Projects held across all in-memory stores (refreshed by the report job)",
		}),

		Owners: f.NewGauge(prometheus.GaugeOpts{
			Name: "inventory_owners",
			Help: "Users with an in-memory store",
		}),

		ByType: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "inventory_projects_by_type",
			Help: "Projects across all stores by development type",
		}, []string{"type"}),
	}
}

func (m *Metrics) record(operation, outcome string) {
	if m == nil {
		return
	}
	m.Operations.WithLabelValues(operation, outcome).Inc()
}
