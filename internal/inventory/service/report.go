package service

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/GoSim-25-26J-441/it-inventory/internal/inventory/domain"
	"github.com/GoSim-25-26J-441/it-inventory/internal/inventory/store"
)

// Reporter periodically logs registry-wide totals and refreshes the gauges.
type Reporter struct {
	stores  *store.Registry
	log     *logrus.Logger
	metrics *Metrics
	cron    *cron.Cron
}

func NewReporter(stores *store.Registry, log *logrus.Logger, metrics *Metrics) *Reporter {
	return &Reporter{
		stores:  stores,
		log:     log,
		metrics: metrics,
		cron:    cron.New(cron.WithSeconds()),
	}
}

// Start schedules the report using the six-field (with seconds) cron format.
func (r *Reporter) Start(schedule string) error {
	if _, err := r.cron.AddFunc(schedule, func() { r.Run() }); err != nil {
		return fmt.Errorf("schedule inventory report %q: %w", schedule, err)
	}
	r.cron.Start()
	r.log.WithField("schedule", schedule).Info("inventory report scheduler started")
	return nil
}

// Stop waits for a running report to finish.
func (r *Reporter) Stop() {
	<-r.cron.Stop().Done()
}

// Run takes one snapshot of the registry.
func (r *Reporter) Run() (owners int, stats domain.Stats) {
	owners, stats = r.stores.Totals()

	if r.metrics != nil {
		r.metrics.Owners.Set(float64(owners))
		r.metrics.Projects.Set(float64(stats.Total))
		r.metrics.ByType.WithLabelValues(domain.TypeWeb).Set(float64(stats.Web))
		r.metrics.ByType.WithLabelValues(domain.TypeDesktop).Set(float64(stats.Desktop))
		r.metrics.ByType.WithLabelValues(domain.TypeLegacy).Set(float64(stats.Legacy))
		r.metrics.ByType.WithLabelValues("other").Set(float64(stats.Other))
	}

	r.log.WithFields(logrus.Fields{
		"owners":   owners,
		"projects": stats.Total,
		"web":      stats.Web,
		"desktop":  stats.Desktop,
		"legacy":   stats.Legacy,
		"other":    stats.Other,
	}).Info("inventory report")
	return owners, stats
}
