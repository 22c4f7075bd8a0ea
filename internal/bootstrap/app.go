package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/GoSim-25-26J-441/it-inventory/config"
	"github.com/GoSim-25-26J-441/it-inventory/internal/api/http/middleware"
	"github.com/GoSim-25-26J-441/it-inventory/internal/inventory/diagram"
	"github.com/GoSim-25-26J-441/it-inventory/internal/inventory/seed"
	"github.com/GoSim-25-26J-441/it-inventory/internal/inventory/service"
	"github.com/GoSim-25-26J-441/it-inventory/internal/inventory/store"
)

// App is the assembled server: router plus the background jobs it owns.
type App struct {
	Deps     RouterDeps
	Reporter *service.Reporter
	redis    *redis.Client
	stop     []func()
}

// NewApp builds every component from cfg. Callers must Close the result.
func NewApp(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*App, error) {
	drafts, err := seed.LoadFile(cfg.Inventory.SeedFile)
	if err != nil {
		return nil, err
	}
	if len(drafts) > 0 {
		log.WithField("projects", len(drafts)).Info("loaded seed fixture")
	}

	rdb, err := OpenRedis(ctx, RedisOptions{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return nil, err
	}

	a := &App{redis: rdb}

	authDeps, err := BuildAuth(ctx, cfg.Auth, rdb, log)
	if err != nil {
		a.Close()
		return nil, err
	}

	promReg := prometheus.NewRegistry()
	promReg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := service.NewMetrics(promReg)

	stores := store.NewRegistry(drafts)

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.RPS > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	a.Deps = RouterDeps{
		ServiceName:   cfg.App.ServiceName,
		Version:       cfg.App.Version,
		CORSOrigins:   cfg.Server.CORSOrigins,
		Log:           log,
		Stores:        stores,
		Projects:      service.NewProjectService(stores, log, metrics),
		Diagrams:      diagram.NewIntake(cfg.Inventory.DiagramMaxBytes),
		Auth:          authDeps,
		RateLimiter:   limiter,
		Redis:         rdb,
		Gatherer:      promReg,
		DropOnSignOut: cfg.Auth.DropOnSignOut,
	}

	a.Reporter = service.NewReporter(stores, log, metrics)
	if cfg.Inventory.ReportSchedule != "" {
		if err := a.Reporter.Start(cfg.Inventory.ReportSchedule); err != nil {
			a.Close()
			return nil, fmt.Errorf("report: %w", err)
		}
		a.stop = append(a.stop, a.Reporter.Stop)
	}

	if limiter != nil {
		a.stop = append(a.stop, sweepEvery(limiter, 10*time.Minute))
	}

	return a, nil
}

func sweepEvery(rl *middleware.RateLimiter, every time.Duration) func() {
	done := make(chan struct{})
	go func() {
		t := time.NewTicker(every)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				rl.Sweep(every)
			case <-done:
				return
			}
		}
	}()
	return func() { close(done) }
}

// Close stops background jobs and releases connections.
func (a *App) Close() {
	for _, stop := range a.stop {
		stop()
	}
	a.stop = nil
	if a.redis != nil {
		a.redis.Close()
		a.redis = nil
	}
}
