package bootstrap

import (
	"context"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	httpapi "github.com/GoSim-25-26J-441/it-inventory/internal/api/http"
	"github.com/GoSim-25-26J-441/it-inventory/internal/api/http/middleware"
	authhttp "github.com/GoSim-25-26J-441/it-inventory/internal/auth/http"
	"github.com/GoSim-25-26J-441/it-inventory/internal/inventory/diagram"
	invhttp "github.com/GoSim-25-26J-441/it-inventory/internal/inventory/http"
	"github.com/GoSim-25-26J-441/it-inventory/internal/inventory/service"
	"github.com/GoSim-25-26J-441/it-inventory/internal/inventory/store"
)

type RouterDeps struct {
	ServiceName   string
	Version       string
	CORSOrigins   []string
	Log           *logrus.Logger
	Stores        *store.Registry
	Projects      *service.ProjectService
	Diagrams      *diagram.Intake
	Auth          AuthDeps
	RateLimiter   *middleware.RateLimiter
	Redis         *redis.Client
	Gatherer      prometheus.Gatherer
	DropOnSignOut bool
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware(dep.Log))

	if len(dep.CORSOrigins) > 0 {
		cc := cors.DefaultConfig()
		cc.AllowOrigins = dep.CORSOrigins
		cc.AllowHeaders = append(cc.AllowHeaders, "Authorization", "X-Request-Id", "X-User-Id")
		cc.ExposeHeaders = []string{"X-Request-Id"}
		r.Use(cors.New(cc))
	}

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Stores, dep.Redis)
	healthHandler.RegisterRoutes(r)

	if dep.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(dep.Gatherer, promhttp.HandlerOpts{})))
	}

	api := r.Group("/api/v1")

	var onSignOut func(ctx context.Context, uid string)
	if dep.DropOnSignOut {
		onSignOut = dep.Projects.Forget
	}
	authGroup := api.Group("/auth")
	authGroup.Use(dep.Auth.Optional)
	authhttp.New(dep.Auth.Revoker, dep.Auth.Cache, dep.Auth.LoginURL, dep.Log, onSignOut).Register(authGroup)

	inv := api.Group("")
	inv.Use(dep.Auth.Required)
	if dep.RateLimiter != nil {
		inv.Use(dep.RateLimiter.Middleware())
	}
	invhttp.New(dep.Projects, dep.Diagrams).Register(inv)

	return r
}
