package server

import (
	"net/http"

	"github.com/shashiranjanraj/opsdash/app/routes"
	"github.com/shashiranjanraj/opsdash/config"
	"github.com/shashiranjanraj/opsdash/pkg/cache"
	"github.com/shashiranjanraj/opsdash/pkg/database"
	"github.com/shashiranjanraj/opsdash/pkg/logger"
	"github.com/shashiranjanraj/opsdash/pkg/metrics"
	"github.com/shashiranjanraj/opsdash/pkg/middleware"
	"github.com/shashiranjanraj/opsdash/pkg/reqid"
	"github.com/shashiranjanraj/opsdash/pkg/router"
)

// NewRouter builds the fully wired HTTP router (middleware chain plus all
// dashboard routes). Split from Start so tests can serve it directly.
func NewRouter() *router.Router {
	r := router.New()

	r.Use(metrics.Middleware())
	r.Use(reqid.Middleware())
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))

	routes.RegisterAPI(r)
	return r
}

// Start boots config, database and cache, then serves HTTP until the process
// exits.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	if err := database.Connect(); err != nil {
		return err
	}

	// Cache is optional: without Redis the dashboard recomputes every time.
	if err := cache.Connect(); err != nil {
		logger.Warn("cache unavailable, stats will not be cached", "error", err.Error())
	}

	addr := ":" + config.AppPort()
	logger.Info("opsdash listening", "addr", addr, "env", config.AppEnv())
	return http.ListenAndServe(addr, NewRouter().Handler())
}
