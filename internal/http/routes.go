package http

import (
	"context"

	"site_grader/internal/adaptors"
	"site_grader/internal/application/config"
	"site_grader/internal/http/handlers"
	"site_grader/internal/http/middleware"
	"site_grader/internal/service"
)

func initRoutes(_ context.Context, r *Router, appCfg *config.AppConfig) {
	r.httpRouter.Use(middleware.MetricsMiddleware)
	r.httpRouter.Use(middleware.RequestIDLoggerMiddleware(r.log))

	webClient := adaptors.NewWebClient(appCfg.FetchTimeout, appCfg.UserAgent, r.log)
	grader := service.NewGrader(r.log, webClient)

	// Routes
	r.httpRouter.Get("/ready", handlers.NewReadyHandler().Handle)
	r.httpRouter.Get("/api/health", handlers.NewHealthHandler().Handle)
	r.httpRouter.Post("/api/grade", handlers.NewGradeHandler(grader, r.log).Handle)
}
