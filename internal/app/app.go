// Package app wires the HTTP surface of the analyzer: router, middleware
// and handlers. The same validation pipeline that backs the CLI runs behind
// POST /api/v1/analyze; the web layer only adapts transport.
package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"markscli/internal/config"
	"markscli/internal/dataprocessing"
	apperrors "markscli/internal/errors"
)

// Application represents the web application container
type Application struct {
	Config   *config.Config
	Logger   *slog.Logger
	Router   *chi.Mux
	pipeline *dataprocessing.Pipeline
}

// NewApplication creates the application with its routes and middleware wired.
func NewApplication(cfg *config.Config, logger *slog.Logger) *Application {
	if logger == nil {
		logger = slog.Default()
	}

	app := &Application{
		Config: cfg,
		Logger: logger,
		pipeline: dataprocessing.NewPipeline(logger, dataprocessing.PipelineConfig{
			MinMark: cfg.Processing.MinMark,
			MaxMark: cfg.Processing.MaxMark,
			Workers: cfg.Processing.Workers,
		}),
	}
	app.Router = app.buildRouter()
	return app
}

// buildRouter assembles the chi router with the middleware stack.
func (a *Application) buildRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(apperrors.RequestLogger(a.Logger))
	r.Use(apperrors.RecoveryMiddleware(a.Logger))
	if a.Config.RateLimit.Enabled {
		r.Use(RateLimit(a.Config.RateLimit))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", a.handleHealth)
		r.Post("/analyze", a.handleAnalyze)
	})

	return r
}

// Server builds the http.Server for this application using the configured
// timeouts.
func (a *Application) Server() *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%d", a.Config.Server.Port),
		Handler:      a.Router,
		ReadTimeout:  a.Config.Server.ReadTimeout,
		WriteTimeout: a.Config.Server.WriteTimeout,
		IdleTimeout:  a.Config.Server.IdleTimeout,
	}
}
