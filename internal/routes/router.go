package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"team-analysis/standup/internal/api"
	"team-analysis/standup/internal/config"
	"team-analysis/standup/internal/db"
	"team-analysis/standup/internal/logging"
	"team-analysis/standup/internal/metrics"
	"team-analysis/standup/internal/middleware"
	"team-analysis/standup/internal/workers"
)

func RegisterRoutes(cfg *config.Config, upSince time.Time) http.Handler {

	r := chi.NewRouter()

	metricsReg := metrics.NewMetricsRegistry()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:8081"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-API-Key", "X-User-Id", "X-Role-Ids"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	logging.Info("Router initialized with metrics and logging middleware")

	// health check
	r.Get("/healthCheck", api.HealthCheckHandler(db.DB, upSince))

	deps, err := api.InitDependencies(cfg, metricsReg)
	if err != nil {
		panic("Failed to initialize dependencies: " + err.Error())
	}

	hour, minute, err := cfg.ReminderClock()
	if err != nil {
		logging.Warn("Invalid DAILY_REMINDER_TIME, using 10:00", "value", cfg.DailyReminderTime)
		hour, minute = 10, 0
	}

	workersContainer := workers.InitWorkers(context.Background(), deps.Services.Reminders, hour, minute)

	jobsHandler := api.NewJobsHandler(workersContainer.Reminder)

	RegisterAPIRoutes(r, cfg, metricsReg, deps, jobsHandler)

	return r
}
