package routes

import (
	"github.com/go-chi/chi/v5"

	"team-analysis/standup/internal/api"
	"team-analysis/standup/internal/config"
	"team-analysis/standup/internal/metrics"
	"team-analysis/standup/internal/middleware"
)

// RegisterAPIRoutes registers all API v1 routes and handlers. Every route
// requires gateway or token authentication; the admin and escalation groups
// add their capability guards on top.
func RegisterAPIRoutes(r chi.Router, cfg *config.Config, metricsReg *metrics.MetricsRegistry, deps *api.Dependencies, jobsHandler *api.JobsHandler) {

	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(middleware.MetricsMiddleware(metricsReg))
		v1.Use(middleware.RateLimitMiddleware)
		v1.Use(middleware.AuthMiddleware(cfg))

		// Any authenticated user
		v1.Post("/daily", api.SubmitReportHandler(deps.Services.Reports, deps.Services.Features))
		v1.Get("/daily", api.ListOwnReportsHandler(deps.Services.Reports))
		v1.Get("/daily/missing", api.MissingReportersHandler(deps.Services.Compliance))
		v1.Get("/ignored-dates", api.ListIgnoredDatesHandler(deps.Services.IgnoredDates))
		v1.Get("/users", api.ListUsersHandler(deps.Repo.UserGorm))
		v1.Put("/users/nickname", api.SetNicknameHandler(deps.Repo.UserGorm, deps.Authorizer))

		// Admins and product owners
		v1.Group(func(escalation chi.Router) {
			escalation.Use(middleware.CanEscalateMiddleware(deps.Authorizer))

			escalation.Post("/daily/escalate", api.EscalateHandler(deps.Services.Reminders))
			escalation.Get("/daily/missing/team", api.TeamMissingHandler(deps.Services.Compliance))
			escalation.Get("/daily/missing/{user_id}", api.UserMissingDatesHandler(deps.Services.Compliance))
			escalation.Get("/daily/all", api.ListAllReportsHandler(deps.Services.Reports))
		})

		// Admin only
		v1.Group(func(admin chi.Router) {
			admin.Use(middleware.IsAdminMiddleware(deps.Authorizer))

			admin.Delete("/daily/all", api.ClearAllReportsHandler(deps.Services.Reports))

			admin.Put("/ignored-dates", api.ReplaceIgnoredDatesHandler(deps.Services.IgnoredDates))
			admin.Delete("/ignored-dates/{id}", api.RemoveIgnoredDateHandler(deps.Services.IgnoredDates))
			admin.Get("/ignored-dates/test", api.TestDateHandler(deps.Services.IgnoredDates))

			admin.Post("/users", api.RegisterUserHandler(deps.Repo.UserGorm, deps.Repo.User))
			admin.Delete("/users/{user_id}", api.RemoveUserHandler(deps.Repo.UserGorm))

			admin.Post("/features/toggle", api.ToggleFeatureHandler(deps.Services.Features))

			admin.Post("/admin/jobs/reminder", jobsHandler.TriggerReminderCycle())
		})
	})
}
