package api

import (
	"team-analysis/standup/internal/auth"
	"team-analysis/standup/internal/common"
	"team-analysis/standup/internal/config"
	"team-analysis/standup/internal/db"
	"team-analysis/standup/internal/db/repositories"
	"team-analysis/standup/internal/metrics"
	"team-analysis/standup/internal/notify"
	"team-analysis/standup/internal/services"
)

type Repositories struct {
	User     *repositories.UserRepository
	UserGorm *repositories.UserRepositoryGORM
	Reports  *repositories.ReportRepository
	Ignored  *repositories.IgnoredDatesRepository
}

type Services struct {
	Cache        common.CacheInterface
	Features     *services.FeatureService
	Reports      *services.ReportService
	Compliance   *services.ComplianceService
	IgnoredDates *services.IgnoredDatesService
	Reminders    *services.ReminderService
}

type Dependencies struct {
	Repo       *Repositories
	Services   *Services
	Authorizer *auth.Authorizer
}

func InitDependencies(cfg *config.Config, metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {
	repos := &Repositories{
		User:     repositories.NewUserRepository(db.DB),
		UserGorm: repositories.NewUserRepositoryGORM(db.ORM),
		Reports:  repositories.NewReportRepository(db.DB),
		Ignored:  repositories.NewIgnoredDatesRepository(db.DB),
	}

	cacheSvc := common.NewCache(cfg.RedisHost)

	complianceSvc := services.NewComplianceService(repos.User, repos.Reports, repos.Ignored)
	featureSvc := services.NewFeatureService(db.DB, cacheSvc)

	notifier := notify.NewWebhookNotifier(cfg.GatewayWebhookURL, cfg.GatewayAPIKey)
	dispatcher := notify.NewDispatcher(notifier, metricsReg)

	svcs := &Services{
		Cache:        cacheSvc,
		Features:     featureSvc,
		Reports:      services.NewReportService(repos.Reports, repos.User, metricsReg),
		Compliance:   complianceSvc,
		IgnoredDates: services.NewIgnoredDatesService(repos.Ignored, metricsReg),
		Reminders: services.NewReminderService(
			complianceSvc, featureSvc, repos.Ignored, dispatcher, metricsReg, cfg.DailyChannelID),
	}

	return &Dependencies{
		Repo:       repos,
		Services:   svcs,
		Authorizer: auth.NewAuthorizer(cfg.AdminRoleID, repos.User),
	}, nil
}
