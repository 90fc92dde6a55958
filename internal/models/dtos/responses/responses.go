package responses

import (
	"team-analysis/standup/internal/models/entities"
	"team-analysis/standup/internal/services"
)

type SubmitReportRes struct {
	Created    bool   `json:"created"`
	ReportDate string `json:"report_date"`
	Message    string `json:"message"`
}

type ReportsRes struct {
	UserID  string                 `json:"user_id"`
	Reports []entities.DailyReport `json:"reports"`
}

type AllReportsRes struct {
	StartDate string                            `json:"start_date,omitempty"`
	EndDate   string                            `json:"end_date,omitempty"`
	Reports   map[string][]entities.DailyReport `json:"reports"`
}

type MissingReportersRes struct {
	CheckDate string          `json:"check_date"`
	Missing   []entities.User `json:"missing"`
}

type MissingDatesRes struct {
	UserID       string   `json:"user_id"`
	LookbackDays int      `json:"lookback_days"`
	MissingDates []string `json:"missing_dates"`
}

type TeamMissingRes struct {
	LookbackDays int                         `json:"lookback_days"`
	Users        []services.UserMissingDates `json:"users"`
}

type IgnoredDatesRes struct {
	Ranges []entities.IgnoredDateRange `json:"ranges"`
}

type ReplaceIgnoredDatesRes struct {
	Inserted int `json:"inserted"`
}

type TestDateRes struct {
	Date    string `json:"date"`
	Ignored bool   `json:"ignored"`
}

type ClearAllRes struct {
	Removed int64 `json:"removed"`
}

type UsersRes struct {
	Users []entities.User `json:"users"`
}

type RegisterUserRes struct {
	Created bool          `json:"created"`
	User    entities.User `json:"user"`
}

type ToggleFeatureRes struct {
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}
