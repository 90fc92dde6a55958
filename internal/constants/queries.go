package constants

const (
	GetUserByID = `
	SELECT * FROM users WHERE user_id = ?
	`

	GetUsersByRole = `
	SELECT * FROM users WHERE role = ? ORDER BY registered_at, id
	`

	GetDailyReport = `
	SELECT * FROM daily_updates WHERE user_id = ? AND report_date = ?
	`

	InsertDailyReport = `
	INSERT INTO daily_updates (user_id, report_date, content, submitted_at, last_updated_at)
	VALUES (?, ?, ?, ?, ?)
	`

	UpdateDailyReport = `
	UPDATE daily_updates SET content = ?, last_updated_at = ? WHERE id = ?
	`

	CountDailyReports = `
	SELECT COUNT(*) FROM daily_updates
	`

	DeleteAllDailyReports = `
	DELETE FROM daily_updates
	`

	GetIgnoredDates = `
	SELECT * FROM ignored_dates ORDER BY start_date
	`

	InsertIgnoredDate = `
	INSERT INTO ignored_dates (start_date, end_date, created_at, created_by)
	VALUES (?, ?, ?, ?)
	`

	DeleteIgnoredDate = `
	DELETE FROM ignored_dates WHERE id = ?
	`

	DeleteAllIgnoredDates = `
	DELETE FROM ignored_dates
	`

	GetFeatureToggle = `
	SELECT enabled FROM feature_toggles WHERE name = ?
	`

	UpsertFeatureToggle = `
	INSERT INTO feature_toggles (name, enabled) VALUES (?, ?)
	ON CONFLICT(name) DO UPDATE SET enabled = excluded.enabled
	`
)
