package entities

import "time"

// DailyReport is one user's status report for one calendar date. The store
// enforces at most one row per (user_id, report_date).
type DailyReport struct {
	ID            int64     `db:"id" json:"id"`
	UserID        string    `db:"user_id" json:"user_id"`
	ReportDate    string    `db:"report_date" json:"report_date"` // YYYY-MM-DD
	Content       string    `db:"content" json:"content"`
	SubmittedAt   time.Time `db:"submitted_at" json:"submitted_at"`
	LastUpdatedAt time.Time `db:"last_updated_at" json:"last_updated_at"`
}
