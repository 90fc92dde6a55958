package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"team-analysis/standup/internal/constants"
	"team-analysis/standup/internal/models/entities"
)

type ReportRepository struct {
	db *sqlx.DB
}

func NewReportRepository(db *sqlx.DB) *ReportRepository {
	return &ReportRepository{db}
}

// Upsert inserts the report for (userID, reportDate) or, when a row already
// exists, overwrites its content and bumps last_updated_at while keeping the
// original submitted_at. Returns true when a new row was created.
func (r *ReportRepository) Upsert(ctx context.Context, userID, reportDate, content string, now time.Time) (bool, error) {
	var existing entities.DailyReport
	err := r.db.QueryRowxContext(ctx, constants.GetDailyReport, userID, reportDate).StructScan(&existing)

	switch {
	case err == nil:
		_, err = r.db.ExecContext(ctx, constants.UpdateDailyReport, content, now, existing.ID)
		return false, err

	case errors.Is(err, sql.ErrNoRows):
		_, err = r.db.ExecContext(ctx, constants.InsertDailyReport, userID, reportDate, content, now, now)
		return true, err

	default:
		return false, err
	}
}

// HasReport reports whether the user has a stored report for the date.
func (r *ReportRepository) HasReport(ctx context.Context, userID, reportDate string) (bool, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM daily_updates WHERE user_id = ? AND report_date = ?`,
		userID, reportDate)
	return count > 0, err
}

// ListForUser returns the user's reports, newest report_date first. Empty
// bounds are open.
func (r *ReportRepository) ListForUser(ctx context.Context, userID, startDate, endDate string) ([]entities.DailyReport, error) {
	query := `SELECT * FROM daily_updates WHERE user_id = ?`
	args := []interface{}{userID}

	if startDate != "" {
		query += ` AND report_date >= ?`
		args = append(args, startDate)
	}
	if endDate != "" {
		query += ` AND report_date <= ?`
		args = append(args, endDate)
	}
	query += ` ORDER BY report_date DESC`

	reports := []entities.DailyReport{}
	err := r.db.SelectContext(ctx, &reports, query, args...)
	return reports, err
}

// ListAll returns every report in the window grouped by user, each user's
// list newest first.
func (r *ReportRepository) ListAll(ctx context.Context, startDate, endDate string) (map[string][]entities.DailyReport, error) {
	query := `SELECT * FROM daily_updates`
	args := []interface{}{}
	var conds []string

	if startDate != "" {
		conds = append(conds, `report_date >= ?`)
		args = append(args, startDate)
	}
	if endDate != "" {
		conds = append(conds, `report_date <= ?`)
		args = append(args, endDate)
	}
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, ` AND `)
	}
	query += ` ORDER BY user_id, report_date DESC`

	var rows []entities.DailyReport
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	results := make(map[string][]entities.DailyReport)
	for _, row := range rows {
		results[row.UserID] = append(results[row.UserID], row)
	}
	return results, nil
}

// ReportersOn returns the distinct subset of userIDs that have a report for
// the date.
func (r *ReportRepository) ReportersOn(ctx context.Context, reportDate string, userIDs []string) (map[string]bool, error) {
	submitted := make(map[string]bool)
	if len(userIDs) == 0 {
		return submitted, nil
	}

	query, args, err := sqlx.In(
		`SELECT DISTINCT user_id FROM daily_updates WHERE report_date = ? AND user_id IN (?)`,
		reportDate, userIDs)
	if err != nil {
		return nil, err
	}

	var ids []string
	if err := r.db.SelectContext(ctx, &ids, r.db.Rebind(query), args...); err != nil {
		return nil, err
	}

	for _, id := range ids {
		submitted[id] = true
	}
	return submitted, nil
}

// ReportedDatesIn returns the set of (user_id, report_date) keys present in
// the window. Used by the compliance engine to audit a whole lookback window
// with a single query.
func (r *ReportRepository) ReportedDatesIn(ctx context.Context, startDate, endDate string) (map[string]map[string]bool, error) {
	var rows []struct {
		UserID     string `db:"user_id"`
		ReportDate string `db:"report_date"`
	}

	err := r.db.SelectContext(ctx, &rows,
		`SELECT user_id, report_date FROM daily_updates WHERE report_date >= ? AND report_date <= ?`,
		startDate, endDate)
	if err != nil {
		return nil, err
	}

	byUser := make(map[string]map[string]bool)
	for _, row := range rows {
		if byUser[row.UserID] == nil {
			byUser[row.UserID] = make(map[string]bool)
		}
		byUser[row.UserID][row.ReportDate] = true
	}
	return byUser, nil
}

// ClearAll removes every stored report and returns how many were deleted.
// Irreversible; confirmation is the caller's concern.
func (r *ReportRepository) ClearAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, constants.CountDailyReports); err != nil {
		return 0, err
	}

	if _, err := r.db.ExecContext(ctx, constants.DeleteAllDailyReports); err != nil {
		return 0, err
	}
	return count, nil
}
