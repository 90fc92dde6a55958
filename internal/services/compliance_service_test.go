package services

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"team-analysis/standup/internal/calendar"
	"team-analysis/standup/internal/db"
	"team-analysis/standup/internal/db/repositories"
	"team-analysis/standup/internal/metrics"
)

// One registry for the whole package; promauto registers collectors globally.
var testMetrics = metrics.NewMetricsRegistry()

func setupServiceDB(t *testing.T) *sqlx.DB {
	t.Helper()
	conn, err := db.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func seedMember(t *testing.T, conn *sqlx.DB, userID, name string) {
	t.Helper()
	_, err := conn.Exec(
		`INSERT INTO users (user_id, user_name, role, registered_at, registered_by) VALUES (?, ?, 'team_member', ?, 'admin')`,
		userID, name, time.Now())
	require.NoError(t, err)
}

func seedReport(t *testing.T, conn *sqlx.DB, userID, reportDate string) {
	t.Helper()
	_, err := conn.Exec(
		`INSERT INTO daily_updates (user_id, report_date, content) VALUES (?, ?, 'done stuff')`,
		userID, reportDate)
	require.NoError(t, err)
}

func newComplianceService(conn *sqlx.DB) *ComplianceService {
	return NewComplianceService(
		repositories.NewUserRepository(conn),
		repositories.NewReportRepository(conn),
		repositories.NewIgnoredDatesRepository(conn),
	)
}

func TestMissingReportersPreservesRosterOrder(t *testing.T) {
	conn := setupServiceDB(t)
	seedMember(t, conn, "u1", "Alice")
	seedMember(t, conn, "u2", "Bob")
	seedMember(t, conn, "u3", "Carol")
	seedReport(t, conn, "u2", "2024-06-11")

	svc := newComplianceService(conn)

	// Tuesday.
	missing, err := svc.MissingReporters(context.Background(), calendar.MustDate("2024-06-11"))
	require.NoError(t, err)
	require.Len(t, missing, 2)
	require.Equal(t, "u1", missing[0].UserID)
	require.Equal(t, "u3", missing[1].UserID)
}

func TestMissingReportersEmptyOnWeekend(t *testing.T) {
	conn := setupServiceDB(t)
	seedMember(t, conn, "u1", "Alice")

	svc := newComplianceService(conn)

	// Saturday: nobody owes a report.
	missing, err := svc.MissingReporters(context.Background(), calendar.MustDate("2024-06-08"))
	require.NoError(t, err)
	require.Empty(t, missing)
}

func TestMissingReportersEmptyOnIgnoredDate(t *testing.T) {
	conn := setupServiceDB(t)
	seedMember(t, conn, "u1", "Alice")

	ignored := repositories.NewIgnoredDatesRepository(conn)
	_, err := ignored.Add(context.Background(), "2024-06-10", "2024-06-12", "admin", time.Now())
	require.NoError(t, err)

	svc := newComplianceService(conn)

	missing, err := svc.MissingReporters(context.Background(), calendar.MustDate("2024-06-11"))
	require.NoError(t, err)
	require.Empty(t, missing)
}

func TestMissingDatesForUserSkipsWeekendsAndIgnored(t *testing.T) {
	conn := setupServiceDB(t)
	seedMember(t, conn, "u1", "Alice")

	ignored := repositories.NewIgnoredDatesRepository(conn)
	_, err := ignored.Add(context.Background(), "2024-06-12", "2024-06-12", "admin", time.Now())
	require.NoError(t, err)

	seedReport(t, conn, "u1", "2024-06-11")

	svc := newComplianceService(conn)

	// Mon 2024-06-10 .. Fri 2024-06-14, plus the surrounding weekend days.
	missing, err := svc.MissingDatesForUser(context.Background(),
		"u1", calendar.MustDate("2024-06-08"), calendar.MustDate("2024-06-15"))
	require.NoError(t, err)

	// Sat 08, Sun 09 and Sat 15 are weekends; Wed 12 is ignored; Tue 11 is
	// reported. Mon 10, Thu 13, Fri 14 remain.
	require.Equal(t, []string{"2024-06-10", "2024-06-13", "2024-06-14"}, missing)
}

func TestTeamMissingReportIsDeterministic(t *testing.T) {
	conn := setupServiceDB(t)
	seedMember(t, conn, "u1", "Alice")
	seedMember(t, conn, "u2", "Bob")
	seedReport(t, conn, "u1", "2024-06-10")
	seedReport(t, conn, "u1", "2024-06-11")
	seedReport(t, conn, "u2", "2024-06-10")

	svc := newComplianceService(conn)
	start := calendar.MustDate("2024-06-10")
	end := calendar.MustDate("2024-06-11")

	first, err := svc.TeamMissingReport(context.Background(), start, end)
	require.NoError(t, err)
	second, err := svc.TeamMissingReport(context.Background(), start, end)
	require.NoError(t, err)
	require.Equal(t, first, second)

	// Alice is fully reported and excluded; Bob misses the Tuesday.
	require.Len(t, first, 1)
	require.Equal(t, "u2", first[0].User.UserID)
	require.Equal(t, []string{"2024-06-11"}, first[0].MissingDates)
}
