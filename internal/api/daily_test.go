package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"team-analysis/standup/internal/auth"
	"team-analysis/standup/internal/common"
	"team-analysis/standup/internal/constants"
	"team-analysis/standup/internal/db"
	"team-analysis/standup/internal/db/repositories"
	"team-analysis/standup/internal/metrics"
	"team-analysis/standup/internal/models/dtos"
	"team-analysis/standup/internal/models/dtos/responses"
	"team-analysis/standup/internal/services"
)

var testMetrics = metrics.NewMetricsRegistry()

func setupAPIDB(t *testing.T) *sqlx.DB {
	t.Helper()
	conn, err := db.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func seedAPIMember(t *testing.T, conn *sqlx.DB, userID, name string) {
	t.Helper()
	_, err := conn.Exec(
		`INSERT INTO users (user_id, user_name, role, registered_at, registered_by) VALUES (?, ?, 'team_member', ?, 'admin')`,
		userID, name, time.Now())
	require.NoError(t, err)
}

func withClaims(req *http.Request, userID string) *http.Request {
	claims := &auth.APIKeyClaims{UserIDValue: userID}
	return req.WithContext(auth.SetUserClaims(req.Context(), claims))
}

func newSubmitHandler(conn *sqlx.DB) http.HandlerFunc {
	reportSvc := services.NewReportService(
		repositories.NewReportRepository(conn),
		repositories.NewUserRepository(conn),
		testMetrics,
	)
	featureSvc := services.NewFeatureService(conn, common.NewCacheService(300, 600))
	return SubmitReportHandler(reportSvc, featureSvc)
}

func TestSubmitReportHandler_Created(t *testing.T) {
	conn := setupAPIDB(t)
	seedAPIMember(t, conn, "u1", "Alice")
	handler := newSubmitHandler(conn)

	body, _ := json.Marshal(dtos.SubmitReportReq{ReportDate: "2024-06-11", Content: "shipped the thing"})
	req := withClaims(httptest.NewRequest("POST", "/api/v1/daily", bytes.NewReader(body)), "u1")
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)

	var resp responses.APIResponse[responses.SubmitReportRes]
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Equal(t, "success", resp.Status)
	require.True(t, resp.Data.Created)
	require.Equal(t, "2024-06-11", resp.Data.ReportDate)
}

func TestSubmitReportHandler_UpdateReturnsOK(t *testing.T) {
	conn := setupAPIDB(t)
	seedAPIMember(t, conn, "u1", "Alice")
	handler := newSubmitHandler(conn)

	submit := func(content string) *httptest.ResponseRecorder {
		body, _ := json.Marshal(dtos.SubmitReportReq{ReportDate: "2024-06-11", Content: content})
		req := withClaims(httptest.NewRequest("POST", "/api/v1/daily", bytes.NewReader(body)), "u1")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr
	}

	require.Equal(t, http.StatusCreated, submit("first").Code)

	rr := submit("second")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp responses.APIResponse[responses.SubmitReportRes]
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.False(t, resp.Data.Created)
}

func TestSubmitReportHandler_UnregisteredUser(t *testing.T) {
	conn := setupAPIDB(t)
	handler := newSubmitHandler(conn)

	body, _ := json.Marshal(dtos.SubmitReportReq{ReportDate: "2024-06-11", Content: "hello"})
	req := withClaims(httptest.NewRequest("POST", "/api/v1/daily", bytes.NewReader(body)), "ghost")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestSubmitReportHandler_MissingContent(t *testing.T) {
	conn := setupAPIDB(t)
	seedAPIMember(t, conn, "u1", "Alice")
	handler := newSubmitHandler(conn)

	body, _ := json.Marshal(dtos.SubmitReportReq{ReportDate: "2024-06-11"})
	req := withClaims(httptest.NewRequest("POST", "/api/v1/daily", bytes.NewReader(body)), "u1")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSubmitReportHandler_FeatureDisabled(t *testing.T) {
	conn := setupAPIDB(t)
	seedAPIMember(t, conn, "u1", "Alice")

	featureSvc := services.NewFeatureService(conn, common.NewCacheService(300, 600))
	_, err := featureSvc.Toggle(context.Background(), constants.FeatureDaily)
	require.NoError(t, err)

	reportSvc := services.NewReportService(
		repositories.NewReportRepository(conn),
		repositories.NewUserRepository(conn),
		testMetrics,
	)
	handler := SubmitReportHandler(reportSvc, featureSvc)

	body, _ := json.Marshal(dtos.SubmitReportReq{ReportDate: "2024-06-11", Content: "hello"})
	req := withClaims(httptest.NewRequest("POST", "/api/v1/daily", bytes.NewReader(body)), "u1")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestMissingReportersHandler_ExplicitDate(t *testing.T) {
	conn := setupAPIDB(t)
	seedAPIMember(t, conn, "u1", "Alice")
	seedAPIMember(t, conn, "u2", "Bob")

	_, err := conn.Exec(
		`INSERT INTO daily_updates (user_id, report_date, content) VALUES ('u1', '2024-06-11', 'done')`)
	require.NoError(t, err)

	compliance := services.NewComplianceService(
		repositories.NewUserRepository(conn),
		repositories.NewReportRepository(conn),
		repositories.NewIgnoredDatesRepository(conn),
	)
	handler := MissingReportersHandler(compliance)

	req := withClaims(httptest.NewRequest("GET", "/api/v1/daily/missing?date=2024-06-11", nil), "u1")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp responses.APIResponse[responses.MissingReportersRes]
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Equal(t, "2024-06-11", resp.Data.CheckDate)
	require.Len(t, resp.Data.Missing, 1)
	require.Equal(t, "u2", resp.Data.Missing[0].UserID)
}
