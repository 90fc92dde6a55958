package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"team-analysis/standup/internal/auth"
	"team-analysis/standup/internal/calendar"
	"team-analysis/standup/internal/config"
	"team-analysis/standup/internal/constants"
	"team-analysis/standup/internal/models/dtos"
	"team-analysis/standup/internal/models/dtos/responses"
	"team-analysis/standup/internal/services"
)

// lookback caps, in days.
const (
	maxUserLookback = 90
	maxTeamLookback = 90
)

// SubmitReportHandler handles POST /api/v1/daily. The acting user comes from
// the auth claims, never from the body.
func SubmitReportHandler(reports *services.ReportService, features *services.FeatureService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !features.IsEnabled(r.Context(), constants.FeatureDaily) {
			respondWithError(w, http.StatusServiceUnavailable, "Daily reports are currently disabled")
			return
		}

		claims := auth.GetUserClaims(r.Context())

		var req dtos.SubmitReportReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Content == "" {
			respondWithError(w, http.StatusBadRequest, "Content is required")
			return
		}

		result, err := reports.Submit(r.Context(), claims.UserID(), req.ReportDate, req.Content)
		if err != nil {
			respondWithDomainError(w, err)
			return
		}

		message := "Daily report recorded"
		status := http.StatusCreated
		if !result.Created {
			message = "Daily report updated"
			status = http.StatusOK
		}

		respondWithSuccess(w, status, &responses.SubmitReportRes{
			Created:    result.Created,
			ReportDate: result.ReportDate,
			Message:    message,
		})
	}
}

// ListOwnReportsHandler handles GET /api/v1/daily with optional start/end
// query bounds.
func ListOwnReportsHandler(reports *services.ReportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetUserClaims(r.Context())

		list, err := reports.ListForUser(r.Context(), claims.UserID(),
			r.URL.Query().Get("start"), r.URL.Query().Get("end"))
		if err != nil {
			respondWithDomainError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, &responses.ReportsRes{
			UserID:  claims.UserID(),
			Reports: list,
		})
	}
}

// ListAllReportsHandler handles GET /api/v1/daily/all, admin only. The window
// is clamped to the last 60 days.
func ListAllReportsHandler(reports *services.ReportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := r.URL.Query().Get("start")
		end := r.URL.Query().Get("end")

		grouped, err := reports.ListAll(r.Context(), start, end)
		if err != nil {
			respondWithDomainError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, &responses.AllReportsRes{
			StartDate: start,
			EndDate:   end,
			Reports:   grouped,
		})
	}
}

// MissingReportersHandler handles GET /api/v1/daily/missing. An optional
// ?date=YYYY-MM-DD overrides the default check date.
func MissingReportersHandler(compliance *services.ComplianceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checkDate := compliance.DefaultCheckDate(config.Today())
		if raw := r.URL.Query().Get("date"); raw != "" {
			iso, err := calendar.ParseDate(raw)
			if err != nil {
				respondWithDomainError(w, fmt.Errorf("date %q: %w", raw, err))
				return
			}
			checkDate = calendar.MustDate(iso)
		}

		missing, err := compliance.MissingReporters(r.Context(), checkDate)
		if err != nil {
			respondWithDomainError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, &responses.MissingReportersRes{
			CheckDate: calendar.FormatISO(checkDate),
			Missing:   missing,
		})
	}
}

// UserMissingDatesHandler handles GET /api/v1/daily/missing/{user_id} for
// individual pending-report audits over ?lookback= days, capped at 90.
func UserMissingDatesHandler(compliance *services.ComplianceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "user_id")
		lookback := parseLookback(r.URL.Query().Get("lookback"), 30, maxUserLookback)

		today := config.Today()
		missing, err := compliance.MissingDatesForUser(r.Context(), userID,
			today.AddDate(0, 0, -lookback), today.AddDate(0, 0, -1))
		if err != nil {
			respondWithDomainError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, &responses.MissingDatesRes{
			UserID:       userID,
			LookbackDays: lookback,
			MissingDates: missing,
		})
	}
}

// TeamMissingHandler handles GET /api/v1/daily/missing/team across the whole
// roster.
func TeamMissingHandler(compliance *services.ComplianceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lookback := parseLookback(r.URL.Query().Get("lookback"), 7, maxTeamLookback)

		today := config.Today()
		users, err := compliance.TeamMissingReport(r.Context(),
			today.AddDate(0, 0, -lookback), today.AddDate(0, 0, -1))
		if err != nil {
			respondWithDomainError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, &responses.TeamMissingRes{
			LookbackDays: lookback,
			Users:        users,
		})
	}
}

// ClearAllReportsHandler handles DELETE /api/v1/daily/all, admin only. The
// confirmation dialog lives in the gateway.
func ClearAllReportsHandler(reports *services.ReportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		removed, err := reports.ClearAll(r.Context())
		if err != nil {
			respondWithDomainError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, &responses.ClearAllRes{Removed: removed})
	}
}

func parseLookback(raw string, def, max int) int {
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	if n > max {
		return max
	}
	return n
}
