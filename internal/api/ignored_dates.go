package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"team-analysis/standup/internal/auth"
	"team-analysis/standup/internal/models/dtos"
	"team-analysis/standup/internal/models/dtos/responses"
	"team-analysis/standup/internal/services"
)

// ListIgnoredDatesHandler handles GET /api/v1/ignored-dates.
func ListIgnoredDatesHandler(ignored *services.IgnoredDatesService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ranges, err := ignored.List(r.Context())
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &responses.IgnoredDatesRes{Ranges: ranges})
	}
}

// ReplaceIgnoredDatesHandler handles PUT /api/v1/ignored-dates, admin only.
// The body carries the raw comma-separated config text; unparseable tokens
// are dropped, not rejected.
func ReplaceIgnoredDatesHandler(ignored *services.IgnoredDatesService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetUserClaims(r.Context())

		var req dtos.ReplaceIgnoredDatesReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		inserted, err := ignored.Replace(r.Context(), req.Dates, claims.UserID())
		if err != nil {
			respondWithDomainError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, &responses.ReplaceIgnoredDatesRes{Inserted: inserted})
	}
}

// RemoveIgnoredDateHandler handles DELETE /api/v1/ignored-dates/{id}.
func RemoveIgnoredDateHandler(ignored *services.IgnoredDatesService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid range id")
			return
		}

		removed, err := ignored.Remove(r.Context(), id)
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		if !removed {
			respondWithError(w, http.StatusNotFound, "No such range")
			return
		}

		respondWithSuccess[struct{}](w, http.StatusOK, nil)
	}
}

// TestDateHandler handles GET /api/v1/ignored-dates/test?date=..., letting an
// admin probe whether a date is currently exempt.
func TestDateHandler(ignored *services.IgnoredDatesService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		iso, isIgnored, err := ignored.TestDate(r.Context(), r.URL.Query().Get("date"))
		if err != nil {
			respondWithDomainError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, &responses.TestDateRes{Date: iso, Ignored: isIgnored})
	}
}
