package api

import (
	"encoding/json"
	"net/http"

	"team-analysis/standup/internal/models/dtos"
	"team-analysis/standup/internal/models/dtos/responses"
	"team-analysis/standup/internal/services"
)

// ToggleFeatureHandler handles POST /api/v1/features/toggle, admin only.
func ToggleFeatureHandler(features *services.FeatureService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.ToggleFeatureReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Name == "" {
			respondWithError(w, http.StatusBadRequest, "Feature name is required")
			return
		}

		enabled, err := features.Toggle(r.Context(), req.Name)
		if err != nil {
			respondWithDomainError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, &responses.ToggleFeatureRes{
			Name:    req.Name,
			Enabled: enabled,
		})
	}
}
