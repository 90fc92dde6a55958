package api

import (
	"net/http"

	"team-analysis/standup/internal/auth"
	"team-analysis/standup/internal/services"
)

// EscalateHandler handles POST /api/v1/daily/escalate. Guarded upstream by
// the escalation middleware (admins and product owners). The digest goes back
// to the invoker so the gateway can render the summary.
func EscalateHandler(reminders *services.ReminderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetUserClaims(r.Context())

		digest, err := reminders.Escalate(r.Context(), claims.UserID())
		if err != nil {
			respondWithDomainError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, digest)
	}
}
