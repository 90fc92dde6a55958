package api

import (
	"net/http"

	"team-analysis/standup/internal/workers"
)

// JobsHandler exposes manual triggers for the background workers.
type JobsHandler struct {
	reminder *workers.ReminderWorker
}

func NewJobsHandler(reminder *workers.ReminderWorker) *JobsHandler {
	return &JobsHandler{reminder: reminder}
}

// TriggerReminderCycle handles POST /api/v1/admin/jobs/reminder, admin only.
// Runs one reminder cycle outside the daily timer; the usual cycle gates
// still apply.
func (h *JobsHandler) TriggerReminderCycle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.reminder.RunNow(r.Context())
		respondWithSuccess[struct{}](w, http.StatusAccepted, nil)
	}
}
