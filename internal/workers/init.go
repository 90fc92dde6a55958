package workers

import (
	"context"

	"team-analysis/standup/internal/logging"
	"team-analysis/standup/internal/services"
)

type WorkersContainer struct {
	Reminder *ReminderWorker
}

// InitWorkers wires and starts the background workers. The returned container
// keeps handles for operational endpoints (RunNow).
func InitWorkers(ctx context.Context, reminders *services.ReminderService, reminderHour, reminderMinute int) *WorkersContainer {
	reminder := NewReminderWorker(reminders, reminderHour, reminderMinute)

	go reminder.Start(ctx)
	logging.Info("Workers initialized")

	return &WorkersContainer{Reminder: reminder}
}
