package workers

import (
	"context"
	"time"

	"team-analysis/standup/internal/config"
	"team-analysis/standup/internal/logging"
	"team-analysis/standup/internal/services"
)

// ReminderWorker fires the daily reminder cycle once per calendar day at the
// configured wall-clock time in the reference timezone. It is a plain timer
// loop: compute how long until the next trigger, sleep, run, repeat.
type ReminderWorker struct {
	reminders *services.ReminderService
	hour      int
	minute    int

	now func() time.Time
}

func NewReminderWorker(reminders *services.ReminderService, hour, minute int) *ReminderWorker {
	return &ReminderWorker{
		reminders: reminders,
		hour:      hour,
		minute:    minute,
		now:       config.Now,
	}
}

// NextTriggerIn returns the wait until the next occurrence of the configured
// HH:MM in the reference timezone. A trigger time already past today rolls to
// tomorrow.
func (w *ReminderWorker) NextTriggerIn() time.Duration {
	now := w.now().In(config.ReferenceZone)
	next := time.Date(now.Year(), now.Month(), now.Day(), w.hour, w.minute, 0, 0, config.ReferenceZone)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}

// Start runs the daily loop until the context is cancelled. Cancellation is
// only observed between cycles; a cycle in flight runs to completion.
func (w *ReminderWorker) Start(ctx context.Context) {
	logging.Info("Reminder worker started",
		"triggerTime", time.Date(0, 1, 1, w.hour, w.minute, 0, 0, config.ReferenceZone).Format("15:04"))

	for {
		wait := w.NextTriggerIn()
		logging.Debug("Reminder worker waiting", "until", wait.String())

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			logging.Info("Reminder worker shutting down")
			return
		case <-timer.C:
			w.runOnce(ctx)
		}
	}
}

// RunNow fires a cycle immediately, outside the timer. Used by operational
// tooling.
func (w *ReminderWorker) RunNow(ctx context.Context) {
	w.runOnce(ctx)
}

func (w *ReminderWorker) runOnce(ctx context.Context) {
	if _, err := w.reminders.RunDailyCycle(ctx); err != nil {
		logging.Error("Reminder cycle failed", "error", err.Error())
	}
}
