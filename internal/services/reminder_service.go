package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"team-analysis/standup/internal/calendar"
	"team-analysis/standup/internal/config"
	"team-analysis/standup/internal/constants"
	"team-analysis/standup/internal/db/repositories"
	"team-analysis/standup/internal/logging"
	"team-analysis/standup/internal/metrics"
	"team-analysis/standup/internal/notify"
)

// Digest is the aggregated outcome of one reminder or escalation run. The
// scheduler logs it; the escalation endpoint returns it to the invoker.
type Digest struct {
	CheckDate     string              `json:"check_date"`
	Skipped       bool                `json:"skipped"`
	SkipReason    string              `json:"skip_reason,omitempty"`
	WeekendNotice bool                `json:"weekend_notice,omitempty"`
	PendingByDate map[string][]string `json:"pending_by_date"`
	Notified      []string            `json:"notified"`
	Failed        []notify.Failure    `json:"failed"`
}

// ReminderService runs the daily compliance cycle: gate, compute who is
// missing, fan out private nudges, post the public digest.
type ReminderService struct {
	compliance *ComplianceService
	features   *FeatureService
	ignored    *repositories.IgnoredDatesRepository
	dispatcher *notify.Dispatcher
	metrics    *metrics.MetricsRegistry
	channelID  string

	// now is swappable so cycle gating can be exercised on fixed weekdays.
	now func() time.Time
}

func NewReminderService(
	compliance *ComplianceService,
	features *FeatureService,
	ignored *repositories.IgnoredDatesRepository,
	dispatcher *notify.Dispatcher,
	reg *metrics.MetricsRegistry,
	channelID string,
) *ReminderService {
	return &ReminderService{
		compliance: compliance,
		features:   features,
		ignored:    ignored,
		dispatcher: dispatcher,
		metrics:    reg,
		channelID:  channelID,
		now:        config.Now,
	}
}

// RunDailyCycle is the once-a-day scheduled run. Gates, in order: the
// daily_collection flag, a weekend today, today or yesterday inside an
// ignored range. A gated cycle ends silently with no notifications.
func (s *ReminderService) RunDailyCycle(ctx context.Context) (*Digest, error) {
	cycleID := uuid.NewString()
	today := s.now()
	checkDate := s.compliance.DefaultCheckDate(today)
	log := logging.WithCycle(cycleID, calendar.FormatISO(checkDate))

	if !s.features.IsEnabled(ctx, constants.FeatureDailyCollection) {
		log.Infow("Reminder cycle skipped", "reason", "daily_collection disabled")
		s.metrics.ReminderCyclesTotal.WithLabelValues("skipped").Inc()
		return skippedDigest(checkDate, "daily_collection disabled"), nil
	}

	if calendar.IsWeekend(today) {
		log.Infow("Reminder cycle skipped", "reason", "weekend")
		s.metrics.ReminderCyclesTotal.WithLabelValues("skipped").Inc()
		return skippedDigest(checkDate, "weekend"), nil
	}

	skip, err := s.ignoredGate(ctx, today)
	if err != nil {
		s.metrics.ReminderCyclesTotal.WithLabelValues("failed").Inc()
		return nil, err
	}
	if skip {
		log.Infow("Reminder cycle skipped", "reason", "ignored date")
		s.metrics.ReminderCyclesTotal.WithLabelValues("skipped").Inc()
		return skippedDigest(checkDate, "ignored date"), nil
	}

	digest, err := s.runCycle(ctx, log, checkDate, false)
	if err != nil {
		s.metrics.ReminderCyclesTotal.WithLabelValues("failed").Inc()
		return nil, err
	}

	outcome := "completed"
	if len(digest.Notified) == 0 && len(digest.Failed) == 0 {
		outcome = "empty"
	}
	s.metrics.ReminderCyclesTotal.WithLabelValues(outcome).Inc()
	return digest, nil
}

// Escalate runs the same mechanics on demand for a privileged requester.
// Ignored dates still short-circuit the run; a weekend does not abort it but
// marks the digest so the invoker can warn that the check date is stale.
func (s *ReminderService) Escalate(ctx context.Context, requesterID string) (*Digest, error) {
	cycleID := uuid.NewString()
	today := s.now()
	checkDate := s.compliance.DefaultCheckDate(today)
	log := logging.WithCycle(cycleID, calendar.FormatISO(checkDate))
	log.Infow("Escalation requested", "requesterId", requesterID)

	if !s.features.IsEnabled(ctx, constants.FeatureDailyCollection) {
		return skippedDigest(checkDate, "daily_collection disabled"), nil
	}

	skip, err := s.ignoredGate(ctx, today)
	if err != nil {
		return nil, err
	}
	if skip {
		return skippedDigest(checkDate, "ignored date"), nil
	}

	digest, err := s.runCycle(ctx, log, checkDate, calendar.IsWeekend(today))
	if err != nil {
		return nil, err
	}

	s.metrics.EscalationsTotal.Inc()
	return digest, nil
}

// ignoredGate reports whether today or yesterday sits inside an ignored
// range.
func (s *ReminderService) ignoredGate(ctx context.Context, today time.Time) (bool, error) {
	ranges, err := s.ignored.List(ctx)
	if err != nil {
		return false, err
	}
	return calendar.IsIgnored(today, ranges) ||
		calendar.IsIgnored(today.AddDate(0, 0, -1), ranges), nil
}

// runCycle computes the missing reporters for checkDate, nudges each one
// privately, then posts the public digest. Per-recipient delivery failures
// are collected, never fatal.
func (s *ReminderService) runCycle(ctx context.Context, log *zap.SugaredLogger, checkDate time.Time, weekendNotice bool) (*Digest, error) {
	missing, err := s.compliance.MissingReporters(ctx, checkDate)
	if err != nil {
		return nil, err
	}

	iso := calendar.FormatISO(checkDate)
	digest := &Digest{
		CheckDate:     iso,
		WeekendNotice: weekendNotice,
		PendingByDate: map[string][]string{},
		Notified:      []string{},
		Failed:        []notify.Failure{},
	}

	s.metrics.MissingReportersLast.Set(float64(len(missing)))
	if len(missing) == 0 {
		log.Infow("No missing reporters")
		return digest, nil
	}

	names := make(map[string]string, len(missing))
	ids := make([]string, 0, len(missing))
	for _, u := range missing {
		ids = append(ids, u.UserID)
		names[u.UserID] = u.DisplayName()
	}

	result := s.dispatcher.DispatchPrivate(ctx, ids, func(userID string) string {
		return buildPrivateMessage(names[userID], iso)
	})
	digest.Notified = result.Succeeded
	digest.Failed = result.Failed

	for _, id := range result.Succeeded {
		digest.PendingByDate[iso] = append(digest.PendingByDate[iso], names[id])
	}

	log.Infow("Reminder fan-out finished",
		"missing", len(missing), "notified", len(result.Succeeded), "failed", len(result.Failed))

	if len(digest.PendingByDate) > 0 {
		s.dispatcher.AnnouncePublic(ctx, s.channelID, buildDigestMessage(digest.PendingByDate))
	}
	return digest, nil
}

func skippedDigest(checkDate time.Time, reason string) *Digest {
	return &Digest{
		CheckDate:     calendar.FormatISO(checkDate),
		Skipped:       true,
		SkipReason:    reason,
		PendingByDate: map[string][]string{},
		Notified:      []string{},
		Failed:        []notify.Failure{},
	}
}

// buildPrivateMessage is what each missing reporter receives.
func buildPrivateMessage(displayName, checkDate string) string {
	return fmt.Sprintf("Hi %s, your daily update for %s is still missing. Please submit it when you can.", displayName, checkDate)
}

// buildDigestMessage names everyone nudged, grouped by the date they owe.
func buildDigestMessage(pendingByDate map[string][]string) string {
	dates := make([]string, 0, len(pendingByDate))
	for date := range pendingByDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	var b strings.Builder
	b.WriteString("Daily update reminders sent:")
	for _, date := range dates {
		b.WriteString(fmt.Sprintf("\n%s: %s", date, strings.Join(pendingByDate[date], ", ")))
	}
	return b.String()
}
