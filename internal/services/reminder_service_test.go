package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"team-analysis/standup/internal/common"
	"team-analysis/standup/internal/config"
	"team-analysis/standup/internal/constants"
	"team-analysis/standup/internal/db/repositories"
	"team-analysis/standup/internal/notify"
)

type stubNotifier struct {
	privateErr  error
	privateSent map[string]string
	channelSent []string
}

func (s *stubNotifier) SendPrivate(_ context.Context, userID, message string) error {
	if s.privateErr != nil {
		return s.privateErr
	}
	if s.privateSent == nil {
		s.privateSent = map[string]string{}
	}
	s.privateSent[userID] = message
	return nil
}

func (s *stubNotifier) SendToChannel(_ context.Context, _, message string) error {
	s.channelSent = append(s.channelSent, message)
	return nil
}

func newReminderService(conn *sqlx.DB, notifier notify.Notifier, clock func() time.Time) *ReminderService {
	svc := NewReminderService(
		newComplianceService(conn),
		NewFeatureService(conn, common.NewCacheService(300, 600)),
		repositories.NewIgnoredDatesRepository(conn),
		notify.NewDispatcher(notifier, testMetrics),
		testMetrics,
		"standup-channel",
	)
	svc.now = clock
	return svc
}

// clockAt pins the service clock to 10:00 on the given date in the
// reference timezone.
func clockAt(iso string) func() time.Time {
	t, _ := time.ParseInLocation("2006-01-02 15:04", iso+" 10:00", config.ReferenceZone)
	return func() time.Time { return t }
}

func TestRunDailyCycleNotifiesMissingAndPostsDigest(t *testing.T) {
	conn := setupServiceDB(t)
	seedMember(t, conn, "u1", "Alice")
	seedMember(t, conn, "u2", "Bob")
	seedReport(t, conn, "u2", "2024-06-11")

	notifier := &stubNotifier{}
	// Wednesday; check date is Tuesday 2024-06-11.
	svc := newReminderService(conn, notifier, clockAt("2024-06-12"))

	digest, err := svc.RunDailyCycle(context.Background())
	require.NoError(t, err)
	require.False(t, digest.Skipped)
	require.Equal(t, "2024-06-11", digest.CheckDate)
	require.Equal(t, []string{"u1"}, digest.Notified)
	require.Empty(t, digest.Failed)
	require.Equal(t, []string{"Alice"}, digest.PendingByDate["2024-06-11"])

	require.Contains(t, notifier.privateSent["u1"], "2024-06-11")
	require.Len(t, notifier.channelSent, 1)
	require.Contains(t, notifier.channelSent[0], "Alice")
}

func TestRunDailyCycleSkipsWeekend(t *testing.T) {
	conn := setupServiceDB(t)
	seedMember(t, conn, "u1", "Alice")

	notifier := &stubNotifier{}
	// Saturday.
	svc := newReminderService(conn, notifier, clockAt("2024-06-08"))

	digest, err := svc.RunDailyCycle(context.Background())
	require.NoError(t, err)
	require.True(t, digest.Skipped)
	require.Equal(t, "weekend", digest.SkipReason)
	require.Empty(t, notifier.privateSent)
	require.Empty(t, notifier.channelSent)
}

func TestRunDailyCycleSkipsWhenCollectionDisabled(t *testing.T) {
	conn := setupServiceDB(t)
	seedMember(t, conn, "u1", "Alice")

	notifier := &stubNotifier{}
	svc := newReminderService(conn, notifier, clockAt("2024-06-12"))

	_, err := svc.features.Toggle(context.Background(), constants.FeatureDailyCollection)
	require.NoError(t, err)

	digest, err := svc.RunDailyCycle(context.Background())
	require.NoError(t, err)
	require.True(t, digest.Skipped)
	require.Empty(t, notifier.privateSent)
}

func TestRunDailyCycleSkipsWhenYesterdayIgnored(t *testing.T) {
	conn := setupServiceDB(t)
	seedMember(t, conn, "u1", "Alice")

	ignored := repositories.NewIgnoredDatesRepository(conn)
	_, err := ignored.Add(context.Background(), "2024-06-11", "2024-06-11", "admin", time.Now())
	require.NoError(t, err)

	notifier := &stubNotifier{}
	svc := newReminderService(conn, notifier, clockAt("2024-06-12"))

	digest, err := svc.RunDailyCycle(context.Background())
	require.NoError(t, err)
	require.True(t, digest.Skipped)
	require.Equal(t, "ignored date", digest.SkipReason)
	require.Empty(t, notifier.privateSent)
}

func TestRunDailyCycleEmptyWhenEveryoneReported(t *testing.T) {
	conn := setupServiceDB(t)
	seedMember(t, conn, "u1", "Alice")
	seedReport(t, conn, "u1", "2024-06-11")

	notifier := &stubNotifier{}
	svc := newReminderService(conn, notifier, clockAt("2024-06-12"))

	digest, err := svc.RunDailyCycle(context.Background())
	require.NoError(t, err)
	require.False(t, digest.Skipped)
	require.Empty(t, digest.Notified)
	require.Empty(t, notifier.privateSent)
	require.Empty(t, notifier.channelSent)
}

func TestRunDailyCycleCollectsDeliveryFailures(t *testing.T) {
	conn := setupServiceDB(t)
	seedMember(t, conn, "u1", "Alice")

	notifier := &stubNotifier{privateErr: errors.New("gateway down")}
	svc := newReminderService(conn, notifier, clockAt("2024-06-12"))

	digest, err := svc.RunDailyCycle(context.Background())
	require.NoError(t, err)
	require.Empty(t, digest.Notified)
	require.Len(t, digest.Failed, 1)
	require.Equal(t, "u1", digest.Failed[0].UserID)
	// Nobody was reached, so there is no digest to post.
	require.Empty(t, notifier.channelSent)
}

func TestEscalateOnWeekendCarriesNotice(t *testing.T) {
	conn := setupServiceDB(t)
	seedMember(t, conn, "u1", "Alice")

	notifier := &stubNotifier{}
	// Saturday; check date rolls back to Friday 2024-06-07.
	svc := newReminderService(conn, notifier, clockAt("2024-06-08"))

	digest, err := svc.Escalate(context.Background(), "po-1")
	require.NoError(t, err)
	require.False(t, digest.Skipped)
	require.True(t, digest.WeekendNotice)
	require.Equal(t, "2024-06-07", digest.CheckDate)
	require.Equal(t, []string{"u1"}, digest.Notified)
}

func TestEscalateSkipsIgnoredDate(t *testing.T) {
	conn := setupServiceDB(t)
	seedMember(t, conn, "u1", "Alice")

	ignored := repositories.NewIgnoredDatesRepository(conn)
	_, err := ignored.Add(context.Background(), "2024-06-12", "2024-06-12", "admin", time.Now())
	require.NoError(t, err)

	notifier := &stubNotifier{}
	svc := newReminderService(conn, notifier, clockAt("2024-06-12"))

	digest, err := svc.Escalate(context.Background(), "po-1")
	require.NoError(t, err)
	require.True(t, digest.Skipped)
	require.Empty(t, notifier.privateSent)
}
