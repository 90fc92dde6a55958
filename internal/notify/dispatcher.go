package notify

import (
	"context"

	"golang.org/x/time/rate"

	"team-analysis/standup/internal/logging"
	"team-analysis/standup/internal/metrics"
)

// Failure records one recipient the dispatcher could not reach.
type Failure struct {
	UserID string `json:"user_id"`
	Reason string `json:"reason"`
}

// Result is the outcome of one fan-out: who was reached and who was not.
// At most one delivery attempt per recipient per cycle.
type Result struct {
	Succeeded []string  `json:"succeeded"`
	Failed    []Failure `json:"failed"`
}

// Dispatcher fans private messages out to a list of recipients, throttled to
// roughly one message per second to respect platform delivery limits. The
// throttle is a cooperative delay, not a hard guarantee.
type Dispatcher struct {
	notifier Notifier
	limiter  *rate.Limiter
	metrics  *metrics.MetricsRegistry
}

func NewDispatcher(notifier Notifier, reg *metrics.MetricsRegistry) *Dispatcher {
	return &Dispatcher{
		notifier: notifier,
		limiter:  rate.NewLimiter(rate.Limit(1), 1),
		metrics:  reg,
	}
}

// DispatchPrivate sends the per-recipient message to every user in order.
// Individual failures are logged and collected; they never abort the rest of
// the fan-out.
func (d *Dispatcher) DispatchPrivate(ctx context.Context, userIDs []string, message func(userID string) string) Result {
	result := Result{Succeeded: []string{}, Failed: []Failure{}}

	for _, userID := range userIDs {
		if err := d.limiter.Wait(ctx); err != nil {
			// ctx ended; report the rest as undelivered
			for _, remaining := range userIDs[len(result.Succeeded)+len(result.Failed):] {
				result.Failed = append(result.Failed, Failure{UserID: remaining, Reason: err.Error()})
			}
			break
		}

		if err := d.notifier.SendPrivate(ctx, userID, message(userID)); err != nil {
			logging.Error("Failed to deliver private reminder", "user_id", userID, "error", err.Error())
			d.metrics.NotificationsTotal.WithLabelValues("private", "failed").Inc()
			result.Failed = append(result.Failed, Failure{UserID: userID, Reason: err.Error()})
			continue
		}

		d.metrics.NotificationsTotal.WithLabelValues("private", "sent").Inc()
		result.Succeeded = append(result.Succeeded, userID)
	}

	return result
}

// AnnouncePublic posts the digest message. A failure here is logged and
// swallowed; private notifications already sent are not rolled back.
func (d *Dispatcher) AnnouncePublic(ctx context.Context, channelID, message string) {
	if err := d.notifier.SendToChannel(ctx, channelID, message); err != nil {
		logging.Error("Failed to post public digest", "channel_id", channelID, "error", err.Error())
		d.metrics.NotificationsTotal.WithLabelValues("channel", "failed").Inc()
		return
	}
	d.metrics.NotificationsTotal.WithLabelValues("channel", "sent").Inc()
}
