package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the standup engine
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Business Metrics
	ReportsSubmittedTotal  prometheus.CounterVec
	ReminderCyclesTotal    prometheus.CounterVec
	NotificationsTotal     prometheus.CounterVec
	MissingReportersLast   prometheus.Gauge
	EscalationsTotal       prometheus.Counter
	IgnoredRangesConfigured prometheus.Gauge
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "standup_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "standup_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "standup_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		ReportsSubmittedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "standup_reports_submitted_total",
				Help: "Daily reports written, by created/updated outcome",
			},
			[]string{"outcome"},
		),
		ReminderCyclesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "standup_reminder_cycles_total",
				Help: "Reminder cycles run, by outcome (completed, skipped, empty, failed)",
			},
			[]string{"outcome"},
		),
		NotificationsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "standup_notifications_total",
				Help: "Notification deliveries attempted, by kind and status",
			},
			[]string{"kind", "status"},
		),
		MissingReportersLast: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "standup_missing_reporters_last",
				Help: "Missing reporters found by the most recent reminder cycle",
			},
		),
		EscalationsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "standup_escalations_total",
				Help: "On-demand escalations triggered by privileged users",
			},
		),
		IgnoredRangesConfigured: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "standup_ignored_ranges_configured",
				Help: "Ignored-date ranges currently configured",
			},
		),
	}
}
