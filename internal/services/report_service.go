package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"team-analysis/standup/internal/calendar"
	"team-analysis/standup/internal/config"
	"team-analysis/standup/internal/db/repositories"
	"team-analysis/standup/internal/logging"
	"team-analysis/standup/internal/metrics"
	"team-analysis/standup/internal/models/entities"
)

// ErrFutureDate rejects reports dated after today in the reference timezone.
var ErrFutureDate = errors.New("report date is in the future")

// listAllWindowDays caps the all-users report window.
const listAllWindowDays = 60

// ReportService owns daily-report submission and retrieval semantics on top
// of the report repository: roster gating, date defaulting, and the
// created-vs-updated outcome the gateway renders.
type ReportService struct {
	reports *repositories.ReportRepository
	users   *repositories.UserRepository
	metrics *metrics.MetricsRegistry
}

func NewReportService(
	reports *repositories.ReportRepository,
	users *repositories.UserRepository,
	reg *metrics.MetricsRegistry,
) *ReportService {
	return &ReportService{reports: reports, users: users, metrics: reg}
}

// SubmitResult tells the caller which branch the upsert took so it can
// render "recorded" vs "overwritten".
type SubmitResult struct {
	Created    bool   `json:"created"`
	ReportDate string `json:"report_date"`
}

// Submit stores the user's report for the date. An empty reportDate means
// yesterday in the reference timezone; an explicit one must be ISO
// YYYY-MM-DD, not in the future. Unregistered users are rejected.
func (s *ReportService) Submit(ctx context.Context, userID, reportDate, content string) (*SubmitResult, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, repositories.ErrNotRegistered
	}

	today := config.Today()
	if reportDate == "" {
		reportDate = calendar.FormatISO(today.AddDate(0, 0, -1))
	} else {
		if _, err := time.Parse(calendar.ISO, reportDate); err != nil {
			return nil, fmt.Errorf("report date %q: %w", reportDate, calendar.ErrInvalidDate)
		}
		if reportDate > calendar.FormatISO(today) {
			return nil, fmt.Errorf("report date %q: %w", reportDate, ErrFutureDate)
		}
	}

	created, err := s.reports.Upsert(ctx, userID, reportDate, content, config.Now())
	if err != nil {
		return nil, err
	}

	outcome := "updated"
	if created {
		outcome = "created"
	}
	s.metrics.ReportsSubmittedTotal.WithLabelValues(outcome).Inc()
	logging.Info("Daily report stored", "userId", userID, "reportDate", reportDate, "outcome", outcome)

	return &SubmitResult{Created: created, ReportDate: reportDate}, nil
}

// HasReport applies the same default-date rule as Submit.
func (s *ReportService) HasReport(ctx context.Context, userID, reportDate string) (bool, error) {
	if reportDate == "" {
		reportDate = calendar.FormatISO(config.Today().AddDate(0, 0, -1))
	}
	return s.reports.HasReport(ctx, userID, reportDate)
}

// ListForUser returns the user's reports newest first. Empty bounds are open.
func (s *ReportService) ListForUser(ctx context.Context, userID, startDate, endDate string) ([]entities.DailyReport, error) {
	return s.reports.ListForUser(ctx, userID, startDate, endDate)
}

// ListAll returns every user's reports in the window, each list newest
// first. The window is clamped to the last 60 days: a missing end defaults
// to today, and the start is raised so the span never exceeds the cap.
func (s *ReportService) ListAll(ctx context.Context, startDate, endDate string) (map[string][]entities.DailyReport, error) {
	if endDate == "" {
		endDate = calendar.FormatISO(config.Today())
	}
	end, err := time.Parse(calendar.ISO, endDate)
	if err != nil {
		return nil, fmt.Errorf("end date %q: %w", endDate, calendar.ErrInvalidDate)
	}

	floor := calendar.FormatISO(end.AddDate(0, 0, -listAllWindowDays))
	if startDate == "" || startDate < floor {
		startDate = floor
	}

	return s.reports.ListAll(ctx, startDate, endDate)
}

// ClearAll drops every stored report and returns the count removed. The
// confirmation step lives in the gateway, not here.
func (s *ReportService) ClearAll(ctx context.Context) (int64, error) {
	count, err := s.reports.ClearAll(ctx)
	if err != nil {
		return 0, err
	}
	logging.Warn("All daily reports cleared", "removed", count)
	return count, nil
}
