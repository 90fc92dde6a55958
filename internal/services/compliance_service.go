package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"team-analysis/standup/internal/calendar"
	"team-analysis/standup/internal/constants"
	"team-analysis/standup/internal/db/repositories"
	"team-analysis/standup/internal/models/entities"
)

// ComplianceService answers who is missing a report for a date, and which
// dates a user has missed inside a lookback window. Weekend and ignored
// dates are never counted against anyone.
type ComplianceService struct {
	users   *repositories.UserRepository
	reports *repositories.ReportRepository
	ignored *repositories.IgnoredDatesRepository
}

func NewComplianceService(
	users *repositories.UserRepository,
	reports *repositories.ReportRepository,
	ignored *repositories.IgnoredDatesRepository,
) *ComplianceService {
	return &ComplianceService{users: users, reports: reports, ignored: ignored}
}

// UserMissingDates is one user's audit result for a window.
type UserMissingDates struct {
	User         entities.User `json:"user"`
	MissingDates []string      `json:"missing_dates"`
}

// MissingReporters returns the team members without a report for the date, in
// registration order. A non-checkable date (weekend or ignored) yields an
// empty slice: nobody owes a report for it.
func (s *ComplianceService) MissingReporters(ctx context.Context, date time.Time) ([]entities.User, error) {
	ranges, err := s.ignored.List(ctx)
	if err != nil {
		return nil, err
	}
	if !calendar.IsCheckable(date, ranges) {
		return []entities.User{}, nil
	}

	members, err := s.users.ListByRole(ctx, constants.RoleTeamMember)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.UserID)
	}

	submitted, err := s.reports.ReportersOn(ctx, calendar.FormatISO(date), ids)
	if err != nil {
		return nil, err
	}

	missing := []entities.User{}
	for _, m := range members {
		if !submitted[m.UserID] {
			missing = append(missing, m)
		}
	}
	return missing, nil
}

// MissingDatesForUser walks the window [start, end] day by day and returns
// the checkable dates the user has no report for, ascending.
func (s *ComplianceService) MissingDatesForUser(ctx context.Context, userID string, start, end time.Time) ([]string, error) {
	ranges, err := s.ignored.List(ctx)
	if err != nil {
		return nil, err
	}

	reported, err := s.reports.ReportedDatesIn(ctx, calendar.FormatISO(start), calendar.FormatISO(end))
	if err != nil {
		return nil, err
	}

	return missingInWindow(userID, start, end, ranges, reported), nil
}

// TeamMissingReport audits the whole roster over the window. The ignored
// ranges and the reported-date set are fetched concurrently; the per-user
// walk is pure computation over those two snapshots.
func (s *ComplianceService) TeamMissingReport(ctx context.Context, start, end time.Time) ([]UserMissingDates, error) {
	var (
		members  []entities.User
		ranges   []entities.IgnoredDateRange
		reported map[string]map[string]bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		members, err = s.users.ListByRole(gctx, constants.RoleTeamMember)
		return err
	})
	g.Go(func() (err error) {
		ranges, err = s.ignored.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		reported, err = s.reports.ReportedDatesIn(gctx, calendar.FormatISO(start), calendar.FormatISO(end))
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := []UserMissingDates{}
	for _, m := range members {
		missing := missingInWindow(m.UserID, start, end, ranges, reported)
		if len(missing) == 0 {
			continue
		}
		results = append(results, UserMissingDates{User: m, MissingDates: missing})
	}
	return results, nil
}

// DefaultCheckDate exposes the calendar rule for callers that only hold the
// service.
func (s *ComplianceService) DefaultCheckDate(today time.Time) time.Time {
	return calendar.DefaultCheckDate(today)
}

func missingInWindow(userID string, start, end time.Time, ranges []entities.IgnoredDateRange, reported map[string]map[string]bool) []string {
	userDates := reported[userID]
	missing := []string{}

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if !calendar.IsCheckable(d, ranges) {
			continue
		}
		iso := calendar.FormatISO(d)
		if !userDates[iso] {
			missing = append(missing, iso)
		}
	}
	return missing
}
