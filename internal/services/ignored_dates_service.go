package services

import (
	"context"
	"fmt"
	"time"

	"team-analysis/standup/internal/calendar"
	"team-analysis/standup/internal/config"
	"team-analysis/standup/internal/db/repositories"
	"team-analysis/standup/internal/logging"
	"team-analysis/standup/internal/metrics"
	"team-analysis/standup/internal/models/entities"
)

// IgnoredDatesService fronts the ignored-date registry for the admin
// surface: bulk replace from the comma-separated config text, removal by id,
// and the test-a-date probe.
type IgnoredDatesService struct {
	ignored *repositories.IgnoredDatesRepository
	metrics *metrics.MetricsRegistry
}

func NewIgnoredDatesService(ignored *repositories.IgnoredDatesRepository, reg *metrics.MetricsRegistry) *IgnoredDatesService {
	return &IgnoredDatesService{ignored: ignored, metrics: reg}
}

// List returns the configured ranges ordered by start date.
func (s *IgnoredDatesService) List(ctx context.Context) ([]entities.IgnoredDateRange, error) {
	ranges, err := s.ignored.List(ctx)
	if err != nil {
		return nil, err
	}
	s.metrics.IgnoredRangesConfigured.Set(float64(len(ranges)))
	return ranges, nil
}

// Replace parses the comma-separated date-config text and swaps the whole
// registry for the result. Unparseable tokens are dropped, never fatal;
// returns how many ranges were stored.
func (s *IgnoredDatesService) Replace(ctx context.Context, text, createdBy string) (int, error) {
	pairs := calendar.ParseDateConfig(text)
	inserted, err := s.ignored.ReplaceAll(ctx, pairs, createdBy, config.Now())
	if err != nil {
		return 0, err
	}

	s.metrics.IgnoredRangesConfigured.Set(float64(inserted))
	logging.Info("Ignored-date registry replaced", "updatedBy", createdBy, "ranges", inserted)
	return inserted, nil
}

// Remove deletes one range by id; a missing id is reported, not an error.
func (s *IgnoredDatesService) Remove(ctx context.Context, id int64) (bool, error) {
	removed, err := s.ignored.Remove(ctx, id)
	if err != nil {
		return false, err
	}
	if removed {
		logging.Info("Ignored-date range removed", "id", id)
	}
	return removed, nil
}

// TestDate reports whether a date, given in any accepted format, currently
// falls inside an ignored range.
func (s *IgnoredDatesService) TestDate(ctx context.Context, raw string) (iso string, ignored bool, err error) {
	iso, err = calendar.ParseDate(raw)
	if err != nil {
		return "", false, fmt.Errorf("date %q: %w", raw, err)
	}

	ranges, err := s.ignored.List(ctx)
	if err != nil {
		return "", false, err
	}

	date, _ := time.Parse(calendar.ISO, iso)
	return iso, calendar.IsIgnored(date, ranges), nil
}
