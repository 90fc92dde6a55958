package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"team-analysis/standup/internal/calendar"
	"team-analysis/standup/internal/constants"
	"team-analysis/standup/internal/logging"
	"team-analysis/standup/internal/models/entities"
)

type IgnoredDatesRepository struct {
	db *sqlx.DB
}

func NewIgnoredDatesRepository(db *sqlx.DB) *IgnoredDatesRepository {
	return &IgnoredDatesRepository{db}
}

// Add validates and persists one ignored range, returning its id. Both dates
// must be ISO-parseable and start must not exceed end.
func (r *IgnoredDatesRepository) Add(ctx context.Context, startDate, endDate, createdBy string, now time.Time) (int64, error) {
	start, err := calendar.ParseDate(startDate)
	if err != nil {
		return 0, fmt.Errorf("start date %q: %w", startDate, err)
	}
	end, err := calendar.ParseDate(endDate)
	if err != nil {
		return 0, fmt.Errorf("end date %q: %w", endDate, err)
	}
	if start > end {
		return 0, fmt.Errorf("%q > %q: %w", start, end, ErrInvertedRange)
	}

	res, err := r.db.ExecContext(ctx, constants.InsertIgnoredDate, start, end, now, createdBy)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Remove deletes one range by id. A missing id is not an error; the bool
// reports whether a row was removed.
func (r *IgnoredDatesRepository) Remove(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, constants.DeleteIgnoredDate, id)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

// List returns every configured range ordered by start_date ascending.
func (r *IgnoredDatesRepository) List(ctx context.Context) ([]entities.IgnoredDateRange, error) {
	ranges := []entities.IgnoredDateRange{}
	err := r.db.SelectContext(ctx, &ranges, constants.GetIgnoredDates)
	return ranges, err
}

// ReplaceAll deletes every existing range and inserts the given pairs as the
// new configuration. The delete and insert phases are separate statements, so
// a concurrent reader may briefly observe an empty set; accepted for a
// low-concurrency admin operation. Returns how many pairs were inserted.
func (r *IgnoredDatesRepository) ReplaceAll(ctx context.Context, pairs []calendar.DatePair, createdBy string, now time.Time) (int, error) {
	if _, err := r.db.ExecContext(ctx, constants.DeleteAllIgnoredDates); err != nil {
		return 0, err
	}

	inserted := 0
	for _, pair := range pairs {
		if _, err := r.Add(ctx, pair.Start, pair.End, createdBy, now); err != nil {
			logging.Warn("Skipping invalid ignored-date pair",
				"start", pair.Start, "end", pair.End, "error", err.Error())
			continue
		}
		inserted++
	}
	return inserted, nil
}
