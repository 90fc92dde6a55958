// Package calendar decides which dates are subject to daily-report
// compliance. All functions are pure over their inputs; the ignored-range
// snapshot is mutable administrative state and must be re-fetched by callers
// for every decision.
package calendar

import (
	"time"

	"team-analysis/standup/internal/models/entities"
)

// IsWeekend reports whether the date falls on Saturday or Sunday.
func IsWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsIgnored reports whether the date falls inside any configured ignored
// range, bounds inclusive. Dates compare lexicographically in ISO form.
func IsIgnored(date time.Time, ranges []entities.IgnoredDateRange) bool {
	iso := FormatISO(date)
	for _, r := range ranges {
		if r.StartDate <= iso && iso <= r.EndDate {
			return true
		}
	}
	return false
}

// IsCheckable reports whether daily-report compliance is expected for the
// date: a weekday that is not ignored.
func IsCheckable(date time.Time, ranges []entities.IgnoredDateRange) bool {
	return !IsWeekend(date) && !IsIgnored(date, ranges)
}

// DefaultCheckDate returns the date whose reports are collected when no
// explicit date is given: yesterday, except that a Saturday or Sunday
// yesterday maps to the preceding Friday.
//
// This is deliberately not a general walk-back-to-a-weekday loop: only the
// exact Saturday/Sunday landings are special-cased, and a Friday that is
// itself an ignored date is still returned. Ignored-date policy is applied
// separately by IsCheckable.
func DefaultCheckDate(today time.Time) time.Time {
	yesterday := today.AddDate(0, 0, -1)

	switch yesterday.Weekday() {
	case time.Sunday:
		return today.AddDate(0, 0, -3)
	case time.Saturday:
		return today.AddDate(0, 0, -2)
	default:
		return yesterday
	}
}
