package calendar

import (
	"errors"
	"strings"
	"time"

	"team-analysis/standup/internal/logging"
)

// ISO is the storage layout for calendar dates.
const ISO = "2006-01-02"

// ErrInvalidDate is returned when a value does not parse in any accepted
// date format.
var ErrInvalidDate = errors.New("invalid date")

// acceptedLayouts are the three textual formats users may type, tried in
// order.
var acceptedLayouts = []string{ISO, "2006/01/02", "02/01/2006"}

// ParseDate parses a date in any accepted format and returns it normalized
// to ISO form.
func ParseDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	for _, layout := range acceptedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(ISO), nil
		}
	}
	return "", ErrInvalidDate
}

// FormatISO renders a date in storage form.
func FormatISO(date time.Time) string {
	return date.Format(ISO)
}

// MustDate parses an ISO date already validated upstream.
func MustDate(iso string) time.Time {
	t, _ := time.Parse(ISO, iso)
	return t
}

// DatePair is a half-parsed ignored-range candidate, both ends in ISO form.
// Ordering (start <= end) is validated at insert time, not here.
type DatePair struct {
	Start string
	End   string
}

// ParseDateConfig parses a comma-separated ignored-date configuration.
// Each token is either a single date in any accepted format, or two dates
// joined by a literal "-". Tokens that fail to parse are dropped with a log
// line; the parse itself never fails.
func ParseDateConfig(text string) []DatePair {
	var result []DatePair
	if strings.TrimSpace(text) == "" {
		return result
	}

	for _, part := range strings.Split(text, ",") {
		token := strings.TrimSpace(part)
		if token == "" {
			continue
		}

		pair, ok := parseToken(token)
		if !ok {
			logging.Warn("Dropping unparseable ignored-date token", "token", token)
			continue
		}
		result = append(result, pair)
	}

	return result
}

// parseToken resolves the single-date / range ambiguity of one token.
//
// A token with exactly one hyphen is first split on it and tried as a range
// (DD/MM/YYYY and YYYY/MM/DD sides carry no hyphen of their own), falling
// back to a single date. Tokens with more hyphens are tried as a single
// ISO date first, then as a range split at each hyphen left to right, which
// resolves YYYY-MM-DD-YYYY-MM-DD at the third hyphen.
func parseToken(token string) (DatePair, bool) {
	if strings.Count(token, "-") == 1 {
		if pair, ok := splitRangeAt(token, strings.Index(token, "-")); ok {
			return pair, true
		}
		if d, err := ParseDate(token); err == nil {
			return DatePair{Start: d, End: d}, true
		}
		return DatePair{}, false
	}

	if d, err := ParseDate(token); err == nil {
		return DatePair{Start: d, End: d}, true
	}

	for i := 0; i < len(token); i++ {
		if token[i] != '-' {
			continue
		}
		if pair, ok := splitRangeAt(token, i); ok {
			return pair, true
		}
	}

	return DatePair{}, false
}

func splitRangeAt(token string, idx int) (DatePair, bool) {
	if idx <= 0 || idx >= len(token)-1 {
		return DatePair{}, false
	}

	start, err := ParseDate(token[:idx])
	if err != nil {
		return DatePair{}, false
	}
	end, err := ParseDate(token[idx+1:])
	if err != nil {
		return DatePair{}, false
	}

	return DatePair{Start: start, End: end}, true
}
