// Package normalize converts the loose date and amount tokens found in
// bank statements into canonical values.
package normalize

import (
	"strings"
	"time"
)

// DefaultYearPivot resolves two-digit years: yy < pivot is 20yy, else 19yy.
const DefaultYearPivot = 50

// DateParser parses heterogeneous statement date tokens. The zero value is
// not usable; construct with NewDateParser.
type DateParser struct {
	yearPivot int
	now       func() time.Time
}

// NewDateParser returns a DateParser with the given two-digit-year pivot.
// A pivot <= 0 falls back to DefaultYearPivot.
func NewDateParser(yearPivot int) *DateParser {
	if yearPivot <= 0 {
		yearPivot = DefaultYearPivot
	}
	return &DateParser{yearPivot: yearPivot, now: time.Now}
}

// WithClock overrides the wall clock used for the unparseable fallback.
func (p *DateParser) WithClock(now func() time.Time) *DateParser {
	p.now = now
	return p
}

// knownLayouts are tried before any heuristic splitting.
var knownLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"01-02-2006",
	time.RFC3339,
}

// Parse converts a raw date token into a valid instant. Unparseable input
// degrades to the current wall-clock time, never to an error: a lost date
// is preferable to a lost transaction.
func (p *DateParser) Parse(raw string) time.Time {
	if t, ok := p.ParseStrict(raw); ok {
		return t
	}
	return p.now().UTC()
}

// ParseStrict is Parse without the fallback; ok is false when no known
// shape matched.
func (p *DateParser) ParseStrict(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	for _, layout := range knownLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), true
		}
	}

	if t, ok := parseCompact(raw); ok {
		return t, true
	}

	return p.parseSplit(raw)
}

// parseCompact handles YYYYMMDD with an optional time suffix (ignored).
// Fields are positional: chars 0-3 year, 4-5 month, 6-7 day.
func parseCompact(raw string) (time.Time, bool) {
	if len(raw) < 8 || !allDigits(raw[:8]) {
		return time.Time{}, false
	}
	year := atoi(raw[0:4])
	month := atoi(raw[4:6])
	day := atoi(raw[6:8])
	return makeDate(year, month, day)
}

// parseSplit handles slash- or dash-delimited dates: Y/M/D when the first
// field is four digits, D/M/Y otherwise.
func (p *DateParser) parseSplit(raw string) (time.Time, bool) {
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == '/' || r == '-'
	})
	if len(parts) != 3 {
		return time.Time{}, false
	}
	for _, part := range parts {
		if !allDigits(part) {
			return time.Time{}, false
		}
	}

	var year, month, day int
	if len(parts[0]) == 4 {
		year, month, day = atoi(parts[0]), atoi(parts[1]), atoi(parts[2])
	} else {
		day, month, year = atoi(parts[0]), atoi(parts[1]), atoi(parts[2])
	}

	if year < 100 {
		if len(parts[0]) == 4 || len(parts[2]) != 2 {
			return time.Time{}, false
		}
		if year < p.yearPivot {
			year += 2000
		} else {
			year += 1900
		}
	}

	return makeDate(year, month, day)
}

// makeDate builds a date and rejects out-of-range components. time.Date
// silently wraps (month 13 becomes January), so the components are checked
// against the round trip.
func makeDate(year, month, day int) (time.Time, bool) {
	if year < 1000 || month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}
