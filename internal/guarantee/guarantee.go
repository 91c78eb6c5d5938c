// Package guarantee derives a guarantee's end date from its start date and a
// duration label such as "2 سنوات". The window is inclusive on both ends: the
// end date is start + years - 1 day.
package guarantee

import (
	"regexp"
	"strconv"
	"time"

	"carshield-admin-api/internal/model"
	"carshield-admin-api/internal/normalize"
)

// DateLayout is the wire format of wizard dates.
const DateLayout = "2006-01-02"

var leadingInt = regexp.MustCompile(`^\s*(\d+)`)

// Years extracts the leading integer token of a duration label. ok is false
// when the label carries no leading positive integer.
func Years(label string) (int, bool) {
	m := leadingInt.FindStringSubmatch(normalize.Digits(label))
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// EndDate computes the inclusive end of the guarantee window. ok is false for
// a zero start or an unparseable duration; no date is ever fabricated.
func EndDate(start time.Time, durationLabel string) (time.Time, bool) {
	if start.IsZero() {
		return time.Time{}, false
	}
	years, ok := Years(durationLabel)
	if !ok {
		return time.Time{}, false
	}
	return start.AddDate(years, 0, 0).AddDate(0, 0, -1), true
}

// EndDateString is EndDate over YYYY-MM-DD strings, returning "" when either
// input is malformed.
func EndDateString(start, durationLabel string) string {
	t, err := time.Parse(DateLayout, start)
	if err != nil {
		return ""
	}
	end, ok := EndDate(t, durationLabel)
	if !ok {
		return ""
	}
	return end.Format(DateLayout)
}

// Recompute overwrites g.EndDate from the current start date and duration.
// When either input is empty or malformed the end date is cleared rather than
// left stale. Call sites must invoke this whenever either input changes; the
// end date itself is display-only.
func Recompute(g *model.Guarantee) {
	if g == nil {
		return
	}
	g.EndDate = EndDateString(g.StartDate, g.Duration)
}
