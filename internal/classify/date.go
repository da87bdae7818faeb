package classify

import (
	"strconv"
	"strings"
	"time"
)

// ParseDate parses a register date (DD.MM.YYYY or DD.MM.YY) and returns the
// validated time, its canonical YYYY-MM-DD display string, and whether the
// input was well-formed.
//
// One function produces both the bucketing date and the display key, so the
// two can never disagree on which day a malformed row lands in. Malformed
// input falls back to now: a bad date must not abort the batch, only move
// the row to the current day, and the caller logs the anomaly.
func ParseDate(s string, now time.Time) (time.Time, string, bool) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) != 3 {
		return fallback(now)
	}

	day, errD := strconv.Atoi(parts[0])
	month, errM := strconv.Atoi(parts[1])
	year, errY := strconv.Atoi(parts[2])
	if errD != nil || errM != nil || errY != nil {
		return fallback(now)
	}
	if day < 1 || day > 31 || month < 1 || month > 12 {
		return fallback(now)
	}
	if year < 100 {
		year += 2000
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t, DayKey(t), true
}

func fallback(now time.Time) (time.Time, string, bool) {
	return now, DayKey(now), false
}

// DayKey formats the day-bucket key (YYYY-MM-DD).
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// MonthKey formats the month-bucket key (YYYY-MM).
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}
