package domain

import "time"

// Window bounds a single UTC day. End is always exactly 24 hours after Start,
// both at midnight boundaries.
type Window struct {
	Start time.Time
	End   time.Time
}

// NewWindow builds the UTC day window for the given date parts. Parts left at
// zero default to the corresponding part of now. The caller supplies now so
// that "today" stays deterministic under test.
func NewWindow(now time.Time, year, month, day int) (Window, error) {
	now = now.UTC()
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	if day == 0 {
		day = now.Day()
	}

	start := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out-of-range parts (month 13 rolls into the next
	// year), so a changed part means the input was not a real calendar date.
	if start.Year() != year || start.Month() != time.Month(month) || start.Day() != day {
		return Window{}, &InvalidDateError{Year: year, Month: month, Day: day}
	}

	return Window{Start: start, End: start.Add(24 * time.Hour)}, nil
}

// Day returns the window's date formatted as YYYY-MM-DD.
func (w Window) Day() string {
	return w.Start.Format("2006-01-02")
}
