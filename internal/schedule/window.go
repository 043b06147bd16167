package schedule

import (
	"time"
)

// DateLayout is the wire and storage format for appointment dates.
const DateLayout = "2006-01-02"

// Window is the forward-looking range of dates open for booking: today
// through Days days ahead, inclusive.
type Window struct {
	Days int
}

// Contains reports whether date falls inside the window. The reference time
// supplies "today" so callers and tests can pin it.
func (w Window) Contains(date string, now time.Time) (bool, error) {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return false, &FormatError{Input: date, Reason: "expected YYYY-MM-DD"}
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if d.Before(today) {
		return false, nil
	}
	return !d.After(today.AddDate(0, 0, w.Days)), nil
}
