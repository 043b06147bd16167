package schedule

import (
	"fmt"
	"net/url"
	"time"
)

const calendarBaseURL = "https://calendar.google.com/calendar/render"

// calendarStamp is the compact basic format Google Calendar's render URL
// expects. The Z suffix is literal: we encode the local wall clock as-is,
// matching what the booking front-end has always produced.
const calendarStamp = "20060102T150405Z"

// Event describes a single appointment to be opened in an external calendar.
type Event struct {
	ParticipantName string
	Date            string // YYYY-MM-DD
	Time            string // 12-hour slot, e.g. "10:00 AM"
	DurationHours   int    // defaults to 1 when zero
	Details         string
	Location        string
}

// EventURL renders the Google Calendar deep link for the event. It is pure:
// identical inputs always yield byte-identical URLs.
func EventURL(ev Event) (string, error) {
	hour, minute, err := ParseSlot(ev.Time)
	if err != nil {
		return "", err
	}
	day, err := time.Parse(DateLayout, ev.Date)
	if err != nil {
		return "", &FormatError{Input: ev.Date, Reason: "expected YYYY-MM-DD"}
	}

	duration := ev.DurationHours
	if duration <= 0 {
		duration = 1
	}
	start := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.UTC)
	end := start.Add(time.Duration(duration) * time.Hour)

	return fmt.Sprintf("%s?action=TEMPLATE&text=%s&dates=%s/%s&details=%s&location=%s",
		calendarBaseURL,
		url.QueryEscape("Appointment with "+ev.ParticipantName),
		start.Format(calendarStamp),
		end.Format(calendarStamp),
		url.QueryEscape(ev.Details),
		url.QueryEscape(ev.Location),
	), nil
}
