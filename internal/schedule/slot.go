// Package schedule holds the pure appointment-scheduling logic shared by the
// booking, inbox and reschedule flows: 12-hour slot parsing, booking windows
// and calendar deep links.
package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatError reports a time or date string that could not be parsed.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid value %q: %s", e.Input, e.Reason)
}

// BookingSlots is the closed list of hourly slots offered when creating an
// appointment.
var BookingSlots = []string{
	"9:00 AM", "10:00 AM", "11:00 AM", "12:00 PM",
	"2:00 PM", "3:00 PM", "4:00 PM", "5:00 PM",
}

// RescheduleSlots is the finer half-hour grid used when moving an existing
// appointment.
var RescheduleSlots = []string{
	"9:00 AM", "9:30 AM", "10:00 AM", "10:30 AM", "11:00 AM", "11:30 AM",
	"1:00 PM", "1:30 PM", "2:00 PM", "2:30 PM", "3:00 PM", "3:30 PM",
	"4:00 PM", "4:30 PM", "5:00 PM",
}

// ParseSlot parses a 12-hour clock string such as "2:00 PM" into a 24-hour
// hour and minute. "12:00 AM" is midnight, "12:00 PM" is noon.
func ParseSlot(s string) (hour, minute int, err error) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) != 2 {
		return 0, 0, &FormatError{Input: s, Reason: "expected \"H:MM AM\" or \"H:MM PM\""}
	}

	meridiem := strings.ToUpper(fields[1])
	if meridiem != "AM" && meridiem != "PM" {
		return 0, 0, &FormatError{Input: s, Reason: "missing AM/PM marker"}
	}

	parts := strings.Split(fields[0], ":")
	if len(parts) != 2 {
		return 0, 0, &FormatError{Input: s, Reason: "expected hour and minute separated by a colon"}
	}
	hour12, convErr := strconv.Atoi(parts[0])
	if convErr != nil {
		return 0, 0, &FormatError{Input: s, Reason: "hour is not a number"}
	}
	minute, convErr = strconv.Atoi(parts[1])
	if convErr != nil {
		return 0, 0, &FormatError{Input: s, Reason: "minute is not a number"}
	}
	if hour12 < 1 || hour12 > 12 {
		return 0, 0, &FormatError{Input: s, Reason: "hour must be between 1 and 12"}
	}
	if minute < 0 || minute > 59 {
		return 0, 0, &FormatError{Input: s, Reason: "minute must be between 0 and 59"}
	}

	hour = hour12 % 12 // 12 AM is midnight
	if meridiem == "PM" {
		hour += 12 // 12 PM stays noon: 12 % 12 == 0, then +12
	}
	return hour, minute, nil
}

// FormatSlot renders a 24-hour hour and minute as a 12-hour clock string.
// It is the inverse of ParseSlot for every valid 24-hour input.
func FormatSlot(hour24, minute int) string {
	meridiem := "AM"
	if hour24 >= 12 {
		meridiem = "PM"
	}
	hour12 := hour24 % 12
	if hour12 == 0 {
		hour12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour12, minute, meridiem)
}

// SlotToStorage converts a 12-hour slot string to the HH:MM:SS form
// appointment records store.
func SlotToStorage(s string) (string, error) {
	hour, minute, err := ParseSlot(s)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%02d:%02d:00", hour, minute), nil
}

// StorageToSlot converts a stored HH:MM:SS value back to its 12-hour display
// form.
func StorageToSlot(s string) (string, error) {
	t, err := time.Parse("15:04:05", s)
	if err != nil {
		return "", &FormatError{Input: s, Reason: "expected HH:MM:SS"}
	}
	return FormatSlot(t.Hour(), t.Minute()), nil
}

// IsListed reports whether slot is a member of the given enumerated slot set.
func IsListed(slot string, set []string) bool {
	for _, s := range set {
		if s == slot {
			return true
		}
	}
	return false
}
