package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// clockPattern matches 12-hour clock display strings like "8:30 AM".
var clockPattern = regexp.MustCompile(`(\d{1,2}):(\d{2})\s*(AM|PM)`)

// NextDayMarker flags an arrival on the day after departure.
const NextDayMarker = "(+1)"

// minutesPerDay is used when an arrival rolls past midnight.
const minutesPerDay = 24 * 60

// ParseClockMinutes extracts a 12-hour clock time from a display string and
// returns it as minutes since midnight. The string may carry surrounding
// text (e.g. "Departs 8:30 AM EST").
func ParseClockMinutes(display string) (int, error) {
	m := clockPattern.FindStringSubmatch(display)
	if m == nil {
		return 0, fmt.Errorf("no clock time in %q", display)
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil || hour < 1 || hour > 12 {
		return 0, fmt.Errorf("invalid hour in %q", display)
	}
	minute, err := strconv.Atoi(m[2])
	if err != nil || minute > 59 {
		return 0, fmt.Errorf("invalid minute in %q", display)
	}

	// Convert to 24-hour
	switch m[3] {
	case "PM":
		if hour != 12 {
			hour += 12
		}
	case "AM":
		if hour == 12 {
			hour = 0
		}
	}

	return hour*60 + minute, nil
}

// ScheduleDuration computes the minutes between a departure and an arrival
// display string. An arrival carrying the "(+1)" marker, or one that appears
// earlier in the day than the departure, is treated as next-day.
func ScheduleDuration(departure, arrival string) (int, error) {
	dep, err := ParseClockMinutes(departure)
	if err != nil {
		return 0, fmt.Errorf("departure: %w", err)
	}
	arr, err := ParseClockMinutes(arrival)
	if err != nil {
		return 0, fmt.Errorf("arrival: %w", err)
	}

	if strings.Contains(arrival, NextDayMarker) {
		arr += minutesPerDay
	}

	duration := arr - dep
	if duration < 0 {
		duration += minutesPerDay
	}
	return duration, nil
}

// ClockAfter reports whether candidate is at or after reference, both given
// as display strings with embedded 12-hour clock times. Returns false when
// either string has no parseable time.
func ClockAfter(candidate, reference string) bool {
	c, err := ParseClockMinutes(candidate)
	if err != nil {
		return false
	}
	r, err := ParseClockMinutes(reference)
	if err != nil {
		return false
	}
	return c >= r
}
