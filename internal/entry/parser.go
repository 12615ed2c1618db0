package entry

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/xolan/tog/internal/failure"
)

// clockPattern matches a wall-clock time as HH:MM or HHMM (e.g., "09:30", "0930")
var clockPattern = regexp.MustCompile(`^(\d{2}):?(\d{2})$`)

// ParseClock parses a two-digit hour and minute and places it on day's
// calendar date, in day's location. Seconds are zeroed.
// Valid inputs: "09:30", "0930", "23:59"
// Invalid inputs: "9:3", "930", "25:00", "12:60", ""
func ParseClock(raw string, day time.Time) (time.Time, error) {
	input := strings.TrimSpace(raw)
	matches := clockPattern.FindStringSubmatch(input)
	if matches == nil {
		return time.Time{}, failure.Invalid("entry.clock", "invalid time %q: expected HH:MM or HHMM, e.g. 09:30", raw)
	}

	// Both groups are exactly two digits, so Atoi cannot fail
	hour, _ := strconv.Atoi(matches[1])
	minute, _ := strconv.Atoi(matches[2])

	if hour > 23 {
		return time.Time{}, failure.Invalid("entry.clock", "invalid time %q: hour must be 00-23", raw)
	}
	if minute > 59 {
		return time.Time{}, failure.Invalid("entry.clock", "invalid time %q: minute must be 00-59", raw)
	}

	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location()), nil
}
