// Package cli provides the CLI presentation layer for tog.
// It handles command-line output formatting and user interaction.
package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/xolan/tog/internal/entry"
)

const clockLayout = "15:04:05"

// FormatElapsed formats a duration the way tog always has:
// "2 days 3h 4m 5s", "1h 0s", "0s". Negative durations print as "0s".
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	days := total / 86400
	h := (total / 3600) % 24
	m := (total / 60) % 60
	s := total % 60

	var chunks []string
	if days > 0 {
		chunks = append(chunks, fmt.Sprintf("%d days", days))
	}
	if h > 0 {
		chunks = append(chunks, fmt.Sprintf("%dh", h))
	}
	if m > 0 {
		chunks = append(chunks, fmt.Sprintf("%dm", m))
	}
	chunks = append(chunks, fmt.Sprintf("%ds", s))

	return strings.Join(chunks, " ")
}

// FormatMinutes formats a gap or overlap: "5m", "1h 30m", "45s".
func FormatMinutes(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int64(d/time.Second))
	}
	totalMinutes := int(d.Minutes())
	if totalMinutes < 60 {
		return fmt.Sprintf("%dm", totalMinutes)
	}
	hours := totalMinutes / 60
	mins := totalMinutes % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// FormatActivity renders "description @ project".
func FormatActivity(description, projectName string) string {
	return fmt.Sprintf("%s @ %s", description, projectName)
}

// FormatRunning renders the one-line summary of a running entry.
func FormatRunning(e entry.Entry, projectName string, elapsed time.Duration) string {
	return fmt.Sprintf("%s   %s", FormatActivity(e.Description, projectName), FormatElapsed(elapsed))
}

// FormatClock renders t as wall-clock time in loc.
func FormatClock(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format(clockLayout)
}

// FormatEntryLine renders one row of the shift picker:
// "Coding       Internal               09:00:00 - 10:00:00  1h 0s".
// A running entry ends at "now" in the time column.
func FormatEntryLine(e entry.Entry, projectName string, now time.Time, loc *time.Location) string {
	end := "     now"
	if e.Stop != nil {
		end = FormatClock(*e.Stop, loc)
	}
	return fmt.Sprintf("%-10s   %-20s   %s - %s  %s",
		e.Description,
		projectName,
		FormatClock(e.Start, loc),
		end,
		FormatElapsed(e.Elapsed(now)),
	)
}
