package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/xolan/tog/internal/entry"
)

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{"zero", 0, "0s"},
		{"negative", -time.Minute, "0s"},
		{"seconds", 42 * time.Second, "42s"},
		{"exact minute", time.Minute, "1m 0s"},
		{"minutes and seconds", 3*time.Minute + 5*time.Second, "3m 5s"},
		{"exact hour", time.Hour, "1h 0s"},
		{"hours minutes seconds", 2*time.Hour + 15*time.Minute + 1*time.Second, "2h 15m 1s"},
		{"one day", 24 * time.Hour, "1 days 0s"},
		{"days and more", 50*time.Hour + 30*time.Second, "2 days 2h 30s"},
		{"sub-second truncated", 1500 * time.Millisecond, "1s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatElapsed(tt.duration); got != tt.expected {
				t.Errorf("FormatElapsed(%v) = %q, expected %q", tt.duration, got, tt.expected)
			}
		})
	}
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		duration time.Duration
		expected string
	}{
		{30 * time.Second, "30s"},
		{5 * time.Minute, "5m"},
		{59 * time.Minute, "59m"},
		{time.Hour, "1h"},
		{90 * time.Minute, "1h 30m"},
	}

	for _, tt := range tests {
		if got := FormatMinutes(tt.duration); got != tt.expected {
			t.Errorf("FormatMinutes(%v) = %q, expected %q", tt.duration, got, tt.expected)
		}
	}
}

func TestFormatRunning(t *testing.T) {
	e := entry.Entry{Description: "Coding"}

	got := FormatRunning(e, "Internal", 90*time.Minute)
	if got != "Coding @ Internal   1h 30m 0s" {
		t.Errorf("FormatRunning() = %q", got)
	}
}

func TestFormatClock(t *testing.T) {
	ts := time.Date(2024, 3, 4, 9, 5, 7, 0, time.UTC)

	if got := FormatClock(ts, nil); got != "09:05:07" {
		t.Errorf("FormatClock(nil) = %q", got)
	}
	if got := FormatClock(ts, time.FixedZone("UTC+2", 2*3600)); got != "11:05:07" {
		t.Errorf("FormatClock(UTC+2) = %q", got)
	}
}

func TestFormatEntryLine(t *testing.T) {
	start := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	stop := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	now := time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC)

	stopped := entry.Entry{Description: "Coding", Start: start, Stop: &stop, Duration: 3600}
	got := FormatEntryLine(stopped, "Internal", now, time.UTC)
	want := "Coding       Internal               09:00:00 - 10:00:00  1h 0s"
	if got != want {
		t.Errorf("FormatEntryLine(stopped) =\n%q\nexpected\n%q", got, want)
	}

	running := entry.Entry{Description: "Review", Start: stop, Duration: -1}
	got = FormatEntryLine(running, "Client", now, time.UTC)
	if !strings.Contains(got, "10:00:00 -      now") {
		t.Errorf("FormatEntryLine(running) = %q, expected open end", got)
	}
	if !strings.HasSuffix(got, "2h 0s") {
		t.Errorf("FormatEntryLine(running) = %q, expected elapsed until now", got)
	}
}
