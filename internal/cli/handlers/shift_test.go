package handlers

import (
	"context"
	"strings"
	"testing"

	"github.com/xolan/tog/internal/entry"
	"github.com/xolan/tog/internal/failure"
)

// today is, most recent first: Review 10:00-now, Coding 09:00-10:00, Meeting 08:00-09:00.
func today() *fakeTimer {
	return &fakeTimer{entries: []entry.Entry{
		running(3, 7, "Review", at(10, 0)),
		stopped(2, 5, "Coding", at(9, 0), at(10, 0)),
		stopped(1, 5, "Meeting", at(8, 0), at(9, 0)),
	}}
}

func TestShiftEntry_WithFlags(t *testing.T) {
	client := today()
	prompter := &fakePrompter{choice: 1}
	deps, stdout, _, exitCode := setupTestDeps(t, client, prompter)

	ShiftEntry(context.Background(), deps, ShiftOptions{At: "09:15", Yes: true})

	if *exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *exitCode)
	}
	if prompter.inputs != 0 || prompter.confirms != 0 {
		t.Errorf("expected no input or confirm prompt, got %d and %d", prompter.inputs, prompter.confirms)
	}
	if len(client.replaced) != 1 {
		t.Fatalf("expected 1 replace, got %d", len(client.replaced))
	}
	got := client.replaced[0]
	if got.ID != 2 || !got.Start.Equal(at(9, 15)) || !got.Stop.Equal(at(10, 0)) {
		t.Errorf("unexpected replaced entry %+v", got)
	}

	out := stdout.String()
	if !strings.Contains(out, "Shifted: Coding  09:00:00 -> 09:15:00") {
		t.Errorf("expected shift summary, got %q", out)
	}
	if !strings.Contains(out, `Note: leaves a gap of 15m after "Meeting", which ends at 09:00:00`) {
		t.Errorf("expected gap note, got %q", out)
	}
}

func TestShiftEntry_PickerRows(t *testing.T) {
	prompter := &fakePrompter{err: failure.NoSelection("prompt.select")}
	deps, stdout, _, exitCode := setupTestDeps(t, today(), prompter)

	ShiftEntry(context.Background(), deps, ShiftOptions{})

	if *exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *exitCode)
	}
	expected := []string{
		"Review       Client                 10:00:00 -      now  1h 0s",
		"Coding       Internal               09:00:00 - 10:00:00  1h 0s",
		"Meeting      Internal               08:00:00 - 09:00:00  1h 0s",
	}
	if len(prompter.options) != len(expected) {
		t.Fatalf("expected %d rows, got %q", len(expected), prompter.options)
	}
	for i, want := range expected {
		if prompter.options[i] != want {
			t.Errorf("row %d = %q, expected %q", i, prompter.options[i], want)
		}
	}
	if !strings.Contains(stdout.String(), "Nothing selected") {
		t.Errorf("expected 'Nothing selected', got %q", stdout.String())
	}
}

func TestShiftEntry_PromptedAndConfirmed(t *testing.T) {
	client := today()
	prompter := &fakePrompter{choice: 1, input: "08:45", confirm: true}
	deps, stdout, _, exitCode := setupTestDeps(t, client, prompter)

	ShiftEntry(context.Background(), deps, ShiftOptions{})

	if *exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *exitCode)
	}
	if prompter.inputs != 1 || prompter.confirms != 1 {
		t.Errorf("expected one input and one confirm, got %d and %d", prompter.inputs, prompter.confirms)
	}
	if !strings.Contains(prompter.description, "08:45:00 - 10:00:00") {
		t.Errorf("expected preview of the shifted entry, got %q", prompter.description)
	}
	if !strings.Contains(prompter.description, `overlaps "Meeting" by 15m`) {
		t.Errorf("expected overlap in preview, got %q", prompter.description)
	}
	if len(client.replaced) != 1 || !client.replaced[0].Start.Equal(at(8, 45)) {
		t.Errorf("expected start moved to 08:45, got %+v", client.replaced)
	}
	if !strings.Contains(stdout.String(), `Note: overlaps "Meeting" by 15m, which ends at 09:00:00`) {
		t.Errorf("expected overlap note, got %q", stdout.String())
	}
}

func TestShiftEntry_Declined(t *testing.T) {
	client := today()
	prompter := &fakePrompter{choice: 1, input: "09:15", confirm: false}
	deps, stdout, _, exitCode := setupTestDeps(t, client, prompter)

	ShiftEntry(context.Background(), deps, ShiftOptions{})

	if *exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *exitCode)
	}
	if len(client.replaced) != 0 {
		t.Errorf("expected no replace, got %d", len(client.replaced))
	}
	if !strings.Contains(stdout.String(), "Nothing changed") {
		t.Errorf("expected 'Nothing changed', got %q", stdout.String())
	}
}

func TestShiftEntry_RunningEntry(t *testing.T) {
	client := today()
	deps, stdout, _, exitCode := setupTestDeps(t, client, &fakePrompter{choice: 0})

	ShiftEntry(context.Background(), deps, ShiftOptions{At: "0930", Yes: true})

	if *exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *exitCode)
	}
	if len(client.replaced) != 1 {
		t.Fatalf("expected 1 replace, got %d", len(client.replaced))
	}
	got := client.replaced[0]
	if !got.Start.Equal(at(9, 30)) || got.Stop != nil || got.Duration != -1 {
		t.Errorf("running entry should stay running with a new start, got %+v", got)
	}
	if !strings.Contains(stdout.String(), `overlaps "Coding" by 30m`) {
		t.Errorf("expected overlap note, got %q", stdout.String())
	}
}

func TestShiftEntry_Rejected(t *testing.T) {
	tests := []struct {
		name   string
		choice int
		at     string
		expect string
	}{
		{"past own stop", 1, "10:30", "is not before 10:00"},
		{"at own stop", 1, "10:00", "is not before 10:00"},
		{"erases previous", 1, "08:00", `would erase the previous entry "Meeting"`},
		{"running past now", 0, "11:30", "is running until now"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := today()
			prompter := &fakePrompter{choice: tt.choice}
			deps, _, stderr, exitCode := setupTestDeps(t, client, prompter)

			ShiftEntry(context.Background(), deps, ShiftOptions{At: tt.at})

			if *exitCode != 1 {
				t.Errorf("expected exit code 1, got %d", *exitCode)
			}
			if !strings.Contains(stderr.String(), "Error: Cannot shift entry") {
				t.Errorf("expected shift error, got %q", stderr.String())
			}
			if !strings.Contains(stderr.String(), tt.expect) {
				t.Errorf("expected %q in details, got %q", tt.expect, stderr.String())
			}
			if prompter.confirms != 0 {
				t.Error("a rejected shift should not ask for confirmation")
			}
			if len(client.replaced) != 0 {
				t.Errorf("expected no replace, got %d", len(client.replaced))
			}
		})
	}
}

func TestShiftEntry_InvalidTime(t *testing.T) {
	client := today()
	deps, _, stderr, exitCode := setupTestDeps(t, client, &fakePrompter{choice: 1, input: "9:3"})

	ShiftEntry(context.Background(), deps, ShiftOptions{})

	if *exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", *exitCode)
	}
	if !strings.Contains(stderr.String(), "Error: Invalid input") {
		t.Errorf("expected invalid input error, got %q", stderr.String())
	}
	if len(client.replaced) != 0 {
		t.Errorf("expected no replace, got %d", len(client.replaced))
	}
}

func TestShiftEntry_Unchanged(t *testing.T) {
	client := today()
	prompter := &fakePrompter{choice: 1}
	deps, stdout, _, exitCode := setupTestDeps(t, client, prompter)

	ShiftEntry(context.Background(), deps, ShiftOptions{At: "09:00"})

	if *exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *exitCode)
	}
	if !strings.Contains(stdout.String(), "Coding already starts at 09:00:00") {
		t.Errorf("expected unchanged notice, got %q", stdout.String())
	}
	if prompter.confirms != 0 || len(client.replaced) != 0 {
		t.Error("an unchanged start should neither confirm nor replace")
	}
}

func TestShiftEntry_NoEntries(t *testing.T) {
	prompter := &fakePrompter{}
	deps, stdout, _, exitCode := setupTestDeps(t, &fakeTimer{}, prompter)

	ShiftEntry(context.Background(), deps, ShiftOptions{})

	if *exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *exitCode)
	}
	if !strings.Contains(stdout.String(), "No time entries today") {
		t.Errorf("expected 'No time entries today', got %q", stdout.String())
	}
	if prompter.options != nil {
		t.Error("picker should not be shown without entries")
	}
}
