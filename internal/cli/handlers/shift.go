package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/xolan/tog/internal/cli"
	"github.com/xolan/tog/internal/entry"
	"github.com/xolan/tog/internal/service"
)

// ShiftOptions holds the non-interactive parts of a shift
type ShiftOptions struct {
	// At is the new start as HH:MM; prompted for when empty
	At string
	// Yes skips the confirmation
	Yes bool
}

// ShiftEntry moves the start of one of today's entries.
// Neighbouring entries are never edited; a gap or overlap left behind is
// reported so it can be fixed by hand.
func ShiftEntry(ctx context.Context, deps *cli.Deps, opts ShiftOptions) {
	svcs, ok := loadServices(deps)
	if !ok {
		return
	}

	entries, err := svcs.Timer.RecentEntries(ctx)
	if err != nil {
		reportError(deps, err)
		return
	}
	if len(entries) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, deps.Styles.Muted.Render("No time entries today"))
		return
	}

	now := svcs.Timer.Now()
	loc := now.Location()

	rows := make([]string, len(entries))
	for i, e := range entries {
		name, _ := svcs.Timer.ProjectName(e.ProjectID)
		rows[i] = cli.FormatEntryLine(e, name, now, loc)
	}

	idx, err := deps.Prompter.Select("Which entry should start at a different time?", rows)
	if err != nil {
		reportError(deps, err)
		return
	}
	target := entries[idx]

	raw := opts.At
	if raw == "" {
		raw, err = deps.Prompter.Input("New start time (HH:MM)", target.Start.In(loc).Format("15:04"))
		if err != nil {
			reportError(deps, err)
			return
		}
	}

	newStart, err := entry.ParseClock(raw, target.Start.In(loc))
	if err != nil {
		reportError(deps, err)
		return
	}

	var previous *entry.Entry
	if idx+1 < len(entries) {
		previous = &entries[idx+1]
	}

	plan, err := service.PlanShift(target, previous, newStart, now)
	if err != nil {
		reportError(deps, err)
		return
	}
	if !plan.Changed {
		_, _ = fmt.Fprintf(deps.Stdout, "%s already starts at %s, nothing to change\n",
			target.Description, cli.FormatClock(target.Start, loc))
		return
	}

	if !opts.Yes {
		name, _ := svcs.Timer.ProjectName(plan.Entry.ProjectID)
		preview := cli.FormatEntryLine(plan.Entry, name, now, loc)
		if note := neighbourNote(plan, loc); note != "" {
			preview += "\n" + note
		}
		confirmed, err := deps.Prompter.Confirm("Apply this change?", preview)
		if err != nil {
			reportError(deps, err)
			return
		}
		if !confirmed {
			_, _ = fmt.Fprintln(deps.Stdout, "Nothing changed")
			return
		}
	}

	result, err := svcs.Timer.Shift(ctx, target, newStart)
	if err != nil {
		reportError(deps, err)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Shifted: %s  %s -> %s\n",
		result.Entry.Description,
		cli.FormatClock(result.Original.Start, loc),
		deps.Styles.Running.Render(cli.FormatClock(result.Entry.Start, loc)),
	)
	if note := neighbourNote(result, loc); note != "" {
		_, _ = fmt.Fprintln(deps.Stdout, deps.Styles.Warning.Render(note))
	}
}

// neighbourNote describes a gap or overlap with the previous entry, or "".
func neighbourNote(r *service.ShiftResult, loc *time.Location) string {
	if r.Previous == nil {
		return ""
	}
	prevEnd := "now"
	if r.Previous.Stop != nil {
		prevEnd = cli.FormatClock(*r.Previous.Stop, loc)
	}

	switch {
	case r.Gap > 0:
		return fmt.Sprintf("Note: leaves a gap of %s after %q, which ends at %s",
			cli.FormatMinutes(r.Gap), r.Previous.Description, prevEnd)
	case r.Overlap > 0:
		return fmt.Sprintf("Note: overlaps %q by %s, which ends at %s",
			r.Previous.Description, cli.FormatMinutes(r.Overlap), prevEnd)
	}
	return ""
}
