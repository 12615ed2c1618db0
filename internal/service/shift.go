package service

import (
	"context"
	"time"

	"github.com/xolan/tog/internal/entry"
	"github.com/xolan/tog/internal/failure"
	"github.com/xolan/tog/internal/timeutil"
)

const clockLayout = "15:04"

// Shift moves target's start to newStart.
// target must come from RecentEntries; target's day is listed again and the
// shift is refused if target no longer matches what the service holds.
// Neighbours are never edited; a resulting gap or overlap is reported.
func (s *TimerService) Shift(ctx context.Context, target entry.Entry, newStart time.Time) (*ShiftResult, error) {
	const op = "service.shift"

	since := timeutil.StartOfDay(target.Start.In(s.now().Location()))
	entries, err := s.client.ListEntries(ctx, since)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range entries {
		if entries[i].ID == target.ID {
			idx = i
			break
		}
	}
	if idx < 0 || !entries[idx].Equal(target) {
		return nil, failure.Shift(op, "entry %d changed since it was selected; run shift again", target.ID)
	}

	// Entries are listed most recent first, so the one before target in
	// time is the next one in the list.
	var previous *entry.Entry
	if idx+1 < len(entries) {
		p := entries[idx+1]
		previous = &p
	}

	result, err := PlanShift(entries[idx], previous, newStart, s.now())
	if err != nil {
		return nil, err
	}
	if !result.Changed {
		s.logger.Debug("shift skipped, start unchanged", "id", target.ID)
		return result, nil
	}

	if err := s.client.ReplaceEntry(ctx, result.Entry); err != nil {
		return nil, err
	}
	s.logger.Debug("shifted entry",
		"id", result.Entry.ID,
		"from", result.Original.Start,
		"to", result.Entry.Start,
		"gap", result.Gap,
		"overlap", result.Overlap,
	)
	return result, nil
}

// PlanShift validates moving target's start to newStart and computes the
// entry to submit. previous is the entry that precedes target, if any.
//
// The new start must fall strictly after the previous entry's start and
// strictly before target's end (now, if target is running). Anything else
// would erase or invert one of the two entries.
func PlanShift(target entry.Entry, previous *entry.Entry, newStart, now time.Time) (*ShiftResult, error) {
	const op = "service.shift"

	end := target.End(now)
	if !newStart.Before(end) {
		what := "stops"
		if target.Stop == nil {
			what = "is running until now"
		}
		return nil, failure.Shift(op, "new start %s is not before %s, the entry %s",
			clock(newStart), clock(end.In(newStart.Location())), what)
	}

	if previous != nil && !newStart.After(previous.Start) {
		return nil, failure.Shift(op, "new start %s would erase the previous entry %q, which starts at %s",
			clock(newStart), previous.Description, clock(previous.Start.In(newStart.Location())))
	}

	result := &ShiftResult{
		Entry:    target.WithStart(newStart),
		Original: target,
		Previous: previous,
		Changed:  !newStart.Equal(target.Start),
	}

	if previous != nil {
		prevEnd := previous.End(now)
		switch {
		case newStart.After(prevEnd):
			result.Gap = newStart.Sub(prevEnd)
		case newStart.Before(prevEnd):
			result.Overlap = prevEnd.Sub(newStart)
		}
	}
	return result, nil
}

func clock(t time.Time) string {
	return t.Format(clockLayout)
}
