// Package service provides the business logic layer for tog.
// It drives the remote client for the five timer operations and owns the
// "no running entry", swap idempotency and shift reconciliation policies,
// providing one API for both the CLI and the watch view.
package service

import (
	"time"

	"github.com/xolan/tog/internal/entry"
)

// TimerStatus represents the remote running entry as of one query
type TimerStatus struct {
	Running      bool
	Entry        *entry.Entry // nil when nothing is running
	ProjectName  string       // catalog name, or the raw id when unknown
	ProjectKnown bool
	Elapsed      time.Duration
}

// SwapResult describes the outcome of a swap
type SwapResult struct {
	Entry    entry.Entry // the running entry after the swap
	Previous entry.Entry // the running entry before the swap
	Changed  bool        // false when the entry already matched and nothing was sent
}

// ShiftResult describes the outcome of a shift
type ShiftResult struct {
	Entry    entry.Entry  // the entry as submitted
	Original entry.Entry  // the entry as listed before the shift
	Previous *entry.Entry // the preceding neighbour, nil if the target was the day's first entry
	Changed  bool         // false when the new start equals the old one and nothing was sent

	// At most one of Gap and Overlap is non-zero. They measure the distance
	// between the previous neighbour's end and the new start, which the user
	// may want to fix by hand.
	Gap     time.Duration
	Overlap time.Duration
}
