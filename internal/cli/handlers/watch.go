package handlers

import (
	"context"
	"time"

	"github.com/xolan/tog/internal/cli"
	"github.com/xolan/tog/internal/failure"
	"github.com/xolan/tog/internal/tui"
)

// MinRefresh is the shortest refresh interval watch accepts.
const MinRefresh = 5 * time.Second

// WatchTimer opens the full-screen view of the running entry
func WatchTimer(ctx context.Context, deps *cli.Deps, refresh time.Duration) {
	const op = "watch"

	if refresh < MinRefresh {
		reportError(deps, failure.Invalid(op, "refresh interval %s is shorter than %s", refresh, MinRefresh))
		return
	}
	if !cli.IsTerminal(deps.Stdout) {
		reportError(deps, failure.Invalid(op, "an interactive terminal is required; use 'tog status' instead"))
		return
	}

	svcs, ok := loadServices(deps)
	if !ok {
		return
	}

	opts := tui.Options{Refresh: refresh, Theme: svcs.Config.Get().Theme}
	if err := tui.Run(ctx, svcs.Timer, opts); err != nil {
		reportError(deps, err)
	}
}
