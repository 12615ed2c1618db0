package handlers

import (
	"context"
	"fmt"

	"github.com/xolan/tog/internal/cli"
	"github.com/xolan/tog/internal/failure"
)

// ShowTimerStatus shows the running entry, if any
func ShowTimerStatus(ctx context.Context, deps *cli.Deps) {
	svcs, ok := loadServices(deps)
	if !ok {
		return
	}

	status, err := svcs.Timer.Status(ctx)
	if err != nil {
		reportError(deps, err)
		return
	}

	if !status.Running {
		_, _ = fmt.Fprintln(deps.Stdout, deps.Styles.Muted.Render("No time entry running"))
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "%s @ %s   %s\n",
		deps.Styles.Running.Render(status.Entry.Description),
		deps.Styles.Project.Render(status.ProjectName),
		deps.Styles.Elapsed.Render(cli.FormatElapsed(status.Elapsed)),
	)
}

// StartTimer asks for a project/activity and starts a new entry now
func StartTimer(ctx context.Context, deps *cli.Deps) {
	svcs, ok := loadServices(deps)
	if !ok {
		return
	}

	item, err := selectItem(deps, svcs.Catalog, "What are you working on?")
	if err != nil {
		reportError(deps, err)
		return
	}

	if _, err := svcs.Timer.Start(ctx, item); err != nil {
		reportError(deps, err)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Started: %s\n",
		deps.Styles.Running.Render(cli.FormatActivity(item.Description, item.ProjectName)))
}

// StopTimer stops the running entry
func StopTimer(ctx context.Context, deps *cli.Deps) {
	svcs, ok := loadServices(deps)
	if !ok {
		return
	}

	stopped, err := svcs.Timer.Stop(ctx)
	if err != nil {
		reportError(deps, err)
		return
	}

	name, _ := svcs.Timer.ProjectName(stopped.ProjectID)
	elapsed := stopped.Stop.Sub(stopped.Start)
	_, _ = fmt.Fprintf(deps.Stdout, "Stopped: %s  %s\n",
		cli.FormatActivity(stopped.Description, name),
		deps.Styles.Elapsed.Render(cli.FormatElapsed(elapsed)),
	)
}

// SwapTimer replaces the running entry's project and description, keeping its start
func SwapTimer(ctx context.Context, deps *cli.Deps) {
	svcs, ok := loadServices(deps)
	if !ok {
		return
	}

	status, err := svcs.Timer.Status(ctx)
	if err != nil {
		reportError(deps, err)
		return
	}
	if !status.Running {
		reportError(deps, failure.NoRunning("swap"))
		return
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Current: %s\n", cli.FormatRunning(*status.Entry, status.ProjectName, status.Elapsed))

	item, err := selectItem(deps, svcs.Catalog, "Swap to")
	if err != nil {
		reportError(deps, err)
		return
	}

	result, err := svcs.Timer.Swap(ctx, item)
	if err != nil {
		reportError(deps, err)
		return
	}

	activity := cli.FormatActivity(item.Description, item.ProjectName)
	if !result.Changed {
		_, _ = fmt.Fprintf(deps.Stdout, "Already tracking %s, nothing to change\n", activity)
		return
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Swapped to: %s (started %s)\n",
		deps.Styles.Running.Render(activity),
		cli.FormatClock(result.Entry.Start, svcs.Timer.Now().Location()),
	)
}
