package handlers

import (
	"errors"
	"fmt"

	"github.com/xolan/tog/internal/catalog"
	"github.com/xolan/tog/internal/cli"
	"github.com/xolan/tog/internal/config"
	"github.com/xolan/tog/internal/failure"
	"github.com/xolan/tog/internal/service"
)

// reportError prints err for the user and exits with status 1.
// A cancelled prompt is not a failure: it prints a notice and exits 0.
func reportError(deps *cli.Deps, err error) {
	if errors.Is(err, failure.ErrNoSelection) {
		_, _ = fmt.Fprintln(deps.Stdout, "Nothing selected")
		return
	}

	switch failure.KindOf(err) {
	case failure.NoRunningEntry:
		_, _ = fmt.Fprintln(deps.Stderr, "Error: No time entry running")
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Start one with 'tog start'")
	case failure.Transport:
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Request to Toggl failed")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check your network connection and API token")
	case failure.Decode:
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Unexpected response from Toggl")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
	case failure.InvalidInput:
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Invalid input")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
	case failure.InvalidShift:
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Cannot shift entry")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Fix the neighbouring entry in the Toggl web app first")
	default:
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
	}
	deps.Exit(1)
}

// loadServices returns the services or reports why they could not be loaded.
func loadServices(deps *cli.Deps) (*service.Services, bool) {
	svcs, err := deps.GetServices()
	if err == nil {
		return svcs, true
	}

	if errors.Is(err, config.ErrNotFound) {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: No configuration found")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Create one with 'tog config init'")
	} else {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to load configuration")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Run 'tog config' to check your settings")
	}
	deps.Exit(1)
	return nil, false
}

// selectItem asks the user to pick one project/activity pair.
func selectItem(deps *cli.Deps, cat catalog.Catalog, title string) (catalog.Item, error) {
	const op = "select"

	items := cat.Items()
	if len(items) == 0 {
		return catalog.Item{}, failure.Invalid(op, "no projects configured; add [[projects]] to %s", config.ConfigFile)
	}

	idx, err := deps.Prompter.Select(title, catalog.Labels(items))
	if err != nil {
		return catalog.Item{}, err
	}
	if idx < 0 || idx >= len(items) {
		return catalog.Item{}, failure.NoSelection(op)
	}
	return items[idx], nil
}
