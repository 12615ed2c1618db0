package handlers

import (
	"fmt"

	"github.com/xolan/tog/internal/cli"
)

// ListProjects prints the configured projects and their activities
func ListProjects(deps *cli.Deps) {
	svcs, ok := loadServices(deps)
	if !ok {
		return
	}

	if len(svcs.Catalog) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No projects configured")
		_, _ = fmt.Fprintf(deps.Stdout, "Add [[projects]] to %s\n", svcs.Config.GetPath())
		return
	}

	for _, p := range svcs.Catalog {
		_, _ = fmt.Fprintf(deps.Stdout, "%s %s\n",
			deps.Styles.Project.Render(p.Name),
			deps.Styles.Muted.Render(fmt.Sprintf("(id %d, workspace %d)", p.ID, p.WorkspaceID)))
		if len(p.Activities) == 0 {
			_, _ = fmt.Fprintln(deps.Stdout, "  (no activities)")
			continue
		}
		for _, a := range p.Activities {
			_, _ = fmt.Fprintf(deps.Stdout, "  %s\n", a)
		}
	}
}
