package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xolan/tog/internal/cli"
	"github.com/xolan/tog/internal/config"
	"github.com/xolan/tog/internal/osutil"
	"github.com/xolan/tog/internal/service"
)

// ShowConfig displays the effective configuration and where each part came from.
// It works without a valid configuration so problems can be diagnosed.
func ShowConfig(deps *cli.Deps) {
	paths, err := config.GetPaths()
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	cfg, loadErr := config.Load(paths.Config)
	svc := service.NewConfigService(paths.Config, cfg)

	_, _ = fmt.Fprintln(deps.Stdout, "Configuration:")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "Config file:      %s\n", svc.GetPath())
	switch {
	case !svc.Exists():
		_, _ = fmt.Fprintln(deps.Stdout, "Status:           Not found (run 'tog config init')")
	case loadErr != nil:
		_, _ = fmt.Fprintln(deps.Stdout, "Status:           Unreadable")
	default:
		_, _ = fmt.Fprintln(deps.Stdout, "Status:           File exists")
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Credentials file: %s\n", paths.Credentials)
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))

	_, _ = fmt.Fprintf(deps.Stdout, "api token: %s\n", tokenSource(paths, cfg))
	_, _ = fmt.Fprintf(deps.Stdout, "base_url:  %s\n", cfg.BaseURL)
	_, _ = fmt.Fprintf(deps.Stdout, "timeout:   %s\n", cfg.Timeout)
	_, _ = fmt.Fprintf(deps.Stdout, "timezone:  %s\n", cfg.Timezone)
	theme := cfg.Theme
	if theme == "" {
		theme = "(default)"
	}
	_, _ = fmt.Fprintf(deps.Stdout, "theme:     %s\n", theme)
	_, _ = fmt.Fprintf(deps.Stdout, "projects:  %d (%d activities)\n", len(cfg.Projects), len(cfg.Projects.Items()))

	if errors.Is(loadErr, config.ErrNotFound) {
		return
	}
	if loadErr == nil {
		_, loadErr = config.Resolve(paths)
	}
	if loadErr != nil {
		_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
		_, _ = fmt.Fprintln(deps.Stdout, "Problems:")
		for _, line := range strings.Split(loadErr.Error(), "\n") {
			_, _ = fmt.Fprintf(deps.Stdout, "  - %s\n", line)
		}
		deps.Exit(1)
	}
}

// tokenSource reports which source supplies the API token, never the token itself.
func tokenSource(paths config.Paths, cfg config.Config) string {
	if strings.TrimSpace(osutil.Provider.Getenv(config.EnvAPIToken)) != "" {
		return "set (from $" + config.EnvAPIToken + ")"
	}
	if token, err := config.LoadCredentials(paths.Credentials); err == nil && token != "" {
		return "set (from " + config.CredentialsFile + ")"
	}
	if cfg.APIToken != "" {
		return "set (from " + config.ConfigFile + ")"
	}
	return "not set"
}

// InitConfig creates a sample config file
func InitConfig(deps *cli.Deps) {
	paths, err := config.GetPaths()
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	svc := service.NewConfigService(paths.Config, config.DefaultConfig())
	if err := svc.Init(); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Created config file: %s\n", svc.GetPath())
	_, _ = fmt.Fprintln(deps.Stdout, "Edit this file to list your projects and activities.")
	_, _ = fmt.Fprintf(deps.Stdout, "Put your API token in %s as toggl_api_token, or set $%s.\n",
		paths.Credentials, config.EnvAPIToken)
}
