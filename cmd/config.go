package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/tog/internal/cli"
	"github.com/xolan/tog/internal/cli/handlers"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display or manage configuration settings",
	Long: `Display the effective configuration and report any problems with it.

The API token is never printed, only where it comes from. Token precedence:
  1. $TOG_API_TOKEN
  2. toggl_api_token in credentials.jsonc
  3. api_token in config.toml

Configuration directory:
  $TOG_CONFIG_DIR if set, otherwise
  ~/.config/tog                    Linux
  ~/Library/Application Support/tog    macOS
  %APPDATA%\tog                    Windows`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ShowConfig(cli.GetDeps())
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a sample config file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.InitConfig(cli.GetDeps())
	},
}

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List configured projects and activities",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ListProjects(cli.GetDeps())
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(projectsCmd)
}
