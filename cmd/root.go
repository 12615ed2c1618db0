package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/xolan/tog/internal/cli"
	"github.com/xolan/tog/internal/cli/handlers"
)

var debugFlag bool

var rootCmd = &cobra.Command{
	Use:   "tog",
	Short: "Drive the running Toggl Track time entry from the terminal",
	Long: `tog starts, stops, swaps and shifts your running Toggl Track time entry.

Projects and the activities offered for each are listed in config.toml;
the API token is read from $TOG_API_TOKEN or credentials.jsonc.

Usage:
  tog                  Start an entry (same as 'tog start')
  tog status           Show the running entry
  tog start            Pick an activity and start tracking it now
  tog stop             Stop the running entry
  tog swap             Change the running entry's activity, keeping its start
  tog shift            Move the start of one of today's entries
  tog watch            Full-screen view of the running entry
  tog projects         List configured projects and activities
  tog config           Show the effective configuration
  tog config init      Create a sample config file`,
	Args: cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		d := cli.GetDeps()
		d.Logger = cli.NewLogger(d.Stderr, debugFlag)
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		handlers.StartTimer(cmd.Context(), cli.GetDeps())
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug logging")
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"tog version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
	cli.GetDeps().Version = version
}

// Execute runs the root command, cancelling in-flight requests on SIGINT or SIGTERM.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer resetFlags(rootCmd)

	return rootCmd.ExecuteContext(ctx)
}

// resetFlags restores every flag in the tree to its default, so a later
// Execute in the same process does not see flags from an earlier one.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if f.Changed {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}
