package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/tog/internal/cli"
	"github.com/xolan/tog/internal/cli/handlers"
	"github.com/xolan/tog/internal/tui"
)

var (
	shiftAt  string
	shiftYes bool

	watchRefresh = tui.DefaultRefresh
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start tracking an activity now",
	Long: `Pick one of the configured activities and start a new running entry now.

If an entry is already running, Toggl stops it when the new one starts.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.StartTimer(cmd.Context(), cli.GetDeps())
	},
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the running entry",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.StopTimer(cmd.Context(), cli.GetDeps())
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the running entry",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ShowTimerStatus(cmd.Context(), cli.GetDeps())
	},
}

var swapCmd = &cobra.Command{
	Use:   "swap",
	Short: "Change the running entry's activity",
	Long: `Pick another activity for the running entry. Its start time is kept,
so the time already tracked moves to the new activity.

Picking the activity that is already running changes nothing.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.SwapTimer(cmd.Context(), cli.GetDeps())
	},
}

var shiftCmd = &cobra.Command{
	Use:   "shift",
	Short: "Move the start of one of today's entries",
	Long: `Pick one of today's entries and give it a new start time (HH:MM, same day).

The new start must fall after the previous entry's start and before the
entry's own end. The previous entry is never edited: a gap or overlap
left behind is reported so you can fix it by hand.

Examples:
  tog shift                    Prompt for the entry, time and confirmation
  tog shift --at 09:15         Prompt for the entry only, then confirm
  tog shift --at 0915 --yes    Apply without confirmation`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ShiftEntry(cmd.Context(), cli.GetDeps(), handlers.ShiftOptions{At: shiftAt, Yes: shiftYes})
	},
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Full-screen view of the running entry",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.WatchTimer(cmd.Context(), cli.GetDeps(), watchRefresh)
	},
}

func init() {
	shiftCmd.Flags().StringVar(&shiftAt, "at", "", "new start time as HH:MM")
	shiftCmd.Flags().BoolVarP(&shiftYes, "yes", "y", false, "apply without asking for confirmation")
	watchCmd.Flags().DurationVar(&watchRefresh, "refresh", tui.DefaultRefresh, "how often to query Toggl")

	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(swapCmd)
	rootCmd.AddCommand(shiftCmd)
	rootCmd.AddCommand(watchCmd)
}
