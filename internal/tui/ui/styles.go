package ui

import (
	"github.com/charmbracelet/lipgloss"
	tint "github.com/lrstanley/bubbletint"
)

// Styles contains all the styles used by the watch view
type Styles struct {
	App       lipgloss.Style
	ViewTitle lipgloss.Style

	// Status bar
	StatusBar   lipgloss.Style
	StatusKey   lipgloss.Style
	StatusValue lipgloss.Style

	// Timer
	TimerRunning lipgloss.Style
	TimerStopped lipgloss.Style
	TimerElapsed lipgloss.Style

	// Labels
	StatLabel lipgloss.Style
	StatValue lipgloss.Style
	Project   lipgloss.Style

	// Help
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	Error   lipgloss.Style
	Warning lipgloss.Style
}

// NewStylesFromRegistry creates a Styles struct using colors from a bubbletint registry.
// This maps theme colors to semantic UI elements:
// - Primary: Purple (titles, projects)
// - Secondary: Cyan (status keys, help keys)
// - Accent: BrightPurple (elapsed time)
// - Muted: BrightBlack (labels, help text)
func NewStylesFromRegistry(r *tint.Registry) Styles {
	primary := r.Purple()
	secondary := r.Cyan()
	accent := r.BrightPurple()
	muted := r.BrightBlack()
	fg := r.Fg()
	bg := r.Bg()

	return Styles{
		App: lipgloss.NewStyle().Padding(1, 2),
		ViewTitle: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			MarginBottom(1),

		StatusBar: lipgloss.NewStyle().
			Foreground(fg).
			Background(bg).
			Padding(0, 1),
		StatusKey: lipgloss.NewStyle().
			Foreground(secondary).
			Bold(true),
		StatusValue: lipgloss.NewStyle().
			Foreground(fg),

		TimerRunning: lipgloss.NewStyle().
			Foreground(r.Green()).
			Bold(true),
		TimerStopped: lipgloss.NewStyle().
			Foreground(muted),
		TimerElapsed: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),

		StatLabel: lipgloss.NewStyle().
			Foreground(muted).
			Width(10),
		StatValue: lipgloss.NewStyle().
			Foreground(fg).
			Bold(true),
		Project: lipgloss.NewStyle().
			Foreground(primary),

		HelpKey: lipgloss.NewStyle().
			Foreground(secondary).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(muted),

		Error: lipgloss.NewStyle().
			Foreground(r.Red()),
		Warning: lipgloss.NewStyle().
			Foreground(r.Yellow()),
	}
}
