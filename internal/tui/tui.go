// Package tui provides the full-screen watch view for the running entry.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/tog/internal/cli"
	"github.com/xolan/tog/internal/service"
	"github.com/xolan/tog/internal/tui/ui"
)

// DefaultRefresh is how often the view asks the service for the running entry.
const DefaultRefresh = 30 * time.Second

// StatusSource reports the running entry. *service.TimerService satisfies it.
type StatusSource interface {
	Status(ctx context.Context) (*service.TimerStatus, error)
	Now() time.Time
}

// Options configures the watch view
type Options struct {
	// Refresh is the interval between remote queries; 0 means DefaultRefresh
	Refresh time.Duration
	// Theme names the initial bubbletint theme
	Theme string
}

// Model is the watch view model.
// The elapsed time ticks locally every second; the entry itself is only
// re-read from the service every Refresh or on demand.
type Model struct {
	ctx     context.Context
	source  StatusSource
	refresh time.Duration

	// Remote state as of fetchedAt, the last successful query.
	// lastAttempt schedules the next query whether or not it succeeded.
	status      *service.TimerStatus
	fetchedAt   time.Time
	lastAttempt time.Time
	elapsed     time.Duration
	loading     bool
	err         error

	// UI state
	width    int
	height   int
	showHelp bool

	themeProvider *ui.ThemeProvider
	styles        ui.Styles
	keys          ui.KeyMap
	help          help.Model
	spinner       spinner.Model
}

// statusMsg is sent when a status query completes
type statusMsg struct {
	status *service.TimerStatus
	err    error
	at     time.Time
}

// tickMsg is sent every second to advance the elapsed time
type tickMsg time.Time

// New creates a new watch model
func New(ctx context.Context, source StatusSource, opts Options) Model {
	refresh := opts.Refresh
	if refresh <= 0 {
		refresh = DefaultRefresh
	}

	m := Model{
		ctx:           ctx,
		source:        source,
		refresh:       refresh,
		loading:       true,
		themeProvider: ui.NewThemeProvider(opts.Theme),
		keys:          ui.DefaultKeyMap(),
		help:          help.New(),
		spinner:       spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	m.applyTheme()
	return m
}

// applyTheme rebuilds the styles from the current theme and hands them to
// the spinner and help components.
func (m *Model) applyTheme() {
	m.styles = m.themeProvider.Styles()
	m.spinner.Style = m.styles.TimerElapsed
	m.help.Styles.ShortKey = m.styles.HelpKey
	m.help.Styles.ShortDesc = m.styles.HelpDesc
	m.help.Styles.ShortSeparator = m.styles.HelpDesc
	m.help.Styles.FullKey = m.styles.HelpKey
	m.help.Styles.FullDesc = m.styles.HelpDesc
	m.help.Styles.FullSeparator = m.styles.HelpDesc
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.loadStatus(),
		tick(),
	)
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			m.help.ShowAll = m.showHelp
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			if m.loading {
				return m, nil
			}
			m.loading = true
			return m, m.loadStatus()
		case key.Matches(msg, m.keys.Theme):
			m.themeProvider.NextTheme()
			m.applyTheme()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case statusMsg:
		m.loading = false
		m.err = msg.err
		m.lastAttempt = msg.at
		if msg.err == nil {
			m.status = msg.status
			m.elapsed = msg.status.Elapsed
			m.fetchedAt = msg.at
		}
		return m, nil

	case tickMsg:
		now := time.Time(msg)
		if m.status != nil && m.status.Running {
			m.elapsed = m.status.Elapsed + now.Sub(m.fetchedAt)
		}
		if !m.loading && now.Sub(m.lastAttempt) >= m.refresh {
			m.loading = true
			return m, tea.Batch(m.loadStatus(), tick())
		}
		return m, tick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("tog"))
	b.WriteString("\n")

	switch {
	case m.status == nil && m.err == nil:
		b.WriteString(m.spinner.View() + " Loading...")
	case m.status == nil:
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
	case !m.status.Running:
		b.WriteString(m.styles.TimerStopped.Render("No time entry running"))
	default:
		b.WriteString(m.renderRunning())
	}
	b.WriteString("\n\n")

	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return m.styles.App.Render(b.String())
}

func (m Model) renderRunning() string {
	e := m.status.Entry
	loc := m.source.Now().Location()

	var b strings.Builder
	b.WriteString(m.styles.TimerRunning.Render("● Running"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.StatLabel.Render("Activity:"))
	b.WriteString(" ")
	b.WriteString(m.styles.StatValue.Render(e.Description))
	b.WriteString("\n")
	b.WriteString(m.styles.StatLabel.Render("Project:"))
	b.WriteString(" ")
	b.WriteString(m.styles.Project.Render(m.status.ProjectName))
	b.WriteString("\n")
	b.WriteString(m.styles.StatLabel.Render("Started:"))
	b.WriteString(" ")
	b.WriteString(m.styles.StatValue.Render(cli.FormatClock(e.Start, loc)))
	b.WriteString("\n")
	b.WriteString(m.styles.StatLabel.Render("Elapsed:"))
	b.WriteString(" ")
	b.WriteString(m.styles.TimerElapsed.Render(cli.FormatElapsed(m.elapsed)))
	return b.String()
}

// renderStatusBar shows refresh state, the last error if the entry is stale, and the theme
func (m Model) renderStatusBar() string {
	var parts []string
	if m.loading {
		parts = append(parts, m.spinner.View()+" refreshing")
	} else if !m.fetchedAt.IsZero() {
		parts = append(parts, m.styles.StatusKey.Render("updated")+" "+
			m.styles.StatusValue.Render(cli.FormatClock(m.fetchedAt, m.source.Now().Location())))
	}
	if m.err != nil && m.status != nil {
		parts = append(parts, m.styles.Warning.Render(fmt.Sprintf("refresh failed: %v", m.err)))
	}
	parts = append(parts, m.styles.StatusKey.Render("theme")+" "+m.styles.StatusValue.Render(m.themeProvider.CurrentName()))
	return m.styles.StatusBar.Render(strings.Join(parts, "  "))
}

// loadStatus creates a command to query the running entry
func (m Model) loadStatus() tea.Cmd {
	return func() tea.Msg {
		status, err := m.source.Status(m.ctx)
		return statusMsg{status: status, err: err, at: m.source.Now()}
	}
}

// tick returns a command that sends a tick every second
func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Run starts the watch view and blocks until the user quits or ctx is done.
func Run(ctx context.Context, source StatusSource, opts Options) error {
	p := tea.NewProgram(New(ctx, source, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
