package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

// Styles colours command output. On anything but a terminal every style is
// empty, so output is plain text.
type Styles struct {
	Running lipgloss.Style
	Project lipgloss.Style
	Elapsed lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w any) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(f.Fd())
}

// NewStyles returns styles for out, coloured only when out is a terminal.
func NewStyles(out io.Writer) Styles {
	if !IsTerminal(out) {
		return PlainStyles()
	}

	r := lipgloss.NewRenderer(out)
	return Styles{
		Running: r.NewStyle().Foreground(lipgloss.Color("82")).Bold(true),
		Project: r.NewStyle().Foreground(lipgloss.Color("99")),
		Elapsed: r.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Muted:   r.NewStyle().Foreground(lipgloss.Color("240")),
		Success: r.NewStyle().Foreground(lipgloss.Color("82")),
		Warning: r.NewStyle().Foreground(lipgloss.Color("214")),
		Error:   r.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

// PlainStyles returns styles that render text unchanged.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Running: plain,
		Project: plain,
		Elapsed: plain,
		Muted:   plain,
		Success: plain,
		Warning: plain,
		Error:   plain,
	}
}
