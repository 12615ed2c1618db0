package cli

import (
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/huh"

	"github.com/xolan/tog/internal/failure"
	"github.com/xolan/tog/internal/tui/ui"
)

// Prompter is the interactive selection UI.
// A cancelled prompt returns an error matching failure.ErrNoSelection,
// never a default choice.
type Prompter interface {
	// Select returns the index of the chosen option.
	Select(title string, options []string) (int, error)
	// Input returns the raw text typed by the user.
	Input(title, placeholder string) (string, error)
	// Confirm asks a yes/no question.
	Confirm(title, description string) (bool, error)
}

// HuhPrompter implements Prompter with huh forms on a terminal.
type HuhPrompter struct {
	In    io.Reader
	Out   io.Writer
	Theme string
}

// NewHuhPrompter creates a prompter reading from stdin and drawing on stderr,
// so stdout stays clean for results.
func NewHuhPrompter() *HuhPrompter {
	return &HuhPrompter{In: os.Stdin, Out: os.Stderr}
}

// Select shows a filterable list of options.
func (p *HuhPrompter) Select(title string, options []string) (int, error) {
	const op = "prompt.select"

	if len(options) == 0 {
		return -1, failure.Invalid(op, "nothing to choose from")
	}
	if err := p.requireTerminal(op); err != nil {
		return -1, err
	}

	opts := make([]huh.Option[int], len(options))
	for i, label := range options {
		opts[i] = huh.NewOption(label, i)
	}

	choice := 0
	field := huh.NewSelect[int]().
		Title(title).
		Options(opts...).
		Filtering(true).
		Value(&choice)

	if err := p.run(op, field); err != nil {
		return -1, err
	}
	return choice, nil
}

// Input asks for a single line of text.
func (p *HuhPrompter) Input(title, placeholder string) (string, error) {
	const op = "prompt.input"

	if err := p.requireTerminal(op); err != nil {
		return "", err
	}

	var value string
	field := huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(&value)

	if err := p.run(op, field); err != nil {
		return "", err
	}
	return value, nil
}

// Confirm asks a yes/no question, defaulting to yes.
func (p *HuhPrompter) Confirm(title, description string) (bool, error) {
	const op = "prompt.confirm"

	if err := p.requireTerminal(op); err != nil {
		return false, err
	}

	ok := true
	field := huh.NewConfirm().
		Title(title).
		Description(description).
		Affirmative("Yes").
		Negative("No").
		Value(&ok)

	if err := p.run(op, field); err != nil {
		return false, err
	}
	return ok, nil
}

func (p *HuhPrompter) run(op string, field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(ui.NewThemeProvider(p.Theme).HuhTheme()).
		WithShowHelp(false).
		WithInput(p.In).
		WithOutput(p.Out)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return failure.NoSelection(op)
		}
		return failure.Wrap(failure.InvalidInput, op, err)
	}
	return nil
}

func (p *HuhPrompter) requireTerminal(op string) error {
	if !IsTerminal(p.In) {
		return failure.Invalid(op, "an interactive terminal is required")
	}
	return nil
}
