// Package prompt collects missing scaffolding choices from the user before any
// file is written.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/huh"

	oerrors "github.com/tyha/cli/internal/errors"
)

// ErrAborted is returned when the user cancels a prompt.
var ErrAborted = errors.New("prompt aborted")

// Option is one choice of a Select prompt.
type Option struct {
	Label string
	Value string
}

// Prompter asks the user for values.
type Prompter interface {
	// Input asks for free text. validate may be nil.
	Input(ctx context.Context, title, placeholder string, validate func(string) error) (string, error)

	// Select asks the user to pick one of options and returns its Value.
	Select(ctx context.Context, title string, options []Option) (string, error)
}

// HuhPrompter prompts on a terminal with charmbracelet/huh forms.
type HuhPrompter struct {
	In         io.Reader
	Out        io.Writer
	Accessible bool
}

// Input implements Prompter.
func (p *HuhPrompter) Input(ctx context.Context, title, placeholder string, validate func(string) error) (string, error) {
	var value string

	field := huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(&value)
	if validate != nil {
		field = field.Validate(validate)
	}

	if err := p.run(ctx, field); err != nil {
		return "", err
	}
	return value, nil
}

// Select implements Prompter.
func (p *HuhPrompter) Select(ctx context.Context, title string, options []Option) (string, error) {
	var value string

	huhOpts := make([]huh.Option[string], len(options))
	for i, o := range options {
		huhOpts[i] = huh.NewOption(o.Label, o.Value)
	}

	field := huh.NewSelect[string]().
		Title(title).
		Options(huhOpts...).
		Value(&value)

	if err := p.run(ctx, field); err != nil {
		return "", err
	}
	return value, nil
}

func (p *HuhPrompter) run(ctx context.Context, field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithAccessible(p.Accessible).
		WithShowHelp(false)
	if p.In != nil {
		form = form.WithInput(p.In)
	}
	if p.Out != nil {
		form = form.WithOutput(p.Out)
	}

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrAborted
		}
		return fmt.Errorf("running prompt: %w", err)
	}
	return nil
}

// Disabled is the Prompter used without a terminal or with --no-input.
// Every call fails with a validation error naming the flag to pass instead.
type Disabled struct{}

// Input implements Prompter.
func (Disabled) Input(_ context.Context, title, _ string, _ func(string) error) (string, error) {
	return "", missing(title)
}

// Select implements Prompter.
func (Disabled) Select(_ context.Context, title string, _ []Option) (string, error) {
	return "", missing(title)
}

func missing(title string) error {
	return &oerrors.DetailError{
		Type:    "missing input",
		Message: fmt.Sprintf("%s was not provided and prompting is disabled", title),
		Hint:    "Pass the value as an argument or flag, or run in an interactive terminal.",
		Cause:   oerrors.ErrValidation,
	}
}
