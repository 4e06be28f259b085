package cmdutil

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/tyha/cli/internal/config"
	"github.com/tyha/cli/internal/fsport"
	"github.com/tyha/cli/internal/output"
	"github.com/tyha/cli/internal/prompt"
	"github.com/tyha/cli/internal/scaffold"
	"github.com/tyha/cli/internal/templates"
)

// Deps are the collaborators a scaffolding command needs. Tests replace them
// with in-memory versions.
type Deps struct {
	// FS is the filesystem output is written to.
	FS fsport.FileSystem

	// Prompter collects missing choices. Nil selects one from the terminal state.
	Prompter prompt.Prompter
}

// NewScaffolder wires a Scaffolder over the destination filesystem and the
// resolved template root.
func NewScaffolder(cfg *config.GlobalConfig, deps Deps) (*scaffold.Scaffolder, error) {
	dir := cfg.TemplatesDir()
	root := dir.Value
	if root != "" {
		expanded, err := config.ExpandPath(root)
		if err != nil {
			return nil, err
		}
		root = expanded
		output.Debug("using templates from disk", "dir", root, "source", dir.Source)
	}

	fsys := deps.FS
	if fsys == nil {
		fsys = fsport.NewOS()
	}

	return scaffold.NewScaffolder(fsys, templates.Spec(root), output.ComponentLogger("scaffold")), nil
}

// Prompter returns the prompter for cmd and whether it is interactive. Prompts
// run only on a terminal and never with --no-input, which also
// overrides an injected prompter.
func Prompter(cfg *config.GlobalConfig, cmd *cobra.Command, deps Deps) (prompt.Prompter, bool) {
	if cfg != nil && cfg.NoInput {
		return prompt.Disabled{}, false
	}
	if deps.Prompter != nil {
		_, disabled := deps.Prompter.(prompt.Disabled)
		return deps.Prompter, !disabled
	}
	if !output.IsInputTTY() {
		return prompt.Disabled{}, false
	}
	return &prompt.HuhPrompter{In: cmd.InOrStdin(), Out: cmd.ErrOrStderr()}, true
}

// Materialize runs fn behind a spinner on a terminal. Verbose runs skip the
// spinner so debug lines stay readable.
func Materialize(ctx context.Context, cfg *config.GlobalConfig, title string, fn func() (*scaffold.Result, error)) (*scaffold.Result, error) {
	var result *scaffold.Result
	action := func() error {
		var err error
		result, err = fn()
		return err
	}

	var err error
	if cfg != nil && cfg.Verbose {
		err = action()
	} else {
		err = output.RunWithSpinner(ctx, action, output.WithTitle(title))
	}
	return result, err
}
