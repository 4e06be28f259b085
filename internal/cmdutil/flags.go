package cmdutil

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	oerrors "github.com/tyha/cli/internal/errors"
	"github.com/tyha/cli/internal/output"
)

// ScaffoldFlags holds flags common to commands that write a template
// (project create, module create).
type ScaffoldFlags struct {
	DryRun bool
	Output string
}

// AddTo registers the scaffold flags on the given cobra command.
func (f *ScaffoldFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.DryRun, "dry-run", false,
		"Print the plan without writing any file")
	cmd.Flags().StringVarP(&f.Output, "output", "o", string(output.FormatText),
		fmt.Sprintf("Output format (%s)", strings.Join(output.ValidFormats(), ", ")))
}

// Format parses --output.
func (f *ScaffoldFlags) Format() (output.OutputFormat, error) {
	format, ok := output.ParseOutputFormat(f.Output)
	if !ok {
		return "", oerrors.NewValidationError(
			fmt.Sprintf("unknown output format %q", f.Output),
			"--output",
			fmt.Sprintf("Valid formats: %s", strings.Join(output.ValidFormats(), ", ")),
		)
	}
	return format, nil
}

// Changed reports whether the named flag was passed explicitly.
func Changed(cmd *cobra.Command, name string) bool {
	f := cmd.Flags().Lookup(name)
	return f != nil && f.Changed
}
