package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tyha/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show tyha version information.

Displays:
  - tyha version, commit, and build date
  - Go toolchain version
  - CUE SDK version (used for config validation)`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			fmt.Fprintln(c.OutOrStdout(), version.Get().String())
			return nil
		},
	}
}
