// Package template provides the `tyha template` command group.
package template

import (
	"github.com/spf13/cobra"

	"github.com/tyha/cli/internal/config"
)

// NewTemplateCmd creates the template command group.
func NewTemplateCmd(cfg *config.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "template",
		Short: "Inspect project and module templates",
		Long: `Inspect the templates tyha materializes.

Templates come from the binary unless --templates (or templatesDir in the
config file) points at a directory with the same layout:

  projects/<rest|grpc|auth>/...
  modules/<full|only_domain>/...`,
	}

	c.AddCommand(NewListCmd(cfg), NewShowCmd(cfg))

	return c
}
