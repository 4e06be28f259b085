package template

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tyha/cli/internal/cmdutil"
	"github.com/tyha/cli/internal/config"
	"github.com/tyha/cli/internal/output"
	"github.com/tyha/cli/internal/templates"
)

// NewListCmd creates the template list command.
func NewListCmd(cfg *config.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available templates",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			spec, source, err := templateSpec(cfg)
			if err != nil {
				return cmdutil.Exit(err)
			}

			tbl := output.NewTable("NAME", "KIND", "DESCRIPTION", "STATUS")
			all := append(templates.List(), templates.Modules()...)
			for _, t := range all {
				name := t.Name
				if t.Default {
					name += " (default)"
				}
				status := "ok"
				if err := templates.Check(spec, t); err != nil {
					status = "missing"
				}
				tbl.Row(name, string(t.Kind), t.Description, status)
			}

			fmt.Fprintln(c.OutOrStdout(), tbl.String())
			fmt.Fprintln(c.OutOrStdout(), output.StyleDim.Render("Templates: "+source))
			return nil
		},
	}
}
