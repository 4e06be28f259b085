package template

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tyha/cli/internal/cmdutil"
	"github.com/tyha/cli/internal/config"
	"github.com/tyha/cli/internal/output"
	"github.com/tyha/cli/internal/scaffold"
	"github.com/tyha/cli/internal/templates"
)

// NewShowCmd creates the template show command.
func NewShowCmd(cfg *config.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show a template's description and files",
		Long: `Show a template's description and the files it contains.

Module templates list every variant file; only the chosen router and
repository survive in a generated module.

Examples:
  tyha template show rest
  tyha template show full`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return cmdutil.Exit(runShow(c, cfg, args[0]))
		},
	}
}

func runShow(c *cobra.Command, cfg *config.GlobalConfig, name string) error {
	t, err := templates.Get(name)
	if err != nil {
		return err
	}

	spec, _, err := templateSpec(cfg)
	if err != nil {
		return err
	}
	if err := templates.Check(spec, t); err != nil {
		return err
	}

	files, err := templates.Files(spec.Root, t)
	if err != nil {
		return err
	}

	w := c.OutOrStdout()
	styles := output.GetStyles()
	fmt.Fprintln(w, styles.Bold.Render(t.Name)+" "+styles.Muted.Render("("+string(t.Kind)+")"))
	fmt.Fprintln(w, "  "+t.Description)
	fmt.Fprintln(w, "  Use for: "+t.UseCase)
	fmt.Fprintln(w)
	fmt.Fprint(w, output.RenderFileTree(t.Dir(), files, nil))
	return nil
}

// templateSpec returns the template root in effect and a label for it.
func templateSpec(cfg *config.GlobalConfig) (scaffold.TemplateSpec, string, error) {
	dir := cfg.TemplatesDir().Value
	if dir == "" {
		return templates.Spec(""), "built-in", nil
	}
	expanded, err := config.ExpandPath(dir)
	if err != nil {
		return scaffold.TemplateSpec{}, "", err
	}
	return templates.Spec(expanded), expanded, nil
}
