package project

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tyha/cli/internal/cmdutil"
	"github.com/tyha/cli/internal/config"
	"github.com/tyha/cli/internal/output"
	"github.com/tyha/cli/internal/prompt"
	"github.com/tyha/cli/internal/scaffold"
	"github.com/tyha/cli/internal/templates"
)

type createFlags struct {
	template string
	auth     bool
	dir      string
	scaffold cmdutil.ScaffoldFlags
}

// NewCreateCmd creates the project create command.
func NewCreateCmd(cfg *config.GlobalConfig, deps cmdutil.Deps) *cobra.Command {
	var f createFlags

	c := &cobra.Command{
		Use:   "create [name]",
		Short: "Create a new project from a template",
		Long: `Create a new TypeScript service from a project template.

The project directory is named after the snake_case form of the name and is
created inside --dir (default: the working directory). It must not exist yet.

Templates:
  rest   Express HTTP service (default)
  grpc   gRPC service
  auth   Express HTTP service with JWT authentication (same as --auth)

Examples:
  # Create a REST service in ./billing_service
  tyha project create "Billing Service"

  # Create a gRPC service under ./services
  tyha project create payments --template grpc --dir ./services

  # Show what would be written
  tyha project create payments --dry-run -o yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return cmdutil.Exit(runCreate(c, args, cfg, deps, &f))
		},
	}

	c.Flags().StringVarP(&f.template, "template", "t", "",
		fmt.Sprintf("Project template (%s)", strings.Join(templates.Names(), ", ")))
	c.Flags().BoolVar(&f.auth, "auth", false,
		"Use the authentication template (overrides --template)")
	c.Flags().StringVarP(&f.dir, "dir", "d", "",
		"Directory to create the project in (default: working directory)")
	f.scaffold.AddTo(c)

	return c
}

func runCreate(c *cobra.Command, args []string, cfg *config.GlobalConfig, deps cmdutil.Deps, f *createFlags) error {
	ctx := c.Context()

	format, err := f.scaffold.Format()
	if err != nil {
		return err
	}

	p, interactive := cmdutil.Prompter(cfg, c, deps)

	opts := scaffold.ProjectOptions{
		Auth:   f.auth,
		Dir:    f.dir,
		DryRun: f.scaffold.DryRun,
	}
	if len(args) > 0 {
		opts.Name = args[0]
	}

	tpl := cfg.Resolve("defaults.projectTemplate", f.template, cmdutil.Changed(c, "template"))
	// The built-in default is offered as a prompt instead of being applied silently.
	if tpl.Source != config.SourceDefault || !interactive {
		opts.Template, err = scaffold.ParseProjectTemplate(tpl.Value)
		if err != nil {
			return err
		}
	}
	if f.auth && tpl.Source == config.SourceFlag && opts.Template != scaffold.ProjectAuth {
		output.Warn("--auth overrides --template", "template", opts.Template)
	}

	if interactive {
		opts, err = prompt.ProjectOptions(ctx, p, opts)
		if err != nil {
			return err
		}
	} else if opts.Name == "" {
		_, err = p.Input(ctx, "Project name", "", nil)
		return err
	}

	s, err := cmdutil.NewScaffolder(cfg, deps)
	if err != nil {
		return err
	}

	result, err := cmdutil.Materialize(ctx, cfg, "Creating project...", func() (*scaffold.Result, error) {
		return s.CreateProject(ctx, opts)
	})
	if err != nil {
		return err
	}

	return cmdutil.PrintResult(c.OutOrStdout(), result, format, "project")
}
