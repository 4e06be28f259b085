package module

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tyha/cli/internal/cmdutil"
	"github.com/tyha/cli/internal/config"
	"github.com/tyha/cli/internal/prompt"
	"github.com/tyha/cli/internal/scaffold"
)

type createFlags struct {
	full       bool
	domain     bool
	router     string
	repository string
	modulesDir string
	scaffold   cmdutil.ScaffoldFlags
}

// NewCreateCmd creates the module create command.
func NewCreateCmd(cfg *config.GlobalConfig, deps cmdutil.Deps) *cobra.Command {
	var f createFlags

	c := &cobra.Command{
		Use:   "create [name]",
		Short: "Create a new module inside the project",
		Long: `Create a module inside the modules directory of an existing project.

A full module has domain, application and infrastructure layers. Exactly one
router and one repository adapter are kept; the others are removed. A domain
module only contains the entity, the repository port and a value object.

The modules directory (default: src/modules) must already exist, and the
module directory (snake_case of the name) must not.

Examples:
  # Full module exposed over REST, persisted with Drizzle
  tyha module create invoice --router rest --repository drizzle

  # Domain layer only
  tyha module create "Payment Method" --domain

  # Preview the plan as JSON
  tyha module create invoice --router grpc --repository memory --dry-run -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return cmdutil.Exit(runCreate(c, args, cfg, deps, &f))
		},
	}

	c.Flags().BoolVar(&f.full, "full", false,
		"Create a full module (domain, application, infrastructure)")
	c.Flags().BoolVar(&f.domain, "domain", false,
		"Create a domain-only module")
	c.Flags().StringVar(&f.router, "router", "",
		fmt.Sprintf("Router for full modules (%s)", joinValues(scaffold.RouterTypes())))
	c.Flags().StringVar(&f.repository, "repository", "",
		fmt.Sprintf("Repository for full modules (%s)", joinValues(scaffold.RepositoryTypes())))
	c.Flags().StringVar(&f.modulesDir, "modules-dir", "",
		fmt.Sprintf("Modules directory (default: %s)", config.DefaultModulesDir))
	f.scaffold.AddTo(c)
	c.MarkFlagsMutuallyExclusive("full", "domain")

	return c
}

func runCreate(c *cobra.Command, args []string, cfg *config.GlobalConfig, deps cmdutil.Deps, f *createFlags) error {
	ctx := c.Context()

	format, err := f.scaffold.Format()
	if err != nil {
		return err
	}

	opts, err := resolveOptions(c, args, cfg, f)
	if err != nil {
		return err
	}

	p, interactive := cmdutil.Prompter(cfg, c, deps)
	if interactive {
		opts, err = prompt.ModuleOptions(ctx, p, opts)
		if err != nil {
			return err
		}
	} else if opts.Name == "" {
		_, err = p.Input(ctx, "Module name", "", nil)
		return err
	}

	s, err := cmdutil.NewScaffolder(cfg, deps)
	if err != nil {
		return err
	}

	result, err := cmdutil.Materialize(ctx, cfg, "Creating module...", func() (*scaffold.Result, error) {
		return s.CreateModule(ctx, opts)
	})
	if err != nil {
		return err
	}

	return cmdutil.PrintResult(c.OutOrStdout(), result, format, "module")
}

// resolveOptions applies flags, then environment and config defaults.
// Anything still unset is left for the prompts.
func resolveOptions(c *cobra.Command, args []string, cfg *config.GlobalConfig, f *createFlags) (scaffold.ModuleOptions, error) {
	opts := scaffold.ModuleOptions{DryRun: f.scaffold.DryRun}
	if len(args) > 0 {
		opts.Name = args[0]
	}

	var err error
	switch {
	case f.domain:
		opts.ModuleType = scaffold.ModuleOnlyDomain
	case f.full:
		opts.ModuleType = scaffold.ModuleFull
	default:
		if mt := cfg.Resolve("defaults.moduleType", "", false); mt.Value != "" {
			opts.ModuleType, err = scaffold.ParseModuleType(mt.Value)
			if err != nil {
				return opts, err
			}
		}
	}

	router := cfg.Resolve("defaults.router", f.router, cmdutil.Changed(c, "router"))
	opts.Router, err = scaffold.ParseRouterType(router.Value)
	if err != nil {
		return opts, err
	}

	repository := cfg.Resolve("defaults.repository", f.repository, cmdutil.Changed(c, "repository"))
	opts.Repository, err = scaffold.ParseRepositoryType(repository.Value)
	if err != nil {
		return opts, err
	}

	opts.ModulesDir = cfg.Resolve("modulesDir", f.modulesDir, cmdutil.Changed(c, "modules-dir")).Value

	return opts, nil
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
