// Package cmd provides the root command of the tyha CLI.
package cmd

import (
	"github.com/spf13/cobra"

	configcmd "github.com/tyha/cli/internal/cmd/config"
	"github.com/tyha/cli/internal/cmd/module"
	"github.com/tyha/cli/internal/cmd/project"
	templatecmd "github.com/tyha/cli/internal/cmd/template"
	"github.com/tyha/cli/internal/cmdutil"
	"github.com/tyha/cli/internal/config"
	"github.com/tyha/cli/internal/output"
	"github.com/tyha/cli/internal/version"
)

// NewRootCmd creates the root command for the tyha CLI.
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithDeps(cmdutil.Deps{})
}

// NewRootCmdWithDeps creates the root command with explicit collaborators.
func NewRootCmdWithDeps(deps cmdutil.Deps) *cobra.Command {
	cfg := &config.GlobalConfig{}

	var (
		configFlag     string
		timestampsFlag bool
	)

	rootCmd := &cobra.Command{
		Use:   "tyha",
		Short: "Hexagonal TypeScript project and module scaffolder",
		Long: `tyha scaffolds TypeScript services laid out in hexagonal layers.

It provides commands to:
  - Create a project skeleton (REST, gRPC or REST with authentication)
  - Add a module with domain, application and infrastructure layers
  - Inspect the built-in templates
  - Manage the CLI configuration`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return initializeGlobals(c, cfg, configFlag, timestampsFlag)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configFlag, "config", "c", "", "Path to config file (env: TYHA_CONFIG)")
	flags.StringVar(&cfg.TemplatesFlag, "templates", "", "Template directory to use instead of the built-in templates (env: TYHA_TEMPLATES_DIR)")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Enable verbose output")
	flags.BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")
	flags.BoolVar(&cfg.NoInput, "no-input", false, "Never prompt; fail when a required value is missing")

	rootCmd.AddCommand(
		project.NewProjectCmd(cfg, deps),
		module.NewModuleCmd(cfg, deps),
		project.NewCreateAliasCmd(cfg, deps),
		module.NewCreateAliasCmd(cfg, deps),
		templatecmd.NewTemplateCmd(cfg),
		configcmd.NewConfigCmd(cfg),
		NewVersionCmd(),
	)

	return rootCmd
}

// initializeGlobals sets up logging and loads configuration.
func initializeGlobals(cmd *cobra.Command, cfg *config.GlobalConfig, configFlag string, timestampsFlag bool) error {
	cfg.TemplatesFlagSet = cmdutil.Changed(cmd, "templates")

	pathResult, err := config.ResolveConfigPath(config.ResolveConfigPathOptions{FlagValue: configFlag})
	if err != nil {
		return cmdutil.Exit(err)
	}
	cfg.ConfigPath = pathResult

	// A broken config file must not block commands; 'tyha config vet' reports it.
	loader := config.NewLoader()
	loaded, loadErr := loader.Load(pathResult.Value)
	if loadErr != nil {
		loader = config.NewLoader()
		loaded = config.DefaultConfig()
	}
	cfg.Loader = loader
	cfg.Config = loaded

	logCfg := output.LogConfig{Verbose: cfg.Verbose}
	if cmdutil.Changed(cmd, "timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	} else if loaded.Log.Timestamps != nil {
		logCfg.Timestamps = loaded.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	if loadErr != nil {
		output.Warn("ignoring config file", "path", pathResult.Value, "error", loadErr)
	}

	if cfg.Verbose {
		info := version.Get()
		output.Debug("tyha started", "version", info.Version, "cue_sdk", info.CUESDKVersion)
		config.LogResolvedValues(append([]config.ResolvedValue{pathResult}, loader.ResolveAll()...))
	}

	return nil
}
