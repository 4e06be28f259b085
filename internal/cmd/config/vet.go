package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tyha/cli/internal/cmdutil"
	"github.com/tyha/cli/internal/config"
	oerrors "github.com/tyha/cli/internal/errors"
	"github.com/tyha/cli/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(cfg *config.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate configuration",
		Long: `Validate the tyha configuration file.

Checks performed:
  1. Config file exists at resolved path
  2. File content matches the configuration schema (no unknown keys,
     known template, router and repository names)
  3. Values from TYHA_* environment variables are valid as well

The config path is resolved using precedence:
  --config flag > TYHA_CONFIG env > ~/.tyha/config.yaml`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return cmdutil.Exit(runVet(c, cfg))
		},
	}
}

func runVet(c *cobra.Command, cfg *config.GlobalConfig) error {
	path := cfg.ConfigPath.Value
	output.Debug("validating config", "path", path, "source", cfg.ConfigPath.Source)

	exists, err := config.ConfigFileExists(path)
	if err != nil {
		return err
	}
	if !exists {
		return &oerrors.DetailError{
			Type:     "not found",
			Message:  "configuration file not found",
			Location: path,
			Hint:     "Run 'tyha config init' to create default configuration",
			Cause:    oerrors.ErrNotFound,
		}
	}

	v, err := config.NewValidator()
	if err != nil {
		return err
	}

	if err := v.ValidateFile(path); err != nil {
		return vetError(path, err)
	}

	merged, err := config.NewLoader().Load(path)
	if err != nil {
		return vetError(path, err)
	}
	if err := v.Validate(merged); err != nil {
		return vetError(path, err)
	}

	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Configuration is valid: "+path))
	return nil
}

func vetError(path string, err error) error {
	return &oerrors.DetailError{
		Type:     "invalid configuration",
		Message:  err.Error(),
		Location: path,
		Hint:     "Fix the listed fields or regenerate the file with 'tyha config init --force'.",
		Cause:    oerrors.ErrConfiguration,
	}
}
