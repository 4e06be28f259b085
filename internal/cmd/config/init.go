package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tyha/cli/internal/cmdutil"
	"github.com/tyha/cli/internal/config"
	"github.com/tyha/cli/internal/output"
)

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(cfg *config.GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Write the default tyha configuration file.

The file is written to the resolved config path:
  --config flag > TYHA_CONFIG env > ~/.tyha/config.yaml

Examples:
  # Initialize configuration
  tyha config init

  # Overwrite existing configuration
  tyha config init --force`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			path := cfg.ConfigPath.Value
			if err := config.WriteDefault(path, force); err != nil {
				return cmdutil.Exit(err)
			}

			fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Configuration initialized at "+path))
			fmt.Fprintln(c.OutOrStdout(), "Validate with: tyha config vet")
			return nil
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false,
		"Overwrite existing configuration")

	return c
}
