package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tyha/cli/internal/cmdutil"
	"github.com/tyha/cli/internal/config"
	"github.com/tyha/cli/internal/output"
)

// NewConfigShowCmd creates the config show command.
func NewConfigShowCmd(cfg *config.GlobalConfig) *cobra.Command {
	var flags cmdutil.ScaffoldFlags

	c := &cobra.Command{
		Use:   "show",
		Short: "Show the resolved configuration",
		Long: `Show every setting with the value in effect and where it came from
(flag, env, config or default).`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			format, err := flags.Format()
			if err != nil {
				return cmdutil.Exit(err)
			}

			values := []config.ResolvedValue{cfg.ConfigPath}
			values = append(values, cfg.TemplatesDir())
			for _, s := range config.Settings {
				if s.Key == "templatesDir" {
					continue
				}
				values = append(values, cfg.Resolve(s.Key, "", false))
			}

			if format != output.FormatText {
				return cmdutil.Exit(output.Encode(c.OutOrStdout(), format, values))
			}

			tbl := output.NewTable("KEY", "VALUE", "SOURCE", "SHADOWED")
			for _, v := range values {
				tbl.Row(v.Key, v.Value, string(v.Source), shadowed(v))
			}
			fmt.Fprintln(c.OutOrStdout(), tbl.String())
			return nil
		},
	}

	c.Flags().StringVarP(&flags.Output, "output", "o", string(output.FormatText),
		fmt.Sprintf("Output format (%s)", strings.Join(output.ValidFormats(), ", ")))

	return c
}

func shadowed(v config.ResolvedValue) string {
	var parts []string
	for _, source := range []config.ConfigSource{config.SourceFlag, config.SourceEnv, config.SourceConfig, config.SourceDefault} {
		if value, ok := v.Shadowed[source]; ok {
			parts = append(parts, fmt.Sprintf("%s=%s", source, value))
		}
	}
	return strings.Join(parts, ", ")
}
