// Package module provides the `tyha module` command group.
package module

import (
	"github.com/spf13/cobra"

	"github.com/tyha/cli/internal/cmdutil"
	"github.com/tyha/cli/internal/config"
)

// NewModuleCmd creates the module command group.
func NewModuleCmd(cfg *config.GlobalConfig, deps cmdutil.Deps) *cobra.Command {
	c := &cobra.Command{
		Use:   "module",
		Short: "Module operations",
		Long:  `Commands for adding modules to an existing project.`,
	}

	c.AddCommand(NewCreateCmd(cfg, deps))

	return c
}

// NewCreateAliasCmd creates the top-level `create:module` shortcut.
func NewCreateAliasCmd(cfg *config.GlobalConfig, deps cmdutil.Deps) *cobra.Command {
	c := NewCreateCmd(cfg, deps)
	c.Use = "create:module [name]"
	c.Short = "Create a new module (same as 'module create')"
	return c
}
