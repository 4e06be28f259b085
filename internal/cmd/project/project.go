// Package project provides the `tyha project` command group.
package project

import (
	"github.com/spf13/cobra"

	"github.com/tyha/cli/internal/cmdutil"
	"github.com/tyha/cli/internal/config"
)

// NewProjectCmd creates the project command group.
func NewProjectCmd(cfg *config.GlobalConfig, deps cmdutil.Deps) *cobra.Command {
	c := &cobra.Command{
		Use:   "project",
		Short: "Project operations",
		Long:  `Commands for creating TypeScript service skeletons.`,
	}

	c.AddCommand(NewCreateCmd(cfg, deps))

	return c
}

// NewCreateAliasCmd creates the top-level `create:project` shortcut.
func NewCreateAliasCmd(cfg *config.GlobalConfig, deps cmdutil.Deps) *cobra.Command {
	c := NewCreateCmd(cfg, deps)
	c.Use = "create:project [name]"
	c.Short = "Create a new project (same as 'project create')"
	return c
}
