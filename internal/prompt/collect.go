package prompt

import (
	"context"

	"github.com/tyha/cli/internal/naming"
	"github.com/tyha/cli/internal/scaffold"
)

// ProjectOptions fills the unset fields of opts. The template is asked only when
// neither a template nor --auth was chosen.
func ProjectOptions(ctx context.Context, p Prompter, opts scaffold.ProjectOptions) (scaffold.ProjectOptions, error) {
	if opts.Name == "" {
		name, err := p.Input(ctx, "Project name", "my-service", validateName)
		if err != nil {
			return opts, err
		}
		opts.Name = name
	}

	if opts.Template == "" && !opts.Auth {
		kind, err := p.Select(ctx, "Project template", optionsOf(scaffold.ProjectTemplates()))
		if err != nil {
			return opts, err
		}
		opts.Template = scaffold.ProjectTemplate(kind)
	}

	return opts, nil
}

// ModuleOptions fills the unset fields of opts. Router and repository are asked
// only for full modules.
func ModuleOptions(ctx context.Context, p Prompter, opts scaffold.ModuleOptions) (scaffold.ModuleOptions, error) {
	if opts.Name == "" {
		name, err := p.Input(ctx, "Module name", "invoice", validateModuleName)
		if err != nil {
			return opts, err
		}
		opts.Name = name
	}

	if opts.ModuleType == "" {
		mt, err := p.Select(ctx, "Module type", optionsOf(scaffold.ModuleTypes()))
		if err != nil {
			return opts, err
		}
		opts.ModuleType = scaffold.ModuleType(mt)
	}

	if opts.ModuleType != scaffold.ModuleFull {
		return opts, nil
	}

	if opts.Router == "" {
		r, err := p.Select(ctx, "Router", optionsOf(scaffold.RouterTypes()))
		if err != nil {
			return opts, err
		}
		opts.Router = scaffold.RouterType(r)
	}

	if opts.Repository == "" {
		r, err := p.Select(ctx, "Repository", optionsOf(scaffold.RepositoryTypes()))
		if err != nil {
			return opts, err
		}
		opts.Repository = scaffold.RepositoryType(r)
	}

	return opts, nil
}

func validateName(s string) error {
	_, err := naming.Derive(s)
	return err
}

func validateModuleName(s string) error {
	names, err := naming.Derive(s)
	if err != nil {
		return err
	}
	return names.ValidateIdentifier()
}

func optionsOf[T ~string](values []T) []Option {
	out := make([]Option, len(values))
	for i, v := range values {
		out[i] = Option{Label: string(v), Value: string(v)}
	}
	return out
}
