package templates

import (
	"fmt"

	oerrors "github.com/tyha/cli/internal/errors"
	"github.com/tyha/cli/internal/scaffold"
)

// DefaultTemplateName is the project template used when --template is not specified.
const DefaultTemplateName = string(scaffold.ProjectREST)

var projects = map[string]Template{
	string(scaffold.ProjectREST): {
		Name:        string(scaffold.ProjectREST),
		Kind:        KindProject,
		Description: "Express HTTP service with Drizzle ORM and zod validation",
		UseCase:     "Public or internal JSON APIs",
		Default:     true,
	},
	string(scaffold.ProjectGRPC): {
		Name:        string(scaffold.ProjectGRPC),
		Kind:        KindProject,
		Description: "gRPC service built on @grpc/grpc-js",
		UseCase:     "Service-to-service calls with generated stubs",
	},
	string(scaffold.ProjectAuth): {
		Name:        string(scaffold.ProjectAuth),
		Kind:        KindProject,
		Description: "Express HTTP service with JWT authentication",
		UseCase:     "APIs that issue or verify bearer tokens",
	},
}

var modules = map[string]Template{
	string(scaffold.ModuleFull): {
		Name:        string(scaffold.ModuleFull),
		Kind:        KindModule,
		Description: "Domain, application and infrastructure layers",
		UseCase:     "A bounded context exposed through a router and backed by a repository",
		Default:     true,
	},
	string(scaffold.ModuleOnlyDomain): {
		Name:        string(scaffold.ModuleOnlyDomain),
		Kind:        KindModule,
		Description: "Domain layer only (entity, repository port, value object)",
		UseCase:     "Shared domain types without transport or persistence",
	},
}

// Get returns a project or module template by name.
func Get(name string) (Template, error) {
	if t, ok := projects[name]; ok {
		return t, nil
	}
	if t, ok := modules[name]; ok {
		return t, nil
	}
	return Template{}, fmt.Errorf("unknown template %q; valid templates: rest, grpc, auth, full, only_domain: %w",
		name, oerrors.ErrNotFound)
}

// List returns the project templates.
func List() []Template {
	out := make([]Template, 0, len(projects))
	for _, kind := range scaffold.ProjectTemplates() {
		out = append(out, projects[string(kind)])
	}
	return out
}

// Modules returns the module templates.
func Modules() []Template {
	out := make([]Template, 0, len(modules))
	for _, mt := range scaffold.ModuleTypes() {
		out = append(out, modules[string(mt)])
	}
	return out
}

// GetDefault returns the default project template.
func GetDefault() Template {
	return projects[DefaultTemplateName]
}

// Names returns all project template names.
func Names() []string {
	names := make([]string, 0, len(projects))
	for _, t := range List() {
		names = append(names, t.Name)
	}
	return names
}
