// Package scaffold materializes projects and modules from template trees.
//
// A materialization copies a template subtree, resolves {{token}} placeholders,
// renames generic files to name-specific ones and removes the variant files
// that were not chosen. All decisions are taken before the first filesystem
// mutation; execution is a linear, fail-fast sequence of operations.
package scaffold

import (
	"strings"
)

// ModuleType selects which layers a module contains.
type ModuleType string

const (
	// ModuleFull materializes domain, application and infrastructure layers.
	ModuleFull ModuleType = "full"

	// ModuleOnlyDomain materializes only the domain layer.
	ModuleOnlyDomain ModuleType = "only_domain"
)

// RouterType selects the transport adapter kept in the infrastructure layer.
type RouterType string

const (
	// RouterREST keeps the REST router and controller.
	RouterREST RouterType = "rest"

	// RouterGRPC keeps the gRPC service and controller.
	RouterGRPC RouterType = "grpc"
)

// RepositoryType selects the persistence adapter kept in the infrastructure layer.
type RepositoryType string

const (
	// RepositoryInMemory keeps the in-memory repository.
	RepositoryInMemory RepositoryType = "memory"

	// RepositoryDrizzle keeps the Drizzle ORM repository.
	RepositoryDrizzle RepositoryType = "drizzle"

	// RepositoryGRPCClient keeps the repository that delegates to a remote gRPC service.
	RepositoryGRPCClient RepositoryType = "grpc_client"
)

// ProjectTemplate names a project skeleton under projects/.
type ProjectTemplate string

const (
	// ProjectREST is an HTTP service skeleton.
	ProjectREST ProjectTemplate = "rest"

	// ProjectGRPC is a gRPC service skeleton.
	ProjectGRPC ProjectTemplate = "grpc"

	// ProjectAuth is an HTTP service skeleton with authentication.
	ProjectAuth ProjectTemplate = "auth"
)

// ModuleTypes returns all module types.
func ModuleTypes() []ModuleType {
	return []ModuleType{ModuleFull, ModuleOnlyDomain}
}

// RouterTypes returns all router types.
func RouterTypes() []RouterType {
	return []RouterType{RouterREST, RouterGRPC}
}

// RepositoryTypes returns all repository types.
func RepositoryTypes() []RepositoryType {
	return []RepositoryType{RepositoryInMemory, RepositoryDrizzle, RepositoryGRPCClient}
}

// ProjectTemplates returns all project templates.
func ProjectTemplates() []ProjectTemplate {
	return []ProjectTemplate{ProjectREST, ProjectGRPC, ProjectAuth}
}

// ParseModuleType converts s into a ModuleType.
func ParseModuleType(s string) (ModuleType, error) {
	for _, t := range ModuleTypes() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", &ConfigurationError{Axis: "module type", Value: s, Valid: joinValues(ModuleTypes())}
}

// ParseRouterType converts s into a RouterType. An empty string yields the zero value.
func ParseRouterType(s string) (RouterType, error) {
	if s == "" {
		return "", nil
	}
	for _, t := range RouterTypes() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", &ConfigurationError{Axis: "router", Value: s, Valid: joinValues(RouterTypes())}
}

// ParseRepositoryType converts s into a RepositoryType. An empty string yields the zero value.
func ParseRepositoryType(s string) (RepositoryType, error) {
	if s == "" {
		return "", nil
	}
	for _, t := range RepositoryTypes() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", &ConfigurationError{Axis: "repository", Value: s, Valid: joinValues(RepositoryTypes())}
}

// ParseProjectTemplate converts s into a ProjectTemplate.
func ParseProjectTemplate(s string) (ProjectTemplate, error) {
	for _, t := range ProjectTemplates() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", &ConfigurationError{Axis: "project template", Value: s, Valid: joinValues(ProjectTemplates())}
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
