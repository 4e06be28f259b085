package scaffold

// PlaceholderFile is a template file kept in a materialized module.
// Source and Target are extension-less paths relative to the module root.
type PlaceholderFile struct {
	// Source is the path inside the template.
	Source string `json:"source"`

	// Target is the final path; it may contain {{token}} markers.
	Target string `json:"target"`

	// Adapter marks infrastructure files that also receive the repository substitutions.
	Adapter bool `json:"adapter,omitempty"`
}

// Selection is the outcome of choosing variants for a module.
type Selection struct {
	// Keep lists the files that survive, in rewrite order.
	Keep []PlaceholderFile `json:"keep"`

	// DeleteCandidates lists template paths of the losing variants.
	DeleteCandidates []string `json:"deleteCandidates"`
}

var domainFiles = []PlaceholderFile{
	{Source: "domain/entity", Target: "domain/entity"},
	{Source: "domain/repository", Target: "domain/repository"},
	{Source: "domain/value", Target: "domain/value"},
}

var applicationFiles = []PlaceholderFile{
	{Source: "application/dtos/create", Target: "application/dtos/{{nameClean}}_create"},
	{Source: "application/dtos/response", Target: "application/dtos/{{nameClean}}_response"},
	{Source: "application/schemas/schema", Target: "application/schemas/{{nameClean}}"},
	{Source: "application/use_cases/use_cases", Target: "application/use_cases/{{nameClean}}"},
}

type routerVariant struct {
	kind  RouterType
	files []PlaceholderFile
}

var routerVariants = []routerVariant{
	{RouterREST, []PlaceholderFile{
		{Source: "infrastructure/rest", Target: "infrastructure/router", Adapter: true},
		{Source: "infrastructure/rest_controller", Target: "infrastructure/controller", Adapter: true},
	}},
	{RouterGRPC, []PlaceholderFile{
		{Source: "infrastructure/grpc", Target: "infrastructure/router", Adapter: true},
		{Source: "infrastructure/grpc_controller", Target: "infrastructure/controller", Adapter: true},
	}},
}

type repositoryVariant struct {
	kind RepositoryType
	file PlaceholderFile
}

var repositoryVariants = []repositoryVariant{
	{RepositoryInMemory, PlaceholderFile{Source: "infrastructure/repositories/memory", Target: "infrastructure/repositories/memory", Adapter: true}},
	{RepositoryDrizzle, PlaceholderFile{Source: "infrastructure/repositories/drizzle", Target: "infrastructure/repositories/drizzle", Adapter: true}},
	{RepositoryGRPCClient, PlaceholderFile{Source: "infrastructure/repositories/grpc_client", Target: "infrastructure/repositories/grpc_client", Adapter: true}},
}

// SelectFiles decides which template files of a module survive.
// For ModuleOnlyDomain the router and repository axes are not evaluated.
func SelectFiles(moduleType ModuleType, router RouterType, repository RepositoryType) (Selection, error) {
	switch moduleType {
	case ModuleOnlyDomain:
		return Selection{Keep: clonePlaceholders(domainFiles)}, nil
	case ModuleFull:
	default:
		return Selection{}, &ConfigurationError{Axis: "module type", Value: string(moduleType), Valid: joinValues(ModuleTypes())}
	}

	sel := Selection{Keep: clonePlaceholders(domainFiles)}
	sel.Keep = append(sel.Keep, applicationFiles...)

	matched := false
	for _, v := range routerVariants {
		if v.kind == router {
			sel.Keep = append(sel.Keep, v.files...)
			matched = true
			continue
		}
		for _, f := range v.files {
			sel.DeleteCandidates = append(sel.DeleteCandidates, f.Source)
		}
	}
	if !matched {
		return Selection{}, &ConfigurationError{Axis: "router", Value: string(router), Valid: joinValues(RouterTypes())}
	}

	matched = false
	for _, v := range repositoryVariants {
		if v.kind == repository {
			sel.Keep = append(sel.Keep, v.file)
			matched = true
			continue
		}
		sel.DeleteCandidates = append(sel.DeleteCandidates, v.file.Source)
	}
	if !matched {
		return Selection{}, &ConfigurationError{Axis: "repository", Value: string(repository), Valid: joinValues(RepositoryTypes())}
	}

	return sel, nil
}

// ModuleLayout lists every template file a module type must provide,
// including all variant candidates.
func ModuleLayout(moduleType ModuleType) []string {
	var files []string
	for _, f := range domainFiles {
		files = append(files, f.Source)
	}
	if moduleType != ModuleFull {
		return files
	}
	for _, f := range applicationFiles {
		files = append(files, f.Source)
	}
	for _, v := range routerVariants {
		for _, f := range v.files {
			files = append(files, f.Source)
		}
	}
	for _, v := range repositoryVariants {
		files = append(files, v.file.Source)
	}
	return files
}

func clonePlaceholders(files []PlaceholderFile) []PlaceholderFile {
	out := make([]PlaceholderFile, len(files))
	copy(out, files)
	return out
}
