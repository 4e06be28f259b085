package templates

import "github.com/tyha/cli/internal/fsport"

// Kind distinguishes project skeletons from module templates.
type Kind string

const (
	// KindProject templates create a new service.
	KindProject Kind = "project"

	// KindModule templates add a bounded context to an existing service.
	KindModule Kind = "module"
)

// Template describes one template subtree with its metadata.
type Template struct {
	// Name is the template identifier (rest, grpc, auth, full, only_domain).
	Name string

	// Kind is project or module.
	Kind Kind

	// Description explains the template's purpose.
	Description string

	// UseCase describes when to use this template.
	UseCase string

	// Default indicates the template used when none is chosen.
	Default bool
}

// Dir returns the template's directory inside the template root.
func (t Template) Dir() string {
	if t.Kind == KindModule {
		return fsport.Join("modules", t.Name)
	}
	return fsport.Join("projects", t.Name)
}
