// Package templates provides the embedded project and module template tree.
package templates

import (
	"embed"
	"io/fs"

	"github.com/spf13/afero"

	"github.com/tyha/cli/internal/fsport"
	"github.com/tyha/cli/internal/scaffold"
)

//go:embed all:templates
var content embed.FS

// Embedded returns the built-in template root as a read-only filesystem.
// Paths are relative to the root, e.g. "projects/rest/package.json".
func Embedded() afero.Fs {
	sub, err := fs.Sub(content, "templates")
	if err != nil {
		// "templates" is a literal directory inside content.
		panic(err)
	}
	return fsport.ReadOnlyFS(sub)
}

// Root returns the template root to use: dir on disk when set, otherwise the
// embedded tree.
func Root(dir string) afero.Fs {
	if dir == "" {
		return Embedded()
	}
	return fsport.ReadOnlyDir(dir)
}

// Spec returns a TemplateSpec over Root(dir).
func Spec(dir string) scaffold.TemplateSpec {
	return scaffold.NewTemplateSpec(Root(dir))
}

// Files lists the files of t relative to its directory.
func Files(root afero.Fs, t Template) ([]string, error) {
	return fsport.ListFiles(root, t.Dir())
}

// Check reports whether t is present and complete in spec's root.
func Check(spec scaffold.TemplateSpec, t Template) error {
	if t.Kind == KindModule {
		return spec.ValidateModule(scaffold.ModuleType(t.Name))
	}
	_, err := spec.ResolveProject(scaffold.ProjectTemplate(t.Name))
	return err
}
