package scaffold

import (
	"errors"
	"io/fs"

	"github.com/spf13/afero"

	"github.com/tyha/cli/internal/fsport"
)

// DefaultExt is the extension of generated source files.
const DefaultExt = "ts"

const (
	projectsDir = "projects"
	modulesDir  = "modules"
)

// TemplateSpec locates template subtrees inside a read-only template root.
//
// The root holds projects/<kind>/... and modules/<full|only_domain>/... trees.
type TemplateSpec struct {
	// Root is the template filesystem. It is only ever read.
	Root afero.Fs

	// Ext is the generated source file extension without the dot.
	Ext string
}

// NewTemplateSpec returns a spec over root using DefaultExt.
func NewTemplateSpec(root afero.Fs) TemplateSpec {
	return TemplateSpec{Root: root, Ext: DefaultExt}
}

// ResolveProject returns the template directory for a project kind.
func (s TemplateSpec) ResolveProject(kind ProjectTemplate) (string, error) {
	return s.resolve(string(kind), fsport.Join(projectsDir, string(kind)))
}

// ResolveModule returns the template directory for a module type.
func (s TemplateSpec) ResolveModule(moduleType ModuleType) (string, error) {
	return s.resolve(string(moduleType), fsport.Join(modulesDir, string(moduleType)))
}

// ValidateModule checks that every file the selection tables reference exists
// in the module template, so a broken template is reported before any copy.
func (s TemplateSpec) ValidateModule(moduleType ModuleType) error {
	dir, err := s.ResolveModule(moduleType)
	if err != nil {
		return err
	}

	for _, rel := range ModuleLayout(moduleType) {
		p := fsport.Join(dir, s.File(rel))
		info, err := s.Root.Stat(p)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return &TemplateNotFoundError{Key: string(moduleType), Path: p}
			}
			return fileAccess("stat", p, err)
		}
		if info.IsDir() {
			return &TemplateNotFoundError{Key: string(moduleType), Path: p}
		}
	}
	return nil
}

// File appends the source extension to an extension-less relative path.
func (s TemplateSpec) File(rel string) string {
	if s.Ext == "" {
		return rel
	}
	return rel + "." + s.Ext
}

// ProjectKinds lists the project templates present in the root.
func (s TemplateSpec) ProjectKinds() []ProjectTemplate {
	var kinds []ProjectTemplate
	for _, k := range ProjectTemplates() {
		if _, err := s.ResolveProject(k); err == nil {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

func (s TemplateSpec) resolve(key, dir string) (string, error) {
	if key == "" {
		return "", &TemplateNotFoundError{Key: key}
	}
	if s.Root == nil {
		return "", &TemplateNotFoundError{Key: key, Path: dir}
	}

	info, err := s.Root.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &TemplateNotFoundError{Key: key, Path: dir}
		}
		return "", fileAccess("stat", dir, err)
	}
	if !info.IsDir() {
		return "", &TemplateNotFoundError{Key: key, Path: dir}
	}
	return dir, nil
}
