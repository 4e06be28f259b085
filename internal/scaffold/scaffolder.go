package scaffold

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/tyha/cli/internal/fsport"
	"github.com/tyha/cli/internal/naming"
)

// DefaultModulesDir is where modules are created relative to a project root.
const DefaultModulesDir = "src/modules"

// ProjectOptions are the resolved inputs of CreateProject.
type ProjectOptions struct {
	// Name is the raw project name.
	Name string

	// Template is the project kind; empty selects ProjectREST.
	Template ProjectTemplate

	// Auth selects the authentication skeleton and takes precedence over Template.
	Auth bool

	// Dir is the parent directory; empty means the working directory.
	Dir string

	// DryRun plans without touching the filesystem.
	DryRun bool
}

// ModuleOptions are the resolved inputs of CreateModule.
type ModuleOptions struct {
	Name       string
	ModuleType ModuleType
	Router     RouterType
	Repository RepositoryType

	// ModulesDir is the container the module is created in; empty means DefaultModulesDir.
	ModulesDir string

	DryRun bool
}

// Result describes a completed (or, for dry runs, planned) materialization.
type Result struct {
	Target string     `json:"target"`
	Names  naming.Set `json:"names"`
	DryRun bool       `json:"dryRun,omitempty"`

	// Files lists the generated files relative to Target. Empty for dry runs.
	Files []string `json:"files,omitempty"`

	Plan *Plan `json:"plan"`
}

// Scaffolder is the entry point used by the command layer.
type Scaffolder struct {
	fsys fsport.FileSystem
	m    *Materializer
}

// NewScaffolder creates a Scaffolder over fsys and the template spec.
func NewScaffolder(fsys fsport.FileSystem, spec TemplateSpec, logger *log.Logger) *Scaffolder {
	return &Scaffolder{fsys: fsys, m: NewMaterializer(fsys, spec, logger)}
}

// CreateProject materializes a project skeleton.
func (s *Scaffolder) CreateProject(ctx context.Context, opts ProjectOptions) (*Result, error) {
	names, err := naming.Derive(opts.Name)
	if err != nil {
		return nil, err
	}

	kind := opts.Template
	if opts.Auth {
		kind = ProjectAuth
	}
	if kind == "" {
		kind = ProjectREST
	}

	dir := opts.Dir
	if dir == "" {
		dir = "."
	}

	plan, err := s.m.PlanProject(dir, kind, names)
	if err != nil {
		return nil, err
	}
	return s.finish(ctx, plan, names, opts.DryRun)
}

// CreateModule materializes a module inside an existing modules directory.
func (s *Scaffolder) CreateModule(ctx context.Context, opts ModuleOptions) (*Result, error) {
	names, err := naming.Derive(opts.Name)
	if err != nil {
		return nil, err
	}

	dir := opts.ModulesDir
	if dir == "" {
		dir = DefaultModulesDir
	}

	variant := ModuleVariant{Type: opts.ModuleType, Router: opts.Router, Repository: opts.Repository}
	if variant.Type == "" {
		variant.Type = ModuleFull
	}

	plan, err := s.m.PlanModule(dir, variant, names)
	if err != nil {
		return nil, err
	}
	return s.finish(ctx, plan, names, opts.DryRun)
}

func (s *Scaffolder) finish(ctx context.Context, plan *Plan, names naming.Set, dryRun bool) (*Result, error) {
	result := &Result{Target: plan.Target, Names: names, DryRun: dryRun, Plan: plan}
	if dryRun {
		return result, nil
	}

	if err := s.m.Execute(ctx, plan); err != nil {
		return nil, err
	}

	files, err := s.fsys.List(plan.Target)
	if err != nil {
		return nil, fileAccess("list", plan.Target, err)
	}
	result.Files = files
	return result, nil
}
