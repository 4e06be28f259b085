package scaffold

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/tyha/cli/internal/fsport"
	"github.com/tyha/cli/internal/naming"
)

// ModuleVariant holds the variant choices for one module.
type ModuleVariant struct {
	Type       ModuleType     `json:"type"`
	Router     RouterType     `json:"router,omitempty"`
	Repository RepositoryType `json:"repository,omitempty"`
}

// Materializer turns templates into concrete file trees on a FileSystem.
type Materializer struct {
	fsys   fsport.FileSystem
	spec   TemplateSpec
	logger *log.Logger
}

// NewMaterializer creates a Materializer writing to fsys and reading templates
// through spec. A nil logger discards output.
func NewMaterializer(fsys fsport.FileSystem, spec TemplateSpec, logger *log.Logger) *Materializer {
	if logger == nil {
		logger = discardLogger()
	}
	return &Materializer{fsys: fsys, spec: spec, logger: logger}
}

// PlanProject checks the preconditions of a project and returns its plan.
// The project is created at <root>/<clean name>.
func (m *Materializer) PlanProject(root string, kind ProjectTemplate, names naming.Set) (*Plan, error) {
	if err := m.requireDir(root); err != nil {
		return nil, err
	}

	target := fsport.Join(root, names.Clean)
	if err := m.requireAbsent(target); err != nil {
		return nil, err
	}

	dir, err := m.spec.ResolveProject(kind)
	if err != nil {
		return nil, err
	}

	files, err := fsport.ListFiles(m.spec.Root, dir)
	if err != nil {
		return nil, fileAccess("list", dir, err)
	}

	subs := Substitutions(names.Substitutions())
	plan := &Plan{
		Target:   target,
		Template: dir,
		Names:    subs,
		Ops:      []Op{{Kind: OpCopyTree, Source: dir, Path: target}},
	}
	for _, f := range files {
		plan.Ops = append(plan.Ops, Op{Kind: OpRewrite, Path: fsport.Join(target, f), Substitutions: subs})
	}
	return plan, nil
}

// PlanModule checks the preconditions of a module and returns its plan.
// The module is created at <modulesRoot>/<clean name>.
func (m *Materializer) PlanModule(modulesRoot string, variant ModuleVariant, names naming.Set) (*Plan, error) {
	if err := names.ValidateIdentifier(); err != nil {
		return nil, err
	}

	if variant.Type == ModuleOnlyDomain && (variant.Router != "" || variant.Repository != "") {
		m.logger.Debug("ignoring variant choices for domain-only module",
			"router", variant.Router, "repository", variant.Repository)
	}

	sel, err := SelectFiles(variant.Type, variant.Router, variant.Repository)
	if err != nil {
		return nil, err
	}

	if err := m.requireDir(modulesRoot); err != nil {
		return nil, err
	}

	target := fsport.Join(modulesRoot, names.Clean)
	if err := m.requireAbsent(target); err != nil {
		return nil, err
	}

	dir, err := m.spec.ResolveModule(variant.Type)
	if err != nil {
		return nil, err
	}
	if err := m.spec.ValidateModule(variant.Type); err != nil {
		return nil, err
	}

	subs := Substitutions(names.Substitutions())
	adapterSubs := subs
	if variant.Type == ModuleFull {
		adapterSubs = subs.Merge(naming.DeriveRepository(string(variant.Repository)).Substitutions())
	}

	plan := &Plan{
		Target:   target,
		Template: dir,
		Names:    adapterSubs,
		Ops:      []Op{{Kind: OpCopyTree, Source: dir, Path: target}},
	}

	for _, f := range sel.Keep {
		s := subs
		if f.Adapter {
			s = adapterSubs
		}
		plan.Ops = append(plan.Ops, Op{
			Kind:          OpRewrite,
			Path:          fsport.Join(target, m.spec.File(f.Source)),
			Substitutions: s,
		})
	}

	for _, f := range sel.Keep {
		final := subs.Apply(f.Target)
		if final == f.Source {
			continue
		}
		plan.Ops = append(plan.Ops, Op{
			Kind:    OpRename,
			Path:    fsport.Join(target, m.spec.File(f.Source)),
			NewPath: fsport.Join(target, m.spec.File(final)),
		})
	}

	for _, rel := range sel.DeleteCandidates {
		plan.Ops = append(plan.Ops, Op{Kind: OpDelete, Path: fsport.Join(target, m.spec.File(rel))})
	}

	return plan, nil
}

// MaterializeProject derives names from raw, plans and executes a project.
func (m *Materializer) MaterializeProject(ctx context.Context, root string, kind ProjectTemplate, raw string) (*Plan, error) {
	names, err := naming.Derive(raw)
	if err != nil {
		return nil, err
	}
	plan, err := m.PlanProject(root, kind, names)
	if err != nil {
		return nil, err
	}
	return plan, m.Execute(ctx, plan)
}

// MaterializeModule derives names from raw, plans and executes a module.
func (m *Materializer) MaterializeModule(ctx context.Context, modulesRoot string, variant ModuleVariant, raw string) (*Plan, error) {
	names, err := naming.Derive(raw)
	if err != nil {
		return nil, err
	}
	plan, err := m.PlanModule(modulesRoot, variant, names)
	if err != nil {
		return nil, err
	}
	return plan, m.Execute(ctx, plan)
}

// Execute runs a plan. Cancellation is honoured only before the first step.
func (m *Materializer) Execute(ctx context.Context, plan *Plan) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.logger.Debug("materializing", "target", plan.Target, "template", plan.Template, "steps", len(plan.Ops))
	return plan.Execute(m.fsys, m.spec.Root, m.logger)
}

func (m *Materializer) requireDir(p string) error {
	ok, err := m.fsys.IsDir(p)
	if err != nil {
		return fileAccess("stat", p, err)
	}
	if !ok {
		return &MissingParentError{Path: p}
	}
	return nil
}

func (m *Materializer) requireAbsent(p string) error {
	exists, err := m.fsys.Exists(p)
	if err != nil {
		return fileAccess("stat", p, err)
	}
	if exists {
		return &AlreadyExistsError{Path: p}
	}
	return nil
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}
