package scaffold

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/tyha/cli/internal/fsport"
)

// OpKind names a plan step.
type OpKind string

const (
	// OpCopyTree clones a template subtree into the target.
	OpCopyTree OpKind = "copy-tree"

	// OpRewrite resolves placeholders in a file in place.
	OpRewrite OpKind = "rewrite"

	// OpRename moves a generic file to its final name.
	OpRename OpKind = "rename"

	// OpDelete removes a losing variant file if present.
	OpDelete OpKind = "delete"
)

// Op is one filesystem step of a plan.
type Op struct {
	Kind OpKind `json:"kind"`

	// Source is the template directory for OpCopyTree.
	Source string `json:"source,omitempty"`

	// Path is the file or directory acted on.
	Path string `json:"path"`

	// NewPath is the destination of OpRename.
	NewPath string `json:"newPath,omitempty"`

	// Substitutions are applied by OpRewrite.
	Substitutions Substitutions `json:"-"`
}

// String renders the op for logs.
func (o Op) String() string {
	switch o.Kind {
	case OpCopyTree:
		return fmt.Sprintf("%s %s -> %s", o.Kind, o.Source, o.Path)
	case OpRename:
		return fmt.Sprintf("%s %s -> %s", o.Kind, o.Path, o.NewPath)
	default:
		return fmt.Sprintf("%s %s", o.Kind, o.Path)
	}
}

// Plan is the complete, ordered list of mutations for one materialization.
// It is built only after every precondition holds.
type Plan struct {
	// Target is the directory the plan creates.
	Target string `json:"target"`

	// Template is the source subtree inside the template root.
	Template string `json:"template"`

	// Names are the values substituted for each token.
	Names Substitutions `json:"names"`

	Ops []Op `json:"ops"`
}

// Execute runs the ops in order and stops at the first failure.
// Nothing is rolled back; a failure after the first mutation returns an
// *IncompleteError naming the target left on disk.
func (p *Plan) Execute(fsys fsport.FileSystem, templates afero.Fs, logger *log.Logger) error {
	if logger == nil {
		logger = discardLogger()
	}

	for i, op := range p.Ops {
		logger.Debug("plan step", "step", i+1, "of", len(p.Ops), "op", op.Kind, "path", op.Path)

		if err := p.run(fsys, templates, op, logger); err != nil {
			var exists *AlreadyExistsError
			if i == 0 && errors.As(err, &exists) {
				return err
			}
			return &IncompleteError{Target: p.Target, Err: err}
		}
	}
	return nil
}

func (p *Plan) run(fsys fsport.FileSystem, templates afero.Fs, op Op, logger *log.Logger) error {
	switch op.Kind {
	case OpCopyTree:
		if err := fsys.CopyTree(templates, op.Source, op.Path); err != nil {
			if errors.Is(err, fs.ErrExist) {
				return &AlreadyExistsError{Path: op.Path}
			}
			return fileAccess("copy", op.Path, err)
		}
	case OpRewrite:
		return RewriteFile(fsys, op.Path, op.Substitutions)
	case OpRename:
		if err := fsys.Rename(op.Path, op.NewPath); err != nil {
			return fileAccess("rename", op.Path, err)
		}
	case OpDelete:
		exists, err := fsys.Exists(op.Path)
		if err != nil {
			return fileAccess("stat", op.Path, err)
		}
		if !exists {
			logger.Debug("delete skipped, file absent", "path", op.Path)
			return nil
		}
		if err := fsys.DeleteFile(op.Path); err != nil {
			return fileAccess("delete", op.Path, err)
		}
	default:
		return fmt.Errorf("unknown plan op %q", op.Kind)
	}
	return nil
}

// Count returns the number of ops of kind k.
func (p *Plan) Count(k OpKind) int {
	n := 0
	for _, op := range p.Ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

// fileAccess converts a port failure into a FileAccessError, keeping the
// innermost path and cause.
func fileAccess(op, p string, err error) error {
	var fa *FileAccessError
	if errors.As(err, &fa) {
		return fa
	}
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return &FileAccessError{Op: pe.Op, Path: pe.Path, Err: pe.Err}
	}
	return &FileAccessError{Op: op, Path: p, Err: err}
}
