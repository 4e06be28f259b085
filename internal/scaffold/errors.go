package scaffold

import (
	"fmt"

	oerrors "github.com/tyha/cli/internal/errors"
	"github.com/tyha/cli/internal/naming"
)

// InvalidNameError reports user input that normalizes to an unusable identifier.
type InvalidNameError = naming.InvalidNameError

// MissingParentError reports an absent container directory such as modules/.
type MissingParentError struct {
	Path string
}

// Error implements the error interface.
func (e *MissingParentError) Error() string {
	return fmt.Sprintf("parent directory %s does not exist", e.Path)
}

// Unwrap returns ErrNotFound.
func (e *MissingParentError) Unwrap() error {
	return oerrors.ErrNotFound
}

// AlreadyExistsError reports a target path that is already occupied.
type AlreadyExistsError struct {
	Path string
}

// Error implements the error interface.
func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s already exists; refusing to overwrite", e.Path)
}

// Unwrap returns ErrConflict.
func (e *AlreadyExistsError) Unwrap() error {
	return oerrors.ErrConflict
}

// TemplateNotFoundError reports a template key whose source directory is missing.
type TemplateNotFoundError struct {
	// Key is the template kind or module type that was requested.
	Key string

	// Path is the expected location under the template root.
	Path string
}

// Error implements the error interface.
func (e *TemplateNotFoundError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("template %q is not defined", e.Key)
	}
	return fmt.Sprintf("template %q not found at %s", e.Key, e.Path)
}

// Unwrap returns ErrNotFound.
func (e *TemplateNotFoundError) Unwrap() error {
	return oerrors.ErrNotFound
}

// FileAccessError wraps an OS-level failure during copy, read, write, rename or delete.
type FileAccessError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface.
func (e *FileAccessError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// ConfigurationError reports a required variant axis without a valid value.
type ConfigurationError struct {
	// Axis names the choice, e.g. "router".
	Axis string

	// Value is what was supplied; empty when nothing was.
	Value string

	// Valid lists the accepted values.
	Valid string
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s is required (valid: %s)", e.Axis, e.Valid)
	}
	return fmt.Sprintf("unknown %s %q (valid: %s)", e.Axis, e.Value, e.Valid)
}

// Unwrap returns ErrConfiguration.
func (e *ConfigurationError) Unwrap() error {
	return oerrors.ErrConfiguration
}

// IncompleteError reports a plan that stopped part way. The target is left in
// place and must be removed by hand before retrying.
type IncompleteError struct {
	Target string
	Err    error
}

// Error implements the error interface.
func (e *IncompleteError) Error() string {
	return fmt.Sprintf("%v (partial output left at %s; remove it before retrying)", e.Err, e.Target)
}

// Unwrap returns the failing step's error.
func (e *IncompleteError) Unwrap() error {
	return e.Err
}
