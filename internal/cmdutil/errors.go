// Package cmdutil provides helpers shared by the project, module, template and
// config command groups: flag groups, scaffolder wiring, result output and
// error presentation.
package cmdutil

import (
	"errors"
	"fmt"

	oerrors "github.com/tyha/cli/internal/errors"
	"github.com/tyha/cli/internal/prompt"
	"github.com/tyha/cli/internal/scaffold"
)

// Describe turns scaffold failures into a DetailError with a hint. The
// original error stays in the chain so exit codes still resolve.
func Describe(err error) error {
	if err == nil {
		return nil
	}

	var (
		detail     *oerrors.DetailError
		incomplete *scaffold.IncompleteError
		invalid    *scaffold.InvalidNameError
		missing    *scaffold.MissingParentError
		exists     *scaffold.AlreadyExistsError
		notFound   *scaffold.TemplateNotFoundError
		badOption  *scaffold.ConfigurationError
		access     *scaffold.FileAccessError
	)

	switch {
	case errors.As(err, &detail):
		return err
	case errors.As(err, &incomplete):
		return &oerrors.DetailError{
			Type:     "incomplete output",
			Message:  incomplete.Err.Error(),
			Location: incomplete.Target,
			Hint:     "The directory was left as is. Remove it before retrying.",
			Cause:    err,
		}
	case errors.As(err, &invalid):
		return &oerrors.DetailError{
			Type:    "invalid name",
			Message: err.Error(),
			Hint:    "Use letters, digits, spaces, '-' or '_', starting with a letter. Module names cannot be TypeScript reserved words.",
			Cause:   err,
		}
	case errors.As(err, &missing):
		return &oerrors.DetailError{
			Type:     "missing directory",
			Message:  err.Error(),
			Location: missing.Path,
			Hint:     "Run the command from the project root, or pass --modules-dir.",
			Cause:    err,
		}
	case errors.As(err, &exists):
		return &oerrors.DetailError{
			Type:     "already exists",
			Message:  err.Error(),
			Location: exists.Path,
			Hint:     "Choose another name or remove the existing directory.",
			Cause:    err,
		}
	case errors.As(err, &notFound):
		return &oerrors.DetailError{
			Type:     "template not found",
			Message:  err.Error(),
			Location: notFound.Path,
			Hint:     "Check --templates or the templatesDir setting; run 'tyha template list' to see what is available.",
			Cause:    err,
		}
	case errors.As(err, &badOption):
		return &oerrors.DetailError{
			Type:    "invalid option",
			Message: err.Error(),
			Hint:    fmt.Sprintf("Valid %s values: %s", badOption.Axis, badOption.Valid),
			Cause:   err,
		}
	case errors.As(err, &access):
		return &oerrors.DetailError{
			Type:     "file access failed",
			Message:  err.Error(),
			Location: access.Path,
			Cause:    err,
		}
	case errors.Is(err, prompt.ErrAborted):
		return &oerrors.DetailError{
			Type:    "aborted",
			Message: "no files were written",
			Cause:   err,
		}
	}
	return err
}

// Exit wraps err in an *ExitError carrying the exit code for its category.
// Errors that already carry an exit code are returned unchanged.
func Exit(err error) error {
	if err == nil {
		return nil
	}

	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) {
		return err
	}

	return &oerrors.ExitError{
		Code: oerrors.ExitCodeFromError(err),
		Err:  Describe(err),
	}
}
