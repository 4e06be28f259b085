//nolint:revive // Package name matches the package it tests
package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	assert.NotEqual(t, ErrValidation, ErrConfiguration)
	assert.NotEqual(t, ErrValidation, ErrPermission)
	assert.NotEqual(t, ErrNotFound, ErrConflict)
}

func TestDetailErrorError(t *testing.T) {
	detail := &DetailError{
		Type:     "validation failed",
		Message:  "name normalizes to an empty identifier",
		Location: "/work/src/modules",
		Context:  map[string]string{"Template": "full"},
		Hint:     "Use letters or digits",
	}

	output := detail.Error()

	assert.Contains(t, output, "Error: validation failed")
	assert.Contains(t, output, "Location: /work/src/modules")
	assert.Contains(t, output, "Template: full")
	assert.Contains(t, output, "name normalizes to an empty identifier")
	assert.Contains(t, output, "Hint: Use letters or digits")
}

func TestDetailErrorUnwrap(t *testing.T) {
	detail := &DetailError{
		Type:    "test",
		Message: "test message",
		Cause:   ErrValidation,
	}

	assert.True(t, errors.Is(detail, ErrValidation))
	assert.Equal(t, ErrValidation, detail.Unwrap())
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("bad name", "order item", "Use letters")

	require.NotNil(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	var detail *DetailError
	require.True(t, errors.As(err, &detail))
	assert.Equal(t, "validation failed", detail.Type)
	assert.Equal(t, "bad name", detail.Message)
	assert.Equal(t, "order item", detail.Location)
	assert.Equal(t, "Use letters", detail.Hint)
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("template missing", "projects/web_socket", "")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrConflict, "module user")

	assert.True(t, errors.Is(wrapped, ErrConflict))
	assert.Contains(t, wrapped.Error(), "module user")
}

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"exit error", &ExitError{Code: 42, Err: errors.New("x")}, 42},
		{"validation", fmt.Errorf("wrap: %w", ErrValidation), ExitValidationError},
		{"configuration", fmt.Errorf("wrap: %w", ErrConfiguration), ExitValidationError},
		{"permission sentinel", ErrPermission, ExitPermissionDenied},
		{"fs permission", &fs.PathError{Op: "open", Path: "/x", Err: fs.ErrPermission}, ExitPermissionDenied},
		{"not found", ErrNotFound, ExitNotFound},
		{"conflict", ErrConflict, ExitConflict},
		{"unknown", errors.New("boom"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitCodeName(t *testing.T) {
	assert.Equal(t, "Success", ExitCodeName(ExitSuccess))
	assert.Equal(t, "Conflict", ExitCodeName(ExitConflict))
	assert.Equal(t, "Unknown", ExitCodeName(99))
}
