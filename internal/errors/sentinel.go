package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates invalid user input such as an unusable name.
	ErrValidation = errors.New("validation error")

	// ErrConfiguration indicates a required choice was missing or unknown.
	ErrConfiguration = errors.New("configuration error")

	// ErrPermission indicates insufficient filesystem permissions.
	ErrPermission = errors.New("permission denied")

	// ErrNotFound indicates a template, directory, or file was not found.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates the target path is already occupied.
	ErrConflict = errors.New("already exists")
)
