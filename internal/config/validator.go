package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	cueyaml "cuelang.org/go/encoding/yaml"

	oerrors "github.com/tyha/cli/internal/errors"
)

//go:embed schema/config.cue
var configSchemaCUE []byte

const schemaDefinition = "#Config"

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for i := range e {
		sb.WriteString("  ")
		sb.WriteString(e[i].Error())
		sb.WriteString("\n")
	}
	return sb.String()
}

// Unwrap lets callers match validation failures with errors.Is.
func (e ValidationErrors) Unwrap() error {
	return oerrors.ErrConfiguration
}

// Validator validates configuration against the embedded CUE schema.
type Validator struct {
	ctx    *cue.Context
	schema cue.Value
}

// NewValidator creates a new configuration validator.
func NewValidator() (*Validator, error) {
	ctx := cuecontext.New()

	compiled := ctx.CompileBytes(configSchemaCUE, cue.Filename("config.cue"))
	if err := compiled.Err(); err != nil {
		return nil, fmt.Errorf("compiling config schema: %w", err)
	}

	schema := compiled.LookupPath(cue.ParsePath(schemaDefinition))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("looking up %s: %w", schemaDefinition, err)
	}

	return &Validator{ctx: ctx, schema: schema}, nil
}

// Validate checks a decoded Config, including values that came from the
// environment.
func (v *Validator) Validate(cfg *Config) error {
	if cfg == nil {
		return nil
	}
	return v.check(v.ctx.Encode(cfg))
}

// ValidateBytes checks raw YAML config content. Unlike Validate it also
// reports unknown keys and wrongly typed values.
func (v *Validator) ValidateBytes(filename string, data []byte) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	file, err := cueyaml.Extract(filename, data)
	if err != nil {
		return ValidationErrors{{Message: fmt.Sprintf("parsing %s: %v", filename, err)}}
	}

	value := v.ctx.BuildFile(file)
	if err := value.Err(); err != nil {
		return toValidationErrors(err)
	}
	return v.check(value)
}

// ValidateFile reads and checks the config file at path.
func (v *Validator) ValidateFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	return v.ValidateBytes(path, data)
}

func (v *Validator) check(value cue.Value) error {
	if err := value.Err(); err != nil {
		return toValidationErrors(err)
	}
	unified := v.schema.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return toValidationErrors(err)
	}
	return nil
}

func toValidationErrors(err error) ValidationErrors {
	var out ValidationErrors
	for _, e := range cueerrors.Errors(err) {
		format, args := e.Msg()
		out = append(out, ValidationError{
			Field:   fieldPath(e.Path()),
			Message: fmt.Sprintf(format, args...),
		})
	}
	if len(out) == 0 {
		out = append(out, ValidationError{Message: err.Error()})
	}
	return out
}

func fieldPath(parts []string) string {
	if len(parts) > 0 && parts[0] == schemaDefinition {
		parts = parts[1:]
	}
	return strings.Join(parts, ".")
}
