// Package naming derives the canonical name variants used by templates.
package naming

import (
	"fmt"
	"regexp"
	"strings"

	oerrors "github.com/tyha/cli/internal/errors"
)

var (
	whitespaceRun    = regexp.MustCompile(`[\s\p{Z}]+`)
	nonIdentifier    = regexp.MustCompile(`[^A-Za-z0-9_]`)
	lowerUpperBorder = regexp.MustCompile(`([a-z])([A-Z])`)
)

// Set holds every variant of a user-supplied name. Values are immutable once derived.
type Set struct {
	// Raw is the input as typed by the user.
	Raw string `json:"raw"`

	// Clean is lowercase [a-z0-9_], used for directories, file names and import paths.
	Clean string `json:"clean"`

	// Camel is lowerCamelCase, used for variables and fields.
	Camel string `json:"camel"`

	// Pascal is UpperCamelCase, used for type names.
	Pascal string `json:"pascal"`

	// Kebab is kebab-case, used in URL path segments.
	Kebab string `json:"kebab"`
}

// InvalidNameError reports a name that cannot be used as an identifier.
type InvalidNameError struct {
	// Raw is the offending input.
	Raw string

	// Reason describes why the name was rejected.
	Reason string
}

// Error implements the error interface.
func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid name %q: %s", e.Raw, e.Reason)
}

// Unwrap returns ErrValidation so callers can map the error to an exit code.
func (e *InvalidNameError) Unwrap() error {
	return oerrors.ErrValidation
}

// Derive computes the canonical name set for raw.
// Fails with *InvalidNameError when nothing usable remains after normalization.
func Derive(raw string) (Set, error) {
	clean := Clean(raw)
	if clean == "" {
		return Set{}, &InvalidNameError{
			Raw:    raw,
			Reason: "must contain at least one letter, digit or underscore",
		}
	}

	camel := camelCase(clean, false)
	return Set{
		Raw:    raw,
		Clean:  clean,
		Camel:  camel,
		Pascal: camelCase(clean, true),
		Kebab:  kebabCase(camel),
	}, nil
}

// Clean normalizes raw into a filesystem-safe identifier.
func Clean(raw string) string {
	s := strings.TrimSpace(raw)
	s = whitespaceRun.ReplaceAllString(s, "_")
	s = nonIdentifier.ReplaceAllString(s, "")
	return strings.ToLower(s)
}

// camelCase joins the underscore-separated segments of clean, capitalizing
// every segment but the first unless upperFirst is set.
func camelCase(clean string, upperFirst bool) string {
	var b strings.Builder
	first := true
	for _, seg := range strings.Split(clean, "_") {
		if seg == "" {
			continue
		}
		if first && !upperFirst {
			b.WriteString(strings.ToLower(seg))
		} else {
			b.WriteString(strings.ToUpper(seg[:1]))
			b.WriteString(seg[1:])
		}
		first = false
	}
	return b.String()
}

func kebabCase(camel string) string {
	s := lowerUpperBorder.ReplaceAllString(camel, "$1-$2")
	s = strings.ReplaceAll(s, "_", "-")
	return strings.ToLower(s)
}

// Substitutions returns the placeholder values for this name set keyed by token.
func (s Set) Substitutions() map[string]string {
	return map[string]string{
		"name":      s.Pascal,
		"nameCamel": s.Camel,
		"nameKebab": s.Kebab,
		"nameClean": s.Clean,
	}
}

// ValidateIdentifier checks that the derived names are usable as identifiers in
// generated TypeScript sources.
func (s Set) ValidateIdentifier() error {
	if s.Clean == "" {
		return &InvalidNameError{Raw: s.Raw, Reason: "name is empty"}
	}
	if c := s.Clean[0]; c >= '0' && c <= '9' {
		return &InvalidNameError{
			Raw:    s.Raw,
			Reason: fmt.Sprintf("%q starts with a digit and cannot name a type", s.Pascal),
		}
	}
	if s.Camel == "" {
		return &InvalidNameError{Raw: s.Raw, Reason: "name contains only underscores"}
	}
	if isReservedWord(s.Camel) {
		return &InvalidNameError{
			Raw:    s.Raw,
			Reason: fmt.Sprintf("%q is a reserved word", s.Camel),
		}
	}
	return nil
}

// Repository is the name pair substituted into persistence adapter files.
type Repository struct {
	// Name is the PascalCase adapter prefix (e.g. "Drizzle").
	Name string `json:"name"`

	// Clean is the adapter file stem (e.g. "drizzle").
	Clean string `json:"clean"`
}

// DeriveRepository computes the repository name pair for a repository type key.
func DeriveRepository(key string) Repository {
	clean := Clean(key)
	return Repository{
		Name:  camelCase(clean, true),
		Clean: clean,
	}
}

// Substitutions returns the repository placeholder values keyed by token.
func (r Repository) Substitutions() map[string]string {
	return map[string]string{
		"repositoryName":  r.Name,
		"repositoryClean": r.Clean,
	}
}

// isReservedWord checks if a name is a TypeScript reserved word.
func isReservedWord(name string) bool {
	reserved := map[string]bool{
		"break":      true,
		"case":       true,
		"catch":      true,
		"class":      true,
		"const":      true,
		"continue":   true,
		"debugger":   true,
		"default":    true,
		"delete":     true,
		"do":         true,
		"else":       true,
		"enum":       true,
		"export":     true,
		"extends":    true,
		"false":      true,
		"finally":    true,
		"for":        true,
		"function":   true,
		"if":         true,
		"import":     true,
		"in":         true,
		"instanceof": true,
		"new":        true,
		"null":       true,
		"return":     true,
		"super":      true,
		"switch":     true,
		"this":       true,
		"throw":      true,
		"true":       true,
		"try":        true,
		"typeof":     true,
		"var":        true,
		"void":       true,
		"while":      true,
		"with":       true,
	}
	return reserved[name]
}
