package scaffold

import (
	"sort"
	"strings"

	"github.com/tyha/cli/internal/fsport"
)

// Substitutions maps placeholder tokens (without braces) to their values.
type Substitutions map[string]string

// Merge returns a new set holding s overlaid with each of others.
func (s Substitutions) Merge(others ...map[string]string) Substitutions {
	merged := make(Substitutions, len(s))
	for k, v := range s {
		merged[k] = v
	}
	for _, o := range others {
		for k, v := range o {
			merged[k] = v
		}
	}
	return merged
}

// Tokens returns the token names in sorted order.
func (s Substitutions) Tokens() []string {
	tokens := make([]string, 0, len(s))
	for k := range s {
		tokens = append(tokens, k)
	}
	sort.Strings(tokens)
	return tokens
}

// Apply replaces every {{token}} marker in text with its value.
// Values are inserted literally and unknown markers are left as they are.
func (s Substitutions) Apply(text string) string {
	if len(s) == 0 {
		return text
	}
	pairs := make([]string, 0, 2*len(s))
	for _, token := range s.Tokens() {
		pairs = append(pairs, "{{"+token+"}}", s[token])
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

// RewriteFile applies subs to the file at p in place.
func RewriteFile(fsys fsport.FileSystem, p string, subs Substitutions) error {
	content, err := fsys.ReadText(p)
	if err != nil {
		return fileAccess("read", p, err)
	}

	rewritten := subs.Apply(content)
	if rewritten == content {
		return nil
	}

	if err := fsys.WriteText(p, rewritten); err != nil {
		return fileAccess("write", p, err)
	}
	return nil
}
