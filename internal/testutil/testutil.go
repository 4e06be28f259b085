// Package testutil provides test helpers for CLI tests.
package testutil

import (
	"context"
	"errors"
	"path"
	"path/filepath"
	"testing"

	"github.com/tyha/cli/internal/config"
	"github.com/tyha/cli/internal/fsport"
	"github.com/tyha/cli/internal/prompt"
)

// ModulesDir is the modules container created by Workspace.
const ModulesDir = "/app/src/modules"

// Workspace returns an in-memory filesystem holding an empty project at /app.
func Workspace(t *testing.T) *fsport.AferoFS {
	t.Helper()
	fsys := fsport.NewMemory()
	if err := fsys.Fs().MkdirAll(ModulesDir, 0o755); err != nil {
		t.Fatalf("failed to create modules dir: %v", err)
	}
	return fsys
}

// Snapshot returns the content of every file under dir keyed by relative path.
func Snapshot(t *testing.T, fsys fsport.FileSystem, dir string) map[string]string {
	t.Helper()
	files, err := fsys.List(dir)
	if err != nil {
		t.Fatalf("failed to list %s: %v", dir, err)
	}

	out := make(map[string]string, len(files))
	for _, f := range files {
		content, err := fsys.ReadText(path.Join(dir, f))
		if err != nil {
			t.Fatalf("failed to read %s: %v", f, err)
		}
		out[f] = content
	}
	return out
}

// GlobalConfig returns a GlobalConfig loaded from an empty config path, with
// TYHA_* variables cleared for the duration of the test.
func GlobalConfig(t *testing.T) *config.GlobalConfig {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	t.Setenv(config.EnvConfig, path)
	for _, s := range config.Settings {
		t.Setenv(s.Env, "")
	}

	loader := config.NewLoader()
	cfg, err := loader.Load(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	return &config.GlobalConfig{
		Config:     cfg,
		Loader:     loader,
		ConfigPath: config.ResolvedValue{Key: "config", Value: path, Source: config.SourceEnv},
	}
}

// Scripted answers prompts from a queue and records the titles asked.
type Scripted struct {
	Answers []string
	Asked   []string
}

func (s *Scripted) next(title string) (string, error) {
	s.Asked = append(s.Asked, title)
	if len(s.Answers) == 0 {
		return "", errors.New("unexpected prompt: " + title)
	}
	a := s.Answers[0]
	s.Answers = s.Answers[1:]
	return a, nil
}

// Input implements prompt.Prompter.
func (s *Scripted) Input(_ context.Context, title, _ string, validate func(string) error) (string, error) {
	a, err := s.next(title)
	if err != nil {
		return "", err
	}
	if validate != nil {
		if err := validate(a); err != nil {
			return "", err
		}
	}
	return a, nil
}

// Select implements prompt.Prompter.
func (s *Scripted) Select(_ context.Context, title string, options []prompt.Option) (string, error) {
	a, err := s.next(title)
	if err != nil {
		return "", err
	}
	for _, o := range options {
		if o.Value == a {
			return a, nil
		}
	}
	return "", errors.New("not an option: " + a)
}
