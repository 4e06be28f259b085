package config

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tyha/cli/internal/config"
	oerrors "github.com/tyha/cli/internal/errors"
	"github.com/tyha/cli/internal/testutil"
)

func execute(t *testing.T, cfg *config.GlobalConfig, args ...string) (string, error) {
	t.Helper()
	c := NewConfigCmd(cfg)
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&bytes.Buffer{})
	c.SetArgs(args)

	err := c.Execute()
	return out.String(), err
}

func TestNewConfigCmd(t *testing.T) {
	c := NewConfigCmd(nil)

	assert.Equal(t, "config", c.Use)
	names := make([]string, 0, len(c.Commands()))
	for _, sub := range c.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"init", "vet", "show"}, names)
}

func TestInit(t *testing.T) {
	cfg := testutil.GlobalConfig(t)
	path := cfg.ConfigPath.Value

	out, err := execute(t, cfg, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration initialized at "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "modulesDir: src/modules")

	_, err = execute(t, cfg, "init")
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitConflict, oerrors.ExitCodeFromError(err))

	_, err = execute(t, cfg, "init", "--force")
	require.NoError(t, err)
}

func TestVet(t *testing.T) {
	tests := []struct {
		name     string
		content  *string
		wantCode int
		wantOut  string
	}{
		{
			name:     "missing file",
			wantCode: oerrors.ExitNotFound,
		},
		{
			name:    "valid file",
			content: ptr("modulesDir: lib/modules\ndefaults:\n  router: grpc\n  repository: memory\n"),
			wantOut: "Configuration is valid",
		},
		{
			name:     "unknown router",
			content:  ptr("defaults:\n  router: soap\n"),
			wantCode: oerrors.ExitValidationError,
		},
		{
			name:     "unknown key",
			content:  ptr("moduleDir: src/modules\n"),
			wantCode: oerrors.ExitValidationError,
		},
		{
			name:     "malformed yaml",
			content:  ptr("defaults: [\n"),
			wantCode: oerrors.ExitValidationError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testutil.GlobalConfig(t)
			if tt.content != nil {
				require.NoError(t, os.WriteFile(cfg.ConfigPath.Value, []byte(*tt.content), 0o644))
			}

			out, err := execute(t, cfg, "vet")
			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, oerrors.ExitCodeFromError(err))
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out, tt.wantOut)
		})
	}
}

func TestVet_InvalidEnv(t *testing.T) {
	cfg := testutil.GlobalConfig(t)
	require.NoError(t, os.WriteFile(cfg.ConfigPath.Value, []byte("modulesDir: src/modules\n"), 0o644))
	t.Setenv("TYHA_DEFAULT_REPOSITORY", "mongo")

	_, err := execute(t, cfg, "vet")
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitValidationError, oerrors.ExitCodeFromError(err))
}

func TestShow_Text(t *testing.T) {
	cfg := testutil.GlobalConfig(t)
	t.Setenv("TYHA_DEFAULT_ROUTER", "grpc")

	out, err := execute(t, cfg, "show")
	require.NoError(t, err)

	for _, want := range []string{"KEY", "SOURCE", "config", "modulesDir", "src/modules", "defaults.router", "grpc", "env"} {
		assert.Contains(t, out, want)
	}
}

func TestShow_JSON(t *testing.T) {
	cfg := testutil.GlobalConfig(t)
	require.NoError(t, os.WriteFile(cfg.ConfigPath.Value, []byte("modulesDir: lib/modules\n"), 0o644))

	loaded, err := cfg.Loader.Load(cfg.ConfigPath.Value)
	require.NoError(t, err)
	cfg.Config = loaded
	t.Setenv("TYHA_MODULES_DIR", "app/modules")

	out, err := execute(t, cfg, "show", "-o", "json")
	require.NoError(t, err)

	var values []config.ResolvedValue
	require.NoError(t, json.Unmarshal([]byte(out), &values))
	require.Len(t, values, len(config.Settings)+1)

	byKey := make(map[string]config.ResolvedValue, len(values))
	for _, v := range values {
		byKey[v.Key] = v
	}

	modules := byKey["modulesDir"]
	assert.Equal(t, "app/modules", modules.Value)
	assert.Equal(t, config.SourceEnv, modules.Source)
	assert.Equal(t, "lib/modules", modules.Shadowed[config.SourceConfig])

	assert.Equal(t, config.SourceDefault, byKey["defaults.projectTemplate"].Source)
	assert.Equal(t, cfg.ConfigPath.Value, byKey["config"].Value)
}

func TestShow_UnknownFormat(t *testing.T) {
	_, err := execute(t, testutil.GlobalConfig(t), "show", "-o", "toml")
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitValidationError, oerrors.ExitCodeFromError(err))
}

func ptr(s string) *string { return &s }
