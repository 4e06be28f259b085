package module

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tyha/cli/internal/cmdutil"
	oerrors "github.com/tyha/cli/internal/errors"
	"github.com/tyha/cli/internal/fsport"
	"github.com/tyha/cli/internal/prompt"
	"github.com/tyha/cli/internal/testutil"
)

func runCreateCmd(t *testing.T, deps cmdutil.Deps, args ...string) (string, error) {
	t.Helper()
	cfg := testutil.GlobalConfig(t)

	c := NewCreateCmd(cfg, deps)
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&bytes.Buffer{})
	c.SetArgs(args)

	err := c.Execute()
	return out.String(), err
}

func TestNewCreateCmd(t *testing.T) {
	c := NewCreateCmd(nil, cmdutil.Deps{})

	assert.Equal(t, "create [name]", c.Use)
	assert.NotEmpty(t, c.Short)
	assert.NotEmpty(t, c.Long)

	for _, name := range []string{"full", "domain", "router", "repository", "modules-dir", "dry-run", "output"} {
		assert.NotNil(t, c.Flags().Lookup(name), name)
	}
	assert.Equal(t, "o", c.Flags().Lookup("output").Shorthand)
}

func TestCreate_FullModule(t *testing.T) {
	fsys := testutil.Workspace(t)

	out, err := runCreateCmd(t, cmdutil.Deps{FS: fsys, Prompter: prompt.Disabled{}},
		"invoice", "--router", "rest", "--repository", "memory", "--modules-dir", testutil.ModulesDir)
	require.NoError(t, err)

	files := testutil.Snapshot(t, fsys, testutil.ModulesDir+"/invoice")
	assert.Len(t, files, 10)
	assert.Contains(t, files, "infrastructure/router.ts")
	assert.Contains(t, files, "infrastructure/repositories/memory.ts")
	assert.NotContains(t, files, "infrastructure/repositories/drizzle.ts")

	assert.Contains(t, out, "Created module")
	assert.Contains(t, out, "invoice/")
	assert.Contains(t, out, "router.ts")
}

func TestCreate_DomainModule(t *testing.T) {
	fsys := testutil.Workspace(t)

	_, err := runCreateCmd(t, cmdutil.Deps{FS: fsys, Prompter: prompt.Disabled{}},
		"Payment Method", "--domain", "--modules-dir", testutil.ModulesDir)
	require.NoError(t, err)

	files := testutil.Snapshot(t, fsys, testutil.ModulesDir+"/payment_method")
	assert.Len(t, files, 3)
	assert.Contains(t, files["domain/entity.ts"], "PaymentMethod")
}

func TestCreate_FullAndDomainAreExclusive(t *testing.T) {
	_, err := runCreateCmd(t, cmdutil.Deps{FS: testutil.Workspace(t), Prompter: prompt.Disabled{}},
		"invoice", "--full", "--domain")
	assert.Error(t, err)
}

func TestCreate_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
	}{
		{
			name:     "missing router without prompts",
			args:     []string{"invoice", "--repository", "memory", "--modules-dir", testutil.ModulesDir},
			wantCode: oerrors.ExitValidationError,
		},
		{
			name:     "unknown router",
			args:     []string{"invoice", "--router", "soap", "--repository", "memory", "--modules-dir", testutil.ModulesDir},
			wantCode: oerrors.ExitValidationError,
		},
		{
			name:     "reserved word",
			args:     []string{"class", "--domain", "--modules-dir", testutil.ModulesDir},
			wantCode: oerrors.ExitValidationError,
		},
		{
			name:     "missing modules dir",
			args:     []string{"invoice", "--domain", "--modules-dir", "/elsewhere/modules"},
			wantCode: oerrors.ExitNotFound,
		},
		{
			name:     "missing name without prompts",
			args:     []string{"--domain", "--modules-dir", testutil.ModulesDir},
			wantCode: oerrors.ExitValidationError,
		},
		{
			name:     "unknown output format",
			args:     []string{"invoice", "--domain", "-o", "xml"},
			wantCode: oerrors.ExitValidationError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := testutil.Workspace(t)
			_, err := runCreateCmd(t, cmdutil.Deps{FS: fsys, Prompter: prompt.Disabled{}}, tt.args...)
			require.Error(t, err)

			var exitErr *oerrors.ExitError
			require.True(t, errors.As(err, &exitErr))
			assert.Equal(t, tt.wantCode, exitErr.Code)

			entries, listErr := fsys.List(testutil.ModulesDir)
			require.NoError(t, listErr)
			assert.Empty(t, entries, "nothing may be written on a failed precondition")
		})
	}
}

func TestCreate_AlreadyExists(t *testing.T) {
	fsys := testutil.Workspace(t)
	require.NoError(t, fsys.WriteText(testutil.ModulesDir+"/invoice/keep.txt", "mine"))

	_, err := runCreateCmd(t, cmdutil.Deps{FS: fsys, Prompter: prompt.Disabled{}},
		"invoice", "--domain", "--modules-dir", testutil.ModulesDir)
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitConflict, oerrors.ExitCodeFromError(err))

	var detail *oerrors.DetailError
	require.True(t, errors.As(err, &detail))
	assert.Equal(t, "already exists", detail.Type)

	content, readErr := fsys.ReadText(testutil.ModulesDir + "/invoice/keep.txt")
	require.NoError(t, readErr)
	assert.Equal(t, "mine", content)
}

func TestCreate_Prompts(t *testing.T) {
	fsys := testutil.Workspace(t)
	p := &testutil.Scripted{Answers: []string{"shipment", "full", "grpc", "drizzle"}}

	_, err := runCreateCmd(t, cmdutil.Deps{FS: fsys, Prompter: p}, "--modules-dir", testutil.ModulesDir)
	require.NoError(t, err)

	assert.Equal(t, []string{"Module name", "Module type", "Router", "Repository"}, p.Asked)
	files := testutil.Snapshot(t, fsys, testutil.ModulesDir+"/shipment")
	assert.Contains(t, files, "infrastructure/repositories/drizzle.ts")
	assert.Contains(t, files["infrastructure/router.ts"], "repositories/drizzle")
}

func TestCreate_FlagsSkipPrompts(t *testing.T) {
	fsys := testutil.Workspace(t)
	p := &testutil.Scripted{}

	_, err := runCreateCmd(t, cmdutil.Deps{FS: fsys, Prompter: p},
		"invoice", "--full", "--router", "rest", "--repository", "grpc_client", "--modules-dir", testutil.ModulesDir)
	require.NoError(t, err)
	assert.Empty(t, p.Asked)
}

func TestCreate_EnvDefaults(t *testing.T) {
	fsys := testutil.Workspace(t)
	cfg := testutil.GlobalConfig(t)
	t.Setenv("TYHA_DEFAULT_ROUTER", "grpc")
	t.Setenv("TYHA_DEFAULT_REPOSITORY", "memory")
	t.Setenv("TYHA_MODULES_DIR", testutil.ModulesDir)

	c := NewCreateCmd(cfg, cmdutil.Deps{FS: fsys, Prompter: prompt.Disabled{}})
	c.SetOut(&bytes.Buffer{})
	c.SetArgs([]string{"invoice", "--full"})
	require.NoError(t, c.Execute())

	files := testutil.Snapshot(t, fsys, testutil.ModulesDir+"/invoice")
	assert.Contains(t, files["infrastructure/router.ts"], "repositories/memory")
	assert.Contains(t, files, "infrastructure/repositories/memory.ts")
}

func TestCreate_DryRunJSON(t *testing.T) {
	fsys := testutil.Workspace(t)

	out, err := runCreateCmd(t, cmdutil.Deps{FS: fsys, Prompter: prompt.Disabled{}},
		"invoice", "--router", "rest", "--repository", "memory",
		"--modules-dir", testutil.ModulesDir, "--dry-run", "-o", "json")
	require.NoError(t, err)

	var decoded struct {
		Target string `json:"target"`
		DryRun bool   `json:"dryRun"`
		Plan   struct {
			Ops []struct {
				Kind string `json:"kind"`
			} `json:"ops"`
		} `json:"plan"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, testutil.ModulesDir+"/invoice", decoded.Target)
	assert.True(t, decoded.DryRun)
	require.NotEmpty(t, decoded.Plan.Ops)
	assert.Equal(t, "copy-tree", decoded.Plan.Ops[0].Kind)

	exists, err := fsys.Exists(testutil.ModulesDir + "/invoice")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCreate_DryRunText(t *testing.T) {
	out, err := runCreateCmd(t, cmdutil.Deps{FS: testutil.Workspace(t), Prompter: prompt.Disabled{}},
		"invoice", "--domain", "--modules-dir", testutil.ModulesDir, "--dry-run")
	require.NoError(t, err)

	assert.Contains(t, out, "dry run")
	assert.Contains(t, out, "copy-tree")
	assert.Contains(t, out, "domain/entity.ts")
}

func TestCreateAliasCmd(t *testing.T) {
	c := NewCreateAliasCmd(nil, cmdutil.Deps{FS: fsport.NewMemory()})
	assert.Equal(t, "create:module", c.Name())
	assert.NotNil(t, c.Flags().Lookup("router"))
}
