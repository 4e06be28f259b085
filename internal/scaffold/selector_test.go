package scaffold

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/tyha/cli/internal/errors"
)

func keptSources(sel Selection) []string {
	out := make([]string, len(sel.Keep))
	for i, f := range sel.Keep {
		out[i] = f.Source
	}
	return out
}

func TestSelectFiles_RouterExclusivity(t *testing.T) {
	tests := []struct {
		router  RouterType
		kept    []string
		deleted []string
	}{
		{
			router:  RouterREST,
			kept:    []string{"infrastructure/rest", "infrastructure/rest_controller"},
			deleted: []string{"infrastructure/grpc", "infrastructure/grpc_controller"},
		},
		{
			router:  RouterGRPC,
			kept:    []string{"infrastructure/grpc", "infrastructure/grpc_controller"},
			deleted: []string{"infrastructure/rest", "infrastructure/rest_controller"},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.router), func(t *testing.T) {
			sel, err := SelectFiles(ModuleFull, tt.router, RepositoryInMemory)
			require.NoError(t, err)

			kept := keptSources(sel)
			for _, k := range tt.kept {
				assert.Contains(t, kept, k)
				assert.NotContains(t, sel.DeleteCandidates, k)
			}
			for _, d := range tt.deleted {
				assert.Contains(t, sel.DeleteCandidates, d)
				assert.NotContains(t, kept, d)
			}
		})
	}
}

func TestSelectFiles_RepositoryExclusivity(t *testing.T) {
	all := map[RepositoryType]string{
		RepositoryInMemory:   "infrastructure/repositories/memory",
		RepositoryDrizzle:    "infrastructure/repositories/drizzle",
		RepositoryGRPCClient: "infrastructure/repositories/grpc_client",
	}

	for chosen, file := range all {
		t.Run(string(chosen), func(t *testing.T) {
			sel, err := SelectFiles(ModuleFull, RouterREST, chosen)
			require.NoError(t, err)

			kept := keptSources(sel)
			assert.Contains(t, kept, file)
			for other, otherFile := range all {
				if other == chosen {
					continue
				}
				assert.Contains(t, sel.DeleteCandidates, otherFile)
				assert.NotContains(t, kept, otherFile)
			}
		})
	}
}

func TestSelectFiles_FullLayers(t *testing.T) {
	sel, err := SelectFiles(ModuleFull, RouterGRPC, RepositoryDrizzle)
	require.NoError(t, err)

	assert.Len(t, sel.Keep, 3+4+2+1)
	assert.Len(t, sel.DeleteCandidates, 2+2)

	targets := map[string]string{}
	for _, f := range sel.Keep {
		targets[f.Source] = f.Target
	}
	assert.Equal(t, "application/dtos/{{nameClean}}_create", targets["application/dtos/create"])
	assert.Equal(t, "application/schemas/{{nameClean}}", targets["application/schemas/schema"])
	assert.Equal(t, "infrastructure/router", targets["infrastructure/grpc"])
	assert.Equal(t, "infrastructure/controller", targets["infrastructure/grpc_controller"])
	assert.Equal(t, "domain/entity", targets["domain/entity"])
}

func TestSelectFiles_AdapterFlag(t *testing.T) {
	sel, err := SelectFiles(ModuleFull, RouterREST, RepositoryDrizzle)
	require.NoError(t, err)

	for _, f := range sel.Keep {
		isInfra := len(f.Source) > len("infrastructure/") && f.Source[:len("infrastructure/")] == "infrastructure/"
		assert.Equal(t, isInfra, f.Adapter, f.Source)
	}
}

func TestSelectFiles_OnlyDomainIgnoresAxes(t *testing.T) {
	tests := []struct {
		name       string
		router     RouterType
		repository RepositoryType
	}{
		{"no axes", "", ""},
		{"valid axes", RouterGRPC, RepositoryDrizzle},
		{"invalid axes", "soap", "mongo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := SelectFiles(ModuleOnlyDomain, tt.router, tt.repository)
			require.NoError(t, err)
			assert.Equal(t, []string{"domain/entity", "domain/repository", "domain/value"}, keptSources(sel))
			assert.Empty(t, sel.DeleteCandidates)
		})
	}
}

func TestSelectFiles_ConfigurationErrors(t *testing.T) {
	tests := []struct {
		name       string
		moduleType ModuleType
		router     RouterType
		repository RepositoryType
		axis       string
	}{
		{"missing router", ModuleFull, "", RepositoryInMemory, "router"},
		{"unknown router", ModuleFull, "soap", RepositoryInMemory, "router"},
		{"missing repository", ModuleFull, RouterREST, "", "repository"},
		{"unknown repository", ModuleFull, RouterREST, "mongo", "repository"},
		{"unknown module type", "partial", RouterREST, RepositoryInMemory, "module type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SelectFiles(tt.moduleType, tt.router, tt.repository)
			require.Error(t, err)

			var ce *ConfigurationError
			require.True(t, errors.As(err, &ce))
			assert.Equal(t, tt.axis, ce.Axis)
			assert.True(t, errors.Is(err, oerrors.ErrConfiguration))
		})
	}
}

func TestModuleLayout(t *testing.T) {
	assert.Equal(t, []string{"domain/entity", "domain/repository", "domain/value"}, ModuleLayout(ModuleOnlyDomain))

	full := ModuleLayout(ModuleFull)
	assert.Len(t, full, 14)
	assert.Contains(t, full, "infrastructure/grpc_controller")
	assert.Contains(t, full, "infrastructure/repositories/grpc_client")
}

func TestParseEnums(t *testing.T) {
	mt, err := ParseModuleType("only_domain")
	require.NoError(t, err)
	assert.Equal(t, ModuleOnlyDomain, mt)

	rt, err := ParseRouterType("grpc")
	require.NoError(t, err)
	assert.Equal(t, RouterGRPC, rt)

	rt, err = ParseRouterType("")
	require.NoError(t, err)
	assert.Empty(t, rt)

	repo, err := ParseRepositoryType("grpc_client")
	require.NoError(t, err)
	assert.Equal(t, RepositoryGRPCClient, repo)

	pt, err := ParseProjectTemplate("auth")
	require.NoError(t, err)
	assert.Equal(t, ProjectAuth, pt)

	_, err = ParseRepositoryType("mongo")
	var ce *ConfigurationError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "memory, drizzle, grpc_client", ce.Valid)
	assert.Contains(t, err.Error(), `unknown repository "mongo"`)

	_, err = ParseModuleType("")
	assert.True(t, errors.Is(err, oerrors.ErrConfiguration))
}
