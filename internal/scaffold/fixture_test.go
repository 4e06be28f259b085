package scaffold

import (
	"path"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/tyha/cli/internal/fsport"
)

// moduleFixture is a minimal module template tree. Each variant file records
// its origin so tests can tell which candidate survived a rename.
var moduleFixture = map[string]string{
	"modules/full/domain/entity.ts":                           "export interface {{name}}Entity { id: string }\n",
	"modules/full/domain/repository.ts":                       "export interface {{name}}Repository { find(id: string): {{name}}Entity }\n",
	"modules/full/domain/value.ts":                            "export class {{name}}Value { kind = '{{nameKebab}}' }\n",
	"modules/full/application/dtos/create.ts":                 "export type Create{{name}}Dto = { name: string }\n",
	"modules/full/application/dtos/response.ts":               "export type {{name}}Response = { id: string }\n",
	"modules/full/application/schemas/schema.ts":              "export const {{nameCamel}}Schema = '{{nameClean}}'\n",
	"modules/full/application/use_cases/use_cases.ts":         "export class {{name}}UseCases {}\n",
	"modules/full/infrastructure/rest.ts":                     "// origin: rest\nimport { {{name}}{{repositoryName}}Repository } from './repositories/{{repositoryClean}}'\n",
	"modules/full/infrastructure/rest_controller.ts":          "// origin: rest\nexport class {{name}}Controller {}\n",
	"modules/full/infrastructure/grpc.ts":                     "// origin: grpc\nimport { {{name}}{{repositoryName}}Repository } from './repositories/{{repositoryClean}}'\n",
	"modules/full/infrastructure/grpc_controller.ts":          "// origin: grpc\nexport class {{name}}GrpcController {}\n",
	"modules/full/infrastructure/repositories/memory.ts":      "// origin: memory\nexport class {{name}}{{repositoryName}}Repository {}\n",
	"modules/full/infrastructure/repositories/drizzle.ts":     "// origin: drizzle\nexport class {{name}}{{repositoryName}}Repository {}\n",
	"modules/full/infrastructure/repositories/grpc_client.ts": "// origin: grpc_client\nexport class {{name}}{{repositoryName}}Repository {}\n",
	"modules/only_domain/domain/entity.ts":                    "export interface {{name}}Entity { id: string }\n",
	"modules/only_domain/domain/repository.ts":                "export interface {{name}}Repository {}\n",
	"modules/only_domain/domain/value.ts":                     "export class {{name}}Value {}\n",
	"projects/rest/package.json":                              "{ \"name\": \"{{nameKebab}}\" }\n",
	"projects/rest/src/main.ts":                               "console.log('{{name}} ready')\n",
	"projects/rest/src/modules/.gitkeep":                      "",
	"projects/auth/package.json":                              "{ \"name\": \"{{nameKebab}}-auth\" }\n",
}

// newTemplateRoot returns a read-only template root built from files.
func newTemplateRoot(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()

	base := afero.NewMemMapFs()
	for p, content := range files {
		require.NoError(t, base.MkdirAll(path.Dir(p), 0o755))
		require.NoError(t, afero.WriteFile(base, p, []byte(content), 0o644))
	}
	return afero.NewReadOnlyFs(base)
}

// newWorkspace returns an in-memory target filesystem with /app/src/modules created.
func newWorkspace(t *testing.T) *fsport.AferoFS {
	t.Helper()

	fsys := fsport.NewMemory()
	require.NoError(t, fsys.Fs().MkdirAll("/app/src/modules", 0o755))
	return fsys
}

func newTestMaterializer(t *testing.T) (*Materializer, *fsport.AferoFS) {
	t.Helper()

	fsys := newWorkspace(t)
	spec := NewTemplateSpec(newTemplateRoot(t, moduleFixture))
	return NewMaterializer(fsys, spec, nil), fsys
}

// snapshot returns every file under dir with its content.
func snapshot(t *testing.T, fsys *fsport.AferoFS, dir string) map[string]string {
	t.Helper()

	files, err := fsys.List(dir)
	require.NoError(t, err)

	out := make(map[string]string, len(files))
	for _, f := range files {
		content, err := fsys.ReadText(path.Join(dir, f))
		require.NoError(t, err)
		out[f] = content
	}
	return out
}

func withoutFixture(skip ...string) map[string]string {
	out := make(map[string]string, len(moduleFixture))
	for p, c := range moduleFixture {
		drop := false
		for _, s := range skip {
			if strings.HasPrefix(p, s) {
				drop = true
			}
		}
		if !drop {
			out[p] = c
		}
	}
	return out
}
