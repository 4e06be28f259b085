package cmdutil

import (
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/tyha/cli/internal/output"
	"github.com/tyha/cli/internal/scaffold"
)

var fileDescriptions = map[string]string{
	"package.json":                   "npm package manifest",
	"tsconfig.json":                  "TypeScript compiler options",
	"README.md":                      "Getting started",
	"src/main.ts":                    "Service entry point",
	"domain/entity.ts":               "Entity",
	"domain/repository.ts":           "Repository port",
	"domain/value.ts":                "Value object",
	"infrastructure/router.ts":       "Router",
	"infrastructure/controller.ts":   "Controller",
	"src/modules/.gitkeep":           "Module container",
	"src/data/drizzle/config/orm.ts": "Drizzle client",
}

var prefixDescriptions = []struct {
	prefix string
	desc   string
}{
	{"application/dtos/", "DTO"},
	{"application/schemas/", "Validation schema"},
	{"application/use_cases/", "Use cases"},
	{"infrastructure/repositories/", "Repository adapter"},
}

// DescribeFile returns a short description of a generated file, or "".
func DescribeFile(rel string) string {
	if desc, ok := fileDescriptions[rel]; ok {
		return desc
	}
	for _, p := range prefixDescriptions {
		if strings.HasPrefix(rel, p.prefix) {
			return p.desc
		}
	}
	return ""
}

// PrintResult writes a scaffold result in the requested format. noun names
// what was created ("project", "module").
func PrintResult(w io.Writer, result *scaffold.Result, format output.OutputFormat, noun string) error {
	if format != output.FormatText {
		return output.Encode(w, format, result)
	}

	if result.DryRun {
		printPlan(w, result)
		return nil
	}

	fmt.Fprintln(w, output.FormatCheckmark(fmt.Sprintf("Created %s %s in %s",
		noun, output.StyleNoun.Render(result.Names.Raw), result.Target)))
	fmt.Fprintln(w)
	fmt.Fprint(w, output.RenderFileTree(path.Base(result.Target), result.Files, DescribeFile))
	return nil
}

func printPlan(w io.Writer, result *scaffold.Result) {
	fmt.Fprintln(w, output.StyleSummary.Render(fmt.Sprintf("Plan for %s (dry run, %d steps)",
		result.Target, len(result.Plan.Ops))))

	for _, op := range result.Plan.Ops {
		target := relTo(result.Target, op.Path)
		switch op.Kind {
		case scaffold.OpCopyTree:
			target = op.Source + " -> " + op.Path
		case scaffold.OpRename:
			target += " -> " + relTo(result.Target, op.NewPath)
		}
		fmt.Fprintln(w, output.FormatStepLine(string(op.Kind), target, output.StatusPlanned))
	}
}

func relTo(base, p string) string {
	if rel := strings.TrimPrefix(p, base+"/"); rel != p {
		return rel
	}
	return p
}
