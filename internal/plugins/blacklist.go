package plugins

import (
	"strings"

	"github.com/Yhnlvy/panther/internal/ast"
	"github.com/Yhnlvy/panther/internal/nsp"
	"github.com/Yhnlvy/panther/internal/testset"
)

// Entry is a declarative blacklist rule: a call (qualnames are dotted
// namespace paths like "child_process.exec"), an ES module import whose
// source is one of qualnames, or a CommonJS require(...) call whose
// argument is one of qualnames.
type Entry struct {
	ID         string
	Name       string
	Kind       string // "Call", "Import", or "Require"
	Qualnames  []string
	Message    string
	Severity   string
	Confidence string
}

func qualifiedCallName(call *ast.CallExpression) (string, bool) {
	namespace := nsp.ExtractNameSpace(call)
	for _, tok := range namespace {
		if tok[0] != '*' {
			return "", false
		}
	}
	parts := make([]string, len(namespace))
	for i, tok := range namespace {
		parts[i] = tok[1:]
	}
	return strings.Join(parts, "."), true
}

func matchesQualname(name string, qualnames []string) bool {
	for _, q := range qualnames {
		if name == q {
			return true
		}
	}
	return false
}

// newTest builds a testset.Test that fires when a call's fully-resolved
// namespace, an import's module source, or a require(...) call's module
// argument matches one of e.Qualnames.
func newTest(e Entry) *testset.Test {
	switch e.Kind {
	case "Import":
		return &testset.Test{
			ID:     e.ID,
			Name:   e.Name,
			Checks: []string{"ImportDeclaration"},
			Callable: func(ctx *testset.Context) *testset.Result {
				imp, ok := ctx.Node.(*ast.ImportDeclaration)
				if !ok {
					return nil
				}
				src, ok := nsp.TryExtractStringValue(imp.Source)
				if !ok || !matchesQualname(src, e.Qualnames) {
					return nil
				}
				return &testset.Result{Severity: e.Severity, Confidence: e.Confidence, Text: e.Message}
			},
		}
	case "Require":
		return &testset.Test{
			ID:     e.ID,
			Name:   e.Name,
			Checks: []string{"CallExpression"},
			Callable: func(ctx *testset.Context) *testset.Result {
				call, ok := ctx.Node.(*ast.CallExpression)
				if !ok {
					return nil
				}
				if !nsp.MatchNameSpace(call, []string{"*require"}) || len(call.Arguments) == 0 {
					return nil
				}
				mod, ok := nsp.TryExtractStringValue(call.Arguments[0])
				if !ok || !matchesQualname(mod, e.Qualnames) {
					return nil
				}
				return &testset.Result{Severity: e.Severity, Confidence: e.Confidence, Text: e.Message}
			},
		}
	default:
		return &testset.Test{
			ID:     e.ID,
			Name:   e.Name,
			Checks: []string{"CallExpression"},
			Callable: func(ctx *testset.Context) *testset.Result {
				call, ok := ctx.Node.(*ast.CallExpression)
				if !ok {
					return nil
				}
				name, ok := qualifiedCallName(call)
				if !ok || !matchesQualname(name, e.Qualnames) {
					return nil
				}
				return &testset.Result{Severity: e.Severity, Confidence: e.Confidence, Text: e.Message}
			},
		}
	}
}
