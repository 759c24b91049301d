package plugins

import (
	"github.com/Yhnlvy/panther/internal/ast"
	"github.com/Yhnlvy/panther/internal/nsp"
	"github.com/Yhnlvy/panther/internal/testset"
)

// nosqlOperators are the query-builder method names this test treats as
// MongoDB-style NoSQL call sites, by last namespace token. group is
// assumed to carry the same severity/confidence as mapReduce absent a
// more specific scenario to ground it on.
var nosqlOperators = map[string]bool{
	"mapReduce": true,
	"group":     true,
}

// nosqlInjection is P603: a call whose single object-literal argument
// declares a $where key (arbitrary JS executed server-side), or a call
// to mapReduce/group (which accept function arguments executed against
// stored documents).
func nosqlInjection() *testset.Test {
	return &testset.Test{
		ID:     "P603",
		Name:   "nosql_injection",
		Checks: []string{"CallExpression"},
		Callable: func(ctx *testset.Context) *testset.Result {
			call, ok := ctx.Node.(*ast.CallExpression)
			if !ok {
				return nil
			}
			if nsp.ArgumentHasKey(call, "*$where") {
				return &testset.Result{
					Severity:   "HIGH",
					Confidence: "MEDIUM",
					Text:       "Possible NoSQL injection vector: use of $where with a function accepts arbitrary server-side code.",
				}
			}
			namespace := nsp.ExtractNameSpace(call)
			if len(namespace) == 0 {
				return nil
			}
			last := namespace[len(namespace)-1]
			if last[0] == '*' && nosqlOperators[last[1:]] {
				return &testset.Result{
					Severity:   "MEDIUM",
					Confidence: "LOW",
					Text:       "Possible NoSQL injection vector: '" + last[1:] + "' accepts a function executed against stored documents.",
				}
			}
			return nil
		},
	}
}
