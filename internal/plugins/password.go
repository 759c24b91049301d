package plugins

import (
	"github.com/Yhnlvy/panther/internal/ast"
	"github.com/Yhnlvy/panther/internal/testset"
)

// neverEverUseEval is P106, a deprecated duplicate of the eval half of
// P601 kept for backward compatibility with older profiles. Excluded
// from DefaultProfile.
func neverEverUseEval() *testset.Test {
	return &testset.Test{
		ID:     "P106",
		Name:   "never_ever_ever_use_eval",
		Checks: []string{"CallExpression"},
		Callable: func(ctx *testset.Context) *testset.Result {
			call, ok := ctx.Node.(*ast.CallExpression)
			if !ok {
				return nil
			}
			id, ok := call.Callee.(*ast.Identifier)
			if !ok || id.Name != "eval" {
				return nil
			}
			return &testset.Result{
				Severity:   "LOW",
				Confidence: "MEDIUM",
				Text:       "How dare you? eval()? Really?: 'eval()'",
			}
		},
	}
}
