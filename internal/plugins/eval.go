// Package plugins is the built-in set of Panther tests (P601, P602, P603,
// P106, and the declarative blacklist entries), registered against
// internal/testset at init time.
package plugins

import (
	"fmt"

	"github.com/Yhnlvy/panther/internal/ast"
	"github.com/Yhnlvy/panther/internal/testset"
)

// globalCallTarget reports whether callee is a direct call to name
// (Identifier) or a call through the global object (global.name(...)).
func globalCallTarget(callee ast.Node, name string) (direct, viaGlobal bool) {
	if id, ok := callee.(*ast.Identifier); ok {
		return id.Name == name, false
	}
	member, ok := callee.(*ast.MemberExpression)
	if !ok {
		return false, false
	}
	prop, ok := member.Property.(*ast.Identifier)
	if !ok || member.Computed || prop.Name != name {
		return false, false
	}
	obj, ok := member.Object.(*ast.Identifier)
	if !ok || obj.Name != "global" {
		return false, false
	}
	return false, true
}

// checkGlobalCall reports a finding if callee is a direct call to
// functionName or a call through the global object (global.<functionName>(...)).
func checkGlobalCall(callee ast.Node, functionName string) *testset.Result {
	direct, viaGlobal := globalCallTarget(callee, functionName)
	switch {
	case direct:
		return &testset.Result{
			Severity:   "HIGH",
			Confidence: "MEDIUM",
			Text:       fmt.Sprintf("Potential server side code injection detected: Use of %s(...)", functionName),
		}
	case viaGlobal:
		return &testset.Result{
			Severity:   "HIGH",
			Confidence: "MEDIUM",
			Text:       fmt.Sprintf("Potential server side code injection detected: Use of global.%s(...)", functionName),
		}
	}
	return nil
}

// serverSideInjection is P601: eval_used and new_function_used collapsed
// into a single test, since both were registered under the same test id
// in the source this is ported from.
func serverSideInjection() *testset.Test {
	return &testset.Test{
		ID:     "P601",
		Name:   "server_side_injection",
		Checks: []string{"CallExpression", "NewExpression"},
		Callable: func(ctx *testset.Context) *testset.Result {
			switch n := ctx.Node.(type) {
			case *ast.CallExpression:
				return checkGlobalCall(n.Callee, "eval")
			case *ast.NewExpression:
				return checkGlobalCall(n.Callee, "Function")
			}
			return nil
		},
	}
}
