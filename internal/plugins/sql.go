package plugins

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/Yhnlvy/panther/internal/ast"
	"github.com/Yhnlvy/panther/internal/testset"
)

// sqlRE matches SQL statement shapes; reported only when the matched
// string also lacks a '?' placeholder.
var sqlRE = regexp.MustCompile(`(?is)(select\s.*from\s|delete\s+from\s|insert\s+into\s.*values\s|update\s.*set\s)`)

// callRE matches function names that look like string-concatenation
// helpers (join/append/concat).
var callRE = regexp.MustCompile(`(?i)join|append|concat`)

const sqlIssueText = "Possible SQL injection vector through string-based query construction: '%s'"

// extractStringValue tries to pull a literal string out of node: a
// TemplateElement's cooked value, or a Literal whose raw form is quoted.
func extractStringValue(node ast.Node) (string, bool) {
	if te, ok := node.(*ast.TemplateElement); ok {
		return te.Cooked()
	}
	lit, ok := node.(*ast.Literal)
	if !ok || len(lit.Raw) == 0 {
		return "", false
	}
	if lit.Raw[0] != '"' && lit.Raw[0] != '\'' {
		return "", false
	}
	s, ok := lit.Value.(string)
	return s, ok
}

// containsEscape checks whether node's subtree mentions "escape"
// anywhere, the same substring test the source this is ported from runs
// against the node's serialized form.
func containsEscape(node ast.Node) bool {
	data, err := json.Marshal(node.Dict())
	if err != nil {
		return false
	}
	return strings.Contains(string(data), "escape")
}

func isDangerousSQL(data string) bool {
	if !sqlRE.MatchString(data) {
		return false
	}
	return !strings.Contains(data, "?")
}

func isDangerousCall(name string) bool {
	return callRE.MatchString(name)
}

// isDangerousConcatenation reports whether nodeList mixes a hardcoded
// dangerous SQL string with an unescaped expression.
func isDangerousConcatenation(nodeList []ast.Node) bool {
	var strs []string
	var exprs []ast.Node
	for _, n := range nodeList {
		if n == nil {
			continue
		}
		if s, ok := extractStringValue(n); ok {
			strs = append(strs, s)
		} else {
			exprs = append(exprs, n)
		}
	}
	if len(strs) == 0 || len(exprs) == 0 {
		return false
	}
	dangerous := false
	for _, s := range strs {
		if isDangerousSQL(s) {
			dangerous = true
			break
		}
	}
	if !dangerous {
		return false
	}
	allEscaped := true
	for _, e := range exprs {
		if !containsEscape(e) {
			allEscaped = false
			break
		}
	}
	return !allEscaped
}

func sqlMergeFunction(ctx *testset.Context) *testset.Result {
	call, ok := ctx.Node.(*ast.CallExpression)
	if !ok {
		return nil
	}
	var nodeList []ast.Node
	dangerousCall := false

	switch callee := call.Callee.(type) {
	case *ast.Identifier:
		dangerousCall = isDangerousCall(callee.Name)
	case *ast.MemberExpression:
		if prop, ok := callee.Property.(*ast.Identifier); ok {
			dangerousCall = isDangerousCall(prop.Name)
		}
		if arr, ok := callee.Object.(*ast.ArrayExpression); ok {
			nodeList = append(nodeList, arr.Elements...)
		} else {
			nodeList = append(nodeList, callee.Object)
		}
	}

	if !dangerousCall {
		return nil
	}
	nodeList = append(nodeList, call.Arguments...)
	if isDangerousConcatenation(nodeList) {
		return &testset.Result{Severity: "HIGH", Confidence: "MEDIUM",
			Text: sprintfSQL("Concatenation of an SQL statement using a function.")}
	}
	return nil
}

func sqlWithPlus(ctx *testset.Context) *testset.Result {
	bin, ok := ctx.Node.(*ast.BinaryExpression)
	if !ok || bin.Operator != "+" {
		return nil
	}
	if isDangerousConcatenation([]ast.Node{bin.Left, bin.Right}) {
		return &testset.Result{Severity: "HIGH", Confidence: "MEDIUM",
			Text: sprintfSQL("Concatenation with an SQL statement and an expression using (+).")}
	}
	return nil
}

func sqlWithTemplateLiteral(ctx *testset.Context) *testset.Result {
	tpl, ok := ctx.Node.(*ast.TemplateLiteral)
	if !ok {
		return nil
	}
	nodeList := append(append([]ast.Node{}, tpl.Quasis...), tpl.Expressions...)
	if isDangerousConcatenation(nodeList) {
		return &testset.Result{Severity: "HIGH", Confidence: "MEDIUM",
			Text: sprintfSQL("Concatenation with an SQL statement using a template literal.")}
	}
	return nil
}

func sqlWithPlusEqual(ctx *testset.Context) *testset.Result {
	assign, ok := ctx.Node.(*ast.AssignmentExpression)
	if !ok || assign.Operator != "+=" {
		return nil
	}
	if isDangerousConcatenation([]ast.Node{assign.Left, assign.Right}) {
		return &testset.Result{Severity: "HIGH", Confidence: "MEDIUM",
			Text: sprintfSQL("Concatenation with an SQL statement and an expression using (+=)")}
	}
	return nil
}

func sprintfSQL(detail string) string {
	return strings.Replace(sqlIssueText, "%s", detail, 1)
}

// hardcodedSQLExpressions is P602: the four original sub-detectors
// (merge-function call, (+), template literal, (+=)) collapsed into a
// single multi-kind test, since they all share one test id in the
// source this is ported from.
func hardcodedSQLExpressions() *testset.Test {
	return &testset.Test{
		ID:   "P602",
		Name: "hardcoded_sql_expressions",
		Checks: []string{
			"CallExpression",
			"BinaryExpression",
			"TemplateLiteral",
			"AssignmentExpression",
		},
		Callable: func(ctx *testset.Context) *testset.Result {
			switch ctx.Node.(type) {
			case *ast.CallExpression:
				return sqlMergeFunction(ctx)
			case *ast.BinaryExpression:
				return sqlWithPlus(ctx)
			case *ast.TemplateLiteral:
				return sqlWithTemplateLiteral(ctx)
			case *ast.AssignmentExpression:
				return sqlWithPlusEqual(ctx)
			}
			return nil
		},
	}
}
