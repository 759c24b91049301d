// Package nsp extracts and matches namespace-path tokens from call and
// member expressions. A namespace path is the sequence of resolved or
// unresolved tokens describing how a call was reached: db.mytable.find(...)
// becomes ["*db", "*mytable", "*find"]; x[y][z.j](...) becomes
// ["*x", "?Identifier", "?MemberExpression"].
package nsp

import (
	"fmt"

	"github.com/Yhnlvy/panther/internal/ast"
)

// ExtractName extracts a single namespace token from a node. A resolved
// token (Identifier or Literal) is prefixed with '*'; anything else is
// prefixed with '?' followed by the node's ESTree kind. disableConversion
// forces the unresolved form even for an Identifier/Literal — used when a
// computed member's key can't be statically distinguished from a name.
func ExtractName(n ast.Node, disableConversion bool) string {
	switch v := n.(type) {
	case *ast.Identifier:
		if !disableConversion {
			return "*" + v.Name
		}
	case *ast.Literal:
		if !disableConversion {
			return "*" + fmt.Sprint(v.Value)
		}
	}
	return "?" + n.Kind()
}

// ExtractNameSpaceFromExpression extracts a namespace path from an
// arbitrary expression. A MemberExpression chain is unrolled left to
// right; anything else yields a single-element path.
func ExtractNameSpaceFromExpression(expr ast.Node) []string {
	member, ok := expr.(*ast.MemberExpression)
	if !ok {
		return []string{ExtractName(expr, false)}
	}

	readProperty := func(m *ast.MemberExpression) string {
		prop := m.Property
		disable := m.Computed
		if disable {
			if _, isIdent := prop.(*ast.Identifier); !isIdent {
				disable = false
			}
		}
		return ExtractName(prop, disable)
	}

	var nameSpace []string
	nameSpace = append([]string{readProperty(member)}, nameSpace...)
	cur := member.Object
	for {
		m, ok := cur.(*ast.MemberExpression)
		if !ok {
			break
		}
		nameSpace = append([]string{readProperty(m)}, nameSpace...)
		cur = m.Object
	}

	_, isLiteral := cur.(*ast.Literal)
	nameSpace = append([]string{ExtractName(cur, isLiteral)}, nameSpace...)
	return nameSpace
}

// ExtractNameSpace extracts a namespace path from a call expression's
// callee.
func ExtractNameSpace(call *ast.CallExpression) []string {
	return ExtractNameSpaceFromExpression(call.Callee)
}

// MatchPattern reports whether name matches a single pattern token. A
// bare "*" or "?" matches any resolved/unresolved name respectively; any
// longer pattern ("*eval", "?Identifier") requires an exact match.
func MatchPattern(name, pattern string) bool {
	if pattern == "" {
		return false
	}
	if len(pattern) == 1 {
		return len(name) > 0 && name[0] == pattern[0]
	}
	return name == pattern
}

// MatchNameSpace reports whether expr's namespace path matches pattern
// token-for-token. expr may be a CallExpression (its callee is used) or
// any other expression node.
func MatchNameSpace(expr ast.Node, pattern []string) bool {
	var nameSpace []string
	if call, ok := expr.(*ast.CallExpression); ok {
		nameSpace = ExtractNameSpace(call)
	} else {
		nameSpace = ExtractNameSpaceFromExpression(expr)
	}

	if len(pattern) == 0 || len(nameSpace) != len(pattern) {
		return false
	}
	for i, tok := range pattern {
		if !MatchPattern(nameSpace[i], tok) {
			return false
		}
	}
	return true
}

// ArgumentHasKey checks whether call has exactly one argument, that
// argument is an object literal, and one of its properties' keys matches
// patternKey.
func ArgumentHasKey(call *ast.CallExpression, patternKey string) bool {
	if len(call.Arguments) != 1 {
		return false
	}
	obj, ok := call.Arguments[0].(*ast.ObjectExpression)
	if !ok {
		return false
	}
	for _, p := range obj.Properties {
		prop, ok := p.(*ast.Property)
		if !ok {
			continue
		}
		disable := prop.Computed
		if disable {
			if _, isIdent := prop.Key.(*ast.Identifier); !isIdent {
				disable = false
			}
		}
		name := ExtractName(prop.Key, disable)
		if MatchPattern(name, patternKey) {
			return true
		}
	}
	return false
}

// TryExtractStringValue returns the value of node if it is a string
// Literal (its raw text starts with a quote), and true. Numeric/boolean/
// null literals return false — the original distinguishes a JS string
// literal from other literal kinds by inspecting the raw source text
// rather than the decoded value's Go type.
func TryExtractStringValue(node ast.Node) (string, bool) {
	lit, ok := node.(*ast.Literal)
	if !ok {
		return "", false
	}
	if len(lit.Raw) == 0 {
		return "", false
	}
	if lit.Raw[0] != '"' && lit.Raw[0] != '\'' {
		return "", false
	}
	s, ok := lit.Value.(string)
	if !ok {
		return "", false
	}
	return s, true
}
