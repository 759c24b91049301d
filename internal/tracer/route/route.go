// Package route discovers HTTP-verb route call sites in a program and
// collects their entry callback functions (C8, route discovery half).
package route

import (
	"github.com/Yhnlvy/panther/internal/ast"
	"github.com/Yhnlvy/panther/internal/nsp"
	"github.com/Yhnlvy/panther/internal/tracer"
)

// Methods are the routing verbs recognised as a route call site.
var Methods = []string{"get", "post", "put", "delete", "patch"}

// Route is a discovered HTTP route: its literal pattern, method, and the
// ordered list of resolved entry functions.
type Route struct {
	Pattern             string
	Method              string
	EntryPointFunctions []*tracer.Function
}

// Find scans program (belonging to filePath) for CallExpression call
// sites whose callee tokens match ["*", "*METHOD"] for each recognised
// method. The first argument must be a string literal (the route
// pattern); remaining arguments are interpreted as entry callbacks:
// a FunctionExpression is an anonymous function on filePath, and a
// MemberExpression(Identifier, Identifier) is resolved via the
// extractor's import cache.
func Find(extractor *tracer.Extractor, filePath string, program ast.Node) ([]Route, error) {
	var routes []Route
	for _, n := range ast.Traverse(program) {
		call, ok := n.(*ast.CallExpression)
		if !ok {
			continue
		}
		for _, method := range Methods {
			if !nsp.MatchNameSpace(call, []string{"*", "*" + method}) {
				continue
			}
			if len(call.Arguments) == 0 {
				continue
			}
			pattern, ok := nsp.TryExtractStringValue(call.Arguments[0])
			if !ok {
				continue
			}
			var entries []*tracer.Function
			for _, arg := range call.Arguments[1:] {
				switch a := arg.(type) {
				case *ast.FunctionExpression:
					var identifier string
					if id, ok := a.Id.(*ast.Identifier); ok {
						identifier = id.Name
					}
					entries = append(entries, &tracer.Function{
						FilePath:   filePath,
						Identifier: identifier,
						Node:       a,
					})
				case *ast.MemberExpression:
					objID, objOK := a.Object.(*ast.Identifier)
					propID, propOK := a.Property.(*ast.Identifier)
					if !objOK || !propOK {
						continue
					}
					fn, err := extractor.TryFetchFunction(filePath, objID.Name, propID.Name)
					if err != nil {
						return nil, err
					}
					if fn != nil {
						entries = append(entries, fn)
					}
				}
			}
			routes = append(routes, Route{Pattern: pattern, Method: method, EntryPointFunctions: entries})
			break
		}
	}
	return routes, nil
}
