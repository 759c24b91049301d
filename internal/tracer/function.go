// Package tracer implements the per-file extractor caches (C7): parsed
// programs, `require` imports, and function definitions, keyed by the
// file path as given (not made absolute) and populated lazily on first
// request.
package tracer

import "github.com/Yhnlvy/panther/internal/ast"

// Function is a resolved function definition: the file it lives in, its
// name (if any — anonymous route callbacks have none), its node, and the
// "module.fn" caller label stamped on cross-file lookups.
type Function struct {
	FilePath   string
	Identifier string
	Node       ast.Node
	Caller     string
}
