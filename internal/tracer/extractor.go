package tracer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Yhnlvy/panther/internal/ast"
	"github.com/Yhnlvy/panther/internal/nsp"
	"github.com/Yhnlvy/panther/internal/parser"
	"github.com/Yhnlvy/panther/internal/visitor"
)

// Extractor owns the three per-run caches FileExtractor provides (C7):
// parsed programs, require imports, and function definitions, all keyed
// by the file path exactly as the caller passes it; paths are not made
// absolute, so one file reached by two spellings of its path is cached
// twice. Caches are populated on first request and never
// invalidated during the run that owns them (§3, §5).
type Extractor struct {
	Parser parser.Parser

	programCache  map[string]ast.Node
	importCache   map[string]map[string]string
	functionCache map[string]map[string]*Function
}

// NewExtractor returns an Extractor backed by p for parsing files.
func NewExtractor(p parser.Parser) *Extractor {
	return &Extractor{
		Parser:        p,
		programCache:  make(map[string]ast.Node),
		importCache:   make(map[string]map[string]string),
		functionCache: make(map[string]map[string]*Function),
	}
}

// GetProgram serves the cached AST of filePath, parsing and realising it
// on first request.
func (e *Extractor) GetProgram(filePath string) (ast.Node, error) {
	if prog, ok := e.programCache[filePath]; ok {
		return prog, nil
	}
	src, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("tracer: reading %s: %w", filePath, err)
	}
	cleaned := visitor.CleanCode(string(src))
	decoded, err := e.Parser.Parse([]byte(cleaned))
	if err != nil {
		return nil, fmt.Errorf("tracer: parsing %s: %w", filePath, err)
	}
	prog, err := ast.Parse(decoded)
	if err != nil {
		return nil, fmt.Errorf("tracer: realising %s: %w", filePath, err)
	}
	e.programCache[filePath] = prog
	return prog, nil
}

// GetImports serves the cached require-import map (local name -> relative
// module path) for filePath, building it on first request.
func (e *Extractor) GetImports(filePath string) (map[string]string, error) {
	if imp, ok := e.importCache[filePath]; ok {
		return imp, nil
	}
	program, err := e.GetProgram(filePath)
	if err != nil {
		return nil, err
	}
	imports := make(map[string]string)
	for _, n := range ast.Traverse(program) {
		decl, ok := n.(*ast.VariableDeclarator)
		if !ok {
			continue
		}
		id, ok := decl.Id.(*ast.Identifier)
		if !ok {
			continue
		}
		call, ok := decl.Init.(*ast.CallExpression)
		if !ok {
			continue
		}
		if !nsp.MatchNameSpace(call, []string{"*require"}) || len(call.Arguments) == 0 {
			continue
		}
		modPath, ok := nsp.TryExtractStringValue(call.Arguments[0])
		if !ok {
			continue
		}
		if strings.HasPrefix(modPath, ".") || strings.HasPrefix(modPath, "/") {
			imports[id.Name] = modPath
		}
	}
	e.importCache[filePath] = imports
	return imports, nil
}

// GetFunctionDefinitions serves the cached name->function map for
// filePath, building it on first request. Three shapes are recognised
// (§4.7): `function x(){}`, `x = function(){}` (assignment), and
// `var x = function(){}` (declarator).
func (e *Extractor) GetFunctionDefinitions(filePath string) (map[string]*Function, error) {
	if defs, ok := e.functionCache[filePath]; ok {
		return defs, nil
	}
	program, err := e.GetProgram(filePath)
	if err != nil {
		return nil, err
	}
	defs := make(map[string]*Function)

	checkAssignment := func(left, right ast.Node) (string, ast.Node, bool) {
		fnExpr, ok := right.(*ast.FunctionExpression)
		if !ok {
			return "", nil, false
		}
		nameSpace := nsp.ExtractNameSpaceFromExpression(left)
		if len(nameSpace) == 0 {
			return "", nil, false
		}
		last := nameSpace[len(nameSpace)-1]
		if !strings.HasPrefix(last, "*") {
			return "", nil, false
		}
		return last[1:], fnExpr, true
	}

	for _, n := range ast.Traverse(program) {
		switch v := n.(type) {
		case *ast.FunctionDeclaration:
			if id, ok := v.Id.(*ast.Identifier); ok {
				defs[id.Name] = &Function{FilePath: filePath, Identifier: id.Name, Node: v}
			}
		case *ast.AssignmentExpression:
			if v.Operator != "=" {
				continue
			}
			if name, node, ok := checkAssignment(v.Left, v.Right); ok {
				defs[name] = &Function{FilePath: filePath, Identifier: name, Node: node}
			}
		case *ast.VariableDeclaration:
			for _, d := range v.Declarations {
				decl, ok := d.(*ast.VariableDeclarator)
				if !ok || decl.Id == nil || decl.Init == nil {
					continue
				}
				if name, node, ok := checkAssignment(decl.Id, decl.Init); ok {
					defs[name] = &Function{FilePath: filePath, Identifier: name, Node: node}
				}
			}
		}
	}
	e.functionCache[filePath] = defs
	return defs, nil
}

// ResolvePath resolves relativePath (imported from filePath, without
// extension) to a cleaned ".js" path in filePath's directory; the result
// is absolute only when filePath is.
func ResolvePath(filePath, relativePath string) string {
	dir := filepath.Dir(filePath)
	return filepath.Clean(filepath.Join(dir, relativePath+".js"))
}

// TryMatchFunction looks up identifier among filePath's function
// definitions.
func (e *Extractor) TryMatchFunction(filePath, identifier string) (*Function, error) {
	defs, err := e.GetFunctionDefinitions(filePath)
	if err != nil {
		return nil, err
	}
	fn, ok := defs[identifier]
	if !ok {
		return nil, nil
	}
	cp := *fn
	return &cp, nil
}

// TryFetchFunction resolves moduleAlias via filePath's imports, then
// looks up identifier in the resolved file. Any miss (unresolved import,
// missing file, missing function) returns (nil, nil) rather than an
// error (§4.7: "Missing files are returned as no-match, not errors").
func (e *Extractor) TryFetchFunction(filePath, moduleAlias, identifier string) (*Function, error) {
	imports, err := e.GetImports(filePath)
	if err != nil {
		return nil, err
	}
	rel, ok := imports[moduleAlias]
	if !ok {
		return nil, nil
	}
	nextPath := ResolvePath(filePath, rel)
	if _, statErr := os.Stat(nextPath); statErr != nil {
		return nil, nil
	}
	fn, err := e.TryMatchFunction(nextPath, identifier)
	if err != nil {
		return nil, err
	}
	if fn == nil {
		return nil, nil
	}
	fn.Caller = moduleAlias + "." + identifier
	return fn, nil
}
