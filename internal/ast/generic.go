package ast

// Generic realises any ESTree kind that the core never needs strongly-typed
// field access to. Its field set comes from genericFields, keyed by the
// node's "type" — control-flow statements, classes and a handful of rarer
// expression forms the namespace matcher and plugins only ever traverse
// through, never inspect directly.
type Generic struct {
	base
	kind   string
	fields []string
	values map[string]interface{}
}

func (n *Generic) Kind() string         { return n.kind }
func (n *Generic) FieldNames() []string { return n.fields }
func (n *Generic) Dict() map[string]interface{} { return dictOf(n) }
func (n *Generic) FieldValue(name string) interface{} {
	return n.values[name]
}

// genericFields declares, per ESTree type, which JSON keys are child
// fields (Node / []Node) versus opaque extras. Order matters: it fixes
// the pre-order traversal order for these kinds (invariant I2).
var genericFields = map[string][]string{
	"IfStatement":              {"test", "consequent", "alternate"},
	"ForStatement":             {"init", "test", "update", "body"},
	"ForInStatement":           {"left", "right", "body"},
	"ForOfStatement":           {"left", "right", "body"},
	"WhileStatement":           {"test", "body"},
	"DoWhileStatement":         {"body", "test"},
	"BreakStatement":           {"label"},
	"ContinueStatement":        {"label"},
	"LabeledStatement":         {"label", "body"},
	"ThrowStatement":           {"argument"},
	"TryStatement":             {"block", "handler", "finalizer"},
	"CatchClause":              {"param", "body"},
	"SwitchStatement":          {"discriminant", "cases"},
	"SwitchCase":               {"test", "consequent"},
	"WithStatement":            {"object", "body"},
	"EmptyStatement":           {},
	"DebuggerStatement":        {},
	"AssignmentPattern":        {"left", "right"},
	"RestElement":              {"argument"},
	"ObjectPattern":            {"properties"},
	"ArrayPattern":             {"elements"},
	"ClassDeclaration":         {"id", "superClass", "body"},
	"ClassExpression":          {"id", "superClass", "body"},
	"ClassBody":                {"body"},
	"MethodDefinition":         {"key", "value"},
	"PropertyDefinition":       {"key", "value"},
	"Super":                    {},
	"ExportNamedDeclaration":   {"declaration", "specifiers", "source"},
	"ExportSpecifier":          {"local", "exported"},
	"ExportDefaultDeclaration": {"declaration"},
	"ExportAllDeclaration":     {"source", "exported"},
	"MetaProperty":             {"meta", "property"},
	"YieldExpression":          {"argument"},
	"AwaitExpression":          {"argument"},
	"ChainExpression":          {"expression"},
	"ParenthesizedExpression":  {"expression"},
}

func newGeneric(kind string) func(map[string]interface{}) (Node, error) {
	fields := genericFields[kind]
	return func(data map[string]interface{}) (Node, error) {
		n := &Generic{kind: kind, fields: fields}
		n.loc = data["loc"]
		n.values = make(map[string]interface{}, len(fields))
		for _, f := range fields {
			raw, present := data[f]
			if !present {
				continue
			}
			res, err := Objectify(raw)
			if err != nil {
				return nil, err
			}
			n.values[f] = res
		}
		n.extra = extraKeys(data, fields...)
		return n, nil
	}
}

func init() {
	for kind := range genericFields {
		if _, already := registry[kind]; already {
			continue
		}
		registry[kind] = newGeneric(kind)
	}
}
