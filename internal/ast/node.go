// Package ast realises a decoded ESTree JSON value into a tree of typed
// Node variants. Construction, traversal and dict() reconstruction are the
// three uniform operations every variant supports; node-kind-specific
// behaviour (namespace matching, string extraction, ...) lives in other
// packages that consume Node through type assertions, not here.
package ast

import "fmt"

// UnknownNodeTypeError is returned when the decoded JSON carries a "type"
// value this package has no variant (or generic field table) for. Per the
// core spec this is fatal for the file being parsed — callers should not
// swallow it silently.
type UnknownNodeTypeError struct {
	Type string
}

func (e *UnknownNodeTypeError) Error() string {
	return fmt.Sprintf("ast: unknown node type %q", e.Type)
}

// Node is the uniform interface every ESTree variant satisfies.
type Node interface {
	// Kind is the node's ESTree type name, e.g. "Identifier".
	Kind() string
	// FieldNames lists this variant's declared child fields, in the
	// canonical order children appear in source (invariant I2).
	FieldNames() []string
	// FieldValue returns the realised value of a declared field: a Node,
	// a []Node, or a pass-through scalar/raw value.
	FieldValue(name string) interface{}
	// RawLoc returns the node's `loc` value exactly as decoded, or nil.
	RawLoc() interface{}
	// Extra returns JSON keys present on the node that are neither a
	// declared field, "type", nor "loc" — carried uniformly so Dict() can
	// reconstruct the original shape (invariant I4).
	Extra() map[string]interface{}
	// Dict reconstructs the original JSON-compatible shape.
	Dict() map[string]interface{}
}

// base is embedded by every concrete variant for the two fields every
// node carries regardless of kind: loc and any unrecognised keys.
type base struct {
	loc   interface{}
	extra map[string]interface{}
}

func (b *base) RawLoc() interface{}            { return b.loc }
func (b *base) Extra() map[string]interface{}  { return b.extra }

// dictOf builds the Dict() result generically from Kind/FieldNames/FieldValue
// so individual variants don't each repeat the same reconstruction logic.
func dictOf(n Node) map[string]interface{} {
	out := make(map[string]interface{}, len(n.FieldNames())+2)
	out["type"] = n.Kind()
	for _, f := range n.FieldNames() {
		out[f] = toJSON(n.FieldValue(f))
	}
	for k, v := range n.Extra() {
		out[k] = v
	}
	if loc := n.RawLoc(); loc != nil {
		out["loc"] = loc
	}
	return out
}

func toJSON(v interface{}) interface{} {
	switch vv := v.(type) {
	case Node:
		if vv == nil {
			return nil
		}
		return vv.Dict()
	case []Node:
		arr := make([]interface{}, len(vv))
		for i, c := range vv {
			if c == nil {
				continue
			}
			arr[i] = c.Dict()
		}
		return arr
	default:
		return v
	}
}

// extraKeys returns the entries of data not in declared (plus "type"/"loc").
func extraKeys(data map[string]interface{}, declared ...string) map[string]interface{} {
	skip := make(map[string]struct{}, len(declared)+2)
	skip["type"] = struct{}{}
	skip["loc"] = struct{}{}
	for _, d := range declared {
		skip[d] = struct{}{}
	}
	var extra map[string]interface{}
	for k, v := range data {
		if _, ok := skip[k]; ok {
			continue
		}
		if extra == nil {
			extra = make(map[string]interface{})
		}
		extra[k] = v
	}
	return extra
}

// Objectify recursively realises decoded JSON into Node / []Node / scalar.
// Dicts without a "type" key (loc objects, regex literals, ...) and bare
// scalars pass through unchanged.
func Objectify(data interface{}) (interface{}, error) {
	switch v := data.(type) {
	case nil:
		return nil, nil
	case map[string]interface{}:
		typRaw, hasType := v["type"]
		if !hasType {
			return v, nil
		}
		typ, _ := typRaw.(string)
		ctor, ok := registry[typ]
		if !ok {
			return nil, &UnknownNodeTypeError{Type: typ}
		}
		return ctor(v)
	case []interface{}:
		out := make([]Node, len(v))
		for i, item := range v {
			res, err := Objectify(item)
			if err != nil {
				return nil, err
			}
			if res == nil {
				continue
			}
			n, ok := res.(Node)
			if !ok {
				return nil, fmt.Errorf("ast: list element is not a node: %#v", item)
			}
			out[i] = n
		}
		return out, nil
	default:
		return data, nil
	}
}

// Parse is the entry point: realise a decoded top-level ESTree value
// (normally a Program) into its typed Node.
func Parse(data map[string]interface{}) (Node, error) {
	res, err := Objectify(data)
	if err != nil {
		return nil, err
	}
	n, _ := res.(Node)
	return n, nil
}

func objNode(v interface{}) (Node, error) {
	if v == nil {
		return nil, nil
	}
	res, err := Objectify(v)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, nil
	}
	n, ok := res.(Node)
	if !ok {
		return nil, fmt.Errorf("ast: expected node, got %T", res)
	}
	return n, nil
}

func objList(v interface{}) ([]Node, error) {
	if v == nil {
		return nil, nil
	}
	res, err := Objectify(v)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, nil
	}
	list, ok := res.([]Node)
	if !ok {
		return nil, fmt.Errorf("ast: expected list, got %T", res)
	}
	return list, nil
}

// Traverse returns the pre-order sequence of n and all of its descendants
// (invariants I1, I2).
func Traverse(n Node) []Node {
	var out []Node
	appendTraversal(n, &out)
	return out
}

func appendTraversal(n Node, out *[]Node) {
	if n == nil {
		return
	}
	*out = append(*out, n)
	for _, f := range n.FieldNames() {
		switch v := n.FieldValue(f).(type) {
		case Node:
			appendTraversal(v, out)
		case []Node:
			for _, c := range v {
				appendTraversal(c, out)
			}
		}
	}
}

// WalkPruning performs a pre-order walk, invoking visit on each node before
// its children. If visit returns false the node's subtree is not
// descended into (used to implement //nosec line skipping).
func WalkPruning(n Node, visit func(Node) bool) {
	if n == nil {
		return
	}
	if !visit(n) {
		return
	}
	for _, f := range n.FieldNames() {
		switch v := n.FieldValue(f).(type) {
		case Node:
			WalkPruning(v, visit)
		case []Node:
			for _, c := range v {
				WalkPruning(c, visit)
			}
		}
	}
}
