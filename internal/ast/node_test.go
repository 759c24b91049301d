package ast

import (
	"encoding/json"
	"reflect"
	"testing"
)

func mustDecode(t *testing.T, src string) map[string]interface{} {
	t.Helper()
	var v map[string]interface{}
	if err := json.Unmarshal([]byte(src), &v); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return v
}

// P1: Dict() round-trips the original decoded JSON shape exactly.
func TestParseDictRoundTrip(t *testing.T) {
	src := `{
		"type": "Program",
		"sourceType": "script",
		"body": [
			{
				"type": "ExpressionStatement",
				"expression": {
					"type": "CallExpression",
					"callee": {"type": "Identifier", "name": "eval"},
					"arguments": [{"type": "Literal", "value": "x", "raw": "\"x\""}]
				},
				"loc": {"start": {"line": 1, "column": 0}, "end": {"line": 1, "column": 10}}
			}
		]
	}`
	data := mustDecode(t, src)
	n, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if n.Kind() != "Program" {
		t.Fatalf("Kind() = %q, want Program", n.Kind())
	}
	got := n.Dict()
	if !reflect.DeepEqual(got, map[string]interface{}(data)) {
		t.Fatalf("Dict() mismatch:\ngot:  %#v\nwant: %#v", got, data)
	}
}

// P2 / I1 / I2: Traverse visits root first, then children in source order.
func TestTraversePreOrder(t *testing.T) {
	src := `{
		"type": "Program",
		"sourceType": "script",
		"body": [
			{"type": "ExpressionStatement", "expression": {"type": "Identifier", "name": "a"}},
			{"type": "ExpressionStatement", "expression": {"type": "Identifier", "name": "b"}}
		]
	}`
	n, err := Parse(mustDecode(t, src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	order := Traverse(n)
	if len(order) != 5 {
		t.Fatalf("len(order) = %d, want 5", len(order))
	}
	if order[0].Kind() != "Program" {
		t.Fatalf("order[0] = %s, want Program (I1: root first)", order[0].Kind())
	}
	wantKinds := []string{"Program", "ExpressionStatement", "Identifier", "ExpressionStatement", "Identifier"}
	for i, k := range wantKinds {
		if order[i].Kind() != k {
			t.Errorf("order[%d].Kind() = %s, want %s", i, order[i].Kind(), k)
		}
	}
	if id, ok := order[2].(*Identifier); !ok || id.Name != "a" {
		t.Errorf("order[2] = %#v, want Identifier{Name: a}", order[2])
	}
	if id, ok := order[4].(*Identifier); !ok || id.Name != "b" {
		t.Errorf("order[4] = %#v, want Identifier{Name: b}", order[4])
	}
}

// I3: an unknown node type is a fatal, distinguishable error.
func TestParseUnknownType(t *testing.T) {
	src := `{"type": "TotallyMadeUpNodeType"}`
	_, err := Parse(mustDecode(t, src))
	if err == nil {
		t.Fatal("expected error for unknown node type")
	}
	var unk *UnknownNodeTypeError
	if !asUnknownType(err, &unk) {
		t.Fatalf("error is not *UnknownNodeTypeError: %v", err)
	}
	if unk.Type != "TotallyMadeUpNodeType" {
		t.Errorf("Type = %q", unk.Type)
	}
}

func asUnknownType(err error, target **UnknownNodeTypeError) bool {
	if e, ok := err.(*UnknownNodeTypeError); ok {
		*target = e
		return true
	}
	return false
}

// I4: unrecognised JSON keys on a node are preserved through Dict().
func TestExtraKeysPreserved(t *testing.T) {
	src := `{"type": "Identifier", "name": "x", "range": [0, 1], "optional": false}`
	n, err := Parse(mustDecode(t, src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got := n.Dict()
	if !reflect.DeepEqual(got["range"], []interface{}{float64(0), float64(1)}) {
		t.Errorf("range extra key lost: %#v", got["range"])
	}
	if got["optional"] != false {
		t.Errorf("optional extra key lost: %#v", got["optional"])
	}
}

// WalkPruning must not descend into a subtree once visit returns false.
func TestWalkPruningStopsDescent(t *testing.T) {
	src := `{
		"type": "Program",
		"sourceType": "script",
		"body": [
			{"type": "ExpressionStatement", "expression": {
				"type": "CallExpression",
				"callee": {"type": "Identifier", "name": "skip"},
				"arguments": [{"type": "Identifier", "name": "shouldNotVisit"}]
			}}
		]
	}`
	n, err := Parse(mustDecode(t, src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	var visitedNames []string
	WalkPruning(n, func(cur Node) bool {
		if id, ok := cur.(*Identifier); ok {
			visitedNames = append(visitedNames, id.Name)
		}
		if call, ok := cur.(*CallExpression); ok {
			if id, ok := call.Callee.(*Identifier); ok && id.Name == "skip" {
				return false
			}
		}
		return true
	})
	for _, name := range visitedNames {
		if name == "shouldNotVisit" {
			t.Fatalf("WalkPruning descended into a pruned subtree: visited %v", visitedNames)
		}
	}
}
