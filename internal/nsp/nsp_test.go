package nsp

import (
	"encoding/json"
	"testing"

	"github.com/Yhnlvy/panther/internal/ast"
)

func parseExpr(t *testing.T, src string) ast.Node {
	t.Helper()
	wrapped := `{"type":"Program","sourceType":"script","body":[{"type":"ExpressionStatement","expression":` + src + `}]}`
	var data map[string]interface{}
	if err := json.Unmarshal([]byte(wrapped), &data); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	n, err := ast.Parse(data)
	if err != nil {
		t.Fatalf("ast.Parse: %v", err)
	}
	prog := n.(*ast.Program)
	stmt := prog.Body[0].(*ast.ExpressionStatement)
	return stmt.Expression
}

func TestExtractNameSpaceFromExpression(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "x() => x",
			src:  `{"type":"Identifier","name":"x"}`,
			want: []string{"*x"},
		},
		{
			name: "x.y.z() => x.y.z",
			src: `{"type":"MemberExpression","computed":false,
				"object":{"type":"MemberExpression","computed":false,
					"object":{"type":"Identifier","name":"x"},
					"property":{"type":"Identifier","name":"y"}},
				"property":{"type":"Identifier","name":"z"}}`,
			want: []string{"*x", "*y", "*z"},
		},
		{
			name: "x[y][z]() => x.Identifier.Identifier",
			src: `{"type":"MemberExpression","computed":true,
				"object":{"type":"MemberExpression","computed":true,
					"object":{"type":"Identifier","name":"x"},
					"property":{"type":"Identifier","name":"y"}},
				"property":{"type":"Identifier","name":"z"}}`,
			want: []string{"*x", "?Identifier", "?Identifier"},
		},
		{
			name: "x['y'][3]() => x.y.3",
			src: `{"type":"MemberExpression","computed":true,
				"object":{"type":"MemberExpression","computed":true,
					"object":{"type":"Identifier","name":"x"},
					"property":{"type":"Literal","value":"y","raw":"'y'"}},
				"property":{"type":"Literal","value":3,"raw":"3"}}`,
			want: []string{"*x", "*y", "*3"},
		},
		{
			name: "[].x() => ArrayExpression.x",
			src: `{"type":"MemberExpression","computed":false,
				"object":{"type":"ArrayExpression","elements":[]},
				"property":{"type":"Identifier","name":"x"}}`,
			want: []string{"?ArrayExpression", "*x"},
		},
		{
			name: "''.x() => Literal.x",
			src: `{"type":"MemberExpression","computed":false,
				"object":{"type":"Literal","value":"","raw":"''"},
				"property":{"type":"Identifier","name":"x"}}`,
			want: []string{"?Literal", "*x"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			expr := parseExpr(t, tc.src)
			got := ExtractNameSpaceFromExpression(expr)
			if len(got) != len(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("token[%d] = %q, want %q (full: %v)", i, got[i], tc.want[i], got)
				}
			}
		})
	}
}

func TestMatchNameSpace(t *testing.T) {
	// db.mytable.find(...)
	call := `{"type":"CallExpression","arguments":[],
		"callee":{"type":"MemberExpression","computed":false,
			"object":{"type":"MemberExpression","computed":false,
				"object":{"type":"Identifier","name":"db"},
				"property":{"type":"Identifier","name":"mytable"}},
			"property":{"type":"Identifier","name":"find"}}}`
	expr := parseExpr(t, call).(*ast.CallExpression)

	if !MatchNameSpace(expr, []string{"*db", "*", "*find"}) {
		t.Error("expected db.*.find pattern to match")
	}
	if MatchNameSpace(expr, []string{"*db", "*find"}) {
		t.Error("length-mismatched pattern must not match")
	}
	if MatchNameSpace(expr, []string{"*other", "*", "*find"}) {
		t.Error("exact-mismatched pattern must not match")
	}
}

func TestTryExtractStringValue(t *testing.T) {
	str := parseExpr(t, `{"type":"Literal","value":"hello","raw":"\"hello\""}`)
	if v, ok := TryExtractStringValue(str); !ok || v != "hello" {
		t.Errorf("string literal: got (%q, %v)", v, ok)
	}

	num := parseExpr(t, `{"type":"Literal","value":3,"raw":"3"}`)
	if _, ok := TryExtractStringValue(num); ok {
		t.Error("numeric literal must not be extracted as a string")
	}

	ident := parseExpr(t, `{"type":"Identifier","name":"x"}`)
	if _, ok := TryExtractStringValue(ident); ok {
		t.Error("non-literal must not be extracted as a string")
	}
}

func TestArgumentHasKey(t *testing.T) {
	// db.collection.find({ $where: "..." })
	call := `{"type":"CallExpression","arguments":[
			{"type":"ObjectExpression","properties":[
				{"type":"Property","computed":false,"shorthand":false,"method":false,"kind":"init",
					"key":{"type":"Identifier","name":"$where"},
					"value":{"type":"Literal","value":"x","raw":"\"x\""}}
			]}
		],
		"callee":{"type":"Identifier","name":"find"}}`
	expr := parseExpr(t, call).(*ast.CallExpression)

	if !ArgumentHasKey(expr, "*$where") {
		t.Error("expected $where key to match")
	}
	if ArgumentHasKey(expr, "*other") {
		t.Error("unrelated key must not match")
	}
}
