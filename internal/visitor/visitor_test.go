package visitor

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/Yhnlvy/panther/internal/ast"
	"github.com/Yhnlvy/panther/internal/issue"
	"github.com/Yhnlvy/panther/internal/testset"
)

func parseProgram(t *testing.T, src string) ast.Node {
	t.Helper()
	var data map[string]interface{}
	if err := json.Unmarshal([]byte(src), &data); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	n, err := ast.Parse(data)
	if err != nil {
		t.Fatalf("ast.Parse: %v", err)
	}
	return n
}

func evalFixture() string {
	return `{
		"type": "Program", "sourceType": "script",
		"body": [{
			"type": "ExpressionStatement",
			"loc": {"start": {"line": 1, "column": 0}, "end": {"line": 1, "column": 12}},
			"expression": {
				"type": "CallExpression",
				"loc": {"start": {"line": 1, "column": 0}, "end": {"line": 1, "column": 12}},
				"callee": {"type": "Identifier", "name": "eval", "loc": {"start": {"line": 1, "column": 0}}},
				"arguments": [{"type": "Literal", "value": "2*2", "raw": "'2*2'", "loc": {"start": {"line": 1, "column": 5}}}]
			}
		}]
	}`
}

func evalTest() *testset.Test {
	return &testset.Test{
		ID:     "P601",
		Name:   "blacklist_eval",
		Checks: []string{"CallExpression"},
		Callable: func(ctx *testset.Context) *testset.Result {
			call, ok := ctx.Node.(*ast.CallExpression)
			if !ok {
				return nil
			}
			id, ok := call.Callee.(*ast.Identifier)
			if !ok || id.Name != "eval" {
				return nil
			}
			return &testset.Result{Severity: "HIGH", Confidence: "MEDIUM", Text: "Use of eval detected."}
		},
	}
}

func TestVisitorFindsEval(t *testing.T) {
	testset.Reset()
	defer testset.Reset()
	testset.Register(evalTest())
	ts, err := testset.Build(testset.Profile{}, nil, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	root := parseProgram(t, evalFixture())
	v := &Visitor{Filename: "a.js", Tests: ts, Nosec: map[int]bool{}, Lines: []string{"eval('2*2')"}}
	res := v.Run(root)

	if len(res.Issues) != 1 {
		t.Fatalf("Issues = %d, want 1", len(res.Issues))
	}
	iss := res.Issues[0]
	if iss.TestID != "P601" || !strings.Contains(iss.Text, "Use of eval") {
		t.Errorf("issue = %+v", iss)
	}
	if iss.Severity != issue.High || iss.Confidence != issue.Medium {
		t.Errorf("ranks = %v/%v, want High/Medium", iss.Severity, iss.Confidence)
	}
}

// P5: a node on a nosec line contributes zero issues and its subtree is
// not visited.
func TestVisitorSkipsNosecSubtree(t *testing.T) {
	testset.Reset()
	defer testset.Reset()
	testset.Register(evalTest())
	ts, err := testset.Build(testset.Profile{}, nil, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	root := parseProgram(t, evalFixture())
	v := &Visitor{
		Filename: "a.js",
		Tests:    ts,
		Nosec:    map[int]bool{1: true},
		Lines:    []string{"eval('2*2') //nosec"},
	}
	res := v.Run(root)

	if len(res.Issues) != 0 {
		t.Fatalf("Issues = %d, want 0 under nosec", len(res.Issues))
	}
	if res.NosecCount != 1 {
		t.Errorf("NosecCount = %d, want 1", res.NosecCount)
	}
}

func TestVisitorSwallowsTestPanic(t *testing.T) {
	testset.Reset()
	defer testset.Reset()
	testset.Register(&testset.Test{
		ID:     "P999",
		Checks: []string{"CallExpression"},
		Callable: func(ctx *testset.Context) *testset.Result {
			panic("boom")
		},
	})
	ts, err := testset.Build(testset.Profile{}, nil, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	root := parseProgram(t, evalFixture())
	v := &Visitor{Filename: "a.js", Tests: ts, Nosec: map[int]bool{}, Lines: []string{"eval('2*2')"}}

	res := v.Run(root) // must not panic
	if len(res.Issues) != 0 {
		t.Errorf("Issues = %d, want 0 from a panicking test", len(res.Issues))
	}
}

func TestCleanCodeStripsShebang(t *testing.T) {
	got := CleanCode("#!/usr/bin/env node\nconsole.log(1);\n")
	if strings.Contains(got, "#!") {
		t.Errorf("shebang not stripped: %q", got)
	}
	if !strings.Contains(got, "console.log(1);") {
		t.Errorf("body lost: %q", got)
	}
}

func TestNosecLinesMarker(t *testing.T) {
	lines := []string{
		"var x = 1; //nosec",
		"var y = 2;",
		"var z = 3; // nosec",
	}
	got := NosecLines(lines, false)
	if !got[1] || got[2] || !got[3] {
		t.Errorf("NosecLines = %v, want {1,3}", got)
	}
	if empty := NosecLines(lines, true); len(empty) != 0 {
		t.Errorf("ignoreNosec should produce empty set, got %v", empty)
	}
}
