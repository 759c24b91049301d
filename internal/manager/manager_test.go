package manager

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/Yhnlvy/panther/internal/ast"
	"github.com/Yhnlvy/panther/internal/config"
	"github.com/Yhnlvy/panther/internal/issue"
	"github.com/Yhnlvy/panther/internal/testset"
)

// fakeParser maps known source strings to pre-built ESTree JSON; unknown
// source (the "skip" fixture) reports a syntax error, exercising the
// skipped-file path.
type fakeParser struct{ fixtures map[string]string }

func (f fakeParser) Parse(src []byte) (map[string]interface{}, error) {
	raw, ok := f.fixtures[string(src)]
	if !ok {
		return nil, &syntaxErr{}
	}
	var v map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, err
	}
	return v, nil
}

type syntaxErr struct{}

func (e *syntaxErr) Error() string { return "unexpected token" }

const evalSrc = "eval('x');\n"

const evalFixture = `{
	"type": "Program", "sourceType": "script",
	"body": [
		{"type": "ExpressionStatement", "expression": {
			"type": "CallExpression",
			"callee": {"type": "Identifier", "name": "eval"},
			"arguments": [{"type": "Literal", "value": "x", "raw": "'x'"}]
		}}
	]
}`

func evalPlugin() *testset.Test {
	return &testset.Test{
		ID:     "P601",
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

func buildTestSet(t *testing.T) *testset.TestSet {
	t.Helper()
	testset.Reset()
	t.Cleanup(testset.Reset)
	testset.Register(evalPlugin())
	ts, err := testset.Build(testset.Profile{}, nil, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return ts
}

func setupTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "app.js"), []byte(evalSrc), 0o644); err != nil {
		t.Fatalf("write app.js: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "broken.js"), []byte("not valid js"), 0o644); err != nil {
		t.Fatalf("write broken.js: %v", err)
	}
	nm := filepath.Join(dir, "node_modules")
	if err := os.Mkdir(nm, 0o755); err != nil {
		t.Fatalf("mkdir node_modules: %v", err)
	}
	if err := os.WriteFile(filepath.Join(nm, "lib.js"), []byte(evalSrc), 0o644); err != nil {
		t.Fatalf("write lib.js: %v", err)
	}
	return dir
}

func TestDiscoverFilesExcludesNodeModules(t *testing.T) {
	dir := setupTree(t)
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	m := New(fakeParser{}, buildTestSet(t), false)
	m.DiscoverFiles(cfg, []string{dir}, true, nil)

	if len(m.FilesList) != 2 {
		t.Fatalf("FilesList = %v, want 2 entries", m.FilesList)
	}
	for _, f := range m.FilesList {
		if filepath.Base(filepath.Dir(f)) == "node_modules" {
			t.Errorf("node_modules file %s should have been excluded", f)
		}
	}
	foundExcluded := false
	for _, f := range m.ExcludedFiles {
		if filepath.Base(f) == "lib.js" {
			foundExcluded = true
		}
	}
	if !foundExcluded {
		t.Errorf("expected lib.js under node_modules to be excluded, got %v", m.ExcludedFiles)
	}
}

func TestRunTestsSkipsUnparsableFiles(t *testing.T) {
	dir := setupTree(t)
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	m := New(fakeParser{fixtures: map[string]string{evalSrc: evalFixture}}, buildTestSet(t), false)
	m.DiscoverFiles(cfg, []string{dir}, true, nil)
	m.RunTests()

	if len(m.Skipped) != 1 || filepath.Base(m.Skipped[0].Filename) != "broken.js" {
		t.Fatalf("Skipped = %+v, want exactly broken.js", m.Skipped)
	}
	if len(m.FilesList) != 1 || filepath.Base(m.FilesList[0]) != "app.js" {
		t.Fatalf("FilesList = %v, want exactly app.js", m.FilesList)
	}
	if len(m.Results) != 1 || m.Results[0].TestID != "P601" {
		t.Fatalf("Results = %+v, want one P601 issue", m.Results)
	}
}

func TestResultsCountAgainstSelfBaselineIsZero(t *testing.T) {
	dir := setupTree(t)
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	m := New(fakeParser{fixtures: map[string]string{evalSrc: evalFixture}}, buildTestSet(t), false)
	m.DiscoverFiles(cfg, []string{dir}, true, nil)
	m.RunTests()

	if got := m.ResultsCount(issue.Undefined, issue.Undefined); got != 1 {
		t.Fatalf("ResultsCount without baseline = %d, want 1", got)
	}

	m.PopulateBaseline(append([]issue.Issue{}, m.Results...))
	if got := m.ResultsCount(issue.Undefined, issue.Undefined); got != 0 {
		t.Errorf("ResultsCount against self baseline = %d, want 0", got)
	}
}
