package trace

import (
	"os"
	"path/filepath"
	"testing"
)

const routeFixture = `{
	"type": "Program", "sourceType": "script",
	"body": [
		{"type": "ExpressionStatement", "expression": {
			"type": "CallExpression",
			"callee": {"type": "MemberExpression", "computed": false,
				"object": {"type": "Identifier", "name": "app"},
				"property": {"type": "Identifier", "name": "get"}},
			"arguments": [
				{"type": "Literal", "value": "/users/:id", "raw": "'/users/:id'"},
				{"type": "FunctionExpression", "id": null, "params": [],
					"body": {"type": "BlockStatement", "body": [
						{"type": "ExpressionStatement", "expression": {
							"type": "CallExpression",
							"callee": {"type": "Identifier", "name": "eval"},
							"arguments": [{"type": "Literal", "value": "x", "raw": "'x'"}]
						}}
					]}}
			]
		}}
	]
}`

const noRouteFixture = `{"type":"Program","sourceType":"script","body":[]}`

func writeFakeParser(t *testing.T, fixture string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "fake-parser.sh")
	body := "#!/bin/sh\ncat <<'EOF'\n" + fixture + "\nEOF\n"
	if err := os.WriteFile(path, []byte(body), 0o755); err != nil {
		t.Fatalf("writing fake parser: %v", err)
	}
	return path
}

func writeTarget(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "app.js")
	if err := os.WriteFile(path, []byte("app.get('/users/:id', function(req, res) { eval('x'); });\n"), 0o644); err != nil {
		t.Fatalf("writing target: %v", err)
	}
	return path
}

func TestRunFindsReachableVulnerability(t *testing.T) {
	parserPath := writeFakeParser(t, routeFixture)
	target := writeTarget(t)

	code := Run([]string{"-parser-cmd", parserPath, target})
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
}

func TestRunNoRoutesFound(t *testing.T) {
	parserPath := writeFakeParser(t, noRouteFixture)
	target := writeTarget(t)

	code := Run([]string{"-parser-cmd", parserPath, target})
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
}

func TestRunNoTargets(t *testing.T) {
	if code := Run([]string{}); code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
}
