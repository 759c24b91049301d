package external

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Yhnlvy/panther/internal/parser"
)

func scriptPath(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "fake-parser.sh")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755); err != nil {
		t.Fatalf("writing fake parser: %v", err)
	}
	return path
}

func TestCommandParseDecodesStdout(t *testing.T) {
	path := scriptPath(t, `echo '{"type":"Program","sourceType":"script","body":[]}'`)
	c := New(path)

	decoded, err := c.Parse([]byte("var x = 1;"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if decoded["type"] != "Program" {
		t.Errorf("decoded[\"type\"] = %v, want Program", decoded["type"])
	}
}

func TestCommandParseSyntaxError(t *testing.T) {
	path := scriptPath(t, `echo "unexpected token" 1>&2; exit 1`)
	c := New(path)

	_, err := c.Parse([]byte("var x = ;"))
	if err == nil {
		t.Fatal("expected error")
	}
	se, ok := err.(*parser.SyntaxError)
	if !ok {
		t.Fatalf("err = %T, want *parser.SyntaxError", err)
	}
	if se.Message != "unexpected token" {
		t.Errorf("Message = %q", se.Message)
	}
}

func TestCommandParseMissingExecutable(t *testing.T) {
	c := New(filepath.Join(t.TempDir(), "does-not-exist"))
	if _, err := c.Parse([]byte("x")); err == nil {
		t.Fatal("expected error for missing executable")
	}
}
