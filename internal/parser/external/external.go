// Package external implements internal/parser.Parser by shelling out to
// an external command that emits ESTree JSON on stdout. No JavaScript
// parsing happens in this process; this package only plumbs bytes to
// and from whatever real parser the caller configures.
package external

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"github.com/Yhnlvy/panther/internal/parser"
)

// DefaultCommand is the external parser invoked when no -parser-cmd flag
// is given: a small Node wrapper around a real ESTree-producing parser is
// expected to be on PATH under this name.
const DefaultCommand = "panther-js-parse"

// Command runs Path with Args, feeding source on stdin and decoding its
// stdout as ESTree JSON.
type Command struct {
	Path string
	Args []string
}

var _ parser.Parser = Command{}

// New returns a Command using path (DefaultCommand if empty) and args.
func New(path string, args ...string) Command {
	if path == "" {
		path = DefaultCommand
	}
	return Command{Path: path, Args: args}
}

// Parse runs the configured command, writing src to its stdin and
// decoding its stdout as an ESTree JSON document. A non-zero exit with
// stderr output is reported as a *parser.SyntaxError so callers can skip
// the file rather than abort the run.
func (c Command) Parse(src []byte) (map[string]interface{}, error) {
	cmd := exec.Command(c.Path, c.Args...)
	cmd.Stdin = bytes.NewReader(src)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, &parser.SyntaxError{Message: msg}
		}
		return nil, fmt.Errorf("external: running %s: %w", c.Path, err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(stdout.Bytes(), &decoded); err != nil {
		return nil, fmt.Errorf("external: decoding output of %s: %w", c.Path, err)
	}
	return decoded, nil
}
