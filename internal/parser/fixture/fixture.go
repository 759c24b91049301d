// Package fixture loads pre-parsed ESTree JSON files from disk, for use in
// place of a real JavaScript parser. No test in this module calls it: the
// visitor, tracer, and plugin suites build their trees from inline JSON
// literals or a fakeParser.
package fixture

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load decodes the ESTree JSON document at path into a value ready for
// internal/ast.Parse.
func Load(path string) (map[string]interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: reading %s: %w", path, err)
	}
	var v map[string]interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("fixture: decoding %s: %w", path, err)
	}
	return v, nil
}
