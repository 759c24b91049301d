// Package testset maps node kinds to the tests interested in them and
// resolves a configuration profile's include/exclude test-id lists into
// the effective set run for a scan (C3).
package testset

import (
	"fmt"
	"sort"

	"github.com/Yhnlvy/panther/internal/ast"
)

// Context is the value passed to a Test's Callable: the node under
// inspection plus the position information the visitor has computed for
// it.
type Context struct {
	Node      ast.Node
	Filename  string
	Lineno    int
	LineRange []int
}

// Result is what a test returns for a matched node: severity/confidence
// rank names and the finding text. A nil Result means the test found
// nothing for this node.
type Result struct {
	Severity   string
	Confidence string
	Text       string
}

// Callable is a test's detection logic.
type Callable func(ctx *Context) *Result

// Test is a single registered detector.
type Test struct {
	ID           string
	Name         string
	Checks       []string
	Callable     Callable
	TakesConfig  string // name of the config block this test reads, if any
	Config       interface{}
}

// Registry is the global collection of known tests, keyed by id. Tests
// register themselves at init time via Register — this is the
// "explicit registry built at startup" the core favors over reflection
// or runtime plugin discovery.
var registry = map[string]*Test{}
var registrationOrder []string

// Register adds t to the global registry. Panics on duplicate id, since
// that is a programming error caught at init time, not a runtime
// condition.
func Register(t *Test) {
	if _, exists := registry[t.ID]; exists {
		panic(fmt.Sprintf("testset: duplicate test id %q", t.ID))
	}
	registry[t.ID] = t
	registrationOrder = append(registrationOrder, t.ID)
}

// CheckID reports whether id names a registered test.
func CheckID(id string) bool {
	_, ok := registry[id]
	return ok
}

// ResolveID resolves nameOrID to a registered test id: if it already
// names one, it is returned unchanged; otherwise the registry is
// searched for a test whose Name matches. ok is false when neither
// matches, leaving the original string to the caller.
func ResolveID(nameOrID string) (id string, ok bool) {
	if _, exists := registry[nameOrID]; exists {
		return nameOrID, true
	}
	for _, t := range registry {
		if t.Name == nameOrID {
			return t.ID, true
		}
	}
	return "", false
}

// Profile is the include/exclude test-id configuration resolved from
// YAML config (§4.3).
type Profile struct {
	Include []string
	Exclude []string
}

// ValidateProfile mirrors extension_loader.Manager.validate_profile:
// every id in Include/Exclude must be a known test id, and the two sets
// must be disjoint.
func ValidateProfile(p Profile) error {
	for _, id := range p.Include {
		if !CheckID(id) {
			return fmt.Errorf("testset: unknown test found in profile: %s", id)
		}
	}
	for _, id := range p.Exclude {
		if !CheckID(id) {
			return fmt.Errorf("testset: unknown test found in profile: %s", id)
		}
	}
	inc := toSet(p.Include)
	exc := toSet(p.Exclude)
	var shared []string
	for id := range inc {
		if exc[id] {
			shared = append(shared, id)
		}
	}
	if len(shared) > 0 {
		sort.Strings(shared)
		return fmt.Errorf("testset: non-exclusive include/exclude test sets: %v", shared)
	}
	return nil
}

func toSet(ids []string) map[string]bool {
	s := make(map[string]bool, len(ids))
	for _, id := range ids {
		s[id] = true
	}
	return s
}

// TestSet is the effective, per-run view of the registry: which tests
// are enabled, indexed by the node kind they check.
type TestSet struct {
	byKind map[string][]*Test
}

// ConfigSource resolves a named config block for a test that declares
// TakesConfig; it is the core's view of the YAML config loader (§4.3).
type ConfigSource interface {
	GetOption(name string) (interface{}, bool)
}

// DefaultConfig produces a fallback config payload when ConfigSource has
// nothing for a test's TakesConfig name.
type DefaultConfig func(name string) interface{}

// Build resolves profile into the effective test set and indexes enabled
// tests by node kind. ValidateProfile must be called by the caller first
// (or Build returns its error directly) since an unknown id in a
// profile is fatal before scanning (§7).
func Build(profile Profile, cfg ConfigSource, defaultCfg DefaultConfig) (*TestSet, error) {
	if err := ValidateProfile(profile); err != nil {
		return nil, err
	}

	var enabled map[string]bool
	if len(profile.Include) > 0 {
		enabled = toSet(profile.Include)
	} else {
		enabled = make(map[string]bool, len(registry))
		for id := range registry {
			enabled[id] = true
		}
	}
	for id := range toSet(profile.Exclude) {
		delete(enabled, id)
	}

	ts := &TestSet{byKind: make(map[string][]*Test)}
	// iterate in registration order so output/ordering is deterministic
	for _, id := range registrationOrder {
		if !enabled[id] {
			continue
		}
		t := registry[id]
		if t.TakesConfig != "" {
			var resolved interface{}
			if cfg != nil {
				if v, ok := cfg.GetOption(t.TakesConfig); ok {
					resolved = v
				}
			}
			if resolved == nil && defaultCfg != nil {
				resolved = defaultCfg(t.TakesConfig)
			}
			t.Config = resolved
		}
		for _, kind := range t.Checks {
			ts.byKind[kind] = append(ts.byKind[kind], t)
		}
	}
	return ts, nil
}

// GetTests returns the tests registered against checktype, or nil.
func (ts *TestSet) GetTests(checktype string) []*Test {
	return ts.byKind[checktype]
}

// Reset clears the global registry. Exposed for tests that need a clean
// registry rather than whatever plugins have registered themselves via
// package init.
func Reset() {
	registry = map[string]*Test{}
	registrationOrder = nil
}
