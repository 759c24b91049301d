// Package config loads and resolves the YAML configuration file: exclude
// dirs, include globs, per-test option blocks, and legacy profile
// name-to-id conversion.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Yhnlvy/panther/internal/plog"
	"github.com/Yhnlvy/panther/internal/testset"
)

// NodeModules is always excluded from file discovery, regardless of the
// configured exclude_dirs list.
const NodeModules = "node_modules"

// DefaultInclude is the glob used when the config declares none.
var DefaultInclude = []string{"*.js"}

// ConfigError reports a problem loading or validating a config file,
// carrying the offending path alongside the message (mirrors
// utils.ConfigError's "{path} : {message}" formatting).
type ConfigError struct {
	Path    string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s : %s", e.Path, e.Message)
}

// Profile is a named include/exclude test-id pair, as declared under the
// config's "profiles" key.
type Profile struct {
	Include []string `yaml:"include"`
	Exclude []string `yaml:"exclude"`
}

// raw is the on-disk shape of a Panther config file.
type raw struct {
	ExcludeDirs []string               `yaml:"exclude_dirs"`
	Include     []string               `yaml:"include"`
	Profiles    map[string]rawProfile  `yaml:"profiles"`
	Options     map[string]interface{} `yaml:",inline"`
}

type rawProfile struct {
	Include []string `yaml:"include"`
	Exclude []string `yaml:"exclude"`
}

// Config is the resolved, queryable view of a loaded config file.
type Config struct {
	path     string
	raw      map[string]interface{}
	Profiles map[string]Profile
}

// Load reads and parses path, converting legacy profile test names to ids
// (with a one-time deprecation warning) and validating that any id
// referenced by a profile is a known test. An empty path yields sane
// defaults (include *.js, no profiles), matching the original's
// no-config-file branch.
func Load(path string) (*Config, error) {
	if path == "" {
		return &Config{
			raw:      map[string]interface{}{"include": []interface{}{"*.js"}},
			Profiles: map[string]Profile{},
		}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Message: "Could not read config file."}
	}

	var generic map[string]interface{}
	if err := yaml.Unmarshal(data, &generic); err != nil {
		return nil, &ConfigError{Path: path, Message: "Error parsing file."}
	}
	if generic == nil {
		return nil, &ConfigError{Path: path, Message: "Error parsing file."}
	}

	var r raw
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, &ConfigError{Path: path, Message: "Error parsing file."}
	}

	cfg := &Config{path: path, raw: generic, Profiles: map[string]Profile{}}

	legacy := len(r.Profiles) > 0
	sawLegacyName := false
	for name, p := range r.Profiles {
		include, includeHadName := convertNamesToIDs(p.Include)
		exclude, excludeHadName := convertNamesToIDs(p.Exclude)
		sawLegacyName = sawLegacyName || includeHadName || excludeHadName
		cfg.Profiles[name] = Profile{Include: include, Exclude: exclude}
	}
	if legacy {
		plog.Warnf("config file %q contains deprecated legacy profile data; "+
			"support for legacy configs will be removed in a future version", path)
	}
	if sawLegacyName {
		plog.Warnf("config file %q references tests by their deprecated name instead of id; "+
			"support for legacy test names will be removed in a future version", path)
	}

	for name, p := range cfg.Profiles {
		for _, id := range append(append([]string{}, p.Include...), p.Exclude...) {
			if !testset.CheckID(id) {
				return nil, &ConfigError{
					Path: path,
					Message: fmt.Sprintf("profile %q references unknown test %q", name, id),
				}
			}
		}
	}

	return cfg, nil
}

// convertNamesToIDs resolves each entry of ids through testset.ResolveID,
// replacing a legacy registered *name* (e.g. "eval_used") with its test
// id ("P601"). An entry ResolveID doesn't recognize at all (neither as an
// id nor a name) is left untouched, so Load's CheckID pass still rejects
// genuinely bad entries with a ConfigError. hadName reports whether
// any entry needed name-to-id conversion, so the caller logs the
// deprecation warning only once per config file.
func convertNamesToIDs(ids []string) (resolved []string, hadName bool) {
	resolved = make([]string, len(ids))
	for i, id := range ids {
		resolvedID, ok := testset.ResolveID(id)
		if !ok {
			resolved[i] = id
			continue
		}
		if resolvedID != id {
			hadName = true
		}
		resolved[i] = resolvedID
	}
	return resolved, hadName
}

// GetOption resolves a dotted option path ("profiles.default") against the
// raw config tree, returning (nil, false) if any level is missing.
func (c *Config) GetOption(optionString string) (interface{}, bool) {
	return getOption(c.raw, optionString)
}

func getOption(tree map[string]interface{}, optionString string) (interface{}, bool) {
	levels := splitDotted(optionString)
	var cur interface{} = tree
	for _, level := range levels {
		m, ok := cur.(map[string]interface{})
		if !ok {
			return nil, false
		}
		v, ok := m[level]
		if !ok {
			return nil, false
		}
		cur = v
	}
	return cur, true
}

func splitDotted(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	out = append(out, s[start:])
	return out
}

// ExcludeDirs returns the configured exclude_dirs plus node_modules, which
// is always excluded regardless of configuration.
func (c *Config) ExcludeDirs() []string {
	dirs := stringSlice(c.raw["exclude_dirs"])
	return append(dirs, NodeModules)
}

// IncludeGlobs returns the configured include globs, defaulting to *.js.
func (c *Config) IncludeGlobs() []string {
	globs := stringSlice(c.raw["include"])
	if len(globs) == 0 {
		return append([]string{}, DefaultInclude...)
	}
	return globs
}

func stringSlice(v interface{}) []string {
	items, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
