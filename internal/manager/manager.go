// Package manager orchestrates a scan end to end: file discovery, per-file
// parsing/metrics/visiting, result aggregation, and baseline filtering (C9).
package manager

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/Yhnlvy/panther/internal/ast"
	"github.com/Yhnlvy/panther/internal/config"
	"github.com/Yhnlvy/panther/internal/issue"
	"github.com/Yhnlvy/panther/internal/metrics"
	"github.com/Yhnlvy/panther/internal/parser"
	"github.com/Yhnlvy/panther/internal/plog"
	"github.com/Yhnlvy/panther/internal/testset"
	"github.com/Yhnlvy/panther/internal/visitor"
)

// Skip records a file that could not be scanned, and why.
type Skip struct {
	Filename string
	Reason   string
}

// Manager drives a scan over a set of discovered files using a resolved
// TestSet, accumulating results, per-file metrics, and skipped files.
type Manager struct {
	Parser      parser.Parser
	Tests       *testset.TestSet
	IgnoreNosec bool

	FilesList     []string
	ExcludedFiles []string
	Skipped       []Skip

	Results  []issue.Issue
	Baseline []issue.Issue
	Metrics  *metrics.Metrics
}

// New returns a Manager ready to discover and scan files.
func New(p parser.Parser, ts *testset.TestSet, ignoreNosec bool) *Manager {
	return &Manager{
		Parser:      p,
		Tests:       ts,
		IgnoreNosec: ignoreNosec,
		Metrics:     metrics.New(),
	}
}

// DiscoverFiles resolves targets (files and, when recursive, directories)
// into FilesList/ExcludedFiles, applying cfg's exclude_dirs/include globs
// plus any caller-supplied excludedPaths, and always
// excluding node_modules regardless of configuration.
func (m *Manager) DiscoverFiles(cfg *config.Config, targets []string, recursive bool, excludedPaths []string) {
	excludeStrings := append([]string{}, cfg.ExcludeDirs()...)
	excludeStrings = append(excludeStrings, excludedPaths...)
	includedGlobs := cfg.IncludeGlobs()

	filesSet := map[string]bool{}
	excludedSet := map[string]bool{}

	for _, target := range targets {
		info, err := os.Stat(target)
		if err != nil {
			excludedSet[target] = true
			continue
		}
		if info.IsDir() {
			if recursive {
				newFiles, newlyExcluded := getFilesFromDir(target, includedGlobs, excludeStrings)
				for _, f := range newFiles {
					filesSet[f] = true
				}
				for _, f := range newlyExcluded {
					excludedSet[f] = true
				}
			} else {
				plog.Warnf("skipping directory (%s), use -r flag to scan contents", target)
			}
			continue
		}
		if isFileIncluded(target, includedGlobs, excludeStrings, false) {
			filesSet[target] = true
		} else {
			excludedSet[target] = true
		}
	}

	m.FilesList = sortedKeys(filesSet)
	m.ExcludedFiles = sortedKeys(excludedSet)
}

func getFilesFromDir(dir string, includedGlobs, excludeStrings []string) (files, excluded []string) {
	filesSet := map[string]bool{}
	excludedSet := map[string]bool{}
	_ = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}
		if isFileIncluded(path, includedGlobs, excludeStrings, true) {
			filesSet[path] = true
		} else {
			excludedSet[path] = true
		}
		return nil
	})
	return sortedKeys(filesSet), sortedKeys(excludedSet)
}

func isFileIncluded(path string, includedGlobs, excludeStrings []string, enforceGlob bool) bool {
	if !matchesGlobList(path, includedGlobs) && enforceGlob {
		return false
	}
	for _, excl := range excludeStrings {
		if containsSubstring(path, excl) {
			return false
		}
	}
	return true
}

func matchesGlobList(filename string, globs []string) bool {
	base := filepath.Base(filename)
	for _, g := range globs {
		if ok, err := filepath.Match(g, base); err == nil && ok {
			return true
		}
		if ok, err := filepath.Match(g, filename); err == nil && ok {
			return true
		}
	}
	return false
}

func containsSubstring(path, substr string) bool {
	if substr == "" {
		return false
	}
	for i := 0; i+len(substr) <= len(path); i++ {
		if path[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// RunTests scans every file in FilesList, moving any file it can't parse
// or process into Skipped and removing it from FilesList, then aggregates
// metrics across the run.
func (m *Manager) RunTests() {
	var remaining []string
	for _, fname := range m.FilesList {
		if err := m.parseFile(fname); err != nil {
			m.Skipped = append(m.Skipped, Skip{Filename: fname, Reason: err.Error()})
			continue
		}
		remaining = append(remaining, fname)
	}
	m.FilesList = remaining
	m.Metrics.Aggregate()
}

func (m *Manager) parseFile(fname string) error {
	src, err := os.ReadFile(fname)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}
	lines := splitLines(string(src))

	m.Metrics.Begin(fname)
	m.Metrics.CountLOC(lines)

	nosec := visitor.NosecLines(lines, m.IgnoreNosec)

	cleaned := visitor.CleanCode(string(src))
	decoded, err := m.Parser.Parse([]byte(cleaned))
	if err != nil {
		return fmt.Errorf("syntax error while parsing AST from file: %w", err)
	}
	root, err := ast.Parse(decoded)
	if err != nil {
		return fmt.Errorf("syntax error while parsing AST from file: %w", err)
	}

	v := &visitor.Visitor{
		Filename: fname,
		Tests:    m.Tests,
		Nosec:    nosec,
		Lines:    lines,
	}
	res := v.Run(root)

	m.Results = append(m.Results, res.Issues...)
	m.Metrics.CountNosec(res.NosecCount)
	m.Metrics.CountIssues(res.Scores)
	return nil
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			end := i
			if end > start && s[end-1] == '\r' {
				end--
			}
			lines = append(lines, s[start:end])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

// PopulateBaseline sets the baseline issue set used by FilterResults.
func (m *Manager) PopulateBaseline(baseline []issue.Issue) {
	m.Baseline = baseline
}

// FilterResults returns the severity/confidence-filtered results and, when
// Baseline is set, the unmatched-issue candidate groups a caller must pick
// the genuinely new finding out of (§4.5). candidates is nil when no
// baseline has been populated.
func (m *Manager) FilterResults(sevFilter, confFilter issue.Rank) (filtered []issue.Issue, candidates []issue.Candidate) {
	return issue.DiffBaseline(m.Results, m.Baseline, sevFilter, confFilter)
}

// ResultsCount returns the count of filtered results: the number of
// filtered issues with no baseline, or the number of unmatched-issue
// candidate groups when a baseline is set (mirroring manager.py's
// len(dict) count over filter_results' OrderedDict when diffing).
func (m *Manager) ResultsCount(sevFilter, confFilter issue.Rank) int {
	filtered, candidates := m.FilterResults(sevFilter, confFilter)
	if len(m.Baseline) > 0 {
		return len(candidates)
	}
	return len(filtered)
}
