// Package visitor walks a parsed program in pre-order, filters out
// //nosec-marked subtrees, dispatches each node to its registered tests,
// and accumulates the resulting issues and score vector (C4).
package visitor

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Yhnlvy/panther/internal/ast"
	"github.com/Yhnlvy/panther/internal/issue"
	"github.com/Yhnlvy/panther/internal/plog"
	"github.com/Yhnlvy/panther/internal/testset"
)

// shebangRE matches a shebang line at the start of a file.
var shebangRE = regexp.MustCompile(`^#!([^\r\n]*)`)

// CleanCode strips a leading shebang (e.g. "#!/usr/bin/env node") so the
// parser accepts it (§4.4).
func CleanCode(src string) string {
	return shebangRE.ReplaceAllString(src, "")
}

// NosecLines scans source lines for the literal marker "//nosec" or
// "// nosec" and returns the set of 1-indexed line numbers carrying it.
// ignoreNosec empties the result regardless of markers present.
func NosecLines(lines []string, ignoreNosec bool) map[int]bool {
	out := make(map[int]bool)
	if ignoreNosec {
		return out
	}
	for i, line := range lines {
		if strings.Contains(line, "//nosec") || strings.Contains(line, "// nosec") {
			out[i+1] = true
		}
	}
	return out
}

// Result is the outcome of visiting one program: its issues in
// discovery (pre-order) order, the accumulated score vector, and the
// number of distinct nosec lines that pruned a subtree.
type Result struct {
	Issues     []issue.Issue
	Scores     issue.Scores
	NosecCount int
}

// Visitor drives C4 over a single file's program root.
type Visitor struct {
	Filename string
	Tests    *testset.TestSet
	Nosec    map[int]bool
	Lines    []string
	// ContextLines is how many source lines of surrounding excerpt to
	// stamp onto each issue (default 3 if zero).
	ContextLines int
}

// Run walks root in pre-order, applying tests and pruning //nosec
// subtrees, and returns the accumulated result.
func (v *Visitor) Run(root ast.Node) Result {
	var res Result
	seenNosec := make(map[int]bool)

	ast.WalkPruning(root, func(n ast.Node) bool {
		loc := locLine(n)
		if loc > 0 && v.Nosec[loc] {
			if !seenNosec[loc] {
				seenNosec[loc] = true
				res.NosecCount++
			}
			plog.Debugf("skipped node at line %d: nosec", loc)
			return false
		}

		lineno := loc
		lineRange := v.lineRange(n)
		ctx := &testset.Context{
			Node:      n,
			Filename:  v.Filename,
			Lineno:    lineno,
			LineRange: lineRange,
		}

		for _, t := range v.Tests.GetTests(n.Kind()) {
			res.Issues = append(res.Issues, v.runTest(t, ctx)...)
		}
		return true
	})

	for _, iss := range res.Issues {
		res.Scores.Add(iss)
	}
	return res
}

// runTest invokes a single test against ctx, recovering from any panic
// and logging it at debug rather than letting it abort the file (§4.4,
// §7 "Test exception").
func (v *Visitor) runTest(t *testset.Test, ctx *testset.Context) (out []issue.Issue) {
	defer func() {
		if r := recover(); r != nil {
			plog.Debugf("test %s panicked on %s:%d: %v", t.ID, v.Filename, ctx.Lineno, r)
		}
	}()

	result := t.Callable(ctx)
	if result == nil {
		return nil
	}
	iss := issue.Issue{
		Severity:   issue.ParseRank(result.Severity),
		Confidence: issue.ParseRank(result.Confidence),
		Text:       result.Text,
		TestID:     t.ID,
		TestName:   t.Name,
		Filename:   v.Filename,
		Lineno:     ctx.Lineno,
		LineRange:  ctx.LineRange,
		Code:       v.excerpt(ctx.Lineno),
	}
	return []issue.Issue{iss}
}

// excerpt returns a few source lines of context around lineno, joined
// the way a report formatter would render a code snippet.
func (v *Visitor) excerpt(lineno int) string {
	if lineno <= 0 || len(v.Lines) == 0 {
		return ""
	}
	ctx := v.ContextLines
	if ctx <= 0 {
		ctx = 3
	}
	start := lineno - ctx
	if start < 1 {
		start = 1
	}
	end := lineno + ctx
	if end > len(v.Lines) {
		end = len(v.Lines)
	}
	var b strings.Builder
	for i := start; i <= end; i++ {
		fmt.Fprintf(&b, "%d\t%s\n", i, v.Lines[i-1])
	}
	return b.String()
}

// lineRange spans from the smallest to the largest loc.start.line found
// in n's subtree, computed directly from loc rather than via a sibling
// link (per the spec's own design note preferring this over the
// original's sibling-based multiline-string workaround).
func (v *Visitor) lineRange(n ast.Node) []int {
	min, max := -1, -1
	for _, d := range ast.Traverse(n) {
		l := locLine(d)
		if l <= 0 {
			continue
		}
		if min == -1 || l < min {
			min = l
		}
		if l > max {
			max = l
		}
	}
	if max == -1 {
		return []int{0, 1}
	}
	out := make([]int, 0, max-min+1)
	for l := min; l <= max; l++ {
		out = append(out, l)
	}
	return out
}

// locLine extracts loc.start.line from a node's raw loc value, or -1 if
// absent/malformed.
func locLine(n ast.Node) int {
	loc, ok := n.RawLoc().(map[string]interface{})
	if !ok {
		return -1
	}
	start, ok := loc["start"].(map[string]interface{})
	if !ok {
		return -1
	}
	switch v := start["line"].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return -1
}
