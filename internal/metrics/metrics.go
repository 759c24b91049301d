// Package metrics tracks per-file line/nosec/issue counts and aggregates
// totals across a run, mirroring panther.core.metrics.Metrics.
package metrics

import (
	"strings"

	"github.com/Yhnlvy/panther/internal/issue"
)

// FileMetrics holds one file's counted lines, nosec markers and
// per-(criterion,rank) issue counts.
type FileMetrics struct {
	Loc    int
	Nosec  int
	Issues map[string]int // e.g. "SEVERITY.HIGH" -> count
}

func newFileMetrics() *FileMetrics {
	return &FileMetrics{Issues: make(map[string]int)}
}

// Metrics accumulates FileMetrics per filename plus a running "_totals"
// entry summed across every file `Begin` has been called for.
type Metrics struct {
	files   map[string]*FileMetrics
	order   []string
	current *FileMetrics
	curName string
	totals  *FileMetrics
}

// New returns an empty Metrics collector.
func New() *Metrics {
	return &Metrics{
		files:  make(map[string]*FileMetrics),
		totals: newFileMetrics(),
	}
}

// Begin starts metrics collection for fname, resetting the "current" file
// context used by CountLOC/CountNosec/CountIssues.
func (m *Metrics) Begin(fname string) {
	fm := newFileMetrics()
	m.files[fname] = fm
	m.order = append(m.order, fname)
	m.current = fm
	m.curName = fname
}

// CountLOC counts lines of the current file that are non-empty, not a
// single-line `//` comment, and not inside a `/* ... */` block comment.
// Block-comment state is carried line-to-line the way the original does
// it: a line containing "/*" anywhere is never itself counted, and the
// block only closes starting the line *after* one containing "*/".
func (m *Metrics) CountLOC(lines []string) {
	if m.current == nil {
		return
	}
	multiComment := false
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if strings.Contains(line, "/*") {
			multiComment = true
		}
		if line != "" && !strings.HasPrefix(line, "//") && !multiComment {
			m.current.Loc++
		}
		multiComment = multiComment && !strings.Contains(line, "*/")
	}
}

// CountNosec records the number of nosec-marked lines found while
// scanning the current file.
func (m *Metrics) CountNosec(n int) {
	if m.current == nil {
		return
	}
	m.current.Nosec = n
}

// CountIssues records the per-(criterion,rank) counts recoverable from a
// score vector for the current file.
func (m *Metrics) CountIssues(scores issue.Scores) {
	if m.current == nil {
		return
	}
	for _, r := range []issue.Rank{issue.Undefined, issue.Low, issue.Medium, issue.High} {
		m.current.Issues["SEVERITY."+r.String()] = scores.Severity.Count(r)
		m.current.Issues["CONFIDENCE."+r.String()] = scores.Confidence.Count(r)
	}
}

// Aggregate sums every file's metrics into the "_totals" entry. Call once
// at the end of a run.
func (m *Metrics) Aggregate() {
	m.totals = newFileMetrics()
	for _, fname := range m.order {
		fm := m.files[fname]
		m.totals.Loc += fm.Loc
		m.totals.Nosec += fm.Nosec
		for k, v := range fm.Issues {
			m.totals.Issues[k] += v
		}
	}
}

// Totals returns the aggregated "_totals" metrics (valid after Aggregate).
func (m *Metrics) Totals() *FileMetrics {
	return m.totals
}

// File returns the metrics recorded for fname, or nil if none.
func (m *Metrics) File(fname string) *FileMetrics {
	return m.files[fname]
}

// Files returns filenames in the order Begin was called for them.
func (m *Metrics) Files() []string {
	return m.order
}
