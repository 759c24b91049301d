// Package report formats a scan's results as plain text or JSON. It is a
// manager-level collaborator sitting outside the core; HTML/YAML
// formatters are named collaborators too, but only text and JSON are
// implemented here.
package report

import "github.com/Yhnlvy/panther/internal/issue"

// SkippedFile records a file the manager could not scan.
type SkippedFile struct {
	Filename string `json:"filename"`
	Reason   string `json:"reason"`
}

// Totals is the subset of a run's aggregated metrics worth reporting.
type Totals struct {
	LinesOfCode int `json:"loc"`
	NosecLines  int `json:"nosec"`
}

// ScanReport is the top-level result of a scan run: `scan` builds one of
// these and hands it to WriteScan/WriteScanJSON.
type ScanReport struct {
	Results      []issue.Issue     `json:"results"`
	Candidates   []issue.Candidate `json:"candidates,omitempty"`
	Totals       Totals            `json:"totals"`
	Skipped      []SkippedFile     `json:"skipped,omitempty"`
	ResultsCount int               `json:"results_count"`
}
