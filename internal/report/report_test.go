package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/Yhnlvy/panther/internal/issue"
)

func sampleReport() ScanReport {
	return ScanReport{
		Results: []issue.Issue{
			{Severity: issue.High, Confidence: issue.Medium, Text: "Use of eval(...)",
				TestID: "P601", Filename: "app.js", Lineno: 3},
		},
		Totals:       Totals{LinesOfCode: 42, NosecLines: 1},
		ResultsCount: 1,
	}
}

func TestWriteScanJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteScanJSON(&buf, sampleReport()); err != nil {
		t.Fatalf("WriteScanJSON: %v", err)
	}
	var decoded ScanReport
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded.Results) != 1 || decoded.Results[0].TestID != "P601" {
		t.Errorf("Results = %+v", decoded.Results)
	}
	if decoded.Totals.LinesOfCode != 42 {
		t.Errorf("LinesOfCode = %d, want 42", decoded.Totals.LinesOfCode)
	}
}

func TestWriteScanTextReportsFailure(t *testing.T) {
	var buf bytes.Buffer
	WriteScan(&buf, sampleReport())
	out := buf.String()
	for _, want := range []string{"HIGH", "app.js", "P601", "Use of eval", "FAILED"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteScanTextReportsPass(t *testing.T) {
	var buf bytes.Buffer
	WriteScan(&buf, ScanReport{})
	out := buf.String()
	if !strings.Contains(out, "no issues found") || !strings.Contains(out, "PASSED") {
		t.Errorf("expected pass report, got:\n%s", out)
	}
}

func TestWriteScanTextListsSkipped(t *testing.T) {
	var buf bytes.Buffer
	r := sampleReport()
	r.Skipped = []SkippedFile{{Filename: "broken.js", Reason: "syntax error"}}
	WriteScan(&buf, r)
	out := buf.String()
	if !strings.Contains(out, "Skipped Files") || !strings.Contains(out, "broken.js") {
		t.Errorf("expected skipped section, got:\n%s", out)
	}
}
