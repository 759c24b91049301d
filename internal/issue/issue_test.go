package issue

import (
	"encoding/json"
	"testing"
)

func TestScoreVectorRecoversCounts(t *testing.T) {
	var sv ScoreVector
	sv = sv.Add(High)
	sv = sv.Add(High)
	sv = sv.Add(Low)
	sv = sv.Add(Undefined)

	if got := sv.Count(High); got != 2 {
		t.Errorf("Count(High) = %d, want 2", got)
	}
	if got := sv.Count(Low); got != 1 {
		t.Errorf("Count(Low) = %d, want 1", got)
	}
	if got := sv.Count(Medium); got != 0 {
		t.Errorf("Count(Medium) = %d, want 0", got)
	}
}

func TestIssueFilter(t *testing.T) {
	issues := []Issue{
		{Severity: High, Confidence: Medium, TestID: "P601"},
		{Severity: Low, Confidence: Low, TestID: "P602"},
		{Severity: Medium, Confidence: High, TestID: "P603"},
	}
	got := Filter(issues, Medium, Low)
	if len(got) != 2 {
		t.Fatalf("Filter: got %d issues, want 2", len(got))
	}
	for _, i := range got {
		if i.TestID == "P602" {
			t.Errorf("low-severity issue %v should have been filtered out", i)
		}
	}
}

func TestIssueEqual(t *testing.T) {
	a := Issue{Filename: "a.js", TestID: "P601", Lineno: 3, Text: "Use of eval"}
	b := Issue{Filename: "a.js", TestID: "P601", Lineno: 3, Text: "Use of eval", Code: "different excerpt"}
	c := Issue{Filename: "a.js", TestID: "P601", Lineno: 4, Text: "Use of eval"}

	if !a.Equal(b) {
		t.Error("issues differing only in code excerpt should be equal")
	}
	if a.Equal(c) {
		t.Error("issues with different line numbers should not be equal")
	}
}

// P7: diffing a report against itself yields no new (unmatched) issues.
func TestDiffBaselineIdempotent(t *testing.T) {
	results := []Issue{
		{Filename: "a.js", TestID: "P601", Lineno: 1, Text: "Use of eval", Severity: High, Confidence: Medium},
		{Filename: "a.js", TestID: "P602", Lineno: 5, Text: "SQL concat", Severity: High, Confidence: Medium},
	}
	filtered, candidates := DiffBaseline(results, results, Undefined, Undefined)
	if len(filtered) != 2 {
		t.Fatalf("filtered = %d, want 2", len(filtered))
	}
	if len(candidates) != 0 {
		t.Errorf("self-diff produced %d unmatched candidates, want 0", len(candidates))
	}
}

func TestIssueJSONRoundTrip(t *testing.T) {
	orig := Issue{
		Severity: High, Confidence: Medium, Text: "Use of eval",
		TestID: "P601", TestName: "server_side_injection",
		Filename: "a.js", Lineno: 3, LineRange: []int{3, 3}, Code: "eval('x')",
	}
	data, err := json.Marshal(orig)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if s := string(data); !contains(s, `"severity":"HIGH"`) || !contains(s, `"test_id":"P601"`) {
		t.Errorf("unexpected JSON shape: %s", s)
	}
	var got Issue
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !got.Equal(orig) || got.Severity != High || got.Confidence != Medium {
		t.Errorf("round-tripped issue = %+v, want %+v", got, orig)
	}
}

func contains(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}

func TestCompareBaselineReturnsUnmatched(t *testing.T) {
	results := []Issue{
		{Filename: "a.js", TestID: "P601", Lineno: 1, Text: "dup"},
		{Filename: "a.js", TestID: "P601", Lineno: 2, Text: "dup"},
	}
	baseline := []Issue{
		{Filename: "a.js", TestID: "P601", Lineno: 1, Text: "dup"},
	}
	unmatched := CompareBaseline(baseline, results)
	if len(unmatched) != 1 || unmatched[0].Lineno != 2 {
		t.Fatalf("unmatched = %+v, want single issue at line 2", unmatched)
	}
}
