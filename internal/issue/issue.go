// Package issue defines the finding type, the severity/confidence rank
// tables and score vector, and issue filtering/baseline-diff semantics.
package issue

import "encoding/json"

// Rank is a severity or confidence level. Order matters: UNDEFINED is the
// lowest rank and HIGH the highest, used both for filtering and for the
// score vector's rank weights.
type Rank int

const (
	Undefined Rank = iota
	Low
	Medium
	High
)

// rankNames mirrors the order of Rank's iota values.
var rankNames = [...]string{"UNDEFINED", "LOW", "MEDIUM", "HIGH"}

func (r Rank) String() string {
	if int(r) < 0 || int(r) >= len(rankNames) {
		return "UNDEFINED"
	}
	return rankNames[r]
}

// ParseRank resolves a rank name back to its Rank value. Unknown names
// resolve to Undefined.
func ParseRank(s string) Rank {
	for i, n := range rankNames {
		if n == s {
			return Rank(i)
		}
	}
	return Undefined
}

// Weight is the rank-weight table from which a score vector encodes
// exact issue counts: weight(rank) is unique across ranks so that
// accumulated_score / weight recovers the count for that rank (P6).
var weight = [...]int{1, 3, 5, 10}

func (r Rank) Weight() int {
	if int(r) < 0 || int(r) >= len(weight) {
		return weight[Undefined]
	}
	return weight[r]
}

// Issue is a single finding.
type Issue struct {
	Severity   Rank
	Confidence Rank
	Text       string
	TestID     string
	TestName   string
	Filename   string
	Lineno     int
	LineRange  []int
	Code       string
}

// jsonIssue is Issue's wire shape: rank fields serialize to their name
// ("HIGH", not 3), and the field names match the issue dict spelled out
// alongside the rest of the core's data model.
type jsonIssue struct {
	Severity   string `json:"severity"`
	Confidence string `json:"confidence"`
	Text       string `json:"text"`
	TestID     string `json:"test_id"`
	TestName   string `json:"test_name"`
	Filename   string `json:"filename"`
	Lineno     int    `json:"lineno"`
	LineRange  []int  `json:"linerange,omitempty"`
	Code       string `json:"code,omitempty"`
}

// MarshalJSON encodes i using the issue dict's field names and
// string-form ranks.
func (i Issue) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonIssue{
		Severity:   i.Severity.String(),
		Confidence: i.Confidence.String(),
		Text:       i.Text,
		TestID:     i.TestID,
		TestName:   i.TestName,
		Filename:   i.Filename,
		Lineno:     i.Lineno,
		LineRange:  i.LineRange,
		Code:       i.Code,
	})
}

// UnmarshalJSON decodes an issue dict produced by MarshalJSON (or by a
// baseline file written in the same shape, §6).
func (i *Issue) UnmarshalJSON(data []byte) error {
	var j jsonIssue
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	i.Severity = ParseRank(j.Severity)
	i.Confidence = ParseRank(j.Confidence)
	i.Text = j.Text
	i.TestID = j.TestID
	i.TestName = j.TestName
	i.Filename = j.Filename
	i.Lineno = j.Lineno
	i.LineRange = j.LineRange
	i.Code = j.Code
	return nil
}

// Equal implements the equality relation used for baseline diffing:
// filename, test id, line number and text must coincide (§4.5).
func (i Issue) Equal(o Issue) bool {
	return i.Filename == o.Filename &&
		i.TestID == o.TestID &&
		i.Lineno == o.Lineno &&
		i.Text == o.Text
}

// Passes reports whether the issue clears the given severity/confidence
// floors (rank(severity) >= rank(sevFloor) and likewise confidence).
func (i Issue) Passes(sevFloor, confFloor Rank) bool {
	return i.Severity >= sevFloor && i.Confidence >= confFloor
}

// Filter returns the subset of issues passing (sevFloor, confFloor), in
// original order.
func Filter(issues []Issue, sevFloor, confFloor Rank) []Issue {
	out := make([]Issue, 0, len(issues))
	for _, iss := range issues {
		if iss.Passes(sevFloor, confFloor) {
			out = append(out, iss)
		}
	}
	return out
}

// ScoreVector accumulates weighted severity/confidence counts. Indexed by
// Rank, so Rank indexes it directly without an offset; an issue of rank
// Undefined adds its weight at ScoreVector[Undefined] like any other rank.
type ScoreVector [len(weight)]int

// Add records one issue of the given rank, returning the updated vector.
func (sv ScoreVector) Add(r Rank) ScoreVector {
	sv[r] += r.Weight()
	return sv
}

// Count recovers the number of issues recorded at rank r (P6).
func (sv ScoreVector) Count(r Rank) int {
	w := r.Weight()
	if w == 0 {
		return 0
	}
	return sv[r] / w
}

// Total sums the raw weighted score across all ranks.
func (sv ScoreVector) Total() int {
	total := 0
	for _, v := range sv {
		total += v
	}
	return total
}

// Scores pairs a severity vector with a confidence vector, as accumulated
// by the visitor for a single file or run.
type Scores struct {
	Severity   ScoreVector
	Confidence ScoreVector
}

// Add records iss's severity and confidence contributions.
func (s *Scores) Add(iss Issue) {
	s.Severity = s.Severity.Add(iss.Severity)
	s.Confidence = s.Confidence.Add(iss.Confidence)
}
