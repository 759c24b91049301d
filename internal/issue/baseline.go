package issue

// Candidate pairs an unmatched baseline-diff issue with every issue in the
// current result set that is Equal to it (§4.5, §8 P7). Order mirrors the
// original's OrderedDict: the order unmatched issues first appear in
// results, each with its own candidate list in results order.
type Candidate struct {
	Unmatched  Issue
	Candidates []Issue
}

// CompareBaseline returns the subset of results not present (by Equal) in
// baseline — the issues the baseline run did not report.
func CompareBaseline(baseline, results []Issue) []Issue {
	unmatched := make([]Issue, 0, len(results))
	for _, r := range results {
		if !containsEqual(baseline, r) {
			unmatched = append(unmatched, r)
		}
	}
	return unmatched
}

func containsEqual(list []Issue, target Issue) bool {
	for _, i := range list {
		if i.Equal(target) {
			return true
		}
	}
	return false
}

// FindCandidateMatches builds, for each unmatched issue, the list of
// issues in results equal to it — the set a user must pick the genuinely
// new finding out of when a file's issue count shifted (§4.5).
func FindCandidateMatches(unmatched, results []Issue) []Candidate {
	out := make([]Candidate, 0, len(unmatched))
	for _, u := range unmatched {
		var candidates []Issue
		for _, r := range results {
			if u.Equal(r) {
				candidates = append(candidates, r)
			}
		}
		out = append(out, Candidate{Unmatched: u, Candidates: candidates})
	}
	return out
}

// DiffBaseline runs the full baseline-diff pipeline: filter results by the
// floors, then (if baseline is non-empty) reduce to unmatched issues with
// their candidates. P7: diffing a report against itself yields no
// unmatched issues, since every result is present in its own baseline.
func DiffBaseline(results, baseline []Issue, sevFloor, confFloor Rank) (filtered []Issue, candidates []Candidate) {
	filtered = Filter(results, sevFloor, confFloor)
	if len(baseline) == 0 {
		return filtered, nil
	}
	unmatched := CompareBaseline(baseline, filtered)
	return filtered, FindCandidateMatches(unmatched, filtered)
}
