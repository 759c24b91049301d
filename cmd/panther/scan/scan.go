// Package scan implements the `panther scan` subcommand: discover files,
// run the registered tests over them, filter by severity/confidence, and
// report the result as text or JSON (§6).
package scan

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/Yhnlvy/panther/internal/config"
	"github.com/Yhnlvy/panther/internal/issue"
	"github.com/Yhnlvy/panther/internal/manager"
	"github.com/Yhnlvy/panther/internal/parser/external"
	"github.com/Yhnlvy/panther/internal/plugins"
	"github.com/Yhnlvy/panther/internal/report"
	"github.com/Yhnlvy/panther/internal/testset"
)

func Run(args []string) int {
	fs := flag.NewFlagSet("scan", flag.ExitOnError)
	recursive := fs.Bool("r", false, "scan directories recursively")
	l1 := fs.Bool("l", false, "report severity LOW and above")
	l2 := fs.Bool("ll", false, "report severity MEDIUM and above")
	l3 := fs.Bool("lll", false, "report severity HIGH and above")
	i1 := fs.Bool("i", false, "report confidence LOW and above")
	i2 := fs.Bool("ii", false, "report confidence MEDIUM and above")
	i3 := fs.Bool("iii", false, "report confidence HIGH and above")
	format := fs.String("f", "txt", "output format: txt|json")
	output := fs.String("o", "", "write report to file instead of stdout")
	baselinePath := fs.String("b", "", "baseline JSON file to diff against")
	ignoreNosec := fs.Bool("ignore-nosec", false, "do not honor // nosec suppression comments")
	configPath := fs.String("c", "", "YAML config file")
	parserCmd := fs.String("parser-cmd", "", "external ESTree-JSON-emitting parser command")
	fs.Parse(args)

	targets := fs.Args()
	if len(targets) == 0 {
		fmt.Fprintln(os.Stderr, "scan: no targets given")
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "scan:", err)
		return 2
	}

	profile := plugins.DefaultProfile
	if p, ok := cfg.Profiles["default"]; ok {
		profile = testset.Profile{Include: p.Include, Exclude: p.Exclude}
	}
	ts, err := testset.Build(profile, cfg, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "scan:", err)
		return 2
	}

	p := external.New(*parserCmd)
	mgr := manager.New(p, ts, *ignoreNosec)
	mgr.DiscoverFiles(cfg, targets, *recursive, nil)
	mgr.RunTests()

	if *baselinePath != "" {
		baselineIssues, err := loadBaseline(*baselinePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "scan: [WARN] %v; treating baseline as empty\n", err)
		} else {
			mgr.PopulateBaseline(baselineIssues)
		}
	}

	sevFilter := severityFilter(*l1, *l2, *l3)
	confFilter := severityFilter(*i1, *i2, *i3)

	filtered, candidates := mgr.FilterResults(sevFilter, confFilter)
	resultsCount := mgr.ResultsCount(sevFilter, confFilter)

	totals := mgr.Metrics.Totals()
	sr := report.ScanReport{
		Results:      filtered,
		Candidates:   candidates,
		Totals:       report.Totals{LinesOfCode: totals.Loc, NosecLines: totals.Nosec},
		ResultsCount: resultsCount,
	}
	for _, s := range mgr.Skipped {
		sr.Skipped = append(sr.Skipped, report.SkippedFile{Filename: s.Filename, Reason: s.Reason})
	}

	w := os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			fmt.Fprintln(os.Stderr, "scan:", err)
			return 2
		}
		defer f.Close()
		w = f
	}

	switch *format {
	case "json":
		if err := report.WriteScanJSON(w, sr); err != nil {
			fmt.Fprintln(os.Stderr, "scan:", err)
			return 2
		}
	case "txt":
		report.WriteScan(w, sr)
	default:
		fmt.Fprintf(os.Stderr, "scan: unsupported format %q\n", *format)
		return 2
	}

	if resultsCount > 0 {
		return 1
	}
	return 0
}

// severityFilter returns the highest rank among the three increasing
// flags, mirroring -l/-ll/-lll (and -i/-ii/-iii) as a single floor raised
// by repeating the flag.
func severityFilter(one, two, three bool) issue.Rank {
	switch {
	case three:
		return issue.High
	case two:
		return issue.Medium
	case one:
		return issue.Low
	default:
		return issue.Undefined
	}
}

func loadBaseline(path string) ([]issue.Issue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading baseline %s: %w", path, err)
	}
	var issues []issue.Issue
	if err := json.Unmarshal(data, &issues); err != nil {
		return nil, fmt.Errorf("decoding baseline %s: %w", path, err)
	}
	return issues, nil
}
