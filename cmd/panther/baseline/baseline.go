// Package baseline implements the `panther baseline` subcommand: run a
// full, unfiltered scan and write its issues as a JSON baseline file
// later consumed by `panther scan -b`.
package baseline

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
	"github.com/Yhnlvy/panther/internal/testset"
)

func Run(args []string) int {
	fs := flag.NewFlagSet("baseline", flag.ExitOnError)
	recursive := fs.Bool("r", false, "scan directories recursively")
	configPath := fs.String("c", "", "YAML config file")
	parserCmd := fs.String("parser-cmd", "", "external ESTree-JSON-emitting parser command")
	output := fs.String("o", "", "baseline JSON file to write (required)")
	fs.Parse(args)

	targets := fs.Args()
	if len(targets) == 0 {
		fmt.Fprintln(os.Stderr, "baseline: no targets given")
		return 2
	}
	if *output == "" {
		fmt.Fprintln(os.Stderr, "baseline: -o is required")
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "baseline:", err)
		return 2
	}

	profile := plugins.DefaultProfile
	if p, ok := cfg.Profiles["default"]; ok {
		profile = testset.Profile{Include: p.Include, Exclude: p.Exclude}
	}
	ts, err := testset.Build(profile, cfg, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "baseline:", err)
		return 2
	}

	p := external.New(*parserCmd)
	mgr := manager.New(p, ts, false)
	mgr.DiscoverFiles(cfg, targets, *recursive, nil)
	mgr.RunTests()

	filtered, _ := mgr.FilterResults(issue.Undefined, issue.Undefined)

	f, err := os.Create(*output)
	if err != nil {
		fmt.Fprintln(os.Stderr, "baseline:", err)
		return 2
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(filtered); err != nil {
		fmt.Fprintln(os.Stderr, "baseline:", err)
		return 2
	}

	fmt.Fprintf(os.Stdout, "baseline: wrote %d issue(s) to %s\n", len(filtered), *output)
	return 0
}
