// Package trace implements the `panther trace` subcommand: discover
// HTTP route entry points and perform the bounded reachability dive from
// each one, reporting only the vulnerabilities actually reachable from a
// route (C8).
package trace

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Yhnlvy/panther/internal/config"
	"github.com/Yhnlvy/panther/internal/manager"
	"github.com/Yhnlvy/panther/internal/parser/external"
	"github.com/Yhnlvy/panther/internal/plugins"
	"github.com/Yhnlvy/panther/internal/testset"
	"github.com/Yhnlvy/panther/internal/tracer"
	"github.com/Yhnlvy/panther/internal/tracer/dive"
	"github.com/Yhnlvy/panther/internal/tracer/route"
)

func Run(args []string) int {
	fs := flag.NewFlagSet("trace", flag.ExitOnError)
	recursive := fs.Bool("r", true, "scan directories recursively")
	depth := fs.Int("depth", 10, "maximum call-stack depth to dive")
	configPath := fs.String("c", "", "YAML config file")
	parserCmd := fs.String("parser-cmd", "", "external ESTree-JSON-emitting parser command")
	fs.Parse(args)

	targets := fs.Args()
	if len(targets) == 0 {
		fmt.Fprintln(os.Stderr, "trace: no targets given")
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "trace:", err)
		return 2
	}

	profile := plugins.DefaultProfile
	if p, ok := cfg.Profiles["default"]; ok {
		profile = testset.Profile{Include: p.Include, Exclude: p.Exclude}
	}
	ts, err := testset.Build(profile, cfg, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "trace:", err)
		return 2
	}

	p := external.New(*parserCmd)

	discovery := manager.New(p, ts, false)
	discovery.DiscoverFiles(cfg, targets, *recursive, nil)

	extractor := tracer.NewExtractor(p)

	var routes []route.Route
	for _, fname := range discovery.FilesList {
		program, err := extractor.GetProgram(fname)
		if err != nil {
			fmt.Fprintf(os.Stderr, "trace: [WARN] skipping %s: %v\n", fname, err)
			continue
		}
		found, err := route.Find(extractor, fname, program)
		if err != nil {
			fmt.Fprintf(os.Stderr, "trace: [WARN] %s: %v\n", fname, err)
			continue
		}
		routes = append(routes, found...)
	}

	d := dive.New(extractor, func() *testset.TestSet { return ts })
	if _, err := d.DiveAll(routes, *depth); err != nil {
		fmt.Fprintln(os.Stderr, "trace:", err)
		return 2
	}

	if len(d.Findings) == 0 {
		fmt.Fprintln(os.Stdout, "trace: no reachable vulnerabilities found")
		return 0
	}

	for _, f := range d.Findings {
		var stack []string
		for _, fn := range f.Stack {
			label := fn.FilePath
			if fn.Identifier != "" {
				label += ":" + fn.Identifier
			}
			stack = append(stack, label)
		}
		fmt.Fprintf(os.Stdout, "reachable via %s\n", strings.Join(stack, " -> "))
		for _, iss := range f.Issues {
			fmt.Fprintf(os.Stdout, "  [%s/%s] %s:%d %s (%s)\n",
				iss.Severity.String(), iss.Confidence.String(), iss.Filename, iss.Lineno, iss.Text, iss.TestID)
		}
	}

	return 1
}
