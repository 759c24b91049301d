package main

import (
	"fmt"
	"os"

	"github.com/Yhnlvy/panther/cmd/panther/baseline"
	"github.com/Yhnlvy/panther/cmd/panther/scan"
	"github.com/Yhnlvy/panther/cmd/panther/trace"
)

var version = "dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "scan":
		os.Exit(scan.Run(os.Args[2:]))
	case "trace":
		os.Exit(trace.Run(os.Args[2:]))
	case "baseline":
		os.Exit(baseline.Run(os.Args[2:]))
	case "version":
		fmt.Println(version)
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand: %s\n", os.Args[1])
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `panther — static security scanner for JavaScript source

Usage:
  panther scan     [-r] [-l|-ll|-lll] [-i|-ii|-iii] [-f txt|json] [-o file]
                    [-b baseline.json] [--ignore-nosec] [-c config.yaml]
                    [-parser-cmd path] target [target...]
  panther trace    [-depth N] [-parser-cmd path] target [target...]
  panther baseline [-r] [-c config.yaml] [-parser-cmd path] -o file target [target...]
  panther version`)
}
