package report

import (
	"fmt"
	"io"
	"strings"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorGreen  = "\033[32m"
	colorBold   = "\033[1m"
	colorCyan   = "\033[36m"
)

func riskColor(level string) string {
	switch level {
	case "HIGH":
		return colorRed
	case "MEDIUM":
		return colorYellow
	default:
		return colorGreen
	}
}

// WriteScan renders r as a human-readable report: one line per issue,
// a metrics summary, the skipped-files list, and a pass/fail footer.
func WriteScan(w io.Writer, r ScanReport) {
	fmt.Fprintf(w, "%s%s=== Panther Scan Report ===%s\n\n", colorBold, colorCyan, colorReset)

	if len(r.Results) == 0 {
		fmt.Fprintln(w, "no issues found.")
	} else {
		const maxFile = 40
		fileW := len("FILE")
		for _, iss := range r.Results {
			if l := len(iss.Filename); l > fileW {
				fileW = l
			}
		}
		if fileW > maxFile {
			fileW = maxFile
		}

		sep := strings.Repeat("─", fileW+48)
		fmt.Fprintf(w, "%s%-8s  %-10s  %-*s  %-6s  %s%s\n",
			colorBold, "SEVERITY", "CONFIDENCE", fileW, "FILE", "LINE", "ISSUE", colorReset)
		fmt.Fprintln(w, sep)

		for _, iss := range r.Results {
			file := iss.Filename
			if len(file) > fileW {
				file = file[:fileW-3] + "..."
			}
			color := riskColor(iss.Severity.String())
			fmt.Fprintf(w, "%s%-8s%s  %-10s  %-*s  %-6d  [%s] %s\n",
				color, iss.Severity.String(), colorReset,
				iss.Confidence.String(),
				fileW, file,
				iss.Lineno,
				iss.TestID, iss.Text)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "%sTotal lines of code:%s %d\n", colorBold, colorReset, r.Totals.LinesOfCode)
	fmt.Fprintf(w, "%sTotal nosec lines:%s   %d\n", colorBold, colorReset, r.Totals.NosecLines)

	if len(r.Skipped) > 0 {
		fmt.Fprintf(w, "\n%s%s=== Skipped Files ===%s\n", colorBold, colorYellow, colorReset)
		for _, s := range r.Skipped {
			fmt.Fprintf(w, "  %s%s%s: %s\n", colorYellow, s.Filename, colorReset, s.Reason)
		}
	}

	fmt.Fprintln(w)
	if r.ResultsCount == 0 {
		fmt.Fprintf(w, "%s%s✓ PASSED%s\n", colorBold, colorGreen, colorReset)
	} else {
		fmt.Fprintf(w, "%s%s✗ FAILED%s: %d issue(s) found\n", colorBold, colorRed, colorReset, r.ResultsCount)
	}
}
