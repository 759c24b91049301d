// Package plog provides the package-level logger shared by the Panther core.
package plog

import (
	"io"
	"log"
	"os"
)

var (
	// Logger is the global logger used by the core packages.
	Logger *log.Logger

	// Verbose controls whether debug messages are printed.
	Verbose bool
)

func init() {
	Logger = log.New(os.Stderr, "", log.Ltime)
	Verbose = os.Getenv("PANTHER_VERBOSE") == "1"
}

// SetVerbose enables or disables debug logging at runtime.
func SetVerbose(enabled bool) {
	Verbose = enabled
}

// SetOutput redirects the logger's output (used by tests).
func SetOutput(w io.Writer) {
	Logger.SetOutput(w)
}

// Debugf prints a debug message if verbose mode is enabled. Test exceptions
// (spec §4.4, §7) are logged here and never propagate.
func Debugf(format string, args ...interface{}) {
	if Verbose {
		Logger.Printf("[DEBUG] "+format, args...)
	}
}

// Infof prints an info message if verbose mode is enabled.
func Infof(format string, args ...interface{}) {
	if Verbose {
		Logger.Printf("[INFO] "+format, args...)
	}
}

// Warnf always prints a warning, regardless of verbose mode.
func Warnf(format string, args ...interface{}) {
	Logger.Printf("[WARN] "+format, args...)
}

// Errorf always prints an error, regardless of verbose mode.
func Errorf(format string, args ...interface{}) {
	Logger.Printf("[ERROR] "+format, args...)
}
