// Package color provides terminal color output for erplog. It respects
// the NO_COLOR environment variable (https://no-color.org/).
package color

import (
	"os"
	"sync/atomic"
)

var (
	enabled     atomic.Bool
	initialized atomic.Bool
)

// Init initializes the color system from the environment and flags.
func Init(noColorFlag bool) {
	if initialized.Swap(true) {
		return
	}
	if noColorFlag {
		enabled.Store(false)
		return
	}
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		enabled.Store(false)
		return
	}
	if os.Getenv("TERM") == "dumb" {
		enabled.Store(false)
		return
	}
	enabled.Store(true)
}

// Enabled returns true if color output is enabled.
func Enabled() bool {
	Init(false)
	return enabled.Load()
}

// Enable turns on color output.
func Enable() {
	initialized.Store(true)
	enabled.Store(true)
}

// Disable turns off color output.
func Disable() {
	initialized.Store(true)
	enabled.Store(false)
}

// ANSI codes.
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
)

func wrap(code, s string) string {
	if !Enabled() {
		return s
	}
	return code + s + Reset
}

// Error colors text for error output.
func Error(s string) string { return wrap(Red, s) }

// Success colors text for success output.
func Success(s string) string { return wrap(Green, s) }

// Warn colors text for warning output.
func Warn(s string) string { return wrap(Yellow, s) }
