// Package logger prints leveled, pterm-styled messages to stderr.
// Debug and Info output only shows up in verbose mode (--debug).
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/pterm/pterm"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables debug and info messages.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput redirects all log output. Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Output returns the writer log messages go to.
func Output() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return output
}

func printer(base pterm.PrefixPrinter) pterm.PrefixPrinter {
	base.Writer = output
	base.Debugger = false
	return base
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		p := printer(pterm.Debug)
		p.Printfln(format, args...)
	}
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		p := printer(pterm.Info)
		p.Printfln(format, args...)
	}
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", pterm.Bold.Sprint(name))
	}
}

// Warn prints a warning regardless of verbose mode.
func Warn(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	p := printer(pterm.Warning)
	p.Printfln(format, args...)
}

// Error prints an error regardless of verbose mode.
func Error(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	p := printer(pterm.Error)
	p.Printfln(format, args...)
}
