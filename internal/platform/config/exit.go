package config

import (
	"fmt"
	"os"
)

// ExitCodeUsage is the conventional status for command-line misuse.
const ExitCodeUsage = 2

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	ExitCodef(1, format, args...)
}

// ExitCodef writes a formatted message to stderr and exits with code.
// It is the single fatal-exit path for CLI entry points.
func ExitCodef(code int, format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(code)
}
