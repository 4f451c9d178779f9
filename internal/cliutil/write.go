// Package cliutil provides utilities for CLI operations.
package cliutil

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
)

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// Successf writes a green line prefixed with a check mark.
func Successf(w io.Writer, format string, args ...any) {
	writeColored(w, successColor, "✓ "+format+"\n", args...)
}

// Warnf writes a yellow line prefixed with "Warning: ".
func Warnf(w io.Writer, format string, args ...any) {
	writeColored(w, warnColor, "Warning: "+format+"\n", args...)
}

// Error writes "Error: <err>" in red.
func Error(w io.Writer, err error) {
	writeColored(w, errorColor, "Error: %v\n", err)
}

func writeColored(w io.Writer, c *color.Color, format string, args ...any) {
	if _, err := c.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}
