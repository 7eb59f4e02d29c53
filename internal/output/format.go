// Package output provides terminal output formatting utilities for the relog CLI.
// This package is designed to have minimal dependencies to avoid import cycles.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// GetTerminalWidth returns the terminal width, defaulting to 80 if unavailable.
func GetTerminalWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return 80
}

// PrintSuccess prints a colored success message for a written artifact.
// Uses green checkmark and cyan for the artifact path.
func PrintSuccess(out io.Writer, message string) {
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", green("✓"), cyan(message))
}

// PrintDebug prints a dim diagnostic note. Callers gate these behind --debug
// and always point them at stderr so generated output stays clean.
func PrintDebug(out io.Writer, message string) {
	dim := color.New(color.Faint).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", dim("relog:"), dim(message))
}

// PrintChangeDetected prints a colored note that watch mode picked up a
// repository change and is regenerating the changelog.
func PrintChangeDetected(out io.Writer, detail string) {
	magenta := color.New(color.FgMagenta).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", magenta("→ Change detected:"), dim(detail))
}
