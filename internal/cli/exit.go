package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/relog-dev/relog/internal/errors"
)

// Exit codes returned by the relog process. Distinct codes let scripts
// and CI steps tell usage mistakes apart from repository or
// configuration failures.
const (
	// ExitSuccess indicates the changelog was generated.
	ExitSuccess = 0
	// ExitFailure indicates a general failure (render, file IO, unexpected).
	ExitFailure = 1
	// ExitUsage indicates invalid or conflicting command arguments.
	ExitUsage = 2
	// ExitGit indicates the repository could not be opened or read.
	ExitGit = 3
	// ExitConfig indicates invalid configuration.
	ExitConfig = 4
)

// ExitCodeFor maps an error returned by Execute to a process exit code.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	cliErr := errors.AsCLIError(err)
	if cliErr == nil {
		return ExitFailure
	}
	switch cliErr.Category {
	case errors.Usage:
		return ExitUsage
	case errors.Git:
		return ExitGit
	case errors.Config:
		return ExitConfig
	default:
		return ExitFailure
	}
}

// HandleError prints err to stderr in the CLI error format and returns
// the exit code for main to pass to os.Exit.
func HandleError(err error) int {
	if err == nil {
		return ExitSuccess
	}
	fprintError(os.Stderr, err)
	return ExitCodeFor(err)
}

// fprintError writes err to w, using the categorized format when err is
// a CLIError.
func fprintError(w io.Writer, err error) {
	if cliErr := errors.AsCLIError(err); cliErr != nil {
		errors.FprintError(w, cliErr)
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}
