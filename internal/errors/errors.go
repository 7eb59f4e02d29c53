// Package errors provides structured error handling for the relog CLI.
// It includes categorized errors with actionable remediation guidance.
package errors

import "fmt"

// ErrorCategory represents the type of error that occurred.
type ErrorCategory int

const (
	// Usage errors are caused by invalid or conflicting command arguments.
	Usage ErrorCategory = iota
	// Config errors are caused by invalid or missing configuration.
	Config
	// Git errors occur when the repository cannot be opened or a revision
	// cannot be resolved.
	Git
	// Render errors occur while producing the changelog document.
	Render
	// IO errors occur when reading or writing changelog files.
	IO
)

// String returns a human-readable name for the error category.
func (c ErrorCategory) String() string {
	switch c {
	case Usage:
		return "Usage Error"
	case Config:
		return "Configuration Error"
	case Git:
		return "Git Error"
	case Render:
		return "Render Error"
	case IO:
		return "IO Error"
	default:
		return "Error"
	}
}

// CLIError is a structured error with category and remediation guidance.
type CLIError struct {
	// Category is the type of error (Usage, Config, etc.)
	Category ErrorCategory
	// Message is a human-readable description of what went wrong.
	Message string
	// Remediation is a list of actionable steps to resolve the error.
	Remediation []string
	// Usage shows the correct command syntax (optional, for usage errors).
	Usage string
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	return e.Message
}

// NewUsageError creates a new usage error with the given message and remediation steps.
func NewUsageError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Usage,
		Message:     message,
		Remediation: remediation,
	}
}

// NewUsageErrorWithSyntax creates a new usage error that includes correct command syntax.
func NewUsageErrorWithSyntax(message, usage string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Usage,
		Message:     message,
		Usage:       usage,
		Remediation: remediation,
	}
}

// NewConfigError creates a new configuration error.
func NewConfigError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Config,
		Message:     message,
		Remediation: remediation,
	}
}

// NewGitError creates a new git error.
func NewGitError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Git,
		Message:     message,
		Remediation: remediation,
	}
}

// NewRenderError creates a new render error.
func NewRenderError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Render,
		Message:     message,
		Remediation: remediation,
	}
}

// NewIOError creates a new IO error.
func NewIOError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    IO,
		Message:     message,
		Remediation: remediation,
	}
}

// Wrap wraps an existing error with a CLIError, preserving the original message.
func Wrap(err error, category ErrorCategory, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Category:    category,
		Message:     err.Error(),
		Remediation: remediation,
	}
}

// WrapWithMessage wraps an error with a custom message and category.
func WrapWithMessage(err error, category ErrorCategory, message string, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Category:    category,
		Message:     fmt.Sprintf("%s: %v", message, err),
		Remediation: remediation,
	}
}

// IsCLIError checks if an error is a CLIError.
func IsCLIError(err error) bool {
	_, ok := err.(*CLIError)
	return ok
}

// AsCLIError attempts to convert an error to a CLIError.
// Returns nil if the error is not a CLIError.
func AsCLIError(err error) *CLIError {
	cliErr, ok := err.(*CLIError)
	if ok {
		return cliErr
	}
	return nil
}
