package errors

import "fmt"

// Common error messages for the relog CLI.
// These templates ensure consistent, actionable error messages.

// RepositoryNotFound creates an error when no git repository can be opened.
func RepositoryNotFound(path string) *CLIError {
	return NewGitError(
		fmt.Sprintf("could not open git repository at %s", path),
		"Run relog from inside a git repository",
		"Or point it at one with: relog --git-dir <path>/.git",
	)
}

// RevisionNotFound creates an error for an unresolvable revision.
func RevisionNotFound(rev string, err error) *CLIError {
	return WrapWithMessage(err, Git,
		fmt.Sprintf("could not resolve revision %q", rev),
		"Check the revision with: git rev-parse "+rev,
		"Tags, branches, and commit hashes are accepted",
	)
}

// NoTagsFound creates an error when --from-latest-tag finds no tags.
func NoTagsFound() *CLIError {
	return NewGitError(
		"no tags found in repository",
		"Create a tag first: git tag v0.1.0",
		"Or drop --from-latest-tag to use the full history",
	)
}

// ConfigFileNotFound creates an error for a missing config file.
func ConfigFileNotFound(path string) *CLIError {
	return NewConfigError(
		fmt.Sprintf("config file not found: %s", path),
		"Run 'relog init' to create a starter .relog.toml",
		"Or pass an existing file with: relog --config <path>",
	)
}

// ConfigParseError wraps a config file that failed to load. The wrapped
// message already names the offending file.
func ConfigParseError(err error) *CLIError {
	return Wrap(err, Config,
		"Check the file for syntax errors",
		"Reset to defaults with: relog init --force",
	)
}

// ConfigInvalid wraps a config validation failure. The wrapped message
// names the file and the offending setting.
func ConfigInvalid(err error) *CLIError {
	return Wrap(err, Config,
		"Fix the reported setting in the config file",
	)
}

// UnknownLinkStyle creates an error for an unrecognized link style token.
func UnknownLinkStyle(token string) *CLIError {
	return NewConfigError(
		fmt.Sprintf("unknown link style: %q", token),
		"Valid styles: github, gitlab, stash, cgit",
	)
}

// UnknownOutputFormat creates an error for an unrecognized output format token.
func UnknownOutputFormat(token string) *CLIError {
	return NewConfigError(
		fmt.Sprintf("unknown output format: %q", token),
		"Valid formats: markdown, json",
	)
}

// ChangelogFlagConflict creates an error when --changelog is combined with
// --infile or --outfile.
func ChangelogFlagConflict() *CLIError {
	return NewUsageErrorWithSyntax(
		"--changelog cannot be combined with --infile or --outfile",
		"relog --changelog CHANGELOG.md",
		"--changelog already sets both the input and the output file",
	)
}

// WatchRequiresOutfile creates an error when --watch is used without a file target.
func WatchRequiresOutfile() *CLIError {
	return NewUsageErrorWithSyntax(
		"--watch requires an output file",
		"relog --watch --changelog CHANGELOG.md",
		"Watch mode rewrites the changelog on every change, so stdout output is not supported",
	)
}

// InfileNotReadable creates an error when the previous changelog cannot be read.
func InfileNotReadable(path string, err error) *CLIError {
	return WrapWithMessage(err, IO,
		fmt.Sprintf("cannot read changelog file: %s", path),
		"Check file permissions: ls -la "+path,
	)
}

// OutfileNotWritable creates an error when the changelog cannot be written.
func OutfileNotWritable(path string, err error) *CLIError {
	return WrapWithMessage(err, IO,
		fmt.Sprintf("cannot write changelog file: %s", path),
		"Check file permissions: ls -la "+path,
		"Ensure the parent directory exists and is writable",
	)
}
