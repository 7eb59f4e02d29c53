// Package cli wires the relog commands: the root command generates a
// changelog from conventional commit history, init writes a starter
// config, and version reports build information. Errors carry a category
// so main can map them to distinct exit codes; cobra's own printing is
// silenced and main formats everything once.
package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/relog-dev/relog/internal/errors"
)

var rootCmd = &cobra.Command{
	Use:   "relog",
	Short: "Generate changelogs from conventional commit history",
	Long: `relog generates a changelog from the conventional commit history of a
git repository.

Commit subjects shaped like "feat(parser): add lookahead" are classified
into sections (Features, Bug Fixes, ...) and grouped by component. The
rendered release is prepended to an existing changelog file or printed
to stdout. Section titles, aliases, and link styles are configured in
.relog.toml; run 'relog init' for a starter file.

Project home: https://github.com/relog-dev/relog`,
	Example: `  # Print the changelog for the full history to stdout
  relog

  # Changes since the last tag, versioned and written to CHANGELOG.md
  relog --from-latest-tag --set-version 1.2.0 --changelog CHANGELOG.md

  # A specific range with explicit repository links
  relog --from v1.1.0 --to v1.2.0 -r https://github.com/relog-dev/relog

  # Regenerate on every commit while working
  relog --watch --changelog CHANGELOG.md`,
	Args: func(cmd *cobra.Command, args []string) error {
		if err := cobra.NoArgs(cmd, args); err != nil {
			return errors.NewUsageErrorWithSyntax(err.Error(), cmd.UseLine(),
				"relog takes flags only; see 'relog --help'")
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGenerate,
}

func init() {
	rootCmd.SetFlagErrorFunc(flagError)

	rootCmd.PersistentFlags().String("config", "", "Config file path (default: probe .relog.toml, .relog.yml, .relog.json)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output on stderr")

	addGenerateFlags(rootCmd.Flags())
}

// addGenerateFlags defines the generation flags on a flag set.
func addGenerateFlags(flags *pflag.FlagSet) {
	flags.StringP("repository", "r", "", "Repository URL commit and issue links point at")
	flags.String("from", "", "Revision the range starts after (exclusive; default: full history)")
	flags.String("to", "HEAD", "Revision the range ends at (inclusive)")
	flags.Bool("from-latest-tag", false, "Start the range at the most recently tagged commit")
	flags.String("subtitle", "", "Free text appended to the version heading")
	flags.String("set-version", "", "Version label for the release heading (default: HEAD short hash)")
	flags.Bool("patch", false, "Render the version heading one level deeper, for patch releases")
	flags.StringP("outfile", "o", "", "File the changelog is written to ('-' or empty: stdout)")
	flags.StringP("infile", "i", "", "Existing changelog the new release is prepended to")
	flags.StringP("changelog", "c", "", "Shorthand setting both --infile and --outfile")
	flags.StringP("output-format", "f", "", "Output format: markdown or json")
	flags.String("link-style", "", "Link style: github, gitlab, stash or cgit")
	flags.String("git-dir", "", "Path of the .git directory to read")
	flags.String("work-tree", "", "Path of the repository work tree")
	flags.Bool("watch", false, "Rewrite the changelog whenever the repository changes")
	flags.Bool("no-progress", false, "Disable the progress spinner")
}

// Execute runs the root command. Errors come back uncategorized from
// cobra only for programming mistakes; everything user-facing is a
// CLIError that main formats and maps to an exit code.
func Execute() error {
	return rootCmd.Execute()
}

// flagError converts pflag parse failures into usage errors so they exit
// with the usage code instead of the general one.
func flagError(cmd *cobra.Command, err error) error {
	return errors.NewUsageErrorWithSyntax(err.Error(), cmd.UseLine(),
		"Run 'relog --help' for the full flag list")
}
