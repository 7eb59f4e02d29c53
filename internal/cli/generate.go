package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/relog-dev/relog/internal/changelog"
	"github.com/relog-dev/relog/internal/config"
	"github.com/relog-dev/relog/internal/errors"
	"github.com/relog-dev/relog/internal/gitlog"
	"github.com/relog-dev/relog/internal/output"
	"github.com/relog-dev/relog/internal/progress"
)

// generateOptions is the fully resolved input of one generation run:
// loaded settings with flag overrides applied, plus the range and
// version knobs that only exist as flags.
type generateOptions struct {
	cfg *config.Settings

	from       string
	to         string
	version    string
	patch      bool
	noProgress bool
}

// runGenerate is the root RunE. It loads settings, opens the repository
// and writes one generated changelog, or keeps regenerating under --watch.
func runGenerate(cmd *cobra.Command, args []string) error {
	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}

	watch, _ := cmd.Flags().GetBool("watch")
	if watch && !writesToFile(opts.cfg) {
		return errors.WatchRequiresOutfile()
	}

	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		errOut := cmd.ErrOrStderr()
		gitlog.SetDebugLogger(func(format string, args ...any) {
			output.PrintDebug(errOut, fmt.Sprintf(format, args...))
		})
		source := opts.cfg.Source
		if source == "" {
			source = "built-in defaults"
		}
		output.PrintDebug(errOut, "config: "+source)
	}

	repo, err := gitlog.Open(opts.cfg.GitDir, opts.cfg.GitWorkTree)
	if err != nil {
		return errors.RepositoryNotFound(repoSearchPath(opts.cfg))
	}

	if watch {
		return runWatch(cmd, repo, opts)
	}
	return generateOnce(cmd, repo, opts)
}

// resolveOptions layers configuration for one run: defaults, config
// file, environment, then CLI flags.
func resolveOptions(cmd *cobra.Command) (*generateOptions, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath != "" && !fileExists(configPath) {
		return nil, errors.ConfigFileNotFound(configPath)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, configError(err)
	}

	if err := applyFlagOverrides(cmd, cfg); err != nil {
		return nil, err
	}

	opts := &generateOptions{cfg: cfg}
	opts.from, _ = cmd.Flags().GetString("from")
	opts.to, _ = cmd.Flags().GetString("to")
	opts.version, _ = cmd.Flags().GetString("set-version")
	opts.patch, _ = cmd.Flags().GetBool("patch")
	opts.noProgress, _ = cmd.Flags().GetBool("no-progress")
	return opts, nil
}

// applyFlagOverrides lays explicitly set flags over the loaded settings.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Settings) error {
	flags := cmd.Flags()

	if flags.Changed("changelog") && (flags.Changed("infile") || flags.Changed("outfile")) {
		return errors.ChangelogFlagConflict()
	}

	if flags.Changed("repository") {
		v, _ := flags.GetString("repository")
		cfg.Repository = config.NormalizeRepository(v)
	}
	if flags.Changed("subtitle") {
		cfg.Subtitle, _ = flags.GetString("subtitle")
	}
	if flags.Changed("link-style") {
		v, _ := flags.GetString("link-style")
		style, err := changelog.ParseLinkStyle(v)
		if err != nil {
			return errors.UnknownLinkStyle(v)
		}
		cfg.LinkStyle = style
	}
	if flags.Changed("output-format") {
		v, _ := flags.GetString("output-format")
		format, err := changelog.ParseFormat(v)
		if err != nil {
			return errors.UnknownOutputFormat(v)
		}
		cfg.Format = format
	}
	if flags.Changed("outfile") {
		cfg.Outfile, _ = flags.GetString("outfile")
	}
	if flags.Changed("infile") {
		cfg.Infile, _ = flags.GetString("infile")
	}
	if flags.Changed("changelog") {
		v, _ := flags.GetString("changelog")
		cfg.Outfile = v
		cfg.Infile = v
	}
	if flags.Changed("git-dir") {
		cfg.GitDir, _ = flags.GetString("git-dir")
	}
	if flags.Changed("work-tree") {
		cfg.GitWorkTree, _ = flags.GetString("work-tree")
	}
	if flags.Changed("from-latest-tag") {
		cfg.FromLatestTag, _ = flags.GetBool("from-latest-tag")
	}

	return nil
}

// generateOnce renders the configured range and writes it, prepending to
// the current contents of the target file.
func generateOnce(cmd *cobra.Command, repo *gitlog.Repo, opts *generateOptions) error {
	previous, err := previousContents(opts.cfg)
	if err != nil {
		return err
	}
	return generate(cmd.Context(), cmd, repo, opts, previous)
}

// generate renders the configured commit range and writes the result.
// previous is the changelog text being prepended to; watch mode captures
// it once so regenerated output replaces earlier runs instead of
// stacking on them.
func generate(ctx context.Context, cmd *cobra.Command, repo *gitlog.Repo, opts *generateOptions, previous string) error {
	rendered, err := render(ctx, repo, opts)
	if err != nil {
		return err
	}
	return writeChangelog(cmd, opts.cfg, rendered, previous)
}

// render walks the commit range and produces one rendered release
// document in the configured format.
func render(ctx context.Context, repo *gitlog.Repo, opts *generateOptions) (string, error) {
	cfg := opts.cfg

	from := opts.from
	if cfg.FromLatestTag {
		tagged, err := repo.LatestTagCommit()
		if err != nil {
			if stderrors.Is(err, gitlog.ErrNoTags) {
				return "", errors.NoTagsFound()
			}
			return "", errors.Wrap(err, errors.Git)
		}
		from = tagged
	}

	version := opts.version
	if version == "" {
		short, err := repo.HeadShortHash()
		if err != nil {
			return "", errors.Wrap(err, errors.Git,
				"The repository needs at least one commit",
				"Or label the release explicitly with --set-version",
			)
		}
		version = short
	}

	spin := progress.NewSpinner("Collecting commits", !opts.noProgress)
	spin.Start()
	raw, err := repo.Commits(ctx, from, opts.to, gitlog.Prefilter(cfg.Sections.Aliases()))
	spin.Stop()
	if err != nil {
		return "", gitError(err)
	}

	parser := changelog.NewParser(cfg.Sections, cfg.Components)
	entries, err := parser.ParseLog(ctx, raw)
	if err != nil {
		return "", errors.Wrap(err, errors.Render)
	}

	release := changelog.Release{
		Version:  version,
		Subtitle: cfg.Subtitle,
		Patch:    opts.patch,
	}
	links := changelog.Links{Style: cfg.LinkStyle, Repo: cfg.Repository}

	rendered, err := changelog.RenderString(changelog.NewRenderer(cfg.Format, links),
		release, cfg.Sections, changelog.Aggregate(entries))
	if err != nil {
		return "", errors.Wrap(err, errors.Render)
	}
	return rendered, nil
}

// writeChangelog delivers one rendered release. A file target gets the
// release merged on top of previous; stdout gets the merged document
// when an infile is configured and the bare release otherwise.
func writeChangelog(cmd *cobra.Command, cfg *config.Settings, rendered, previous string) error {
	switch {
	case writesToFile(cfg):
		var merged strings.Builder
		if err := changelog.WriteMerged(&merged, rendered, previous); err != nil {
			return errors.Wrap(err, errors.Render)
		}
		if err := os.WriteFile(cfg.Outfile, []byte(merged.String()), 0644); err != nil {
			return errors.OutfileNotWritable(cfg.Outfile, err)
		}
		output.PrintSuccess(cmd.ErrOrStderr(), "Wrote "+cfg.Outfile)
		return nil

	case cfg.Infile != "":
		if err := changelog.WriteMerged(cmd.OutOrStdout(), rendered, previous); err != nil {
			return errors.Wrap(err, errors.IO)
		}
		return nil

	default:
		if _, err := io.WriteString(cmd.OutOrStdout(), rendered); err != nil {
			return errors.Wrap(err, errors.IO)
		}
		return nil
	}
}

// previousContents reads the changelog the new release is prepended to:
// the infile when set, otherwise the outfile's own current contents.
// Missing files read as empty, so first runs work without setup.
func previousContents(cfg *config.Settings) (string, error) {
	path := cfg.Infile
	if path == "" {
		path = cfg.Outfile
	}
	if path == "" || path == "-" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", errors.InfileNotReadable(path, err)
	}
	return string(data), nil
}

// writesToFile reports whether generation targets a real file rather
// than stdout.
func writesToFile(cfg *config.Settings) bool {
	return cfg.Outfile != "" && cfg.Outfile != "-"
}

// configError maps a config load failure to a categorized CLI error.
func configError(err error) error {
	var vErr *config.ValidationError
	if stderrors.As(err, &vErr) {
		return errors.ConfigInvalid(err)
	}
	return errors.ConfigParseError(err)
}

// gitError maps a history-read failure to an actionable git error.
func gitError(err error) error {
	var revErr *gitlog.RevisionError
	if stderrors.As(err, &revErr) {
		return errors.RevisionNotFound(revErr.Rev, revErr.Err)
	}
	return errors.Wrap(err, errors.Git)
}

// repoSearchPath names the location the repository was searched at, for
// error reporting.
func repoSearchPath(cfg *config.Settings) string {
	if cfg.GitDir != "" {
		return cfg.GitDir
	}
	if cfg.GitWorkTree != "" {
		return cfg.GitWorkTree
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

// fileExists returns true if the file exists and is readable.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
