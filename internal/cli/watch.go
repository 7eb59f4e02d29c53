package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/relog-dev/relog/internal/errors"
	"github.com/relog-dev/relog/internal/gitlog"
	"github.com/relog-dev/relog/internal/output"
)

// runWatch regenerates the changelog whenever the repository's refs
// change, until interrupted. The previous changelog contents are
// captured before the first run; every regeneration prepends the fresh
// release to that snapshot, so the outfile always holds exactly one
// release for the watched range.
func runWatch(cmd *cobra.Command, repo *gitlog.Repo, opts *generateOptions) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gitDir, err := repo.GitDir()
	if err != nil {
		return errors.Wrap(err, errors.Git, "--watch needs an on-disk repository")
	}

	watcher, err := gitlog.NewRefWatcher(gitDir)
	if err != nil {
		return errors.Wrap(err, errors.Git)
	}
	defer watcher.Close()

	changes, err := watcher.Watch(ctx)
	if err != nil {
		return errors.Wrap(err, errors.Git)
	}

	previous, err := previousContents(opts.cfg)
	if err != nil {
		return err
	}

	// The first generation runs before any change arrives, so the
	// outfile reflects the current history immediately.
	if err := generate(ctx, cmd, repo, opts, previous); err != nil {
		return err
	}

	errOut := cmd.ErrOrStderr()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ref, ok := <-changes:
			if !ok {
				return nil
			}
			output.PrintChangeDetected(errOut, ref)
			if err := generate(ctx, cmd, repo, opts, previous); err != nil {
				// Transient repository states (mid-rebase, ref locks)
				// can fail a read; report and keep watching.
				fprintError(errOut, err)
			}
		}
	}
}
