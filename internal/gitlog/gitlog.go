// Package gitlog reads classifiable commit history from a git
// repository. It uses the go-git library exclusively; no git binary is
// invoked. Commit ranges are emitted as raw text blocks in the shape the
// changelog parser consumes, and ref watching is provided for callers
// that regenerate on repository changes.
package gitlog

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage/filesystem"

	"github.com/relog-dev/relog/internal/changelog"
)

// ErrNoTags is returned by LatestTagCommit when the repository has no
// tags pointing at commits.
var ErrNoTags = errors.New("no tags found in repository")

// RevisionError reports a revision expression that could not be resolved
// to a commit.
type RevisionError struct {
	Rev string
	Err error
}

func (e *RevisionError) Error() string {
	return fmt.Sprintf("resolving revision %q: %v", e.Rev, e.Err)
}

func (e *RevisionError) Unwrap() error { return e.Err }

// debugLogger is a function that logs debug messages when debug mode is
// enabled. By default, it's a no-op. Set it via SetDebugLogger to enable
// debug output.
var debugLogger func(format string, args ...any)

// SetDebugLogger configures the debug logger for repository operations.
// Pass nil to disable debug logging. The logger function should format
// and output the message (similar to log.Printf signature).
func SetDebugLogger(logger func(format string, args ...any)) {
	debugLogger = logger
}

// logDebug logs a debug message if the debug logger is set.
func logDebug(format string, args ...any) {
	if debugLogger != nil {
		debugLogger(format, args...)
	}
}

// Repo is an open git repository scoped to history reads.
type Repo struct {
	repo *git.Repository
}

// Open opens the repository identified by an explicit git directory or
// work tree. When gitDir is set it is opened directly (the work tree is
// not needed for history reads); otherwise workTree is searched, and with
// neither set the search starts at the current working directory.
// DetectDotGit walks parent directories the way the git CLI does.
func Open(gitDir, workTree string) (*Repo, error) {
	path := gitDir
	if path == "" {
		path = workTree
	}
	if path == "" {
		var err error
		path, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting current directory: %w", err)
		}
	}

	logDebug("[gitlog] opening repository at %s", path)

	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}

	logDebug("[gitlog] repository opened")
	return &Repo{repo: repo}, nil
}

// HeadShortHash returns the abbreviated hash of the current HEAD commit,
// used as the fallback version string for unreleased changelogs.
func (r *Repo) HeadShortHash() (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD reference: %w", err)
	}

	short := changelog.ShortHash(head.Hash().String())
	logDebug("[gitlog] HeadShortHash: %s", short)
	return short, nil
}

// LatestTagCommit returns the full hash of the most recently tagged
// commit, judged by committer date across all tags. Annotated tags are
// peeled to their target commit. Returns ErrNoTags when the repository
// has no usable tags.
func (r *Repo) LatestTagCommit() (string, error) {
	tags, err := r.repo.Tags()
	if err != nil {
		return "", fmt.Errorf("listing tags: %w", err)
	}

	var (
		latest  *object.Commit
		tagName string
	)
	err = tags.ForEach(func(ref *plumbing.Reference) error {
		hash := ref.Hash()
		if tag, err := r.repo.TagObject(hash); err == nil {
			hash = tag.Target
		}
		commit, err := r.repo.CommitObject(hash)
		if err != nil {
			// Tag on a tree or blob; not part of commit history.
			return nil
		}
		if latest == nil || commit.Committer.When.After(latest.Committer.When) {
			latest = commit
			tagName = ref.Name().Short()
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("iterating tags: %w", err)
	}

	if latest == nil {
		return "", ErrNoTags
	}

	logDebug("[gitlog] LatestTagCommit: %s (tag %s)", latest.Hash, tagName)
	return latest.Hash.String(), nil
}

// GitDir returns the on-disk path of the repository's git directory,
// which is where ref watching attaches.
func (r *Repo) GitDir() (string, error) {
	storage, ok := r.repo.Storer.(*filesystem.Storage)
	if !ok {
		return "", errors.New("repository storage is not filesystem-backed")
	}
	return storage.Filesystem().Root(), nil
}

// resolve turns a revision expression (hash, tag, branch, HEAD~n) into a
// commit hash. Annotated tag names resolve to the tag object, so those are
// peeled to the commit they point at.
func (r *Repo) resolve(rev string) (plumbing.Hash, error) {
	hash, err := r.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return plumbing.ZeroHash, &RevisionError{Rev: rev, Err: err}
	}
	h := *hash
	if tag, err := r.repo.TagObject(h); err == nil {
		h = tag.Target
	}
	return h, nil
}
