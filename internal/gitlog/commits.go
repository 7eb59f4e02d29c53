package gitlog

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/relog-dev/relog/internal/changelog"
)

// Prefilter builds the case-insensitive pattern used to skip commits
// that could never classify into a section: a message passes when any
// line starts with one of the given aliases, or when it mentions
// "breaking" anywhere. A nil filter passed to Commits keeps everything.
func Prefilter(aliases []string) *regexp.Regexp {
	quoted := make([]string, 0, len(aliases))
	for _, alias := range aliases {
		if alias == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(alias))
	}

	if len(quoted) == 0 {
		return regexp.MustCompile(`(?im)breaking`)
	}
	return regexp.MustCompile(`(?im)^(?:` + strings.Join(quoted, "|") + `)|breaking`)
}

// Commits walks the history range from..to (exclusive of from, inclusive
// of to) and renders every commit passing the filter as a raw block of
// the form "hash\nsubject\nbody", blocks joined and terminated by the
// delimiter line the changelog parser splits on. to defaults to HEAD; an
// empty from walks the full history. Commits are emitted newest first by
// committer date.
func (r *Repo) Commits(ctx context.Context, from, to string, filter *regexp.Regexp) (string, error) {
	if to == "" {
		to = "HEAD"
	}

	toHash, err := r.resolve(to)
	if err != nil {
		return "", err
	}

	var ignore []plumbing.Hash
	if from != "" {
		fromHash, err := r.resolve(from)
		if err != nil {
			return "", err
		}
		ignore = append(ignore, fromHash)
	}

	toCommit, err := r.repo.CommitObject(toHash)
	if err != nil {
		return "", fmt.Errorf("reading commit %s: %w", toHash, err)
	}

	var commits []*object.Commit
	iter := object.NewCommitPreorderIter(toCommit, nil, ignore)
	err = iter.ForEach(func(commit *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if filter != nil && !filter.MatchString(commit.Message) {
			return nil
		}
		commits = append(commits, commit)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("walking commits %s..%s: %w", from, to, err)
	}

	// The preorder walk follows parent edges, not time; merged-in side
	// branches can surface out of order.
	sort.SliceStable(commits, func(i, j int) bool {
		return commits[i].Committer.When.After(commits[j].Committer.When)
	})

	logDebug("[gitlog] Commits: %d of range %s..%s passed the filter", len(commits), from, to)
	return renderBlocks(commits), nil
}

// renderBlocks joins commits into the delimited raw-block text.
func renderBlocks(commits []*object.Commit) string {
	if len(commits) == 0 {
		return ""
	}

	blocks := make([]string, 0, len(commits))
	for _, commit := range commits {
		subject, body := splitMessage(commit.Message)
		blocks = append(blocks, commit.Hash.String()+"\n"+subject+"\n"+body)
	}

	terminator := "\n" + changelog.RawDelimiter + "\n"
	return strings.Join(blocks, terminator) + terminator
}

// splitMessage splits a raw commit message into subject and body the way
// git's %s and %b placeholders do: the subject is the first paragraph
// with newlines folded into spaces, the body is everything after the
// first blank line.
func splitMessage(message string) (subject, body string) {
	message = strings.ReplaceAll(message, "\r\n", "\n")

	head, tail, found := strings.Cut(message, "\n\n")
	subject = strings.ReplaceAll(strings.TrimRight(head, "\n"), "\n", " ")
	if found {
		body = strings.TrimRight(tail, "\n")
	}
	return subject, body
}
