// Package testutil provides test fixtures shared by relog tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// GitRepo is a throwaway on-disk git repository for tests. Commits are
// stamped with deterministic, strictly increasing timestamps so range
// and ordering assertions stay stable across runs.
type GitRepo struct {
	t     *testing.T
	Dir   string
	repo  *git.Repository
	wt    *git.Worktree
	clock time.Time
	seq   int
}

// NewGitRepo initializes an empty repository under t.TempDir().
func NewGitRepo(t *testing.T) *GitRepo {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("initializing test repository: %v", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("opening worktree: %v", err)
	}

	return &GitRepo{
		t:     t,
		Dir:   dir,
		repo:  repo,
		wt:    wt,
		clock: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

// Commit writes a fresh file and commits it with the given message,
// returning the full commit hash.
func (r *GitRepo) Commit(message string) string {
	r.t.Helper()

	r.seq++
	r.clock = r.clock.Add(time.Minute)

	name := fmt.Sprintf("file%d.txt", r.seq)
	if err := os.WriteFile(filepath.Join(r.Dir, name), []byte(message), 0o644); err != nil {
		r.t.Fatalf("writing fixture file: %v", err)
	}
	if _, err := r.wt.Add(name); err != nil {
		r.t.Fatalf("staging fixture file: %v", err)
	}

	sig := &object.Signature{Name: "Test Author", Email: "test@example.com", When: r.clock}
	hash, err := r.wt.Commit(message, &git.CommitOptions{Author: sig, Committer: sig})
	if err != nil {
		r.t.Fatalf("committing fixture: %v", err)
	}
	return hash.String()
}

// Tag creates a lightweight tag pointing at the given commit.
func (r *GitRepo) Tag(name, hash string) {
	r.t.Helper()

	if _, err := r.repo.CreateTag(name, plumbing.NewHash(hash), nil); err != nil {
		r.t.Fatalf("creating tag %s: %v", name, err)
	}
}

// TagAnnotated creates an annotated tag object pointing at the given
// commit.
func (r *GitRepo) TagAnnotated(name, hash string) {
	r.t.Helper()

	r.clock = r.clock.Add(time.Minute)
	_, err := r.repo.CreateTag(name, plumbing.NewHash(hash), &git.CreateTagOptions{
		Tagger:  &object.Signature{Name: "Test Author", Email: "test@example.com", When: r.clock},
		Message: name,
	})
	if err != nil {
		r.t.Fatalf("creating annotated tag %s: %v", name, err)
	}
}
