package gitlog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relog-dev/relog/internal/testutil"
)

func TestOpen(t *testing.T) {
	t.Parallel()

	fixture := testutil.NewGitRepo(t)
	fixture.Commit("feat: seed")

	t.Run("work tree", func(t *testing.T) {
		_, err := Open("", fixture.Dir)
		assert.NoError(t, err)
	})

	t.Run("git directory", func(t *testing.T) {
		_, err := Open(filepath.Join(fixture.Dir, ".git"), "")
		assert.NoError(t, err)
	})

	t.Run("detects dot git from a subdirectory", func(t *testing.T) {
		sub := filepath.Join(fixture.Dir, "deep", "inside")
		require.NoError(t, os.MkdirAll(sub, 0o755))
		_, err := Open("", sub)
		assert.NoError(t, err)
	})

	t.Run("not a repository", func(t *testing.T) {
		_, err := Open("", t.TempDir())
		assert.Error(t, err)
	})
}

func TestHeadShortHash(t *testing.T) {
	t.Parallel()

	fixture := testutil.NewGitRepo(t)
	fixture.Commit("feat: first")
	head := fixture.Commit("fix: second")

	repo, err := Open("", fixture.Dir)
	require.NoError(t, err)

	short, err := repo.HeadShortHash()
	require.NoError(t, err)
	assert.Equal(t, head[:8], short)
}

func TestLatestTagCommit(t *testing.T) {
	t.Parallel()

	t.Run("most recent tag wins", func(t *testing.T) {
		t.Parallel()

		fixture := testutil.NewGitRepo(t)
		old := fixture.Commit("feat: first release")
		fixture.Tag("v0.1.0", old)
		recent := fixture.Commit("feat: second release")
		fixture.Tag("v0.2.0", recent)
		fixture.Commit("feat: unreleased")

		repo, err := Open("", fixture.Dir)
		require.NoError(t, err)

		hash, err := repo.LatestTagCommit()
		require.NoError(t, err)
		assert.Equal(t, recent, hash)
	})

	t.Run("annotated tags are peeled", func(t *testing.T) {
		t.Parallel()

		fixture := testutil.NewGitRepo(t)
		tagged := fixture.Commit("feat: release")
		fixture.TagAnnotated("v1.0.0", tagged)

		repo, err := Open("", fixture.Dir)
		require.NoError(t, err)

		hash, err := repo.LatestTagCommit()
		require.NoError(t, err)
		assert.Equal(t, tagged, hash)
	})

	t.Run("no tags", func(t *testing.T) {
		t.Parallel()

		fixture := testutil.NewGitRepo(t)
		fixture.Commit("feat: untagged")

		repo, err := Open("", fixture.Dir)
		require.NoError(t, err)

		_, err = repo.LatestTagCommit()
		assert.ErrorIs(t, err, ErrNoTags)
	})
}

func TestGitDir(t *testing.T) {
	t.Parallel()

	fixture := testutil.NewGitRepo(t)
	fixture.Commit("feat: seed")

	repo, err := Open("", fixture.Dir)
	require.NoError(t, err)

	dir, err := repo.GitDir()
	require.NoError(t, err)
	assert.Equal(t, ".git", filepath.Base(dir))
	assert.DirExists(t, dir)
}
