package gitlog

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relog-dev/relog/internal/testutil"
)

func TestRefEventPath(t *testing.T) {
	t.Parallel()

	gitDir := filepath.FromSlash("/repo/.git")
	event := func(rel string, op fsnotify.Op) fsnotify.Event {
		return fsnotify.Event{Name: filepath.Join(gitDir, filepath.FromSlash(rel)), Op: op}
	}

	tests := map[string]struct {
		event    fsnotify.Event
		wantPath string
		wantOK   bool
	}{
		"HEAD write": {
			event:    event("HEAD", fsnotify.Write),
			wantPath: "HEAD",
			wantOK:   true,
		},
		"branch ref create": {
			event:    event("refs/heads/main", fsnotify.Create),
			wantPath: "refs/heads/main",
			wantOK:   true,
		},
		"tag ref rename": {
			event:    event("refs/tags/v1.0.0", fsnotify.Rename),
			wantPath: "refs/tags/v1.0.0",
			wantOK:   true,
		},
		"packed refs": {
			event:    event("packed-refs", fsnotify.Write),
			wantPath: "packed-refs",
			wantOK:   true,
		},
		"lock file is ignored": {
			event:  event("HEAD.lock", fsnotify.Create),
			wantOK: false,
		},
		"unrelated git file": {
			event:  event("COMMIT_EDITMSG", fsnotify.Write),
			wantOK: false,
		},
		"chmod only": {
			event:  event("HEAD", fsnotify.Chmod),
			wantOK: false,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			path, ok := refEventPath(gitDir, tc.event)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantPath, path)
		})
	}
}

func TestRefWatcher_DetectsCommit(t *testing.T) {
	t.Parallel()

	fixture := testutil.NewGitRepo(t)
	// The first commit materializes refs/heads before the watcher attaches.
	fixture.Commit("feat: seed")

	repo, err := Open("", fixture.Dir)
	require.NoError(t, err)
	gitDir, err := repo.GitDir()
	require.NoError(t, err)

	watcher, err := NewRefWatcher(gitDir)
	require.NoError(t, err)
	defer watcher.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := watcher.Watch(ctx)
	require.NoError(t, err)

	fixture.Commit("fix: trigger a ref update")

	select {
	case ref := <-changes:
		assert.NotEmpty(t, ref)
	case <-time.After(5 * time.Second):
		t.Fatal("no change notice after commit")
	}
}

func TestRefWatcher_CloseIsIdempotent(t *testing.T) {
	t.Parallel()

	watcher, err := NewRefWatcher(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, watcher.Close())
	assert.NoError(t, watcher.Close())
}

func TestRefWatcher_ChannelClosesOnCancel(t *testing.T) {
	t.Parallel()

	fixture := testutil.NewGitRepo(t)
	fixture.Commit("feat: seed")

	repo, err := Open("", fixture.Dir)
	require.NoError(t, err)
	gitDir, err := repo.GitDir()
	require.NoError(t, err)

	watcher, err := NewRefWatcher(gitDir)
	require.NoError(t, err)
	defer watcher.Close()

	ctx, cancel := context.WithCancel(context.Background())
	changes, err := watcher.Watch(ctx)
	require.NoError(t, err)

	cancel()

	select {
	case _, open := <-changes:
		assert.False(t, open, "channel should close after cancel")
	case <-time.After(5 * time.Second):
		t.Fatal("channel did not close after cancel")
	}
}
