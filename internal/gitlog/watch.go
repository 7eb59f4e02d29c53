package gitlog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// refDebounce is how long the watcher waits before reporting a change, so
// the burst of filesystem events a single git operation produces collapses
// into one notice.
const refDebounce = 300 * time.Millisecond

// RefWatcher reports when a repository's visible history changes: HEAD
// moves, a ref is written, or refs are packed. It uses fsnotify for
// change detection.
type RefWatcher struct {
	gitDir  string
	watcher *fsnotify.Watcher
	mu      sync.Mutex
	closed  bool
}

// NewRefWatcher creates a RefWatcher over the given git directory.
func NewRefWatcher(gitDir string) (*RefWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	return &RefWatcher{
		gitDir:  gitDir,
		watcher: watcher,
	}, nil
}

// Watch streams the ref path that changed, debounced.
// The channel is closed when the context is cancelled or Close is called.
func (w *RefWatcher) Watch(ctx context.Context) (<-chan string, error) {
	if err := w.addWatchPaths(); err != nil {
		return nil, err
	}

	changes := make(chan string, 1)
	go w.watchLoop(ctx, changes)
	return changes, nil
}

// addWatchPaths registers the git paths that move when history changes.
// The refs subdirectories may not exist yet in a fresh repository; only
// the git directory itself is required.
func (w *RefWatcher) addWatchPaths() error {
	if err := w.watcher.Add(w.gitDir); err != nil {
		return fmt.Errorf("watching git directory: %w", err)
	}

	for _, sub := range []string{"refs/heads", "refs/tags"} {
		dir := filepath.Join(w.gitDir, filepath.FromSlash(sub))
		if _, err := os.Stat(dir); err != nil {
			continue
		}
		if err := w.watcher.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}

	return nil
}

// watchLoop forwards debounced ref events to the changes channel.
func (w *RefWatcher) watchLoop(ctx context.Context, changes chan<- string) {
	defer close(changes)

	ticker := time.NewTicker(refDebounce)
	defer ticker.Stop()

	var pending string
	dirty := false

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			ref, ok := refEventPath(w.gitDir, event)
			if !ok {
				continue
			}
			logDebug("[gitlog] RefWatcher: %s (%s)", ref, event.Op)
			pending = ref
			dirty = true
		case <-ticker.C:
			if !dirty {
				continue
			}
			dirty = false
			select {
			case changes <- pending:
			case <-ctx.Done():
				return
			}
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Keep going; the next event or tick recovers.
		}
	}
}

// refEventPath reports whether a filesystem event touches commit-visible
// state (HEAD, packed-refs, or anything under refs/) and returns the path
// relative to the git directory. Lock files git creates around ref
// updates are ignored.
func refEventPath(gitDir string, event fsnotify.Event) (string, bool) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
		return "", false
	}

	rel, err := filepath.Rel(gitDir, event.Name)
	if err != nil {
		return "", false
	}
	rel = filepath.ToSlash(rel)

	if strings.HasSuffix(rel, ".lock") {
		return "", false
	}

	switch {
	case rel == "HEAD", rel == "packed-refs":
		return rel, true
	case strings.HasPrefix(rel, "refs/"):
		return rel, true
	}
	return "", false
}

// Close stops the watcher and releases resources.
func (w *RefWatcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true

	if w.watcher != nil {
		return w.watcher.Close()
	}
	return nil
}
