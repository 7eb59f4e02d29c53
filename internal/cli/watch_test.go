package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relog-dev/relog/internal/testutil"
)

func TestWatch_RegeneratesOnCommit(t *testing.T) {
	t.Parallel()

	repo := testutil.NewGitRepo(t)
	repo.Commit("feat: first pass")

	outfile := filepath.Join(t.TempDir(), "CHANGELOG.md")

	cmd := newGenerateCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{
		"--work-tree", repo.Dir,
		"--watch",
		"-c", outfile,
		"--set-version", "0.1.0",
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- cmd.ExecuteContext(ctx)
	}()

	require.Eventually(t, func() bool {
		data, err := os.ReadFile(outfile)
		return err == nil && strings.Contains(string(data), "first pass")
	}, 5*time.Second, 50*time.Millisecond, "initial generation should write the outfile")

	repo.Commit("fix: second pass")

	// Regeneration must pick up the new commit without stacking a second
	// copy of the release on the file.
	require.Eventually(t, func() bool {
		data, err := os.ReadFile(outfile)
		if err != nil {
			return false
		}
		content := string(data)
		return strings.Contains(content, "second pass") &&
			strings.Count(content, `<a name="0.1.0"></a>`) == 1
	}, 5*time.Second, 50*time.Millisecond, "watch should regenerate after a commit")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancellation")
	}
}
