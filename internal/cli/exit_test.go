package cli

import (
	"bytes"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/relog-dev/relog/internal/errors"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err  error
		want int
	}{
		"nil error": {
			err:  nil,
			want: ExitSuccess,
		},
		"plain error": {
			err:  stderrors.New("boom"),
			want: ExitFailure,
		},
		"usage error": {
			err:  errors.NewUsageError("bad flags"),
			want: ExitUsage,
		},
		"git error": {
			err:  errors.NewGitError("no repository"),
			want: ExitGit,
		},
		"config error": {
			err:  errors.NewConfigError("bad config"),
			want: ExitConfig,
		},
		"render error": {
			err:  errors.NewRenderError("bad template"),
			want: ExitFailure,
		},
		"io error": {
			err:  errors.NewIOError("disk full"),
			want: ExitFailure,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, ExitCodeFor(tt.err))
		})
	}
}

func TestFprintError(t *testing.T) {
	t.Parallel()

	t.Run("categorized error uses CLI format", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		fprintError(&buf, errors.NewGitError("no repository", "Run relog inside a repository"))

		assert.Contains(t, buf.String(), "Git Error")
		assert.Contains(t, buf.String(), "no repository")
		assert.Contains(t, buf.String(), "Run relog inside a repository")
	})

	t.Run("plain error prints as-is", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		fprintError(&buf, stderrors.New("boom"))

		assert.Equal(t, "Error: boom\n", buf.String())
	})
}
