package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDevBuild(t *testing.T) {
	t.Parallel()

	// The unlinked default is a dev build.
	assert.Equal(t, "dev", Version)
	assert.True(t, IsDevBuild())
}

func TestFormatInfo(t *testing.T) {
	t.Parallel()

	info := FormatInfo()
	assert.Contains(t, info, "relog dev")
	assert.Contains(t, info, "commit: unknown")
	assert.Contains(t, info, "built: unknown")
	assert.Contains(t, info, "go: go1.")
	assert.Contains(t, info, "platform: ")
}
