package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relog-dev/relog/internal/config"
)

// newInitCommand builds an isolated init command so tests do not mutate
// the registered one's flag state.
func newInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "init",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runInit,
	}
	cmd.Flags().BoolP("force", "f", false, "")
	return cmd
}

// chdirTemp moves the test into a fresh temp dir; init writes relative
// to the working directory.
func chdirTemp(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	origDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})
	return dir
}

func runInitCmd(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := newInitCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	if stdin != "" {
		cmd.SetIn(strings.NewReader(stdin))
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestInit_CreatesConfig(t *testing.T) {
	dir := chdirTemp(t)

	out, err := runInitCmd(t, "")
	require.NoError(t, err)
	assert.Contains(t, out, "created at")

	path := filepath.Join(dir, config.TOMLConfigName)
	require.FileExists(t, path)

	// The starter file must load cleanly.
	_, err = config.Load(path)
	require.NoError(t, err)
}

func TestInit_PromptDeclinedKeepsExisting(t *testing.T) {
	dir := chdirTemp(t)
	path := filepath.Join(dir, config.TOMLConfigName)
	require.NoError(t, os.WriteFile(path, []byte("# custom config\n"), 0o644))

	out, err := runInitCmd(t, "n\n")
	require.NoError(t, err)
	assert.Contains(t, out, "already exists")
	assert.Contains(t, out, "unchanged")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# custom config\n", string(data))
}

func TestInit_PromptAcceptedOverwrites(t *testing.T) {
	dir := chdirTemp(t)
	path := filepath.Join(dir, config.TOMLConfigName)
	require.NoError(t, os.WriteFile(path, []byte("# custom config\n"), 0o644))

	out, err := runInitCmd(t, "y\n")
	require.NoError(t, err)
	assert.Contains(t, out, "overwritten at")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEqual(t, "# custom config\n", string(data))
}

func TestInit_ForceSkipsPrompt(t *testing.T) {
	dir := chdirTemp(t)
	path := filepath.Join(dir, config.TOMLConfigName)
	require.NoError(t, os.WriteFile(path, []byte("# custom config\n"), 0o644))

	// No stdin wired: a prompt would hang, --force must not ask.
	out, err := runInitCmd(t, "", "--force")
	require.NoError(t, err)
	assert.Contains(t, out, "overwritten at")
}

func TestInit_NotesShadowedConfig(t *testing.T) {
	dir := chdirTemp(t)
	yml := filepath.Join(dir, config.YAMLConfigName)
	require.NoError(t, os.WriteFile(yml, []byte("relog:\n  subtitle: keep\n"), 0o644))

	out, err := runInitCmd(t, "", "--force")
	require.NoError(t, err)
	assert.Contains(t, out, "shadows")
	assert.FileExists(t, filepath.Join(dir, config.TOMLConfigName))
	assert.FileExists(t, yml, "the old config file is left in place")
}
