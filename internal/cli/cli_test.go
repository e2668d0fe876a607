package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aeolusmd/mdfixup/internal/cli"
)

func testBuildInfo() cli.BuildInfo {
	return cli.BuildInfo{Version: "test-version", Commit: "test-commit", Date: "test-date"}
}

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testBuildInfo())

	require.NotNil(t, cmd)
	assert.Equal(t, "md-fixup [paths...]", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
}

func TestRootCommandHasSubcommands(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testBuildInfo())

	for _, name := range []string{"rules", "version"} {
		subCmd, _, err := cmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, subCmd.Name())
	}
}

func TestRootCommandFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testBuildInfo())

	for _, flagName := range []string{
		"overwrite", "width", "skip", "init-config", "local",
		"replacements", "no-replacements", "replacements-file", "backup", "jobs",
	} {
		flag := cmd.Flags().Lookup(flagName)
		assert.NotNil(t, flag, "expected flag %q to exist", flagName)
	}
}

func TestGlobalFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testBuildInfo())

	for _, flagName := range []string{"debug", "config", "color"} {
		flag := cmd.PersistentFlags().Lookup(flagName)
		assert.NotNil(t, flag, "expected global flag %q to exist", flagName)
	}
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testBuildInfo())
	cmd.SetArgs([]string{"version"})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	require.NoError(t, cmd.Execute())
}

func TestRunFixesFileToStdout(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	mdFile := filepath.Join(tmpDir, "test.md")
	require.NoError(t, os.WriteFile(mdFile, []byte("#Hello\nbody\n"), 0644))

	cmd := cli.NewRootCommand(testBuildInfo())
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stdout)
	cmd.SetArgs([]string{"--color", "never", mdFile})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "# Hello\n\nbody\n", stdout.String())
}

func TestRunOverwriteRewritesFile(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	mdFile := filepath.Join(tmpDir, "test.md")
	require.NoError(t, os.WriteFile(mdFile, []byte("#Hello\nbody\n"), 0644))

	cmd := cli.NewRootCommand(testBuildInfo())
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stdout)
	cmd.SetArgs([]string{"--overwrite", "--color", "never", mdFile})

	require.NoError(t, cmd.Execute())

	got, err := os.ReadFile(mdFile)
	require.NoError(t, err)
	assert.Equal(t, "# Hello\n\nbody\n", string(got))
}

func TestRunUnknownSkipTokenFails(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	mdFile := filepath.Join(tmpDir, "test.md")
	require.NoError(t, os.WriteFile(mdFile, []byte("body\n"), 0644))

	cmd := cli.NewRootCommand(testBuildInfo())
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stdout)
	cmd.SetArgs([]string{"--skip", "not-a-rule", mdFile})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCodeForError(err))
}

func TestRunExpandsDirectoryArgument(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "docs"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "docs", "a.md"), []byte("#A\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "docs", "b.md"), []byte("#B\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "docs", "ignore.txt"), []byte("x"), 0644))

	cmd := cli.NewRootCommand(testBuildInfo())
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stdout)
	cmd.SetArgs([]string{"--color", "never", filepath.Join(tmpDir, "docs")})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "# A\n# B\n", stdout.String())
}

func TestRunMissingFileFails(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testBuildInfo())
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stdout)
	cmd.SetArgs([]string{"--color", "never", filepath.Join(t.TempDir(), "missing.md")})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, cli.ExitRunErrors, cli.ExitCodeForError(err))
}

func TestRulesCommandJSON(t *testing.T) {
	// Not parallel: temporarily redirects the process's os.Stdout.

	cmd := cli.NewRootCommand(testBuildInfo())
	cmd.SetArgs([]string{"rules", "--format", "json"})

	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = oldStdout }()

	var stderr bytes.Buffer
	cmd.SetErr(&stderr)

	execErr := cmd.Execute()
	require.NoError(t, w.Close())
	os.Stdout = oldStdout
	require.NoError(t, execErr)

	var buf bytes.Buffer
	_, err = buf.ReadFrom(r)
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Len(t, decoded, 33)
}

func TestRulesCommandText(t *testing.T) {
	// Not parallel: temporarily redirects the process's os.Stdout.

	cmd := cli.NewRootCommand(testBuildInfo())
	cmd.SetArgs([]string{"rules"})

	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	execErr := cmd.Execute()
	require.NoError(t, w.Close())
	os.Stdout = oldStdout
	require.NoError(t, execErr)

	var buf bytes.Buffer
	_, err = buf.ReadFrom(r)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "available rules")
}

func TestInitConfigLocalWritesBesideWorkingDirectory(t *testing.T) {
	// Not parallel: changes the process working directory.

	tmpDir := t.TempDir()
	oldWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	defer func() { _ = os.Chdir(oldWD) }()

	cmd := cli.NewRootCommand(testBuildInfo())
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stdout)
	cmd.SetArgs([]string{"--init-config", "--local"})

	require.NoError(t, cmd.Execute())

	_, statErr := os.Stat(filepath.Join(tmpDir, ".md-fixup.yml"))
	assert.NoError(t, statErr)
}
