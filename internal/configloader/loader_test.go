package configloader_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aeolusmd/mdfixup/pkg/config"
	"github.com/aeolusmd/mdfixup/pkg/rules"

	"github.com/aeolusmd/mdfixup/internal/configloader"
)

func intPtr(i int) *int { return &i }

func TestLoadMergesProjectOverUser(t *testing.T) {
	userDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", userDir)
	require.NoError(t, os.MkdirAll(filepath.Join(userDir, "md-fixup"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(userDir, "md-fixup", "config.yaml"),
		[]byte("width: 80\noverwrite: false\n"), 0o644))

	projectDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(projectDir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(projectDir, ".md-fixup.yml"),
		[]byte("width: 100\n"), 0o644))

	reg := rules.NewRegistry()
	result, err := configloader.Load(context.Background(), reg, configloader.LoadOptions{
		WorkingDir: filepath.Join(projectDir, "sub"),
	})
	require.NoError(t, err)
	require.NotNil(t, result.Config.Width)
	assert.Equal(t, 100, *result.Config.Width)
	assert.Len(t, result.LoadedFrom, 2)
}

func TestLoadCLIConfigWins(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	reg := rules.NewRegistry()

	result, err := configloader.Load(context.Background(), reg, configloader.LoadOptions{
		WorkingDir: t.TempDir(),
		CLIConfig:  &config.Config{Width: intPtr(40)},
	})
	require.NoError(t, err)
	require.NotNil(t, result.Config.Width)
	assert.Equal(t, 40, *result.Config.Width)
}

func TestLoadRejectsUnknownRuleToken(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	reg := rules.NewRegistry()

	_, err := configloader.Load(context.Background(), reg, configloader.LoadOptions{
		WorkingDir: t.TempDir(),
		CLIConfig:  &config.Config{Rules: config.RulesConfig{Skip: []string{"not-a-rule"}}},
	})
	require.Error(t, err)

	var verr *configloader.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "not-a-rule")
}

func TestDiscoverPathsNoFiles(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir := t.TempDir()

	paths, err := configloader.DiscoverPaths(context.Background(), dir)
	require.NoError(t, err)
	assert.Empty(t, paths.User)
	assert.Empty(t, paths.Project)
}
