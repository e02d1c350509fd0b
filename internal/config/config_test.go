package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"devctl.dev/devctl/internal/config"
	devctlerrors "devctl.dev/devctl/internal/errors"
	"devctl.dev/devctl/testhelpers"
)

func writeConfig(t *testing.T, dir string, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte(content), 0644))
}

func TestLoad(t *testing.T) {
	scene := testhelpers.NewFleetScene(t, "alpha", "beta")

	cfg, err := config.Load(scene.Dir)
	require.NoError(t, err)
	require.Len(t, cfg.Repos, 2)

	alpha := cfg.Repos["alpha"]
	require.Equal(t, "./alpha", alpha.Path)
	require.Equal(t, "main", alpha.Base)
	require.Equal(t, filepath.Join(scene.Dir, "alpha"), alpha.ResolvedPath)
	require.True(t, filepath.IsAbs(alpha.ResolvedPath))
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()

	_, err := config.Load(dir)
	require.Error(t, err)
	require.Contains(t, err.Error(), "devctl init")
}

func TestLoadEmptyRepos(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "repos: {}\n")

	_, err := config.Load(dir)
	require.Error(t, err)
	require.Contains(t, err.Error(), "repos")
}

func TestLoadMissingFields(t *testing.T) {
	t.Run("path", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "repos:\n  alpha:\n    base: main\n")

		_, err := config.Load(dir)
		require.Error(t, err)
		require.Contains(t, err.Error(), "repos.alpha.path is required")
	})

	t.Run("base", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "repos:\n  alpha:\n    path: ./alpha\n")

		_, err := config.Load(dir)
		require.Error(t, err)
		require.Contains(t, err.Error(), "repos.alpha.base is required")
	})
}

func TestLoadNonexistentRepoPath(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "repos:\n  alpha:\n    path: ./alpha\n    base: main\n")

	_, err := config.Load(dir)
	require.Error(t, err)
	require.Contains(t, err.Error(), "does not exist")
}

func TestLoadPathIsNotARepository(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "alpha"), 0755))
	writeConfig(t, dir, "repos:\n  alpha:\n    path: ./alpha\n    base: main\n")

	_, err := config.Load(dir)
	require.Error(t, err)
	require.Contains(t, err.Error(), "not a git repository")
}

func TestNamesAreSorted(t *testing.T) {
	scene := testhelpers.NewFleetScene(t, "zeta", "alpha", "mid")

	cfg, err := config.Load(scene.Dir)
	require.NoError(t, err)
	require.Equal(t, []string{"alpha", "mid", "zeta"}, cfg.Names())
}

func TestSelect(t *testing.T) {
	scene := testhelpers.NewFleetScene(t, "alpha", "beta")

	cfg, err := config.Load(scene.Dir)
	require.NoError(t, err)

	t.Run("nil selects all", func(t *testing.T) {
		names, err := cfg.Select(nil)
		require.NoError(t, err)
		require.Equal(t, []string{"alpha", "beta"}, names)
	})

	t.Run("subset is sorted", func(t *testing.T) {
		names, err := cfg.Select([]string{"beta", "alpha"})
		require.NoError(t, err)
		require.Equal(t, []string{"alpha", "beta"}, names)
	})

	t.Run("repeated names collapse", func(t *testing.T) {
		names, err := cfg.Select([]string{"alpha", "alpha", "beta", "alpha"})
		require.NoError(t, err)
		require.Equal(t, []string{"alpha", "beta"}, names)
	})

	t.Run("unknown names rejected", func(t *testing.T) {
		names, err := cfg.Select([]string{"alpha", "gamma", "delta"})
		require.Nil(t, names)
		require.ErrorIs(t, err, devctlerrors.ErrUnknownRepo)
		require.Contains(t, err.Error(), "delta")
		require.Contains(t, err.Error(), "gamma")
	})
}
