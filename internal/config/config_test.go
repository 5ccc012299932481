package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jacklang/jack/internal/config"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileFallsBackToDefault(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	require.Equal(t, config.ColorAuto, cfg.Color)
	require.Equal(t, 0, cfg.MaxDepth)
}

func TestLoadParsesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".jackrc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("color: never\nmax_depth: 5000\n"), 0644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, config.ColorNever, cfg.Color)
	require.Equal(t, 5000, cfg.MaxDepth)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".jackrc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("color: [this is not valid"), 0644))

	_, err := config.Load(path)
	require.Error(t, err)
}

func TestLoadFallsBackToHomeDirectory(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, ".jackrc.yaml"), []byte("color: always\nmax_depth: 9000\n"), 0644))
	t.Setenv("HOME", home)

	cwd := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(cwd))
	defer os.Chdir(wd)

	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, config.ColorAlways, cfg.Color)
	require.Equal(t, 9000, cfg.MaxDepth)
}
