package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chandemo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("channel:\n  capacity: 2\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, cfg.Channel.Capacity)
	require.Equal(t, 3, cfg.Select.RaceChannels)
	require.Equal(t, 20, cfg.Producer.Count)
	require.Equal(t, "info", cfg.Logging.Level)
	require.Equal(t, "15:04:05", cfg.Logging.TimeFormat)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chandemo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("select:\n  race_channels: -1\n"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
