package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mikrolab/nomen/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.False(t, cfg.Verbose())
	assert.False(t, cfg.LogDisabled())
	assert.Nil(t, cfg.Extensions())
	assert.Contains(t, cfg.LogDir(), filepath.Join(".nomen", "log"))
}

func TestLoad_LocalOverridesGlobal(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	work := t.TempDir()
	t.Chdir(work)

	globalDir := filepath.Join(home, ".nomen")
	require.NoError(t, os.MkdirAll(globalDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(globalDir, "config.yaml"),
		[]byte("report:\n  verbose: false\n"), 0644))

	localDir := filepath.Join(work, ".nomen")
	require.NoError(t, os.MkdirAll(localDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(localDir, "config.yaml"),
		[]byte("report:\n  verbose: true\nscan:\n  extensions: [.czi]\n"), 0644))

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.True(t, cfg.Verbose())
	assert.Equal(t, []string{".czi"}, cfg.Extensions())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path,
		[]byte("log:\n  disabled: true\n  dir: /tmp/check-logs\n"), 0644))

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.True(t, cfg.LogDisabled())
	assert.Equal(t, "/tmp/check-logs", cfg.LogDir())
}

func TestLoadFile_Invalid(t *testing.T) {
	t.Run("bad yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte(":\n  - ["), 0644))
		_, err := config.LoadFile(path)
		assert.Error(t, err)
	})

	t.Run("bad extension value", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("scan:\n  extensions: [czi]\n"), 0644))
		_, err := config.LoadFile(path)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrInvalidValue)
	})
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("report:\n  verbose: true\n"), 0644))

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Save())

	again, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.True(t, again.Verbose())
}
